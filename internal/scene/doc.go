// Package scene holds the visual model of a graph: one glyph per node,
// one line and label per link, and free annotation text.
//
// A Renderer builds the scene from a resolved graph and recomputes every
// glyph position from the node coordinates on Update. Hosts read the scene
// to paint it (terminal canvas) or serialise it with WriteSVG.
package scene
