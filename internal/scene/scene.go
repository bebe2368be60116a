package scene

import "rdfview/internal/domain"

// Viewport is the fixed logical canvas
type Viewport struct {
	Width  float64
	Height float64
}

// DefaultViewport is the 800x600 graph view
var DefaultViewport = Viewport{Width: 800, Height: 600}

// NodeGlyph is the visual group of one node. Exactly one of Rect and
// Circle is set. The group is translated to (TX, TY).
type NodeGlyph struct {
	NodeID string
	Type   domain.NodeType
	TX, TY float64
	Rect   *Rect
	Circle *Circle
	Label  Text
}

// Contains reports whether the viewport point (x, y) hits the glyph shape
func (g *NodeGlyph) Contains(x, y float64) bool {
	lx, ly := x-g.TX, y-g.TY
	switch {
	case g.Rect != nil:
		return g.Rect.Contains(lx, ly)
	case g.Circle != nil:
		return g.Circle.Contains(lx, ly)
	}
	return false
}

// LinkGlyph is the line and midpoint label of one link
type LinkGlyph struct {
	Index int
	Line  Line
	Label Text
}

// Annotation is a free-standing text line owned by a node, such as a
// cartouche property line
type Annotation struct {
	NodeID string
	Index  int
	Text   Text
}

// Scene is the set of visual primitives for one graph, keyed by node id
// and link index. Node glyphs keep graph order, which is also paint order.
type Scene struct {
	Viewport Viewport

	nodes       []*NodeGlyph
	byID        map[string]*NodeGlyph
	links       []*LinkGlyph
	annotations []*Annotation
}

// New creates an empty scene for the viewport
func New(vp Viewport) *Scene {
	return &Scene{
		Viewport: vp,
		byID:     make(map[string]*NodeGlyph),
	}
}

// Clear removes every primitive
func (s *Scene) Clear() {
	s.nodes = nil
	s.byID = make(map[string]*NodeGlyph)
	s.links = nil
	s.annotations = nil
}

// IsEmpty reports whether the scene holds no primitives
func (s *Scene) IsEmpty() bool {
	return len(s.nodes) == 0 && len(s.links) == 0 && len(s.annotations) == 0
}

func (s *Scene) addNode(g *NodeGlyph) {
	s.nodes = append(s.nodes, g)
	s.byID[g.NodeID] = g
}

func (s *Scene) addLink(g *LinkGlyph) {
	s.links = append(s.links, g)
}

// Nodes returns the node glyphs in paint order
func (s *Scene) Nodes() []*NodeGlyph {
	return s.nodes
}

// Node returns the glyph of a node, or nil
func (s *Scene) Node(id string) *NodeGlyph {
	return s.byID[id]
}

// Links returns the link glyphs in link order
func (s *Scene) Links() []*LinkGlyph {
	return s.links
}

// Link returns the glyph of the link at index, or nil
func (s *Scene) Link(index int) *LinkGlyph {
	if index < 0 || index >= len(s.links) {
		return nil
	}
	return s.links[index]
}

// Annotations returns the annotation lines
func (s *Scene) Annotations() []*Annotation {
	return s.annotations
}

// AddAnnotation appends an annotation line
func (s *Scene) AddAnnotation(a *Annotation) {
	s.annotations = append(s.annotations, a)
}

// ClearAnnotations removes every annotation line
func (s *Scene) ClearAnnotations() {
	s.annotations = nil
}

// HitTest returns the id of the topmost node glyph containing the
// viewport point (x, y)
func (s *Scene) HitTest(x, y float64) (string, bool) {
	for i := len(s.nodes) - 1; i >= 0; i-- {
		if s.nodes[i].Contains(x, y) {
			return s.nodes[i].NodeID, true
		}
	}
	return "", false
}
