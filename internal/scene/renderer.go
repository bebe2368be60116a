package scene

import "rdfview/internal/domain"

// Renderer keeps a Scene synchronized with the positions of a graph
type Renderer struct {
	scene *Scene
	graph *domain.Graph
}

// NewRenderer creates a renderer drawing into s
func NewRenderer(s *Scene) *Renderer {
	return &Renderer{scene: s}
}

// Scene returns the scene being drawn
func (r *Renderer) Scene() *Scene {
	return r.scene
}

// Build clears the scene and creates one glyph per node and link of the
// resolved graph, positioned at the current node coordinates
func (r *Renderer) Build(g *domain.Graph) {
	r.scene.Clear()
	r.graph = g
	if g == nil {
		return
	}

	for i, link := range g.Links {
		r.scene.addLink(&LinkGlyph{
			Index: i,
			Line: Line{
				Stroke:        LinkStroke,
				StrokeOpacity: LinkStrokeOpacity,
				StrokeWidth:   LinkStrokeWidth,
			},
			Label: Text{
				Content:  link.Label,
				FontSize: LinkLabelFontSize,
				Fill:     LinkLabelFill,
				Anchor:   AnchorStart,
			},
		})
	}

	for _, node := range g.Nodes {
		r.scene.addNode(nodeGlyph(node))
	}

	r.Update()
}

func nodeGlyph(node *domain.Node) *NodeGlyph {
	glyph := &NodeGlyph{
		NodeID: node.ID,
		Type:   node.Type,
		Label: Text{
			Content:  node.Label(),
			FontSize: LabelFontSize,
			Fill:     LabelFill,
			Anchor:   AnchorMiddle,
		},
	}

	if node.IsLiteralGroup() {
		glyph.Circle = &Circle{
			R:           LiteralRadius(len(node.Properties)),
			Fill:        LiteralFill,
			Stroke:      NodeStroke,
			StrokeWidth: NodeStrokeWidth,
		}
		glyph.Label.DY = literalLabelDY
		return glyph
	}

	glyph.Rect = &Rect{
		X:           -EntityWidth / 2,
		Y:           -EntityHeight / 2,
		Width:       EntityWidth,
		Height:      EntityHeight,
		RX:          EntityRadius,
		RY:          EntityRadius,
		Fill:        EntityFill,
		Stroke:      NodeStroke,
		StrokeWidth: NodeStrokeWidth,
	}
	glyph.Label.DY = entityLabelDY
	return glyph
}

// Update recomputes glyph positions from the current node coordinates:
// line endpoints follow their nodes, node groups are translated to the
// node position and link labels sit at the link midpoint.
func (r *Renderer) Update() {
	if r.graph == nil {
		return
	}

	for i, link := range r.graph.Links {
		glyph := r.scene.Link(i)
		if glyph == nil || !link.Resolved() {
			continue
		}
		glyph.Line.X1, glyph.Line.Y1 = link.SourceNode.X, link.SourceNode.Y
		glyph.Line.X2, glyph.Line.Y2 = link.TargetNode.X, link.TargetNode.Y
		glyph.Label.X, glyph.Label.Y = link.Midpoint()
	}

	for _, node := range r.graph.Nodes {
		if glyph := r.scene.Node(node.ID); glyph != nil {
			glyph.TX, glyph.TY = node.X, node.Y
		}
	}
}
