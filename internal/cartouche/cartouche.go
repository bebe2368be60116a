// Package cartouche renders the properties of literal groups as stacked
// "property: value" lines that follow their node.
package cartouche

import (
	"fmt"

	"rdfview/internal/domain"
	"rdfview/internal/scene"
)

// Vertical layout of cartouche lines below the owning node
const (
	FirstLineOffset = 20
	LineSpacing     = 15
)

type line struct {
	node       *domain.Node
	annotation *scene.Annotation
}

// Annotator adds cartouche lines to a scene. It only draws in cartouches
// mode; in any other mode Build and Update do nothing.
type Annotator struct {
	mode  domain.Mode
	lines []line
}

// New creates an annotator for the display mode
func New(mode domain.Mode) *Annotator {
	return &Annotator{mode: mode}
}

// Enabled reports whether the annotator draws anything
func (a *Annotator) Enabled() bool {
	return a.mode.ShowsCartouches()
}

// Mode returns the display mode the annotator was created for
func (a *Annotator) Mode() domain.Mode {
	return a.mode
}

// Text formats one property line
func Text(p domain.Property) string {
	return fmt.Sprintf("%s: %s", p.Property, p.Value)
}

// Build creates one annotation per property of every literal group, at
// the node's current position
func (a *Annotator) Build(g *domain.Graph, s *scene.Scene) {
	a.lines = nil
	s.ClearAnnotations()
	if !a.Enabled() || g == nil {
		return
	}

	for _, node := range g.Nodes {
		if !node.IsLiteralGroup() {
			continue
		}
		for i, prop := range node.Properties {
			ann := &scene.Annotation{
				NodeID: node.ID,
				Index:  i,
				Text: scene.Text{
					Content:  Text(prop),
					FontSize: scene.AnnotationFontSize,
					Fill:     scene.AnnotationFill,
					Anchor:   scene.AnchorMiddle,
				},
			}
			s.AddAnnotation(ann)
			a.lines = append(a.lines, line{node: node, annotation: ann})
		}
	}

	a.Update()
}

// Update re-anchors every line to its owning node
func (a *Annotator) Update() {
	for _, l := range a.lines {
		l.annotation.Text.X = l.node.X
		l.annotation.Text.Y = l.node.Y + FirstLineOffset + LineSpacing*float64(l.annotation.Index)
	}
}

// Lines returns the annotations created by the last Build
func (a *Annotator) Lines() []*scene.Annotation {
	out := make([]*scene.Annotation, len(a.lines))
	for i, l := range a.lines {
		out[i] = l.annotation
	}
	return out
}
