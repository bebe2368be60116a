package scene

import "math"

// Styling of the graph view
const (
	EntityFill      = "#69b3a2"
	LiteralFill     = "#ff9e40"
	NodeStroke      = "#fff"
	NodeStrokeWidth = 2

	LinkStroke        = "#999"
	LinkStrokeOpacity = 0.6
	LinkStrokeWidth   = 1.5

	LabelFontSize     = 12
	LabelFill         = "#333"
	LinkLabelFontSize = 10
	LinkLabelFill     = "#666"

	AnnotationFontSize = 10
	AnnotationFill     = "#555"

	AnchorMiddle = "middle"
	AnchorStart  = "start"
)

// Entity glyph geometry, relative to the node position
const (
	EntityWidth  = 100
	EntityHeight = 30
	EntityRadius = 5

	entityLabelDY  = 5
	literalLabelDY = -20
)

// Literal group radius grows with the number of properties
const (
	literalBaseRadius = 15
	literalStepRadius = 10
)

// LiteralRadius returns the circle radius of a literal group with k properties
func LiteralRadius(k int) float64 {
	return literalBaseRadius + literalStepRadius*float64(k)
}

// Rect is a rounded rectangle in node-local coordinates
type Rect struct {
	X, Y          float64
	Width, Height float64
	RX, RY        float64
	Fill          string
	Stroke        string
	StrokeWidth   float64
}

// Contains reports whether the node-local point lies inside the rectangle
func (r *Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Circle is centered on the node position
type Circle struct {
	R           float64
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Contains reports whether the node-local point lies inside the circle
func (c *Circle) Contains(x, y float64) bool {
	return math.Hypot(x, y) <= c.R
}

// Line is a straight segment in viewport coordinates
type Line struct {
	X1, Y1        float64
	X2, Y2        float64
	Stroke        string
	StrokeOpacity float64
	StrokeWidth   float64
}

// Text is a label. X/Y are viewport or node-local coordinates depending
// on the owner; DY is an additional vertical offset.
type Text struct {
	X, Y     float64
	DY       float64
	Content  string
	FontSize int
	Fill     string
	Anchor   string
}
