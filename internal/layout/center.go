package layout

import "rdfview/internal/domain"

// Center translates all nodes so their centroid sits on (X, Y).
// It moves positions directly rather than velocities.
type Center struct {
	X, Y     float64
	Strength float64

	nodes []*domain.Node
}

// NewCenter creates a centering force at the given point
func NewCenter(x, y float64) *Center {
	return &Center{X: x, Y: y, Strength: 1}
}

func (f *Center) Initialize(nodes []*domain.Node, random func() float64) {
	f.nodes = nodes
}

func (f *Center) Apply(alpha float64) {
	n := len(f.nodes)
	if n == 0 {
		return
	}

	var sx, sy float64
	for _, node := range f.nodes {
		sx += node.X
		sy += node.Y
	}

	sx = (sx/float64(n) - f.X) * f.Strength
	sy = (sy/float64(n) - f.Y) * f.Strength
	for _, node := range f.nodes {
		node.X -= sx
		node.Y -= sy
	}
}
