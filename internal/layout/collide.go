package layout

import (
	"math"

	"rdfview/internal/domain"
)

// DefaultCollideRadius is the disc radius every node occupies for collision
const DefaultCollideRadius = 50

// Collide pushes apart nodes whose discs overlap. Every node is treated as
// a disc of the same radius whatever its visual shape.
type Collide struct {
	radius     float64
	strength   float64
	iterations int

	nodes  []*domain.Node
	random func() float64
}

// NewCollide creates a collision force with the given radius
func NewCollide(radius float64) *Collide {
	return &Collide{
		radius:     radius,
		strength:   1,
		iterations: 1,
	}
}

// Radius returns the collision radius
func (f *Collide) Radius() float64 {
	return f.radius
}

func (f *Collide) Initialize(nodes []*domain.Node, random func() float64) {
	f.nodes = nodes
	f.random = random
}

func (f *Collide) Apply(alpha float64) {
	if len(f.nodes) == 0 {
		return
	}
	for k := 0; k < f.iterations; k++ {
		f.apply()
	}
}

func (f *Collide) apply() {
	xs := make([]float64, len(f.nodes))
	ys := make([]float64, len(f.nodes))
	for i, n := range f.nodes {
		// Collide against predicted positions
		xs[i], ys[i] = n.X+n.VX, n.Y+n.VY
	}

	tree := newQuadtree(xs, ys)
	tree.accumulateRadius(func(int) float64 { return f.radius })

	ri := f.radius
	ri2 := ri * ri
	for i, node := range f.nodes {
		xi, yi := xs[i], ys[i]

		tree.visit(func(q *quad) bool {
			if !q.internal {
				for _, j := range q.points {
					if j <= i {
						continue
					}
					f.resolve(node, f.nodes[j], xi, yi, ri, ri2)
				}
			}
			r := ri + q.r
			return q.x0 > xi+r || q.x1 < xi-r || q.y0 > yi+r || q.y1 < yi-r
		})
	}
}

// resolve separates two overlapping discs, splitting the push by area
func (f *Collide) resolve(node, other *domain.Node, xi, yi, ri, ri2 float64) {
	rj := f.radius
	r := ri + rj

	x := xi - other.X - other.VX
	y := yi - other.Y - other.VY
	l := x*x + y*y
	if l >= r*r {
		return
	}

	if x == 0 {
		x = jiggle(f.random)
		l += x * x
	}
	if y == 0 {
		y = jiggle(f.random)
		l += y * y
	}

	l = math.Sqrt(l)
	l = (r - l) / l * f.strength
	x *= l
	y *= l

	rj2 := rj * rj
	share := rj2 / (ri2 + rj2)
	node.VX += x * share
	node.VY += y * share
	share = 1 - share
	other.VX -= x * share
	other.VY -= y * share
}
