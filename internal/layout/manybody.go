package layout

import (
	"math"

	"rdfview/internal/domain"
)

// DefaultChargeStrength is the pairwise charge; negative values repel
const DefaultChargeStrength = -500

// ManyBody applies pairwise charge between all nodes using the Barnes-Hut
// approximation: cells far enough away act as a single aggregate body.
type ManyBody struct {
	strength     float64
	theta2       float64
	distanceMin2 float64
	distanceMax2 float64

	nodes  []*domain.Node
	random func() float64
}

// NewManyBody creates a charge force with the given strength
func NewManyBody(strength float64) *ManyBody {
	return &ManyBody{
		strength:     strength,
		theta2:       0.81,
		distanceMin2: 1,
		distanceMax2: math.Inf(1),
	}
}

// Strength returns the per-node charge
func (f *ManyBody) Strength() float64 {
	return f.strength
}

// WithTheta sets the Barnes-Hut accuracy threshold
func (f *ManyBody) WithTheta(theta float64) *ManyBody {
	f.theta2 = theta * theta
	return f
}

// WithDistanceMax limits the range of the force
func (f *ManyBody) WithDistanceMax(d float64) *ManyBody {
	f.distanceMax2 = d * d
	return f
}

func (f *ManyBody) Initialize(nodes []*domain.Node, random func() float64) {
	f.nodes = nodes
	f.random = random
}

func (f *ManyBody) Apply(alpha float64) {
	if len(f.nodes) == 0 {
		return
	}

	xs := make([]float64, len(f.nodes))
	ys := make([]float64, len(f.nodes))
	for i, n := range f.nodes {
		xs[i], ys[i] = n.X, n.Y
	}

	tree := newQuadtree(xs, ys)
	tree.accumulate(func(int) float64 { return f.strength })

	for i, node := range f.nodes {
		f.applyTo(tree, i, node, alpha)
	}
}

func (f *ManyBody) applyTo(tree *quadtree, index int, node *domain.Node, alpha float64) {
	tree.visit(func(q *quad) bool {
		if q.value == 0 {
			return true
		}

		dx := q.cx - node.X
		dy := q.cy - node.Y
		w := q.x1 - q.x0
		l := dx*dx + dy*dy

		// Far enough away to treat the whole cell as one body
		if w*w/f.theta2 < l {
			if l < f.distanceMax2 {
				dx, dy, l = f.separate(dx, dy, l)
				node.VX += dx * q.value * alpha / l
				node.VY += dy * q.value * alpha / l
			}
			return true
		}

		if q.internal {
			return false
		}
		if l >= f.distanceMax2 {
			return true
		}

		for _, j := range q.points {
			if j == index {
				continue
			}
			px := tree.xs[j] - node.X
			py := tree.ys[j] - node.Y
			pl := px*px + py*py
			if pl >= f.distanceMax2 {
				continue
			}
			px, py, pl = f.separate(px, py, pl)
			s := f.strength * alpha / pl
			node.VX += px * s
			node.VY += py * s
		}
		return true
	})
}

// separate jiggles zero offsets and clamps very short distances
func (f *ManyBody) separate(dx, dy, l float64) (float64, float64, float64) {
	if dx == 0 {
		dx = jiggle(f.random)
		l += dx * dx
	}
	if dy == 0 {
		dy = jiggle(f.random)
		l += dy * dy
	}
	if l < f.distanceMin2 {
		l = math.Sqrt(f.distanceMin2 * l)
	}
	return dx, dy, l
}
