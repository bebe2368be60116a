package layout

import (
	"math"

	"rdfview/internal/domain"
)

// DefaultLinkDistance is the rest length of every link spring
const DefaultLinkDistance = 150

// LinkForce pulls linked nodes toward a target separation
type LinkForce struct {
	links     []*domain.Link
	distance  float64
	strengths []float64
	bias      []float64
}

// NewLinkForce creates a spring force over resolved links
func NewLinkForce(links []*domain.Link, distance float64) *LinkForce {
	return &LinkForce{
		links:    links,
		distance: distance,
	}
}

// Distance returns the target separation
func (f *LinkForce) Distance() float64 {
	return f.distance
}

// Initialize derives per-link strength and bias from node degree.
// Links between well-connected nodes are weaker, and the lighter endpoint
// moves more.
func (f *LinkForce) Initialize(nodes []*domain.Node, random func() float64) {
	count := make(map[*domain.Node]int, len(nodes))
	for _, link := range f.links {
		count[link.SourceNode]++
		count[link.TargetNode]++
	}

	f.strengths = make([]float64, len(f.links))
	f.bias = make([]float64, len(f.links))
	for i, link := range f.links {
		s, t := count[link.SourceNode], count[link.TargetNode]
		if s == 0 || t == 0 {
			continue
		}
		f.strengths[i] = 1 / float64(min(s, t))
		f.bias[i] = float64(s) / float64(s+t)
	}
}

// Apply moves each endpoint pair toward the target distance
func (f *LinkForce) Apply(alpha float64) {
	for i, link := range f.links {
		source, target := link.SourceNode, link.TargetNode
		if source == nil || target == nil || source == target {
			continue
		}

		x := target.X + target.VX - source.X - source.VX
		y := target.Y + target.VY - source.Y - source.VY
		l := math.Sqrt(x*x + y*y)
		if l == 0 {
			// Coincident endpoints have no direction to pull along
			continue
		}

		l = (l - f.distance) / l * alpha * f.strengths[i]
		x *= l
		y *= l

		b := f.bias[i]
		target.VX -= x * b
		target.VY -= y * b
		b = 1 - b
		source.VX += x * b
		source.VY += y * b
	}
}
