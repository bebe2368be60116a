package layout

import "rdfview/internal/domain"

// Force contributes velocity (or position) changes to nodes on each step
type Force interface {
	// Initialize is called once when the force is added to a simulation
	Initialize(nodes []*domain.Node, random func() float64)
	// Apply mutates node velocities for the given cooling factor
	Apply(alpha float64)
}

// lcg returns the deterministic pseudo-random source used for jiggling.
// Same constants as Numerical Recipes, seeded at 1.
func lcg() func() float64 {
	const (
		a = 1664525
		c = 1013904223
		m = 4294967296
	)
	s := uint64(1)
	return func() float64 {
		s = (a*s + c) % m
		return float64(s) / m
	}
}

// jiggle returns a tiny random offset used to separate coincident nodes
func jiggle(random func() float64) float64 {
	return (random() - 0.5) * 1e-6
}
