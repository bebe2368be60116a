package layout

import (
	"math"

	"rdfview/internal/domain"
)

const (
	initialRadius = 10
	// DefaultAlphaMin is the cooling level below which the simulation idles
	DefaultAlphaMin = 0.001
	// DefaultVelocityDecay is the fraction of velocity lost per step
	DefaultVelocityDecay = 0.4
)

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// Config holds the force parameters of a graph simulation
type Config struct {
	Width          float64
	Height         float64
	LinkDistance   float64
	ChargeStrength float64
	CollideRadius  float64
	AlphaMin       float64
	VelocityDecay  float64
}

// DefaultConfig returns the parameters of the 800x600 graph view
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		LinkDistance:   DefaultLinkDistance,
		ChargeStrength: DefaultChargeStrength,
		CollideRadius:  DefaultCollideRadius,
		AlphaMin:       DefaultAlphaMin,
		VelocityDecay:  DefaultVelocityDecay,
	}
}

type namedForce struct {
	name  string
	force Force
}

// Simulation is an iterative force solver. It is not safe for concurrent
// use: the host drives Step from a single execution context.
type Simulation struct {
	nodes  []*domain.Node
	forces []namedForce

	alpha         float64
	alphaMin      float64
	alphaDecay    float64
	alphaTarget   float64
	velocityDecay float64

	running bool
	steps   int
	random  func() float64
	onTick  []func()
}

// New creates a simulation over nodes with no forces.
// Unplaced nodes are arranged on a phyllotaxis spiral around the origin.
func New(nodes []*domain.Node) *Simulation {
	s := &Simulation{
		nodes:         nodes,
		alpha:         1,
		alphaMin:      DefaultAlphaMin,
		velocityDecay: 1 - DefaultVelocityDecay,
		random:        lcg(),
	}
	s.alphaDecay = 1 - math.Pow(s.alphaMin, 1.0/300)
	s.initializeNodes()
	return s
}

// NewForGraph creates a simulation with link, charge, center and collision
// forces configured for the resolved graph
func NewForGraph(g *domain.Graph, cfg Config) *Simulation {
	s := New(g.Nodes)
	if cfg.AlphaMin > 0 {
		s.SetAlphaMin(cfg.AlphaMin)
	}
	if cfg.VelocityDecay > 0 {
		s.velocityDecay = 1 - cfg.VelocityDecay
	}

	s.AddForce("link", NewLinkForce(g.Links, cfg.LinkDistance))
	s.AddForce("charge", NewManyBody(cfg.ChargeStrength))
	s.AddForce("center", NewCenter(cfg.Width/2, cfg.Height/2))
	s.AddForce("collision", NewCollide(cfg.CollideRadius))
	return s
}

func (s *Simulation) initializeNodes() {
	for i, node := range s.nodes {
		if !node.Placed() {
			radius := initialRadius * math.Sqrt(0.5+float64(i))
			angle := float64(i) * initialAngle
			node.Place(radius*math.Cos(angle), radius*math.Sin(angle))
		}
		if node.FX != nil {
			node.X = *node.FX
		}
		if node.FY != nil {
			node.Y = *node.FY
		}
	}
}

// AddForce registers a force under name, replacing any force with that name
func (s *Simulation) AddForce(name string, f Force) {
	f.Initialize(s.nodes, s.random)
	for i := range s.forces {
		if s.forces[i].name == name {
			s.forces[i].force = f
			return
		}
	}
	s.forces = append(s.forces, namedForce{name: name, force: f})
}

// Force returns the force registered under name, or nil
func (s *Simulation) Force(name string) Force {
	for _, nf := range s.forces {
		if nf.name == name {
			return nf.force
		}
	}
	return nil
}

// OnTick registers a callback invoked after every step
func (s *Simulation) OnTick(fn func()) {
	s.onTick = append(s.onTick, fn)
}

// Nodes returns the simulated nodes
func (s *Simulation) Nodes() []*domain.Node {
	return s.nodes
}

// Start begins stepping from alpha = 1
func (s *Simulation) Start() {
	s.alpha = 1
	s.Restart()
}

// Restart resumes stepping without resetting alpha
func (s *Simulation) Restart() {
	s.running = len(s.nodes) > 0
}

// Stop halts stepping; alpha is left unchanged
func (s *Simulation) Stop() {
	s.running = false
}

// Reheat raises the alpha target and resumes stepping
func (s *Simulation) Reheat(target float64) {
	s.alphaTarget = target
	s.Restart()
}

// Cool drops the alpha target so the layout decays to rest
func (s *Simulation) Cool() {
	s.alphaTarget = 0
}

// Active reports whether the host should keep calling Step
func (s *Simulation) Active() bool {
	return s.running
}

func (s *Simulation) Alpha() float64 {
	return s.alpha
}

func (s *Simulation) SetAlpha(alpha float64) {
	s.alpha = alpha
}

func (s *Simulation) AlphaTarget() float64 {
	return s.alphaTarget
}

func (s *Simulation) SetAlphaTarget(target float64) {
	s.alphaTarget = target
}

// SetAlphaMin sets the rest threshold and rescales decay to reach it in
// about 300 steps
func (s *Simulation) SetAlphaMin(alphaMin float64) {
	s.alphaMin = alphaMin
	s.alphaDecay = 1 - math.Pow(alphaMin, 1.0/300)
}

// Steps returns the number of steps taken so far
func (s *Simulation) Steps() int {
	return s.steps
}

// Step advances the simulation by one tick and invokes the tick callbacks.
// It returns whether the simulation is still active afterwards.
func (s *Simulation) Step() bool {
	if !s.running || len(s.nodes) == 0 {
		return false
	}

	s.tick()
	for _, fn := range s.onTick {
		fn()
	}

	if s.alpha < s.alphaMin {
		s.running = false
	}
	return s.running
}

// Settle steps until the simulation rests or maxSteps is reached,
// returning the number of steps taken
func (s *Simulation) Settle(maxSteps int) int {
	start := s.steps
	for s.steps-start < maxSteps && s.Active() {
		s.Step()
	}
	return s.steps - start
}

func (s *Simulation) tick() {
	s.alpha += (s.alphaTarget - s.alpha) * s.alphaDecay
	s.steps++

	for _, nf := range s.forces {
		nf.force.Apply(s.alpha)
	}

	for _, node := range s.nodes {
		if node.FX == nil {
			node.VX *= s.velocityDecay
			node.X += node.VX
		} else {
			node.X = *node.FX
			node.VX = 0
		}
		if node.FY == nil {
			node.VY *= s.velocityDecay
			node.Y += node.VY
		} else {
			node.Y = *node.FY
			node.VY = 0
		}
	}
}
