// Package session ties one loaded graph to its simulation, scene, cartouche
// annotator and drag controller. A session lives from one graph load to the
// next and is never reused.
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"rdfview/internal/cartouche"
	"rdfview/internal/domain"
	"rdfview/internal/drag"
	"rdfview/internal/layout"
	"rdfview/internal/scene"
	"rdfview/internal/source"
)

// Options configures the engine built for each session
type Options struct {
	Layout       layout.Config
	ReheatTarget float64
}

// DefaultOptions returns the 800x600 graph view settings
func DefaultOptions() Options {
	return Options{
		Layout:       layout.DefaultConfig(),
		ReheatTarget: drag.ReheatTarget,
	}
}

// Session is the interaction state of one graph load
type Session struct {
	id       string
	mode     domain.Mode
	source   string
	loadedAt time.Time
	opts     Options

	graph     *domain.Graph
	sim       *layout.Simulation
	renderer  *scene.Renderer
	annotator *cartouche.Annotator
	drags     *drag.Controller
	closed    bool
}

// Load fetches a graph from src and builds a session for it. Nothing is
// built unless the fetch succeeds and the graph resolves.
func Load(ctx context.Context, src source.Source, mode domain.Mode, opts Options) (*Session, error) {
	g, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch graph from %s: %w", src, err)
	}

	s, err := New(g, mode, opts)
	if err != nil {
		return nil, err
	}
	s.source = src.String()
	return s, nil
}

// New validates g and builds the engine around it. The simulation is
// started; the host drives it with Step.
func New(g *domain.Graph, mode domain.Mode, opts Options) (*Session, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: no graph", domain.ErrMalformedGraph)
	}
	if err := g.Resolve(); err != nil {
		return nil, err
	}

	vp := scene.Viewport{Width: opts.Layout.Width, Height: opts.Layout.Height}
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = scene.DefaultViewport
		opts.Layout.Width, opts.Layout.Height = vp.Width, vp.Height
	}

	s := &Session{
		id:        uuid.NewString(),
		mode:      mode,
		loadedAt:  time.Now(),
		opts:      opts,
		graph:     g,
		sim:       layout.NewForGraph(g, opts.Layout),
		renderer:  scene.NewRenderer(scene.New(vp)),
		annotator: cartouche.New(mode),
	}
	s.drags = drag.NewController(g, &heater{sim: s.sim, target: opts.ReheatTarget})

	s.renderer.Build(g)
	s.annotator.Build(g, s.renderer.Scene())

	// Annotations anchor to positions the renderer has already committed
	s.sim.OnTick(s.renderer.Update)
	s.sim.OnTick(s.annotator.Update)
	s.sim.Start()

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Mode() domain.Mode {
	return s.mode
}

// Source describes where the graph was loaded from
func (s *Session) Source() string {
	return s.source
}

func (s *Session) LoadedAt() time.Time {
	return s.loadedAt
}

func (s *Session) Graph() *domain.Graph {
	return s.graph
}

func (s *Session) Scene() *scene.Scene {
	return s.renderer.Scene()
}

func (s *Session) Simulation() *layout.Simulation {
	return s.sim
}

// Active reports whether the simulation still needs steps
func (s *Session) Active() bool {
	return !s.closed && s.sim.Active()
}

// Step advances the simulation one tick; renderer and annotator are
// updated before it returns
func (s *Session) Step() bool {
	if s.closed {
		return false
	}
	return s.sim.Step()
}

// Settle steps until rest or maxSteps, returning the steps taken
func (s *Session) Settle(maxSteps int) int {
	if s.closed {
		return 0
	}
	return s.sim.Settle(maxSteps)
}

// Drag applies a pointer event. The pin is visible to the next Step.
func (s *Session) Drag(ev drag.Event) error {
	if s.closed {
		return ErrClosed
	}
	return s.drags.Handle(ev)
}

// Dragging reports whether any drag is in progress
func (s *Session) Dragging() bool {
	return s.drags.Active() > 0
}

// NodeAt returns the node under a viewport point
func (s *Session) NodeAt(x, y float64) (string, bool) {
	return s.Scene().HitTest(x, y)
}

// Reheat restarts the layout from full heat
func (s *Session) Reheat() {
	if s.closed {
		return
	}
	s.sim.Start()
}

// Close stops the simulation and clears the scene
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.drags.Release()
	s.sim.Stop()
	s.renderer.Scene().Clear()
	s.closed = true
	log.Printf("Closed session %s", s.id)
}

// heater applies the configured reheat target whatever the controller asks
type heater struct {
	sim    *layout.Simulation
	target float64
}

func (h *heater) Reheat(target float64) {
	if h.target > 0 {
		target = h.target
	}
	h.sim.Reheat(target)
}

func (h *heater) Cool() {
	h.sim.Cool()
}
