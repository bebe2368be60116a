package layout

import (
	"fmt"
	"math"
	"testing"

	"rdfview/internal/domain"
)

// newTestGraph builds a resolved graph with n entity nodes and no links
func newTestGraph(t *testing.T, n int) *domain.Graph {
	t.Helper()
	g := domain.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(domain.NewEntityNode(fmt.Sprintf("n%d", i)))
	}
	if err := g.Resolve(); err != nil {
		t.Fatalf("failed to resolve test graph: %v", err)
	}
	return g
}

func distance(a, b *domain.Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestSimulationEmptyGraph(t *testing.T) {
	sim := NewForGraph(domain.NewGraph(), DefaultConfig())

	calls := 0
	sim.OnTick(func() { calls++ })
	sim.Start()

	if sim.Active() {
		t.Error("expected empty simulation to be inactive")
	}
	if sim.Step() {
		t.Error("expected Step to report inactive")
	}
	if n := sim.Settle(1000); n != 0 {
		t.Errorf("expected 0 steps, got %d", n)
	}
	if calls != 0 {
		t.Errorf("expected tick callback never invoked, got %d calls", calls)
	}
}

func TestSimulationInitialPlacement(t *testing.T) {
	t.Run("unplaced nodes get distinct positions", func(t *testing.T) {
		g := newTestGraph(t, 5)
		New(g.Nodes)

		seen := make(map[[2]float64]bool)
		for _, n := range g.Nodes {
			if !n.Placed() {
				t.Errorf("expected node %s to be placed", n.ID)
			}
			key := [2]float64{n.X, n.Y}
			if seen[key] {
				t.Errorf("duplicate initial position %v", key)
			}
			seen[key] = true
		}
	})

	t.Run("placed nodes keep their position", func(t *testing.T) {
		node := domain.NewEntityNode("a")
		node.Place(123, 456)
		New([]*domain.Node{node})

		if node.X != 123 || node.Y != 456 {
			t.Errorf("expected (123,456), got (%f,%f)", node.X, node.Y)
		}
	})

	t.Run("pins override placement", func(t *testing.T) {
		node := domain.NewEntityNode("a")
		node.Pin(7, 8)
		New([]*domain.Node{node})

		if node.X != 7 || node.Y != 8 {
			t.Errorf("expected (7,8), got (%f,%f)", node.X, node.Y)
		}
	})
}

func TestSimulationCoolsToRest(t *testing.T) {
	g := newTestGraph(t, 3)
	sim := NewForGraph(g, DefaultConfig())
	sim.Start()

	steps := sim.Settle(10000)
	if sim.Active() {
		t.Fatal("expected simulation to come to rest")
	}
	if steps < 295 || steps > 305 {
		t.Errorf("expected about 300 steps to rest, got %d", steps)
	}
	if sim.Alpha() >= DefaultAlphaMin {
		t.Errorf("expected alpha below %f, got %f", DefaultAlphaMin, sim.Alpha())
	}

	// Idle simulation does nothing further
	before := g.Nodes[0].X
	if sim.Step() {
		t.Error("expected Step on idle simulation to return false")
	}
	if g.Nodes[0].X != before {
		t.Error("expected idle simulation not to move nodes")
	}
}

func TestSimulationBoundedDisplacement(t *testing.T) {
	for _, n := range []int{1, 2, 10, 40} {
		t.Run(fmt.Sprintf("%d nodes", n), func(t *testing.T) {
			g := newTestGraph(t, n)
			cfg := DefaultConfig()
			sim := NewForGraph(g, cfg)
			sim.Start()
			sim.Settle(10000)

			if sim.Active() {
				t.Fatal("expected simulation to rest")
			}

			var cx, cy float64
			for _, node := range g.Nodes {
				if math.IsNaN(node.X) || math.IsInf(node.X, 0) || math.IsNaN(node.Y) || math.IsInf(node.Y, 0) {
					t.Fatalf("node %s diverged: (%f,%f)", node.ID, node.X, node.Y)
				}
				if math.Abs(node.X-cfg.Width/2) > 3000 || math.Abs(node.Y-cfg.Height/2) > 3000 {
					t.Errorf("node %s escaped the viewport basin: (%f,%f)", node.ID, node.X, node.Y)
				}
				cx += node.X
				cy += node.Y
			}

			cx /= float64(n)
			cy /= float64(n)
			if math.Abs(cx-cfg.Width/2) > 50 || math.Abs(cy-cfg.Height/2) > 50 {
				t.Errorf("expected centroid near (400,300), got (%f,%f)", cx, cy)
			}
		})
	}
}

func TestSimulationTickCallbacks(t *testing.T) {
	g := newTestGraph(t, 2)
	sim := New(g.Nodes)

	var order []string
	sim.OnTick(func() { order = append(order, "render") })
	sim.OnTick(func() { order = append(order, "annotate") })
	sim.Start()
	sim.Step()

	if len(order) != 2 || order[0] != "render" || order[1] != "annotate" {
		t.Errorf("expected callbacks in registration order, got %v", order)
	}
}

func TestSimulationPinnedNode(t *testing.T) {
	t.Run("pinned node does not move", func(t *testing.T) {
		g := newTestGraph(t, 4)
		sim := NewForGraph(g, DefaultConfig())
		pinned := g.Nodes[0]
		pinned.Pin(10, 20)
		sim.Start()

		for i := 0; i < 50; i++ {
			sim.Step()
			if pinned.X != 10 || pinned.Y != 20 {
				t.Fatalf("step %d: expected pinned node at (10,20), got (%f,%f)", i, pinned.X, pinned.Y)
			}
			if pinned.VX != 0 || pinned.VY != 0 {
				t.Fatalf("step %d: expected zero velocity, got (%f,%f)", i, pinned.VX, pinned.VY)
			}
		}
	})

	t.Run("pinned node still repels others", func(t *testing.T) {
		a := domain.NewEntityNode("a")
		b := domain.NewEntityNode("b")
		a.Place(0, 0)
		b.Place(20, 0)
		a.Pin(0, 0)

		sim := New([]*domain.Node{a, b})
		sim.AddForce("charge", NewManyBody(DefaultChargeStrength))
		sim.Start()
		for i := 0; i < 20; i++ {
			sim.Step()
		}

		if a.X != 0 || a.Y != 0 {
			t.Errorf("expected pinned node unmoved, got (%f,%f)", a.X, a.Y)
		}
		if b.X <= 20 {
			t.Errorf("expected free node pushed away, got x=%f", b.X)
		}
	})

	t.Run("single pinned axis", func(t *testing.T) {
		a := domain.NewEntityNode("a")
		b := domain.NewEntityNode("b")
		a.Place(0, 0)
		b.Place(5, 5)
		fx := 0.0
		a.FX = &fx

		sim := New([]*domain.Node{a, b})
		sim.AddForce("charge", NewManyBody(DefaultChargeStrength))
		sim.Start()
		sim.Step()

		if a.X != 0 {
			t.Errorf("expected pinned x to stay 0, got %f", a.X)
		}
		if a.Y == 0 {
			t.Error("expected free y axis to move")
		}
	})
}

func TestSimulationReheatAndCool(t *testing.T) {
	g := newTestGraph(t, 3)
	sim := NewForGraph(g, DefaultConfig())
	sim.Start()
	sim.Settle(10000)

	if sim.Active() {
		t.Fatal("expected simulation to rest before reheat")
	}

	sim.Reheat(0.3)
	if !sim.Active() {
		t.Fatal("expected reheat to resume stepping")
	}
	if sim.AlphaTarget() != 0.3 {
		t.Errorf("expected alpha target 0.3, got %f", sim.AlphaTarget())
	}

	for i := 0; i < 500; i++ {
		if !sim.Step() {
			t.Fatalf("expected reheated simulation to stay active, stopped at step %d", i)
		}
	}
	if math.Abs(sim.Alpha()-0.3) > 0.01 {
		t.Errorf("expected alpha to approach 0.3, got %f", sim.Alpha())
	}

	sim.Cool()
	if sim.AlphaTarget() != 0 {
		t.Errorf("expected alpha target 0, got %f", sim.AlphaTarget())
	}
	sim.Settle(10000)
	if sim.Active() {
		t.Error("expected cooled simulation to rest")
	}
}

func TestSimulationStop(t *testing.T) {
	g := newTestGraph(t, 2)
	sim := New(g.Nodes)
	sim.Start()
	sim.Stop()

	if sim.Active() {
		t.Error("expected stopped simulation to be inactive")
	}
	if sim.Alpha() != 1 {
		t.Errorf("expected stop to keep alpha, got %f", sim.Alpha())
	}
}

func TestSimulationForceRegistry(t *testing.T) {
	g := newTestGraph(t, 2)
	sim := NewForGraph(g, DefaultConfig())

	for _, name := range []string{"link", "charge", "center", "collision"} {
		if sim.Force(name) == nil {
			t.Errorf("expected force %q to be registered", name)
		}
	}

	replacement := NewCenter(0, 0)
	sim.AddForce("center", replacement)
	if sim.Force("center") != replacement {
		t.Error("expected AddForce to replace a force with the same name")
	}
	if len(sim.forces) != 4 {
		t.Errorf("expected 4 forces, got %d", len(sim.forces))
	}
	if sim.Force("gravity") != nil {
		t.Error("expected nil for unknown force")
	}
}
