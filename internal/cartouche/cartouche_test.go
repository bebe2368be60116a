package cartouche

import (
	"testing"

	"rdfview/internal/domain"
	"rdfview/internal/scene"
)

func parisGraph(t *testing.T, props []domain.Property) (*domain.Graph, *domain.Node) {
	t.Helper()
	g := domain.NewGraph()
	lit := domain.NewLiteralGroupNode("Paris_props", "Paris", props)
	lit.Place(100, 200)
	entity := domain.NewEntityNode("Paris")
	entity.Place(0, 0)
	g.AddNode(entity)
	g.AddNode(lit)
	if err := g.Resolve(); err != nil {
		t.Fatalf("failed to resolve graph: %v", err)
	}
	return g, lit
}

var parisProps = []domain.Property{
	{Property: "name", Value: "Paris"},
	{Property: "pop", Value: "2M"},
}

func TestAnnotatorCartouchesMode(t *testing.T) {
	g, lit := parisGraph(t, parisProps)
	s := scene.New(scene.DefaultViewport)
	a := New(domain.ModeCartouches)
	a.Build(g, s)

	lines := s.Annotations()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	want := []string{"name: Paris", "pop: 2M"}
	for i, l := range lines {
		if l.Text.Content != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], l.Text.Content)
		}
		if l.NodeID != "Paris_props" {
			t.Errorf("line %d: expected owner Paris_props, got %s", i, l.NodeID)
		}
		if l.Text.FontSize != 10 || l.Text.Fill != "#555" || l.Text.Anchor != scene.AnchorMiddle {
			t.Errorf("line %d: unexpected style %+v", i, l.Text)
		}
	}

	t.Run("initial stacking", func(t *testing.T) {
		for i, l := range lines {
			wantY := 200 + 20 + 15*float64(i)
			if l.Text.X != 100 || l.Text.Y != wantY {
				t.Errorf("line %d: expected (100,%f), got (%f,%f)", i, wantY, l.Text.X, l.Text.Y)
			}
		}
	})

	t.Run("lines follow node", func(t *testing.T) {
		lit.X, lit.Y = 500, 50
		a.Update()
		for i, l := range lines {
			wantY := 50 + 20 + 15*float64(i)
			if l.Text.X != 500 || l.Text.Y != wantY {
				t.Errorf("line %d: expected (500,%f), got (%f,%f)", i, wantY, l.Text.X, l.Text.Y)
			}
		}
	})

	if len(a.Lines()) != 2 {
		t.Errorf("expected Lines to return 2 annotations, got %d", len(a.Lines()))
	}
}

func TestAnnotatorGrapheMode(t *testing.T) {
	g, _ := parisGraph(t, parisProps)
	s := scene.New(scene.DefaultViewport)
	a := New(domain.ModeGraph)
	a.Build(g, s)
	a.Update()

	if a.Enabled() {
		t.Error("expected annotator disabled in graphe mode")
	}
	if len(s.Annotations()) != 0 {
		t.Errorf("expected no lines, got %d", len(s.Annotations()))
	}
}

func TestAnnotatorEmptyProperties(t *testing.T) {
	tests := []struct {
		name  string
		props []domain.Property
	}{
		{"nil", nil},
		{"empty", []domain.Property{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := parisGraph(t, tt.props)
			s := scene.New(scene.DefaultViewport)
			New(domain.ModeCartouches).Build(g, s)

			if len(s.Annotations()) != 0 {
				t.Errorf("expected no lines, got %d", len(s.Annotations()))
			}
		})
	}
}

func TestAnnotatorRebuild(t *testing.T) {
	g, _ := parisGraph(t, parisProps)
	s := scene.New(scene.DefaultViewport)
	a := New(domain.ModeCartouches)
	a.Build(g, s)
	a.Build(g, s)

	if len(s.Annotations()) != 2 {
		t.Errorf("expected rebuild to replace lines, got %d", len(s.Annotations()))
	}
}

func TestText(t *testing.T) {
	if got := Text(domain.Property{Property: "label", Value: "Tour Eiffel (fr)"}); got != "label: Tour Eiffel (fr)" {
		t.Errorf("unexpected text %q", got)
	}
}
