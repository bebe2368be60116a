package domain

import (
	"encoding/json"
	"testing"
)

func TestNewEntityNode(t *testing.T) {
	node := NewEntityNode("ex:Paris")

	if node.ID != "ex:Paris" {
		t.Errorf("expected ID 'ex:Paris', got %s", node.ID)
	}
	if node.Type != NodeTypeEntity {
		t.Errorf("expected type entity, got %s", node.Type)
	}
	if node.IsLiteralGroup() {
		t.Error("entity should not be a literal group")
	}
	if node.Label() != "ex:Paris" {
		t.Errorf("expected label to be the id, got %s", node.Label())
	}
}

func TestNewLiteralGroupNode(t *testing.T) {
	props := []Property{{Property: "name", Value: "Paris"}}
	node := NewLiteralGroupNode("ex:Paris_props", "ex:Paris", props)

	if !node.IsLiteralGroup() {
		t.Error("expected literal group")
	}
	if node.Label() != "ex:Paris" {
		t.Errorf("expected label to be the entity, got %s", node.Label())
	}
	if len(node.Properties) != 1 {
		t.Errorf("expected 1 property, got %d", len(node.Properties))
	}
}

func TestNodePlacement(t *testing.T) {
	t.Run("new node is not placed", func(t *testing.T) {
		node := NewEntityNode("a")
		if node.Placed() {
			t.Error("expected node to be unplaced before simulation")
		}
	})

	t.Run("place marks node placed", func(t *testing.T) {
		node := NewEntityNode("a")
		node.Place(10, 20)

		if !node.Placed() {
			t.Error("expected node to be placed")
		}
		if node.X != 10 || node.Y != 20 {
			t.Errorf("expected (10,20), got (%f,%f)", node.X, node.Y)
		}
	})
}

func TestNodePinning(t *testing.T) {
	t.Run("pin sets both axes", func(t *testing.T) {
		node := NewEntityNode("a")
		node.Pin(100.5, 200.5)

		if !node.Pinned() {
			t.Fatal("expected node to be pinned")
		}
		if *node.FX != 100.5 {
			t.Errorf("expected FX=100.5, got %f", *node.FX)
		}
		if *node.FY != 200.5 {
			t.Errorf("expected FY=200.5, got %f", *node.FY)
		}
	})

	t.Run("unpin clears both axes", func(t *testing.T) {
		node := NewEntityNode("a")
		node.Pin(1, 2)
		node.Unpin()

		if node.Pinned() {
			t.Error("expected node to be unpinned")
		}
		if node.FX != nil || node.FY != nil {
			t.Error("expected FX and FY to be nil")
		}
	})

	t.Run("pins are independent copies", func(t *testing.T) {
		node := NewEntityNode("a")
		x, y := 5.0, 6.0
		node.Pin(x, y)
		x = 50

		if *node.FX != 5 {
			t.Errorf("expected FX to keep 5, got %f", *node.FX)
		}
	})
}

func TestNodeDecodeIgnoresPins(t *testing.T) {
	var node Node
	data := `{"id":"a","type":"entity","fx":10,"fy":20}`
	if err := json.Unmarshal([]byte(data), &node); err != nil {
		t.Fatalf("failed to decode node: %v", err)
	}
	if node.Pinned() || node.FX != nil || node.FY != nil {
		t.Error("expected payload pins to be ignored")
	}

	node.Pin(1, 2)
	out, err := json.Marshal(&node)
	if err != nil {
		t.Fatalf("failed to encode node: %v", err)
	}
	if string(out) != `{"id":"a","type":"entity"}` {
		t.Errorf("expected pins left out of the payload, got %s", out)
	}
}

func TestLinkMidpoint(t *testing.T) {
	t.Run("unresolved link", func(t *testing.T) {
		link := NewLink("a", "b", "knows")
		x, y := link.Midpoint()
		if x != 0 || y != 0 {
			t.Errorf("expected (0,0) for unresolved link, got (%f,%f)", x, y)
		}
	})

	t.Run("resolved link", func(t *testing.T) {
		link := NewLink("a", "b", "knows")
		link.SourceNode = &Node{ID: "a", X: 10, Y: 10}
		link.TargetNode = &Node{ID: "b", X: 30, Y: 10}

		x, y := link.Midpoint()
		if x != 20 || y != 10 {
			t.Errorf("expected (20,10), got (%f,%f)", x, y)
		}
	})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"graphe", ModeGraph},
		{"cartouches", ModeCartouches},
		{"invalid", ModeGraph}, // Default
		{"", ModeGraph},        // Default
	}

	for _, tt := range tests {
		if got := ParseMode(tt.input); got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestModeToggle(t *testing.T) {
	if ModeGraph.Toggle() != ModeCartouches {
		t.Error("expected graphe to toggle to cartouches")
	}
	if ModeCartouches.Toggle() != ModeGraph {
		t.Error("expected cartouches to toggle to graphe")
	}
	if ModeGraph.ShowsCartouches() {
		t.Error("graphe mode should not show cartouches")
	}
	if !ModeCartouches.ShowsCartouches() {
		t.Error("cartouches mode should show cartouches")
	}
}
