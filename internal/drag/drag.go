// Package drag implements the pointer drag state machine: a dragged node
// is pinned under the pointer while the layout is kept warm around it.
package drag

import (
	"errors"
	"fmt"

	"rdfview/internal/domain"
)

// ReheatTarget is the alpha target held while any drag is active
const ReheatTarget = 0.3

var (
	ErrUnknownNode = errors.New("unknown node")
	ErrNotDragging = errors.New("node is not being dragged")
)

// Phase is the stage of a drag gesture
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Event is a pointer event on a node, in viewport coordinates
type Event struct {
	NodeID string
	X, Y   float64
	Phase  Phase
}

// Heater controls the shared alpha target of the simulation
type Heater interface {
	Reheat(target float64)
	Cool()
}

// NodeLookup finds nodes by id
type NodeLookup interface {
	Node(id string) *domain.Node
}

// Controller tracks which nodes are being dragged. Several nodes may be
// dragged at once; the simulation is cooled only when the last one is
// released.
type Controller struct {
	nodes  NodeLookup
	heater Heater
	active map[string]struct{}
}

// NewController creates a drag controller over the nodes of a graph
func NewController(nodes NodeLookup, heater Heater) *Controller {
	return &Controller{
		nodes:  nodes,
		heater: heater,
		active: make(map[string]struct{}),
	}
}

// Handle applies one drag event
func (c *Controller) Handle(ev Event) error {
	node := c.nodes.Node(ev.NodeID)
	if node == nil {
		return fmt.Errorf("%w: %q", ErrUnknownNode, ev.NodeID)
	}

	switch ev.Phase {
	case PhaseStart:
		c.start(node)
	case PhaseMove:
		if !c.Dragging(node.ID) {
			return fmt.Errorf("move %q: %w", node.ID, ErrNotDragging)
		}
		node.Pin(ev.X, ev.Y)
	case PhaseEnd:
		if !c.Dragging(node.ID) {
			return fmt.Errorf("end %q: %w", node.ID, ErrNotDragging)
		}
		c.end(node)
	default:
		return fmt.Errorf("invalid drag phase %s", ev.Phase)
	}
	return nil
}

func (c *Controller) start(node *domain.Node) {
	if len(c.active) == 0 {
		c.heater.Reheat(ReheatTarget)
	}
	c.active[node.ID] = struct{}{}
	node.Pin(node.X, node.Y)
}

func (c *Controller) end(node *domain.Node) {
	node.Unpin()
	delete(c.active, node.ID)
	if len(c.active) == 0 {
		c.heater.Cool()
	}
}

// Dragging reports whether the node is currently dragged
func (c *Controller) Dragging(id string) bool {
	_, ok := c.active[id]
	return ok
}

// Active returns the number of drags in progress
func (c *Controller) Active() int {
	return len(c.active)
}

// Release ends every drag in progress
func (c *Controller) Release() {
	if len(c.active) == 0 {
		return
	}
	for id := range c.active {
		if node := c.nodes.Node(id); node != nil {
			node.Unpin()
		}
	}
	c.active = make(map[string]struct{})
	c.heater.Cool()
}
