package domain

// NodeType represents the kind of graph node
type NodeType string

const (
	NodeTypeEntity       NodeType = "entity"        // Subject/object resource, drawn as a rectangle
	NodeTypeLiteralGroup NodeType = "literal_group" // Literal properties of one entity, drawn as a circle
)

// Property is a single literal attached to a literal group
type Property struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

// Node represents a graph node and its simulation state
type Node struct {
	ID         string     `json:"id" yaml:"id" validate:"required"`
	Type       NodeType   `json:"type" yaml:"type" validate:"required,oneof=entity literal_group"`
	Entity     string     `json:"entity,omitempty" yaml:"entity,omitempty"`
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`

	// Simulation-owned position and velocity
	X  float64 `json:"x,omitempty" yaml:"-"`
	Y  float64 `json:"y,omitempty" yaml:"-"`
	VX float64 `json:"-" yaml:"-"`
	VY float64 `json:"-" yaml:"-"`

	// Pinned position, set only by the drag controller and never decoded
	// from a payload
	FX *float64 `json:"-" yaml:"-"`
	FY *float64 `json:"-" yaml:"-"`

	placed bool
}

// NewEntityNode creates an entity node
func NewEntityNode(id string) *Node {
	return &Node{ID: id, Type: NodeTypeEntity}
}

// NewLiteralGroupNode creates a literal group node for the given entity
func NewLiteralGroupNode(id, entity string, props []Property) *Node {
	return &Node{
		ID:         id,
		Type:       NodeTypeLiteralGroup,
		Entity:     entity,
		Properties: props,
	}
}

// IsLiteralGroup reports whether the node aggregates literal properties
func (n *Node) IsLiteralGroup() bool {
	return n.Type == NodeTypeLiteralGroup
}

// Label returns the text displayed for the node
func (n *Node) Label() string {
	if n.IsLiteralGroup() {
		return n.Entity
	}
	return n.ID
}

// Placed reports whether the node has been given a position by the simulation
func (n *Node) Placed() bool {
	return n.placed
}

// Place sets the node position and marks it placed
func (n *Node) Place(x, y float64) {
	n.X = x
	n.Y = y
	n.placed = true
}

// Pin fixes the node at the given position
func (n *Node) Pin(x, y float64) {
	n.FX = &x
	n.FY = &y
}

// Unpin releases the node so forces move it again
func (n *Node) Unpin() {
	n.FX = nil
	n.FY = nil
}

// Pinned reports whether either axis is fixed
func (n *Node) Pinned() bool {
	return n.FX != nil || n.FY != nil
}
