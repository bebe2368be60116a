package domain

// Link represents a labelled relation between two nodes
type Link struct {
	Source string `json:"source" yaml:"source" validate:"required"`
	Target string `json:"target" yaml:"target" validate:"required"`
	Label  string `json:"label" yaml:"label"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`

	// Resolved endpoints, set by Graph.Resolve
	SourceNode *Node `json:"-" yaml:"-"`
	TargetNode *Node `json:"-" yaml:"-"`
}

// NewLink creates a link between two node ids
func NewLink(source, target, label string) *Link {
	return &Link{
		Source: source,
		Target: target,
		Label:  label,
		Type:   "link",
	}
}

// Resolved reports whether both endpoints are bound to nodes
func (l *Link) Resolved() bool {
	return l.SourceNode != nil && l.TargetNode != nil
}

// Midpoint returns the point halfway between the resolved endpoints
func (l *Link) Midpoint() (float64, float64) {
	if !l.Resolved() {
		return 0, 0
	}
	return (l.SourceNode.X + l.TargetNode.X) / 2, (l.SourceNode.Y + l.TargetNode.Y) / 2
}
