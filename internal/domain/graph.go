package domain

import "fmt"

// Graph is the node/link payload rendered by the layout engine
type Graph struct {
	Nodes     []*Node               `json:"nodes" yaml:"nodes"`
	Links     []*Link               `json:"links" yaml:"links"`
	NodeProps map[string][]Property `json:"node_props,omitempty" yaml:"node_props,omitempty"`

	index map[string]*Node
}

// NewGraph creates an empty graph with initialized collections
func NewGraph() *Graph {
	return &Graph{
		Nodes: make([]*Node, 0),
		Links: make([]*Link, 0),
	}
}

// AddNode appends a node
func (g *Graph) AddNode(node *Node) {
	g.Nodes = append(g.Nodes, node)
	if g.index != nil {
		g.index[node.ID] = node
	}
}

// AddLink appends a link
func (g *Graph) AddLink(link *Link) {
	g.Links = append(g.Links, link)
}

// Node returns the node with the given id, or nil if not found
func (g *Graph) Node(id string) *Node {
	if g.index != nil {
		return g.index[id]
	}
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// IsEmpty reports whether the graph has no nodes
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// Resolve validates the graph and binds every link to its endpoint nodes.
// Nothing is bound unless the whole graph is valid.
func (g *Graph) Resolve() error {
	index := make(map[string]*Node, len(g.Nodes))
	for i, node := range g.Nodes {
		if node == nil {
			return fmt.Errorf("%w: node %d is null", ErrMalformedGraph, i)
		}
		if err := validateStruct(node); err != nil {
			return fmt.Errorf("%w: node %d: %v", ErrMalformedGraph, i, err)
		}
		if _, exists := index[node.ID]; exists {
			return fmt.Errorf("%w: duplicate node id %q", ErrMalformedGraph, node.ID)
		}
		index[node.ID] = node
	}

	for i, link := range g.Links {
		if link == nil {
			return fmt.Errorf("%w: link %d is null", ErrMalformedGraph, i)
		}
		if err := validateStruct(link); err != nil {
			return fmt.Errorf("%w: link %d: %v", ErrMalformedGraph, i, err)
		}
		if index[link.Source] == nil {
			return fmt.Errorf("%w: link %d source %q not found", ErrMalformedGraph, i, link.Source)
		}
		if index[link.Target] == nil {
			return fmt.Errorf("%w: link %d target %q not found", ErrMalformedGraph, i, link.Target)
		}
	}

	for _, link := range g.Links {
		link.SourceNode = index[link.Source]
		link.TargetNode = index[link.Target]
	}
	g.index = index

	return nil
}

// Degree returns the number of link endpoints per node id
func (g *Graph) Degree() map[string]int {
	degree := make(map[string]int, len(g.Nodes))
	for _, link := range g.Links {
		degree[link.Source]++
		degree[link.Target]++
	}
	return degree
}
