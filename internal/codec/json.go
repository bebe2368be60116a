package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"rdfview/internal/domain"
)

// JSONCodec handles the {nodes, links, node_props} JSON payload
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a graph payload from JSON
func (c *JSONCodec) Parse(r io.Reader) (*domain.Graph, error) {
	g := domain.NewGraph()
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(g); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	normalize(g)

	return g, nil
}

// Export exports a graph payload to JSON
func (c *JSONCodec) Export(g *domain.Graph, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(g); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// normalize replaces absent collections with empty ones
func normalize(g *domain.Graph) {
	if g.Nodes == nil {
		g.Nodes = make([]*domain.Node, 0)
	}
	if g.Links == nil {
		g.Links = make([]*domain.Link, 0)
	}
}
