package codec

import (
	"errors"
	"fmt"
	"io"

	"rdfview/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles the graph payload written as YAML
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse imports a graph payload from YAML. An empty document is an empty graph.
func (c *YAMLCodec) Parse(r io.Reader) (*domain.Graph, error) {
	g := domain.NewGraph()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(g); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	normalize(g)

	return g, nil
}

// Export exports a graph payload to YAML
func (c *YAMLCodec) Export(g *domain.Graph, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(g); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
