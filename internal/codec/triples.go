package codec

import (
	"fmt"
	"io"

	"rdfview/internal/domain"
	"rdfview/internal/triples"
)

// TriplesCodec imports line-oriented triples text by running the graph
// generator over it
type TriplesCodec struct {
	mode domain.Mode
}

// NewTriplesCodec creates a triples importer generating for the given mode
func NewTriplesCodec(mode domain.Mode) *TriplesCodec {
	return &TriplesCodec{mode: mode}
}

// Format returns the codec format identifier
func (c *TriplesCodec) Format() string {
	return "triples"
}

// Parse reads all triples and generates the graph payload
func (c *TriplesCodec) Parse(r io.Reader) (*domain.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read triples: %w", err)
	}

	return triples.GenerateText(string(data), c.mode), nil
}
