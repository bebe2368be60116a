package repository

import (
	"context"
	"errors"

	"rdfview/internal/domain"
)

// ErrNotFound is returned when no stored graph has the requested id
var ErrNotFound = errors.New("graph not found")

// GraphStore defines the interface for generated graph persistence
type GraphStore interface {
	// Save stores a graph payload and returns its content id.
	// Saving the same payload twice returns the same id.
	Save(ctx context.Context, g *domain.Graph, mode domain.Mode) (string, error)

	// Read operations
	Get(ctx context.Context, id string) (*domain.Graph, error)
	List(ctx context.Context) ([]domain.GraphSummary, error)

	// Write operations
	Delete(ctx context.Context, id string) error

	// Close releases resources
	Close() error
}
