package service

import (
	"context"
	"fmt"
	"io"

	"rdfview/internal/codec"
	"rdfview/internal/domain"
	"rdfview/internal/repository"
	"rdfview/internal/triples"
)

// GraphService generates graph payloads from triples text and keeps the
// stored ones
type GraphService struct {
	store    repository.GraphStore
	eventBus *EventBus
}

// NewGraphService creates a new graph service
func NewGraphService(store repository.GraphStore, eventBus *EventBus) *GraphService {
	return &GraphService{
		store:    store,
		eventBus: eventBus,
	}
}

// Generate turns triples text into a graph payload
func (s *GraphService) Generate(ctx context.Context, text string, mode domain.Mode) (*domain.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g := triples.GenerateText(text, mode)
	if err := s.validateGraph(g); err != nil {
		return nil, err
	}

	s.publish(Event{
		Type:    EventGraphGenerated,
		Payload: graphPayload("", mode, g),
	})

	return g, nil
}

// Store generates a graph payload and saves it, returning its id
func (s *GraphService) Store(ctx context.Context, text string, mode domain.Mode) (string, error) {
	g := triples.GenerateText(text, mode)
	if err := s.validateGraph(g); err != nil {
		return "", err
	}

	id, err := s.store.Save(ctx, g, mode)
	if err != nil {
		return "", fmt.Errorf("failed to store graph: %w", err)
	}

	s.publish(Event{
		Type:    EventGraphStored,
		Payload: graphPayload(id, mode, g),
	})

	return id, nil
}

// Get returns a stored graph payload
func (s *GraphService) Get(ctx context.Context, id string) (*domain.Graph, error) {
	return s.store.Get(ctx, id)
}

// List returns summaries of all stored graphs
func (s *GraphService) List(ctx context.Context) ([]domain.GraphSummary, error) {
	return s.store.List(ctx)
}

// Delete removes a stored graph
func (s *GraphService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(Event{
		Type:    EventGraphDeleted,
		Payload: map[string]string{"graph_id": id},
	})

	return nil
}

// Export writes a stored graph in the given format
func (s *GraphService) Export(ctx context.Context, id, format string, w io.Writer) error {
	exporter, err := codec.NewExporter(format)
	if err != nil {
		return err
	}

	g, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}

	return exporter.Export(g, w)
}

// validateGraph checks that every link endpoint names a node
func (s *GraphService) validateGraph(g *domain.Graph) error {
	if err := g.Resolve(); err != nil {
		return fmt.Errorf("generated graph is invalid: %w", err)
	}
	return nil
}

func (s *GraphService) publish(event Event) {
	if s.eventBus != nil {
		s.eventBus.Publish(event)
	}
}

func graphPayload(id string, mode domain.Mode, g *domain.Graph) map[string]interface{} {
	payload := map[string]interface{}{
		"mode":  mode,
		"nodes": len(g.Nodes),
		"links": len(g.Links),
	}
	if id != "" {
		payload["graph_id"] = id
	}
	return payload
}
