package source

import (
	"context"
	"fmt"
	"os"

	"rdfview/internal/codec"
	"rdfview/internal/domain"
)

// FileSource reads a graph payload (.json, .yaml, .yml) or a triples text
// file (.ttl, .nt, .txt) from disk
type FileSource struct {
	path string
	mode domain.Mode
}

// NewFileSource creates a file source. The mode is used when generating
// a graph from triples.
func NewFileSource(path string, mode domain.Mode) *FileSource {
	return &FileSource{path: path, mode: mode}
}

// Path returns the file path
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) String() string {
	return s.path
}

// Fetch reads and decodes the file
func (s *FileSource) Fetch(ctx context.Context) (*domain.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}

	format, err := codec.FormatFromPath(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDataSource, s.path, err)
	}
	importer, err := codec.NewImporter(format, s.mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}
	defer f.Close()

	g, err := importer.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDataSource, s.path, err)
	}
	return g, nil
}
