// Package source fetches graph payloads for the viewer: from the generator
// service over HTTP or from local files.
package source

import (
	"context"
	"strings"

	"rdfview/internal/domain"
)

// Source produces a graph payload. Every failure wraps domain.ErrDataSource.
type Source interface {
	Fetch(ctx context.Context) (*domain.Graph, error)
	String() string
}

// New picks a source for a location: http(s) URLs are fetched as stored
// graphs, anything else is read as a local file
func New(location string, mode domain.Mode) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location)
	}
	return NewFileSource(location, mode)
}
