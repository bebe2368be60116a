package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"rdfview/internal/domain"
)

// ErrUnsupportedFormat is returned for a format no codec handles
var ErrUnsupportedFormat = errors.New("unsupported format")

// Importer interface for importing graph payloads from various formats
type Importer interface {
	Parse(r io.Reader) (*domain.Graph, error)
	Format() string
}

// Exporter interface for exporting graph payloads to various formats
type Exporter interface {
	Export(g *domain.Graph, w io.Writer) error
	Format() string
}

// FormatFromPath guesses the payload format from a file extension
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".ttl", ".nt", ".txt":
		return "triples", nil
	default:
		return "", fmt.Errorf("%w: file extension %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// NewImporter returns the importer for a format. The mode only affects
// the triples format, which generates literal groups in cartouches mode.
func NewImporter(format string, mode domain.Mode) (Importer, error) {
	switch format {
	case "json":
		return NewJSONCodec(), nil
	case "yaml":
		return NewYAMLCodec(), nil
	case "triples":
		return NewTriplesCodec(mode), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// NewExporter returns the exporter for a format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return NewJSONCodec(), nil
	case "yaml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("%w: export %q", ErrUnsupportedFormat, format)
	}
}
