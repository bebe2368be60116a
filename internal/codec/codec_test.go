package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"rdfview/internal/domain"
)

const jsonPayload = `{
  "nodes": [
    {"id": "Paris", "type": "entity"},
    {"id": "Paris_props", "type": "literal_group", "entity": "Paris",
     "properties": [{"property": "name", "value": "Paris"}, {"property": "pop", "value": "2M"}]},
    {"id": "France", "type": "entity"}
  ],
  "links": [{"source": "Paris", "target": "France", "label": "capitalOf", "type": "link"}],
  "node_props": {"Paris": [{"property": "name", "value": "Paris"}]}
}`

func TestJSONCodecParse(t *testing.T) {
	g, err := NewJSONCodec().Parse(strings.NewReader(jsonPayload))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(g.Nodes) != 3 || len(g.Links) != 1 {
		t.Fatalf("expected 3 nodes and 1 link, got %d and %d", len(g.Nodes), len(g.Links))
	}
	lit := g.Nodes[1]
	if !lit.IsLiteralGroup() || lit.Entity != "Paris" || len(lit.Properties) != 2 {
		t.Errorf("unexpected literal group %+v", *lit)
	}
	if g.Links[0].Label != "capitalOf" {
		t.Errorf("expected label capitalOf, got %q", g.Links[0].Label)
	}
	if len(g.NodeProps["Paris"]) != 1 {
		t.Errorf("expected node_props for Paris, got %v", g.NodeProps)
	}
	if err := g.Resolve(); err != nil {
		t.Errorf("expected payload to resolve: %v", err)
	}
}

func TestJSONCodecParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", `{"nodes": [`},
		{"not json", `<html>`},
		{"wrong shape", `{"nodes": "many"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewJSONCodec().Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestJSONCodecMissingCollections(t *testing.T) {
	g, err := NewJSONCodec().Parse(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Nodes == nil || g.Links == nil {
		t.Error("expected empty collections, got nil")
	}
}

func TestJSONCodecExport(t *testing.T) {
	g := domain.NewGraph()
	g.AddNode(domain.NewEntityNode("a"))
	g.AddNode(domain.NewEntityNode("b"))
	g.AddLink(domain.NewLink("a", "b", "knows"))

	var buf bytes.Buffer
	if err := NewJSONCodec().Export(g, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"id": "a"`, `"type": "entity"`, `"label": "knows"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %s:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{`"x"`, `"fx"`, `"node_props"`} {
		if strings.Contains(out, unwanted) {
			t.Errorf("expected output without %s:\n%s", unwanted, out)
		}
	}
}

func TestYAMLCodec(t *testing.T) {
	input := `
nodes:
  - id: Paris
    type: entity
  - id: Paris_props
    type: literal_group
    entity: Paris
    properties:
      - property: name
        value: Paris
links:
  - source: Paris
    target: Paris_props
    label: has
`
	g, err := NewYAMLCodec().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(g.Nodes) != 2 || len(g.Links) != 1 {
		t.Fatalf("expected 2 nodes and 1 link, got %d and %d", len(g.Nodes), len(g.Links))
	}
	if g.Nodes[1].Properties[0].Value != "Paris" {
		t.Errorf("unexpected properties %+v", g.Nodes[1].Properties)
	}

	var buf bytes.Buffer
	if err := NewYAMLCodec().Export(g, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.Contains(buf.String(), "type: literal_group") {
		t.Errorf("unexpected YAML output:\n%s", buf.String())
	}

	t.Run("empty document", func(t *testing.T) {
		g, err := NewYAMLCodec().Parse(strings.NewReader(""))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if !g.IsEmpty() {
			t.Error("expected empty graph")
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		if _, err := NewYAMLCodec().Parse(strings.NewReader("nodes: [unclosed")); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestTriplesCodec(t *testing.T) {
	input := ":Paris :name \"Paris\" .\n:Paris :in :France .\n"

	tests := []struct {
		mode      domain.Mode
		wantNodes int
	}{
		{domain.ModeGraph, 2},
		{domain.ModeCartouches, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			g, err := NewTriplesCodec(tt.mode).Parse(strings.NewReader(input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(g.Nodes) != tt.wantNodes {
				t.Errorf("expected %d nodes, got %d", tt.wantNodes, len(g.Nodes))
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"graph.json", "json", false},
		{"graph.YAML", "yaml", false},
		{"graph.yml", "yaml", false},
		{"data.ttl", "triples", false},
		{"data.nt", "triples", false},
		{"data.txt", "triples", false},
		{"graph.xml", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNewImporterExporter(t *testing.T) {
	for _, format := range []string{"json", "yaml", "triples"} {
		imp, err := NewImporter(format, domain.ModeGraph)
		if err != nil {
			t.Errorf("NewImporter(%q) failed: %v", format, err)
			continue
		}
		if imp.Format() != format {
			t.Errorf("expected format %q, got %q", format, imp.Format())
		}
	}

	if _, err := NewImporter("csv", domain.ModeGraph); err == nil {
		t.Error("expected error for unknown import format")
	}
	if _, err := NewExporter("triples"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Error("expected triples export to be unsupported")
	}
	if exp, err := NewExporter("yaml"); err != nil || exp.Format() != "yaml" {
		t.Errorf("expected yaml exporter, got %v, %v", exp, err)
	}
}
