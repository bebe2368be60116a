// Package triples turns line-oriented subject/predicate/object text into
// the node/link graph payload.
package triples

import (
	"regexp"
	"strings"

	"rdfview/internal/domain"
)

// PropsSuffix is appended to an entity id to name its literal group
const PropsSuffix = "_props"

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Triple is one subject/predicate/object statement
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// Parse reads one triple per line. Lines without a '.' are skipped; the
// text before the first '.' is split on whitespace into subject,
// predicate and object, the object keeping any remaining words.
func Parse(text string) []Triple {
	var out []Triple
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ".") {
			continue
		}

		head, _, _ := strings.Cut(line, ".")
		parts := strings.Fields(head)
		if len(parts) < 3 {
			continue
		}

		out = append(out, Triple{
			Subject:   parts[0],
			Predicate: parts[1],
			Object:    strings.Join(parts[2:], " "),
		})
	}
	return out
}

// IsLiteral reports whether an object is a literal value rather than a
// resource: quoted strings, and numbers or dates made of digits and '-'
func IsLiteral(object string) bool {
	if strings.HasPrefix(object, `"`) {
		return true
	}
	return digitsOnly.MatchString(strings.ReplaceAll(object, "-", ""))
}

// LiteralValue strips quotes and rewrites @fr/@en language tags for display
func LiteralValue(object string) string {
	v := strings.ReplaceAll(object, `"`, "")
	v = strings.ReplaceAll(v, "@fr", " (fr)")
	v = strings.ReplaceAll(v, "@en", " (en)")
	return v
}

// Generate builds the graph payload. Resource objects become entity
// nodes linked from their subject; literal objects become properties of
// their subject. In cartouches mode every subject with properties also
// gets a literal group node. Nodes keep the order of first appearance.
func Generate(triples []Triple, mode domain.Mode) *domain.Graph {
	g := domain.NewGraph()
	g.NodeProps = make(map[string][]domain.Property)

	seen := make(map[string]bool)
	addEntity := func(id string) {
		if !seen[id] {
			seen[id] = true
			g.AddNode(domain.NewEntityNode(id))
		}
	}

	var propOrder []string
	for _, t := range triples {
		addEntity(t.Subject)

		if !IsLiteral(t.Object) {
			addEntity(t.Object)
			g.AddLink(domain.NewLink(t.Subject, t.Object, t.Predicate))
			continue
		}

		if _, ok := g.NodeProps[t.Subject]; !ok {
			propOrder = append(propOrder, t.Subject)
		}
		g.NodeProps[t.Subject] = append(g.NodeProps[t.Subject], domain.Property{
			Property: t.Predicate,
			Value:    LiteralValue(t.Object),
		})
	}

	if mode.ShowsCartouches() {
		for _, subject := range propOrder {
			g.AddNode(domain.NewLiteralGroupNode(subject+PropsSuffix, subject, g.NodeProps[subject]))
		}
	}

	return g
}

// GenerateText parses and generates in one call
func GenerateText(text string, mode domain.Mode) *domain.Graph {
	return Generate(Parse(text), mode)
}
