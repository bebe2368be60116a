package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"rdfview/internal/domain"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// nullToTime converts sql.NullTime to time.Time, zero when NULL
func nullToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

// ============================================================================
// Row Types
// ============================================================================

// graphRow is a graph payload ready for insertion
type graphRow struct {
	id        string
	mode      domain.Mode
	nodeCount int
	linkCount int
	data      []byte
	createdAt time.Time
}

func newGraphRow(g *domain.Graph, mode domain.Mode, now time.Time) (*graphRow, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph: %w", err)
	}
	return &graphRow{
		id:        GraphID(data),
		mode:      mode,
		nodeCount: len(g.Nodes),
		linkCount: len(g.Links),
		data:      data,
		createdAt: now.UTC(),
	}, nil
}

func (r *graphRow) insertArgs() []interface{} {
	return []interface{}{r.id, string(r.mode), r.nodeCount, r.linkCount, string(r.data), r.createdAt}
}

// summaryRow represents a graphs row without its payload
type summaryRow struct {
	id        string
	mode      sql.NullString
	nodeCount int
	linkCount int
	createdAt sql.NullTime
}

func (r *summaryRow) scanArgs() []interface{} {
	return []interface{}{&r.id, &r.mode, &r.nodeCount, &r.linkCount, &r.createdAt}
}

func (r *summaryRow) toDomain() domain.GraphSummary {
	return domain.GraphSummary{
		ID:        r.id,
		Mode:      domain.ParseMode(nullToString(r.mode)),
		Nodes:     r.nodeCount,
		Links:     r.linkCount,
		CreatedAt: nullToTime(r.createdAt),
	}
}
