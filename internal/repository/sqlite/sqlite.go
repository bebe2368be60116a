package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"

	"rdfview/internal/domain"
	"rdfview/internal/repository"

	_ "modernc.org/sqlite"
)

// IDLength is the number of BLAKE2b-256 bytes kept in a graph id
const IDLength = 16

// ErrNotFound is returned when no graph has the requested id
var ErrNotFound = repository.ErrNotFound

var _ repository.GraphStore = (*Store)(nil)

// Store implements repository.GraphStore using SQLite
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite graph store
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory database lives only as long as its connection
	db.SetMaxOpenConns(1)

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS graphs (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		node_count INTEGER NOT NULL DEFAULT 0,
		link_count INTEGER NOT NULL DEFAULT 0,
		data JSON NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_graphs_created ON graphs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// GraphID returns the content id of a serialized payload
func GraphID(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:IDLength])
}

// Save stores a graph payload and returns its id. Saving a payload that
// is already stored keeps the first row.
func (s *Store) Save(ctx context.Context, g *domain.Graph, mode domain.Mode) (string, error) {
	if g == nil {
		return "", fmt.Errorf("%w: graph is null", domain.ErrMalformedGraph)
	}

	row, err := newGraphRow(g, mode, s.now())
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO graphs (id, mode, node_count, link_count, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, row.insertArgs()...)
	if err != nil {
		return "", fmt.Errorf("failed to insert graph: %w", err)
	}

	return row.id, nil
}

// Get retrieves a stored graph payload by id
func (s *Store) Get(ctx context.Context, id string) (*domain.Graph, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM graphs WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query graph: %w", err)
	}

	g := domain.NewGraph()
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal graph data: %w", err)
	}
	return g, nil
}

// List returns summaries of all stored graphs, newest first
func (s *Store) List(ctx context.Context) ([]domain.GraphSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, mode, node_count, link_count, created_at
		FROM graphs
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query graphs: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.GraphSummary, 0)
	for rows.Next() {
		var r summaryRow
		if err := rows.Scan(r.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan graph: %w", err)
		}
		summaries = append(summaries, r.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating graphs: %w", err)
	}

	return summaries, nil
}

// Delete removes a stored graph
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM graphs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete graph: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete graph: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
