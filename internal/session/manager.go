package session

import (
	"context"
	"errors"
	"log"

	"rdfview/internal/domain"
	"rdfview/internal/drag"
	"rdfview/internal/source"
)

var (
	ErrNoSession = errors.New("no graph loaded")
	ErrClosed    = errors.New("session closed")
)

// Manager holds the current session and replaces it on each load. The
// previous session is torn down only once its replacement is fully built.
type Manager struct {
	opts    Options
	current *Session
}

// NewManager creates a manager building sessions with opts
func NewManager(opts Options) *Manager {
	return &Manager{opts: opts}
}

// Options returns the engine options used for new sessions
func (m *Manager) Options() Options {
	return m.opts
}

// Current returns the active session, or nil
func (m *Manager) Current() *Session {
	return m.current
}

// Load fetches and builds a new session and makes it current. On error
// the current session is left untouched.
func (m *Manager) Load(ctx context.Context, src source.Source, mode domain.Mode) (*Session, error) {
	s, err := Load(ctx, src, mode, m.opts)
	if err != nil {
		return nil, err
	}
	m.Swap(s)
	return s, nil
}

// Swap makes s current and closes the previous session
func (m *Manager) Swap(s *Session) {
	prev := m.current
	m.current = s
	if prev != nil && prev != s {
		prev.Close()
	}
	log.Printf("Loaded graph from %s: %d nodes, %d links, mode %s (session %s)",
		s.Source(), len(s.Graph().Nodes), len(s.Graph().Links), s.Mode(), s.ID())
}

// Step advances the current session
func (m *Manager) Step() bool {
	if m.current == nil {
		return false
	}
	return m.current.Step()
}

// Drag forwards a pointer event to the current session
func (m *Manager) Drag(ev drag.Event) error {
	if m.current == nil {
		return ErrNoSession
	}
	return m.current.Drag(ev)
}

// Close tears down the current session
func (m *Manager) Close() {
	if m.current != nil {
		m.current.Close()
		m.current = nil
	}
}
