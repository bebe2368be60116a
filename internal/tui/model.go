package tui

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rdfview/internal/domain"
	"rdfview/internal/drag"
	"rdfview/internal/scene"
	"rdfview/internal/session"
	"rdfview/internal/source"
)

// headerHeight is the number of rows above the canvas
const headerHeight = 1

// DefaultFrameInterval is roughly one display frame
const DefaultFrameInterval = 16 * time.Millisecond

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#69b3a2"))
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
)

// Options configures the viewer
type Options struct {
	// Location is a file path or URL handed to NewSource
	Location string
	Mode     domain.Mode
	Session  session.Options

	FrameInterval time.Duration
	SnapshotPath  string

	// NewSource builds the source for a location and mode; source.New
	// when nil
	NewSource func(location string, mode domain.Mode) source.Source
}

// ReloadMsg asks the viewer to fetch the graph again
type ReloadMsg struct{}

type frameMsg time.Time

type loadedMsg struct {
	seq  int
	sess *session.Session
	err  error
}

type snapshotMsg struct {
	path string
	err  error
}

// Model is the bubbletea model of the graph viewer. The update loop owns
// the session: frames step it, mouse events drag its nodes, and loads
// swap it only once the replacement is fully built.
type Model struct {
	ctx     context.Context
	opts    Options
	mode    domain.Mode
	manager *session.Manager

	keys   keyMap
	help   help.Model
	canvas *Canvas
	width  int
	height int

	seq      int
	loading  bool
	dragging string
	status   string
	err      error
}

// NewModel creates the viewer model
func NewModel(ctx context.Context, opts Options) *Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}
	if opts.NewSource == nil {
		opts.NewSource = source.New
	}
	if opts.Mode == "" {
		opts.Mode = domain.ModeGraph
	}
	return &Model{
		ctx:     ctx,
		opts:    opts,
		mode:    opts.Mode,
		manager: session.NewManager(opts.Session),
		keys:    defaultKeyMap(),
		help:    help.New(),
		canvas:  NewCanvas(0, 0),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.frame())
}

// Session returns the current session, or nil before the first load
func (m *Model) Session() *session.Session {
	return m.manager.Current()
}

// Mode returns the display mode of the next load
func (m *Model) Mode() domain.Mode {
	return m.mode
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resizeCanvas()
		return m, nil

	case frameMsg:
		if m.manager.Current() != nil && m.manager.Current().Active() {
			m.manager.Step()
		}
		return m, m.frame()

	case loadedMsg:
		return m, m.loaded(msg)

	case ReloadMsg:
		return m, m.load()

	case snapshotMsg:
		if msg.err != nil {
			m.fail(fmt.Errorf("save snapshot: %w", msg.err))
		} else {
			m.status = "Saved " + msg.path
		}
		return m, nil

	case tea.MouseMsg:
		m.mouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.keyPress(msg)
	}

	return m, nil
}

func (m *Model) keyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.manager.Close()
		return tea.Quit

	case key.Matches(msg, m.keys.Mode):
		m.mode = m.mode.Toggle()
		return m.load()

	case key.Matches(msg, m.keys.Reload):
		return m.load()

	case key.Matches(msg, m.keys.Reheat):
		if sess := m.manager.Current(); sess != nil {
			sess.Reheat()
		}

	case key.Matches(msg, m.keys.Snapshot):
		return m.snapshot()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeCanvas()
	}
	return nil
}

// load fetches the graph off the update loop. Only the latest load is
// swapped in.
func (m *Model) load() tea.Cmd {
	m.seq++
	m.loading = true
	seq, mode, opts := m.seq, m.mode, m.manager.Options()
	src := m.opts.NewSource(m.opts.Location, mode)
	ctx := m.ctx

	return func() tea.Msg {
		sess, err := session.Load(ctx, src, mode, opts)
		return loadedMsg{seq: seq, sess: sess, err: err}
	}
}

func (m *Model) loaded(msg loadedMsg) tea.Cmd {
	if msg.seq != m.seq {
		if msg.sess != nil {
			msg.sess.Close()
		}
		return nil
	}
	m.loading = false

	if msg.err != nil {
		m.fail(msg.err)
		return nil
	}

	m.dragging = ""
	m.manager.Swap(msg.sess)
	m.err = nil
	m.status = fmt.Sprintf("%d nodes, %d links", len(msg.sess.Graph().Nodes), len(msg.sess.Graph().Links))
	return nil
}

func (m *Model) frame() tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) mouse(msg tea.MouseMsg) {
	sess := m.manager.Current()
	if sess == nil {
		return
	}
	x, y := m.projection().ToViewport(msg.X, msg.Y-headerHeight)

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		// A release lost outside the terminal must not leave a node pinned
		if m.dragging != "" {
			m.endDrag(x, y)
		}
		id, ok := sess.NodeAt(x, y)
		if !ok {
			return
		}
		if err := m.manager.Drag(drag.Event{NodeID: id, X: x, Y: y, Phase: drag.PhaseStart}); err != nil {
			m.fail(err)
			return
		}
		m.dragging = id

	case msg.Action == tea.MouseActionMotion && m.dragging != "":
		if err := m.manager.Drag(drag.Event{NodeID: m.dragging, X: x, Y: y, Phase: drag.PhaseMove}); err != nil {
			m.fail(err)
		}

	case msg.Action == tea.MouseActionRelease && m.dragging != "":
		m.endDrag(x, y)
	}
}

func (m *Model) endDrag(x, y float64) {
	if err := m.manager.Drag(drag.Event{NodeID: m.dragging, X: x, Y: y, Phase: drag.PhaseEnd}); err != nil {
		m.fail(err)
	}
	m.dragging = ""
}

// snapshot serialises the scene now and writes the file off the loop
func (m *Model) snapshot() tea.Cmd {
	sess := m.manager.Current()
	if sess == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := sess.Scene().WriteSVG(&buf); err != nil {
		m.fail(fmt.Errorf("render snapshot: %w", err))
		return nil
	}

	path := m.opts.SnapshotPath
	return func() tea.Msg {
		return snapshotMsg{path: path, err: os.WriteFile(path, buf.Bytes(), 0644)}
	}
}

func (m *Model) fail(err error) {
	m.err = err
	log.Printf("Viewer error: %v", err)
}

func (m *Model) resizeCanvas() {
	rows := m.height - headerHeight - lipgloss.Height(m.help.View(m.keys))
	m.canvas.Resize(m.width, rows)
}

func (m *Model) projection() Projection {
	cols, rows := m.canvas.Size()
	p := Projection{Viewport: scene.DefaultViewport, Cols: cols, Rows: rows}
	if sess := m.manager.Current(); sess != nil {
		p.Viewport = sess.Scene().Viewport
	}
	return p
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteByte('\n')

	if sess := m.manager.Current(); sess != nil {
		Rasterize(sess.Scene(), m.canvas)
	} else {
		m.canvas.Clear()
	}
	b.WriteString(m.canvas.Render())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) header() string {
	parts := []string{titleStyle.Render("rdfview"), m.opts.Location, string(m.mode)}

	if sess := m.manager.Current(); sess != nil {
		if sess.Active() {
			parts = append(parts, fmt.Sprintf("alpha %.3f", sess.Simulation().Alpha()))
		} else {
			parts = append(parts, "at rest")
		}
	}
	if m.loading {
		parts = append(parts, "loading")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}

	line := statusStyle.Render(strings.Join(parts, " · "))
	if m.err != nil {
		line += " " + errorStyle.Render(m.err.Error())
	}
	return line
}
