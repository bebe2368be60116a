package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rdfview/internal/watcher"
)

// RunOptions configures a viewer run
type RunOptions struct {
	Options

	// LogFile receives the standard logger while the viewer owns the
	// terminal; logging is discarded when empty
	LogFile string

	// Watch reloads the graph when the file at Location changes
	Watch         bool
	WatchDebounce time.Duration
}

// Run starts the viewer and blocks until the user quits or ctx is done
func Run(ctx context.Context, opts RunOptions) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "rdfview")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(NewModel(ctx, opts.Options),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if opts.Watch {
		if _, err := os.Stat(opts.Location); err != nil {
			return fmt.Errorf("watch %s: %w", opts.Location, err)
		}
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		w := watcher.New(opts.Location, func(string) {
			p.Send(ReloadMsg{})
		}).WithDebounce(opts.WatchDebounce)

		go func() {
			if err := w.Watch(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Watcher stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
