package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rdfview/internal/domain"
	"rdfview/internal/source"
	"rdfview/internal/tui"
)

type viewOptions struct {
	mode      string
	generator string
	watch     bool
}

func newViewCmd(root *rootOptions) *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <file|url>",
		Short: "Open the interactive terminal viewer",
		Long: "Open a graph payload (.json, .yaml), a triples file (.ttl, .nt, .txt) or a\n" +
			"stored graph URL. Drag nodes with the mouse; press ? for keys.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "display mode: graphe or cartouches (default from config)")
	cmd.Flags().StringVar(&opts.generator, "generator", "", "post the triples file to this generate endpoint instead of parsing it locally")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload when the file changes")
	return cmd
}

func runView(ctx context.Context, root *rootOptions, opts *viewOptions, location string) error {
	cfg, _, err := root.loadConfig()
	if err != nil {
		return err
	}

	mode := cfg.Mode()
	if opts.mode != "" {
		mode = domain.ParseMode(opts.mode)
	}

	newSource := source.New
	if opts.generator != "" {
		endpoint := opts.generator
		newSource = func(location string, mode domain.Mode) source.Source {
			return &postedFile{path: location, endpoint: endpoint, mode: mode}
		}
	}

	return tui.Run(ctx, tui.RunOptions{
		Options: tui.Options{
			Location:      location,
			Mode:          mode,
			Session:       cfg.SessionOptions(),
			FrameInterval: cfg.Viewer.FrameInterval.Duration(),
			SnapshotPath:  cfg.Viewer.SnapshotPath,
			NewSource:     newSource,
		},
		LogFile:       cfg.Log.File,
		Watch:         opts.watch,
		WatchDebounce: cfg.Viewer.WatchDebounce.Duration(),
	})
}

// postedFile reads a triples file on every fetch and has the generator
// service turn it into a graph
type postedFile struct {
	path     string
	endpoint string
	mode     domain.Mode
}

func (f *postedFile) Fetch(ctx context.Context) (*domain.Graph, error) {
	text, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrDataSource, err)
	}
	return source.NewGeneratorSource(f.endpoint, string(text), f.mode).Fetch(ctx)
}

func (f *postedFile) String() string {
	return f.path + " via " + f.endpoint
}
