package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rdfview/internal/domain"
	"rdfview/internal/session"
	"rdfview/internal/source"
)

type renderOptions struct {
	mode  string
	out   string
	steps int
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <file|url>",
		Short: "Settle the layout and write the drawing as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), root, opts, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "display mode: graphe or cartouches (default from config)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().IntVar(&opts.steps, "steps", 0, "maximum simulation steps (default from config)")
	return cmd
}

func runRender(ctx context.Context, root *rootOptions, opts *renderOptions, location string, stdout io.Writer) error {
	cfg, _, err := root.loadConfig()
	if err != nil {
		return err
	}

	mode := cfg.Mode()
	if opts.mode != "" {
		mode = domain.ParseMode(opts.mode)
	}
	steps := cfg.Viewer.SettleSteps
	if opts.steps > 0 {
		steps = opts.steps
	}

	sess, err := session.Load(ctx, source.New(location, mode), mode, cfg.SessionOptions())
	if err != nil {
		return err
	}
	defer sess.Close()
	sess.Settle(steps)

	if opts.out == "-" {
		return sess.Scene().WriteSVG(stdout)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	if err := sess.Scene().WriteSVG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	return f.Close()
}
