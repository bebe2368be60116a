package main

import (
	"github.com/spf13/cobra"

	"rdfview/internal/config"
)

var version = "0.1.0"

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "rdfview",
		Short:        "Interactive force-directed views of RDF-like triples",
		Version:      version,
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate("rdfview {{ .Version }}\n")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: search "+config.EnvConfigPath+" and standard locations)")

	cmd.AddCommand(
		newViewCmd(opts),
		newRenderCmd(opts),
		newServeCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// loadConfig reads the --config file, or searches the standard locations
func (o *rootOptions) loadConfig() (*config.Config, string, error) {
	if o.configPath != "" {
		return config.LoadFromPath(o.configPath)
	}
	return config.Load()
}
