package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"rdfview/internal/config"
	"rdfview/internal/handler"
	"rdfview/internal/hub"
	"rdfview/internal/repository/sqlite"
	"rdfview/internal/service"
)

type serveOptions struct {
	addr   string
	dbPath string
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the generator HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := root.loadConfig()
			if err != nil {
				return err
			}
			if opts.addr != "" {
				cfg.Server.Addr = opts.addr
			}
			if opts.dbPath != "" {
				cfg.Database.Path = opts.dbPath
			}
			if path != "" {
				log.Printf("Config loaded: %s", path)
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address (default from config, :5000)")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "SQLite database path (default from config)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting rdfview server...")

	// Initialize SQLite store
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()
	log.Printf("Database opened: %s", cfg.Database.Path)

	eventBus := service.NewEventBus()
	defer eventBus.Close()

	// SSE hub lives until the server stops
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	sseHub := hub.New(cfg.Server.KeepAlive.Duration())
	go sseHub.Run(hubCtx)

	// Connect event bus to SSE hub
	eventChan := make(chan service.Event, 100)
	eventBus.Subscribe(eventChan)
	go func() {
		for event := range eventChan {
			sseHub.Broadcast(string(event.Type), event.Payload)
		}
		log.Println("Event forwarding stopped")
	}()

	graphSvc := service.NewGraphService(store, eventBus)
	graphHandler := handler.NewGraphHandler(graphSvc)

	mux := http.NewServeMux()
	graphHandler.Register(mux, sseHub)

	finalHandler := handler.Chain(mux,
		handler.Recover,
		handler.CORS,
		handler.Logger,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      finalHandler,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration(),
		WriteTimeout: cfg.Server.WriteTimeout.Duration(),
		IdleTimeout:  cfg.Server.IdleTimeout.Duration(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")

	// SSE streams end first so Shutdown does not wait on them
	stopHub()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
	return nil
}
