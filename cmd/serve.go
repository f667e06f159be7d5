package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mzeman/facegate/internal/config"
	"github.com/mzeman/facegate/internal/database/postgres"
	"github.com/mzeman/facegate/internal/detector"
	"github.com/mzeman/facegate/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Facegate API server.
The server exposes registration, recognition, metadata and
question-answering endpoints under /api/v1.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to")
}

// resolveServeHostPort resolves port and host: WEB_PORT/WEB_HOST from
// the config (already validated there), with explicit flags winning.
func resolveServeHostPort(cmd *cobra.Command, cfg *config.Config) (int, string) {
	port := cfg.Web.Port
	host := cfg.Web.Host

	if cmd.Flags().Changed("port") {
		port = mustGetInt(cmd, "port")
	}
	if cmd.Flags().Changed("host") {
		host = mustGetString(cmd, "host")
	}
	return port, host
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	fmt.Printf("Connecting to PostgreSQL database...\n")
	pool, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	personRepo := postgres.NewPersonRepository(pool)
	detectorClient := detector.NewClient(cfg.Detector.URL)

	qaService, providerName, err := newQAService(cmd.Context(), cfg, pool)
	if err != nil {
		return err
	}
	if providerName != "" {
		fmt.Printf("Using LLM provider: %s\n", providerName)
	} else {
		fmt.Printf("No LLM configured, Q&A runs on the local backend\n")
	}

	// Warm the retrieval index so queries work before the first
	// registration triggers a refresh.
	if result, err := qaService.Ingest(cmd.Context()); err != nil {
		fmt.Printf("Warning: initial index build failed: %v\n", err)
	} else {
		fmt.Printf("Q&A index ready with %d documents (%d embedded)\n", result.Documents, result.Indexed)
	}

	port, host := resolveServeHostPort(cmd, cfg)

	server := web.NewServer(cfg, port, host, web.Dependencies{
		Detector:     detectorClient,
		PersonReader: personRepo,
		PersonWriter: personRepo,
		QA:           qaService,
		ProviderName: providerName,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-sigChan:
		fmt.Println("\nShutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
