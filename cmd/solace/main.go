// Solace: personal state journal, coach, and actuation planner.
//
// Solace records mood check-ins and logged actions, derives a
// consecutive-day action streak, and turns the latest state into
// deterministic coaching suggestions and device actuation plans.
//
// Usage:
//
//	solace serve     # Start the HTTP API
//	solace mcp       # Start the MCP server (stdio transport)
//	solace version   # Print the version
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aurumsolace/solace/internal/actuation"
	"github.com/aurumsolace/solace/internal/httpapi"
	"github.com/aurumsolace/solace/internal/journal"
	solaceserver "github.com/aurumsolace/solace/internal/server"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir string
	addr    string
)

var rootCmd = &cobra.Command{
	Use:   "solace",
	Short: "Personal mood and habit coach with device actuation",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHTTP()
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server (stdio transport)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCP()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("solace v%s\n", solaceserver.Version)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.solace)")
	serveCmd.Flags().StringVar(&addr, "addr", ":8000", "HTTP listen address")

	rootCmd.AddCommand(serveCmd, mcpCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func storeConfig() journal.Config {
	cfg := journal.DefaultConfig()
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg
}

func runHTTP() error {
	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	store, err := journal.New(storeConfig())
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer func() { _ = store.Close() }()

	planner := actuation.NewPlanner(store)
	api := httpapi.New(store, planner, log)

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown on interrupt.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func runMCP() error {
	s, cleanup, err := solaceserver.New(storeConfig())
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer func() {
		if err := cleanup(); err != nil {
			// Stderr only — stdout belongs to the MCP stdio transport.
			fmt.Fprintf(os.Stderr, "WARNING: journal close: %v\n", err)
		}
	}()

	return server.ServeStdio(s)
}
