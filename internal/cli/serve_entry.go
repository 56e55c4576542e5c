// internal/cli/serve_entry.go
package qeval

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/qeval/qeval/internal/appconfig"
	"github.com/qeval/qeval/internal/logging"
	"github.com/qeval/qeval/internal/perfdata"
	"github.com/qeval/qeval/internal/webapp"
	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, cfg *appconfig.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}
	applyServeFlags(cmd, cfg)

	if err := logging.Init(cfg.LogFilePath()); err != nil {
		return fmt.Errorf("initializing log file: %w", err)
	}
	defer logging.Close()

	doc, err := perfdata.LoadDocument(cfg.ResultsDirectory(), cfg.PageTitle())
	if err != nil {
		return fmt.Errorf("loading results from %q: %w", cfg.ResultsDirectory(), err)
	}
	if len(doc.PerformanceData) == 0 {
		return fmt.Errorf("no *.results.yaml files found in %q", cfg.ResultsDirectory())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := webapp.New(*cfg, doc)
	cmd.Printf("Serving evaluation webapp on http://%s\n", cfg.ListenAddr())
	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("webapp server: %w", err)
	}
	return nil
}

func applyServeFlags(cmd *cobra.Command, cfg *appconfig.Config) {
	if cmd == nil {
		return
	}
	if port, err := cmd.Flags().GetInt("port"); err == nil && port > 0 {
		cfg.Port = port
	}
	if host, err := cmd.Flags().GetString("host"); err == nil && host != "" {
		cfg.Host = host
	}
	if title, err := cmd.Flags().GetString("title"); err == nil && title != "" {
		cfg.Title = title
	}
}
