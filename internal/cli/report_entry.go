// internal/cli/report_entry.go
package qeval

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qeval/qeval/internal/appconfig"
	"github.com/qeval/qeval/internal/perfdata"
	"github.com/qeval/qeval/internal/report"
	"github.com/spf13/cobra"
)

func runReport(cmd *cobra.Command, cfg *appconfig.Config, opts reportOptions) error {
	if cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}

	doc, err := perfdata.LoadDocument(cfg.ResultsDirectory(), cfg.PageTitle())
	if err != nil {
		return fmt.Errorf("loading results from %q: %w", cfg.ResultsDirectory(), err)
	}

	if opts.dataPath != "" {
		if err := writeDataJSON(opts.dataPath, doc); err != nil {
			return err
		}
		cmd.Printf("Aggregated data written to %s\n", opts.dataPath)
	}

	html, err := report.Generate(doc)
	if err != nil {
		return fmt.Errorf("failed generating HTML report: %w", err)
	}

	if opts.outputPath == "" {
		opts.outputPath = "reports/evaluation-report.html"
	}
	if dir := filepath.Dir(opts.outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", opts.outputPath, err)
		}
	}
	if err := os.WriteFile(opts.outputPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("unable to write HTML report %s: %w", opts.outputPath, err)
	}

	cmd.Printf("Report written to %s\n", opts.outputPath)
	return nil
}

func writeDataJSON(path string, doc *perfdata.Document) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("unable to create directory for %s: %w", path, err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal aggregated data: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write aggregated data %s: %w", path, err)
	}
	return nil
}
