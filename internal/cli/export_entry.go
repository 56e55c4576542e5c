// internal/cli/export_entry.go
package qeval

import (
	"fmt"
	"path/filepath"

	"github.com/qeval/qeval/internal/appconfig"
	"github.com/qeval/qeval/internal/export"
	"github.com/qeval/qeval/internal/perfdata"
	"github.com/spf13/cobra"
)

func runExport(cmd *cobra.Command, cfg *appconfig.Config, opts exportOptions) error {
	if cfg == nil {
		return fmt.Errorf("configuration is not loaded")
	}
	switch opts.page {
	case "", "overview", "details", "comparison":
	default:
		return fmt.Errorf("unknown page %q (expected overview, details or comparison)", opts.page)
	}

	doc, err := perfdata.LoadDocument(cfg.ResultsDirectory(), cfg.PageTitle())
	if err != nil {
		return fmt.Errorf("loading results from %q: %w", cfg.ResultsDirectory(), err)
	}

	kbs := doc.SortedKBs()
	if opts.kb != "" {
		if _, ok := doc.PerformanceData[opts.kb]; !ok {
			return fmt.Errorf("no results for knowledge base %q", opts.kb)
		}
		kbs = []string{opts.kb}
	}

	written := 0
	for _, kb := range kbs {
		n, err := exportKB(doc, kb, opts)
		if err != nil {
			return err
		}
		written += n
	}

	cmd.Printf("Wrote %d TSV file(s) to %s\n", written, opts.outputDir)
	return nil
}

func exportKB(doc *perfdata.Document, kb string, opts exportOptions) (int, error) {
	written := 0
	writeTable := func(table export.Table, name string) error {
		path := filepath.Join(opts.outputDir, name)
		if err := export.WriteTSVFile(path, table); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written++
		return nil
	}

	if opts.page == "" || opts.page == "overview" {
		table, err := export.OverviewTable(doc, kb)
		if err != nil {
			return written, err
		}
		if err := writeTable(table, fmt.Sprintf("%s.overview.tsv", kb)); err != nil {
			return written, err
		}
	}

	if opts.page == "" || opts.page == "details" {
		engines := doc.SortedEngines(kb)
		if opts.engine != "" {
			if _, ok := doc.PerformanceData[kb][opts.engine]; !ok {
				return written, fmt.Errorf("no results for engine %q on %q", opts.engine, kb)
			}
			engines = []string{opts.engine}
		}
		for _, engine := range engines {
			table, err := export.DetailsTable(doc, kb, engine)
			if err != nil {
				return written, err
			}
			if err := writeTable(table, fmt.Sprintf("%s.%s.details.tsv", kb, engine)); err != nil {
				return written, err
			}
		}
	}

	if opts.page == "" || opts.page == "comparison" {
		table, err := export.ComparisonTable(doc, kb)
		if err != nil {
			return written, err
		}
		if err := writeTable(table, fmt.Sprintf("%s.comparison.tsv", kb)); err != nil {
			return written, err
		}
	}

	return written, nil
}
