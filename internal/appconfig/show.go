package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintf(out, "  Listen Address:  %s\n", cfg.ListenAddr())
	fmt.Fprintf(out, "  Results Dir:     %s\n", cfg.ResultsDirectory())
	fmt.Fprintf(out, "  Title:           %s\n", cfg.PageTitle())
	fmt.Fprintf(out, "  Debug:           %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", cfg.LogFilePath())
	if cfg.ReportPath != "" {
		fmt.Fprintf(out, "  Report Path:     %s\n", cfg.ReportPath)
	}
	if cfg.ExportPath != "" {
		fmt.Fprintf(out, "  Export Path:     %s\n", cfg.ExportPath)
	}
}
