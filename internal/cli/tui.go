// internal/cli/tui.go
package qeval

import (
	"fmt"

	"github.com/qeval/qeval/internal/perfdata"
	"github.com/qeval/qeval/internal/tui"
	"github.com/spf13/cobra"
)

var startTUI = tui.Start

// tuiCmd opens the interactive terminal browser over the loaded results.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the evaluation results in the terminal",
	Long: `Open an interactive terminal browser: pick a knowledge base from the list
and inspect each engine's aggregate metrics without starting the webapp.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfig()
		if cfg == nil {
			return fmt.Errorf("configuration is not loaded")
		}
		doc, err := perfdata.LoadDocument(cfg.ResultsDirectory(), cfg.PageTitle())
		if err != nil {
			return fmt.Errorf("loading results from %q: %w", cfg.ResultsDirectory(), err)
		}
		if len(doc.PerformanceData) == 0 {
			return fmt.Errorf("no *.results.yaml files found in %q", cfg.ResultsDirectory())
		}
		return startTUI(doc)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
