// internal/cli/report.go
package qeval

import (
	"github.com/spf13/cobra"
)

type reportOptions struct {
	outputPath string
	dataPath   string
}

var reportOpts reportOptions

// reportCmd turns the loaded results files into a standalone HTML report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a standalone HTML report from the results files",
	Long: `Read the <kb>.<engine>.results.yaml files, compute the aggregate and
per-query comparison tables, and emit one self-contained HTML file that can be
shared without running the webapp.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, getConfig(), reportOpts)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOpts.outputPath, "output", "reports/evaluation-report.html", "Destination HTML report path")
	reportCmd.Flags().StringVar(&reportOpts.dataPath, "data-output", "", "Optional path to write the aggregated data as JSON")

	rootCmd.AddCommand(reportCmd)
}
