// internal/cli/serve.go
package qeval

import (
	"github.com/spf13/cobra"
)

// serveCmd starts the evaluation webapp over the loaded results files.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evaluation webapp",
	Long: `Load every <kb>.<engine>.results.yaml file from the results directory,
aggregate the per-query runtimes, and serve the evaluation webapp with the
overview, details, comparison and execution-tree pages.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, getConfig())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to serve the webapp on (overrides config)")
	serveCmd.Flags().String("host", "", "interface to bind to (overrides config)")
	serveCmd.Flags().String("title", "", "page title shown by the webapp (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
