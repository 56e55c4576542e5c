// internal/cli/export.go
package qeval

import (
	"github.com/spf13/cobra"
)

type exportOptions struct {
	outputDir string
	kb        string
	engine    string
	page      string
}

var exportOpts exportOptions

// exportCmd writes the dashboard tables as TSV files.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export dashboard tables as TSV files",
	Long: `Write the overview, details and comparison tables as tab-separated files,
one per knowledge base. Restrict the output with --kb, --engine and --page.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, getConfig(), exportOpts)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOpts.outputDir, "output", "exports", "Directory the TSV files are written to")
	exportCmd.Flags().StringVar(&exportOpts.kb, "kb", "", "Only export tables for this knowledge base")
	exportCmd.Flags().StringVar(&exportOpts.engine, "engine", "", "Only export details tables for this engine")
	exportCmd.Flags().StringVar(&exportOpts.page, "page", "", "Only export this table kind (overview, details or comparison)")

	rootCmd.AddCommand(exportCmd)
}
