// internal/cli/validate.go
package qeval

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/qeval/qeval/internal/perfdata"
	"github.com/spf13/cobra"
)

// validateCmd checks results files against the expected YAML structure.
var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate results files against the expected structure",
	Long: `Check that each results file carries the fields the dashboard needs:
per-query name, SPARQL text, runtime info, headers and result rows. With no
arguments, every *.results.yaml file in the results directory is checked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		cfg := getConfig()
		if cfg == nil {
			return fmt.Errorf("configuration is not loaded")
		}
		var err error
		files, err = resultsFilesIn(cfg.ResultsDirectory())
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("no *.results.yaml files found in %q", cfg.ResultsDirectory())
		}
	}

	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	failures := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		if err := perfdata.ValidateResults(data); err != nil {
			failures++
			cmd.Printf("%s %s\n", fail("FAIL"), file)
			for _, line := range strings.Split(err.Error(), "\n") {
				cmd.Printf("     %s\n", line)
			}
			continue
		}
		cmd.Printf("%s %s\n", pass("OK  "), file)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failures, len(files))
	}
	return nil
}

func resultsFilesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading results directory %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".results.yaml") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
