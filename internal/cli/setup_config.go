// internal/cli/setup_config.go
package qeval

import (
	"fmt"

	"github.com/qeval/qeval/internal/qleverfile"
	"github.com/spf13/cobra"
)

type setupConfigOptions struct {
	port    int
	timeout string
	system  string
}

var setupConfigOpts setupConfigOptions

// setupConfigCmd writes a pre-configured Qleverfile into the current directory.
var setupConfigCmd = &cobra.Command{
	Use:   "setup-config <name>",
	Short: "Get a pre-configured Qleverfile",
	Long: `Write a pre-configured Qleverfile for the given dataset into the current
directory, with a fresh random ACCESS_TOKEN. See 'qeval list-configs' for the
available names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := qleverfile.WriteConfig(".", args[0], qleverfile.Overrides{
			Port:    setupConfigOpts.port,
			Timeout: setupConfigOpts.timeout,
			System:  setupConfigOpts.system,
		})
		if err != nil {
			return err
		}
		cmd.Printf("Created %s for config %q\n", path, args[0])
		return nil
	},
}

func init() {
	setupConfigCmd.Flags().IntVar(&setupConfigOpts.port, "port", 0, "Override the default PORT value in the [server] section")
	setupConfigCmd.Flags().StringVar(&setupConfigOpts.timeout, "timeout", "", "Override the default TIMEOUT value in the [server] section")
	setupConfigCmd.Flags().StringVar(&setupConfigOpts.system, "system", "", "Override the default SYSTEM value in the [runtime] section (e.g. docker, podman, native)")

	rootCmd.AddCommand(setupConfigCmd)
}

// listConfigsCmd prints the names of the shipped Qleverfile configs.
var listConfigsCmd = &cobra.Command{
	Use:   "list-configs",
	Short: "List the available pre-configured Qleverfiles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range qleverfile.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listConfigsCmd)
}
