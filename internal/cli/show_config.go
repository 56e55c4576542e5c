// internal/cli/show_config.go
package qeval

import (
	"github.com/k0kubun/pp"
	"github.com/qeval/qeval/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var showConfigFull bool

// showConfigCmd prints the merged configuration so flag/config precedence
// can be checked at a glance.
var showConfigCmd = &cobra.Command{
	Use:   "show-config",
	Short: "Show config settings",
	Long:  `Show the merged configuration, ensuring the JSON config is loaded properly and overridden by flags accordingly.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		appconfig.ShowConfig(out, viper.ConfigFileUsed(), getConfig(), appconfig.Config{})

		if showConfigFull {
			_, _ = pp.Fprintln(out, getConfig())
		}
	},
}

func init() {
	showConfigCmd.Flags().BoolVar(&showConfigFull, "full", false, "dump the raw configuration struct")

	rootCmd.AddCommand(showConfigCmd)
}
