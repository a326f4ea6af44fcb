package cmd

import (
	"fmt"
	"os"

	"seismon/cmd/commands/dashboard"
	"seismon/cmd/commands/simulate"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "seismon",
		Short: "A simulated seismic-activity monitoring dashboard",
		Long: `seismon synthesizes a noisy seismic signal, renders it as a rolling
time series, derives summary metrics, and raises threshold-based
alerts. There is no real sensor behind it; the generator and the
analysis pipeline are the point.

Quick start:
  seismon dashboard                # Live terminal dashboard
  seismon simulate --ticks 1000    # Headless run with a summary table
  seismon simulate -o json         # Headless run for scripting`,
	}

	cmd.AddCommand(dashboard.NewCommand())
	cmd.AddCommand(simulate.NewCommand())
	cmd.AddCommand(versionCommand())

	return cmd
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seismon version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "seismon", version)
		},
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
