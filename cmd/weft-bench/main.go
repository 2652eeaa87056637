package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weft-bench",
		Short: "Benchmarks and demos for the weft UI runtime",
		Long: `weft-bench exercises the weft runtime end to end:

  • reactive  signal/effect propagation throughput
  • diff      keyed list reconciliation throughput
  • serve     a live counter demo over WebSocket`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		reactiveCmd(),
		diffCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("weft-bench %s (%s)\n", version, commit)
		},
	}
}
