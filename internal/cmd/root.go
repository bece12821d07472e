package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "orderbench",
	Short: "Benchmark harness for order-aggregate persistence strategies",
	Long: `orderbench persists Customer - Order - {Items, Payment, Shipping}
aggregates through six interchangeable strategies and compares them on
round trips, wall time and allocations.

Configuration comes from config.yaml or ORDERBENCH_-prefixed environment
variables; flags override both.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
