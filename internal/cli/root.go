// Package cli wires the orderledger commands. The pipeline itself lives in
// internal/ledger; this package only handles flags, config resolution, and
// exit codes.
package cli

import (
	"github.com/spf13/cobra"

	"orderledger/internal/config"
)

var (
	cfgPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "orderledger",
	Short: "Convert a retail order-history export into a transaction ledger",
	Long: `orderledger reads an order-history CSV export and writes a consolidated
transaction ledger: one row per distinct charge, with line items that share
an order ID and shipment subtotal folded together, a computed subtotal+tax
amount, and a deep link to each order's detail page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the command error, if any.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "pipeline config file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
}

// loadPipeline resolves the effective pipeline config: file when --config is
// given, defaults otherwise.
func loadPipeline() (config.Pipeline, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(cfgPath)
}
