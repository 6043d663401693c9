package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"orderledger/internal/config"
	"orderledger/internal/ledger"
	"orderledger/internal/logging"
	"orderledger/internal/metrics"
)

var (
	inputPath  string
	outputPath string
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run the ledger pipeline over one export file",
	Long: `process loads the order-history export, cleans and groups its line items
into transactions, and writes the ledger CSV. The final transaction count and
any dropped-row count are reported to the log stream; the command exits
non-zero on any unrecovered failure and never leaves a partial output file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&inputPath, "input", "i", "", "order-history export to read")
	processCmd.Flags().StringVarP(&outputPath, "output", "o", "", "ledger file to write")
}

func runProcess(ctx context.Context) error {
	cfg, err := loadPipeline()
	if err != nil {
		return err
	}
	// Flags override the config file.
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}

	if issues := config.Validate(cfg); config.HasErrors(issues) {
		for _, iss := range issues {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		}
		return fmt.Errorf("invalid configuration")
	}

	log := logging.New(logging.Options{Verbose: verbose, Job: cfg.Job})

	defer func() {
		if ferr := metrics.Flush(); ferr != nil {
			log.Warn().Err(ferr).Msg("metrics flush failed")
		}
	}()

	start := time.Now()
	sum, err := ledger.NewProcessor(cfg, log).Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return err
	}

	log.Info().
		Int("loaded", sum.Loaded).
		Int("dropped", sum.Dropped).
		Int("transactions", sum.Transactions).
		Dur("elapsed", time.Since(start).Truncate(time.Millisecond)).
		Msg("run complete")
	return nil
}
