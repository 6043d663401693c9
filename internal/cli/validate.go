package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"orderledger/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Statically check a pipeline config and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipeline()
		if err != nil {
			return err
		}

		issues := config.Validate(cfg)
		for _, iss := range issues {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", iss.Severity, iss.Path, iss.Message)
		}
		if config.HasErrors(issues) {
			return fmt.Errorf("configuration is invalid")
		}
		fmt.Println("configuration is valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
