package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"orderledger/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		v, commit := version.Resolve()
		if commit != "" {
			fmt.Printf("orderledger %s (%s)\n", v, commit)
			return
		}
		fmt.Printf("orderledger %s\n", v)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
