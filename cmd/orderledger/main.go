// Command orderledger converts a retail order-history CSV export into a
// consolidated transaction ledger CSV.
package main

import (
	"fmt"
	"os"

	"orderledger/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
