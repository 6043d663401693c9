package ledger

import (
	"bytes"
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"orderledger/internal/config"
)

// OutputColumns is the fixed output schema, in column order. No other fields
// survive to the ledger file.
var OutputColumns = []string{"Ship Date", "Order ID", "Transaction Amount", "Product Names", "Order URL"}

// Save serializes formatted transactions to the configured output path:
// UTF-8, header row, no BOM, no index column. The file is written in one
// shot from a memory buffer, so a failure leaves either a complete ledger or
// no file at all, never a partial one.
func Save(txs []Transaction, cfg config.Pipeline) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(OutputColumns); err != nil {
		return &SaveError{Path: cfg.Output.Path, Err: err}
	}
	for _, tx := range txs {
		rec := []string{
			tx.ShipDate.UTC().Format(cfg.Output.DateLayout),
			tx.OrderID,
			strconv.FormatFloat(tx.Amount, 'f', cfg.Output.AmountPrecision, 64),
			strings.Join(tx.ProductNames, "; "),
			tx.URL,
		}
		if err := w.Write(rec); err != nil {
			return &SaveError{Path: cfg.Output.Path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &SaveError{Path: cfg.Output.Path, Err: err}
	}

	if err := os.WriteFile(cfg.Output.Path, buf.Bytes(), 0o644); err != nil {
		return &SaveError{Path: cfg.Output.Path, Err: err}
	}
	return nil
}
