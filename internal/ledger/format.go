package ledger

import (
	"sort"
	"strings"

	"orderledger/internal/config"
)

// Format derives each transaction's order URL and sorts the table by ship
// date, most recent first. Ties keep their input order (stable sort). The
// input slice is not modified.
//
// The URL substitution runs unconditionally per row; there is no shared
// template state between rows.
func Format(txs []Transaction, cfg config.Pipeline) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)

	for i := range out {
		out[i].URL = strings.ReplaceAll(cfg.URLTemplate, config.OrderIDPlaceholder, out[i].OrderID)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ShipDate.After(out[j].ShipDate)
	})
	return out
}
