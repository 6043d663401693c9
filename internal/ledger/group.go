package ledger

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Group folds cleaned rows into one Transaction per distinct
// (order ID, shipment subtotal) pair. The same subtotal can appear on
// several product lines of one shipment billed together; those collapse into
// a single charge. Reducers per column: ship date and amount keep the first
// occurrence in input order, product names concatenate in first-seen order.
//
// All rows in one group are assumed to carry the same subtotal+tax; Group
// does not reconcile divergent amounts, it keeps the first.
func Group(rows []Row) []Transaction {
	byKey := make(map[uint64]*Transaction, len(rows))
	order := make([]uint64, 0, len(rows))

	for _, r := range rows {
		k := groupKey(r.OrderID, r.Subtotal)
		if tx, ok := byKey[k]; ok {
			tx.ProductNames = append(tx.ProductNames, r.ProductName)
			continue
		}
		byKey[k] = &Transaction{
			OrderID:      r.OrderID,
			Subtotal:     r.Subtotal,
			ShipDate:     r.ShipDate,
			ProductNames: []string{r.ProductName},
			Amount:       r.Subtotal + r.SubtotalTax,
		}
		order = append(order, k)
	}

	out := make([]Transaction, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	return out
}

// groupKey hashes the composite (order ID, subtotal) key. The subtotal is
// keyed on its exact bit pattern, so grouping matches float equality rather
// than any formatted rendering.
func groupKey(orderID string, subtotal float64) uint64 {
	b := make([]byte, 0, len(orderID)+9)
	b = append(b, orderID...)
	b = append(b, 0x1f)
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(subtotal))
	return xxh3.Hash(b)
}
