package ledger

import (
	"strconv"
	"time"

	"orderledger/internal/config"
	"orderledger/pkg/records"
)

// CleanStats reports the Cleaner's filtering outcome. Dropped rows are
// counted once per run, never reported individually.
type CleanStats struct {
	In      int
	Dropped int
}

// Clean coerces raw records into typed rows and drops the ones the
// Aggregator cannot reconcile. Coercion is deliberately lenient: a ship date
// or numeric cell that fails to parse (exporter sentinels like "Not
// Available" included) becomes missing rather than an error. A row is
// dropped when any of order ID, ship date, shipment subtotal, shipment
// subtotal tax, or product name is missing; those five fields are required
// for grouping and URL generation.
func Clean(recs []records.Record, cfg config.Pipeline) ([]Row, CleanStats) {
	stats := CleanStats{In: len(recs)}

	rows := make([]Row, 0, len(recs))
	for _, rec := range recs {
		orderID, _ := rec.String(ColOrderID)
		productName, _ := rec.String(ColProductName)
		shipDate, shipOK := parseDate(rec, ColShipDate, cfg.Input.DateLayouts)
		subtotal := parseFloat(rec, ColSubtotal)
		tax := parseFloat(rec, ColSubtotalTax)

		if orderID == "" || productName == "" || !shipOK || !subtotal.Present || !tax.Present {
			stats.Dropped++
			continue
		}

		row := Row{
			OrderID:     orderID,
			ShipDate:    shipDate,
			Subtotal:    subtotal.Value,
			SubtotalTax: tax.Value,
			ProductName: productName,
			UnitPrice:   parseFloat(rec, ColUnitPrice),
			Quantity:    parseInt(rec, ColQuantity),
		}
		row.Website, _ = rec.String(ColWebsite)
		row.OrderDate, _ = rec.String(ColOrderDate)
		row.Currency, _ = rec.String(ColCurrency)
		row.OrderStatus, _ = rec.String(ColOrderStatus)

		rows = append(rows, row)
	}

	return rows, stats
}

// parseDate tries the configured layouts in order and normalizes to UTC.
func parseDate(rec records.Record, key string, layouts []string) (time.Time, bool) {
	s, ok := rec.String(key)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseFloat(rec records.Record, key string) Float {
	s, ok := rec.String(key)
	if !ok {
		return Float{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}
	}
	return Float{Value: v, Present: true}
}

func parseInt(rec records.Record, key string) Int {
	s, ok := rec.String(key)
	if !ok {
		return Int{}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Int{}
	}
	return Int{Value: v, Present: true}
}
