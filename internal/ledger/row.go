// Package ledger turns a raw order-history export into a consolidated
// transaction ledger. The pipeline runs in four stages over in-memory
// tables: Load reads the export into generic records, Clean coerces types
// and drops unusable rows, Group folds line items into transactions, and
// Format/Save produce the output file. Each stage is a pure function from
// one table value to the next; Processor sequences them for the CLI.
package ledger

import "time"

// Canonical column keys produced by the parser's header normalization.
const (
	ColWebsite     = "website"
	ColOrderID     = "order_id"
	ColOrderDate   = "order_date"
	ColShipDate    = "ship_date"
	ColCurrency    = "currency"
	ColUnitPrice   = "unit_price"
	ColSubtotal    = "shipment_item_subtotal"
	ColSubtotalTax = "shipment_item_subtotal_tax"
	ColProductName = "product_name"
	ColQuantity    = "quantity"
	ColOrderStatus = "order_status"
)

// RequiredColumns are the input columns the export must carry. The exporter
// may emit more; extras are ignored.
var RequiredColumns = []string{
	ColWebsite,
	ColOrderID,
	ColOrderDate,
	ColShipDate,
	ColCurrency,
	ColUnitPrice,
	ColSubtotal,
	ColSubtotalTax,
	ColProductName,
	ColQuantity,
	ColOrderStatus,
}

// Float is an optional float64. Present is false when the source cell was
// empty or held sentinel text such as "Not Available".
type Float struct {
	Value   float64
	Present bool
}

// Int is an optional int64 with the same missing semantics as Float.
type Int struct {
	Value   int64
	Present bool
}

// Row is one cleaned line item. Fields required for grouping (OrderID,
// ShipDate, Subtotal, SubtotalTax, ProductName) are always present; a record
// missing any of them never becomes a Row.
type Row struct {
	Website     string
	OrderID     string
	OrderDate   string // raw text; not needed downstream
	ShipDate    time.Time
	Currency    string
	UnitPrice   Float
	Subtotal    float64
	SubtotalTax float64
	ProductName string
	Quantity    Int
	OrderStatus string
}

// Transaction is one reconciled charge: all line items sharing an order ID
// and per-shipment subtotal, folded together.
type Transaction struct {
	OrderID      string
	Subtotal     float64   // part of the group key, not an output column
	ShipDate     time.Time // first occurrence within the group
	ProductNames []string  // first-seen order
	Amount       float64   // subtotal + tax, first occurrence
	URL          string    // set by Format
}
