package ledger

import (
	"testing"

	"orderledger/internal/config"
)

func TestFormat_URLPerRow(t *testing.T) {
	t.Parallel()

	txs := []Transaction{
		{OrderID: "112-000", ShipDate: date(2024, 1, 5)},
		{OrderID: "500-1", ShipDate: date(2024, 1, 5)},
	}

	out := Format(txs, config.Default())

	// Every row gets its own order ID substituted; no shared template state.
	for _, tx := range out {
		want := "https://amazon.com/gp/your-account/order-details?orderID=" + tx.OrderID
		if tx.URL != want {
			t.Fatalf("url for %s = %q; want %q", tx.OrderID, tx.URL, want)
		}
	}

	// Input slice untouched.
	if txs[0].URL != "" {
		t.Fatalf("input mutated: %q", txs[0].URL)
	}
}

func TestFormat_CustomTemplate(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.URLTemplate = "https://example.com/{orderID}/details"

	out := Format([]Transaction{{OrderID: "x-1"}}, cfg)
	if out[0].URL != "https://example.com/x-1/details" {
		t.Fatalf("url = %q", out[0].URL)
	}
}

// Sort law: ship dates non-increasing, ties stable by input order.
func TestFormat_SortDescendingStable(t *testing.T) {
	t.Parallel()

	txs := []Transaction{
		{OrderID: "old", ShipDate: date(2024, 1, 5)},
		{OrderID: "new", ShipDate: date(2024, 2, 1)},
		{OrderID: "tie-first", ShipDate: date(2024, 1, 5)},
		{OrderID: "tie-second", ShipDate: date(2024, 1, 5)},
	}

	out := Format(txs, config.Default())

	wantOrder := []string{"new", "old", "tie-first", "tie-second"}
	for i, want := range wantOrder {
		if out[i].OrderID != want {
			t.Fatalf("position %d = %s; want %s (full: %+v)", i, out[i].OrderID, want, out)
		}
	}
	for i := 1; i < len(out); i++ {
		if out[i].ShipDate.After(out[i-1].ShipDate) {
			t.Fatalf("ship dates increase at %d", i)
		}
	}
}

func TestFormat_Empty(t *testing.T) {
	t.Parallel()

	if out := Format(nil, config.Default()); len(out) != 0 {
		t.Fatalf("out = %v; want empty", out)
	}
}
