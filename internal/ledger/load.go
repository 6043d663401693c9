package ledger

import (
	"context"

	"orderledger/internal/config"
	"orderledger/internal/datasource"
	csvparser "orderledger/internal/parser/csv"
	"orderledger/pkg/records"
)

// LoadStats reports what the Loader saw.
type LoadStats struct {
	// Rows is the number of parsed data rows.
	Rows int

	// Skipped counts malformed rows the parser soft-failed on.
	Skipped int
}

// Load reads the configured export into generic records. The file handle is
// scoped to this call and released on every path. Numeric-looking columns
// stay text here; the Cleaner owns coercion so exporter sentinels ("Not
// Available") become missing values instead of parse failures.
//
// Failure modes are fatal and typed: a missing or unreadable file, an
// unreadable header, or an absent required column all return *LoadError.
func Load(ctx context.Context, src datasource.Source, cfg config.Pipeline) ([]records.Record, LoadStats, error) {
	var stats LoadStats

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, stats, &LoadError{Path: cfg.Input.Path, Err: err}
	}
	defer rc.Close()

	p := csvparser.NewParser(csvparser.Options{
		HasHeader: true,
		Comma:     cfg.DelimiterRune(),
		TrimSpace: true,
		HeaderMap: cfg.Input.HeaderMap,
	})
	recs, sum, err := p.Parse(rc)
	if err != nil {
		return nil, stats, &LoadError{Path: cfg.Input.Path, Err: err}
	}

	present := make(map[string]struct{}, len(sum.Headers))
	for _, h := range sum.Headers {
		present[h] = struct{}{}
	}
	for _, col := range RequiredColumns {
		if _, ok := present[col]; !ok {
			return nil, stats, &LoadError{Path: cfg.Input.Path, Column: col}
		}
	}

	stats.Rows = len(recs)
	stats.Skipped = sum.Skipped
	return recs, stats, nil
}
