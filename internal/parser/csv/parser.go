// Package csv parses delimited order-history exports into generic records.
// It tolerates the quirks of real exporter output: a UTF-8 BOM on the first
// header cell, localized or re-cased header names, and occasional malformed
// rows, which are skipped and counted rather than failing the whole file.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"orderledger/pkg/records"
)

// Options configures the parser. All fields are optional; sensible defaults
// are applied when a field is zero.
type Options struct {
	// HasHeader indicates whether the first row contains column headers.
	HasHeader bool

	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// TrimSpace trims leading/trailing ASCII spaces from each field value.
	TrimSpace bool

	// HeaderMap maps source header names to canonical keys, consulted before
	// the default normalization (fold diacritics, lowercase, spaces to
	// underscores). Only applies when HasHeader is true.
	HeaderMap map[string]string
}

// Summary reports what the parser saw in one input.
type Summary struct {
	// Headers are the canonical column keys, in input order.
	Headers []string

	// Skipped counts body rows dropped for parse errors or width mismatches.
	Skipped int
}

// Parser parses CSV input according to Options. It is safe to reuse across
// inputs, but Parser itself is not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\ufeff"

// Parse consumes CSV records from r and returns the parsed rows along with a
// Summary of headers and skipped rows. Rows whose field count differs from
// the header width are skipped (soft-fail); empty cells become nil.
func (p *Parser) Parse(r io.Reader) ([]records.Record, Summary, error) {
	cr := csv.NewReader(r)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	cr.FieldsPerRecord = -1 // width enforced after read, per row

	var sum Summary
	var headers []string

	if p.opt.HasHeader {
		h, err := cr.Read()
		if err != nil {
			return nil, sum, fmt.Errorf("read csv header: %w", err)
		}
		headers = normalizeHeaders(h, p.opt)
		sum.Headers = headers
	}

	var out []records.Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			sum.Skipped++
			continue
		}
		if len(headers) > 0 && len(row) != len(headers) {
			sum.Skipped++
			continue
		}

		rec := make(records.Record, len(row))
		for i, val := range row {
			if p.opt.TrimSpace {
				val = strings.TrimSpace(val)
			}
			rec[keyFor(i, headers)] = emptyToNil(val)
		}
		out = append(out, rec)
	}

	return out, sum, nil
}

// keyFor returns the column key for index idx, using headers when available,
// otherwise synthesizing a "col_N" name.
func keyFor(idx int, headers []string) string {
	if idx < len(headers) && headers[idx] != "" {
		return headers[idx]
	}
	return fmt.Sprintf("col_%d", idx)
}

// emptyToNil converts an empty string to nil; all other values are returned as-is.
func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// normalizeHeaders produces canonical header keys using HeaderMap (when
// provided) and default normalization (fold diacritics, lowercase, spaces to
// underscores). It also strips a UTF-8 BOM from the first cell if present.
func normalizeHeaders(h []string, opt Options) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if i == 0 {
			c = strings.TrimPrefix(c, utf8BOM)
		}
		if opt.HeaderMap != nil {
			if m, ok := opt.HeaderMap[c]; ok {
				res[i] = m
				continue
			}
		}
		res[i] = CanonicalKey(c)
	}
	return res
}

// CanonicalKey converts a display header to its canonical key form:
// diacritics folded to ASCII, lowercased, spaces replaced by underscores.
// "Shipment Item Subtotal Tax" becomes "shipment_item_subtotal_tax".
func CanonicalKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(foldMarks(s)), " ", "_")
}
