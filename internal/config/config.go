// Package config defines the configuration model for the order-ledger
// pipeline. A Pipeline can be loaded from a YAML or JSON file (selected by
// extension) or built from Default() and overridden by CLI flags.
//
// Design goals:
//
//  1. Stability: changes to this package should be additive and backwards-
//     compatible whenever possible.
//  2. Clarity: field names in Go mirror the YAML/JSON structure of pipeline
//     files.
//  3. Explicit defaults: zero-value fields are filled by ApplyDefaults so the
//     rest of the program never re-checks for empty settings.
//
// Example (trimmed):
//
//	job: orders
//	input:
//	  path: retail.OrderHistory.csv
//	  delimiter: ","
//	output:
//	  path: transactions.csv
//	order_url_template: "https://amazon.com/gp/your-account/order-details?orderID={orderID}"
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// OrderIDPlaceholder is the substring of the URL template replaced by each
// transaction's order ID.
const OrderIDPlaceholder = "{orderID}"

// DefaultURLTemplate deep-links to the retailer's order detail page.
const DefaultURLTemplate = "https://amazon.com/gp/your-account/order-details?orderID=" + OrderIDPlaceholder

// Pipeline describes one full ledger run. It is the top-level object decoded
// from a pipeline file.
type Pipeline struct {
	// Job names the run for logging and metrics labeling.
	Job string `yaml:"job" json:"job"`

	// Input configures the order-history export to read.
	Input Input `yaml:"input" json:"input"`

	// Output configures the ledger file to write.
	Output Output `yaml:"output" json:"output"`

	// URLTemplate is the order detail deep link; it must contain the
	// {orderID} placeholder, substituted per transaction.
	URLTemplate string `yaml:"order_url_template" json:"order_url_template"`
}

// Input holds settings for reading the export.
type Input struct {
	// Path is the local filesystem path to the export CSV.
	Path string `yaml:"path" json:"path"`

	// Delimiter is the field separator; first rune is used. Default ",".
	Delimiter string `yaml:"delimiter" json:"delimiter"`

	// DateLayouts are tried in order when parsing ship dates. Defaults cover
	// the ISO-8601 forms the exporter emits (RFC 3339 and date-only).
	DateLayouts []string `yaml:"date_layouts" json:"date_layouts"`

	// HeaderMap optionally maps source header names to canonical keys before
	// the default normalization applies.
	HeaderMap map[string]string `yaml:"header_map,omitempty" json:"header_map,omitempty"`
}

// Output holds settings for writing the ledger.
type Output struct {
	// Path is the local filesystem path of the ledger CSV to create.
	Path string `yaml:"path" json:"path"`

	// DateLayout formats the Ship Date column. Default "2006-01-02".
	DateLayout string `yaml:"date_layout" json:"date_layout"`

	// AmountPrecision is the number of decimal places for Transaction
	// Amount. Default 2.
	AmountPrecision int `yaml:"amount_precision" json:"amount_precision"`
}

// Default returns a Pipeline with all defaults applied and no paths set.
func Default() Pipeline {
	p := Pipeline{}
	p.ApplyDefaults()
	return p
}

// ApplyDefaults fills zero-value fields in place.
func (p *Pipeline) ApplyDefaults() {
	if p.Job == "" {
		p.Job = "orders"
	}
	if p.Input.Delimiter == "" {
		p.Input.Delimiter = ","
	}
	if len(p.Input.DateLayouts) == 0 {
		p.Input.DateLayouts = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02"}
	}
	if p.Output.DateLayout == "" {
		p.Output.DateLayout = "2006-01-02"
	}
	if p.Output.AmountPrecision == 0 {
		p.Output.AmountPrecision = 2
	}
	if p.URLTemplate == "" {
		p.URLTemplate = DefaultURLTemplate
	}
}

// DelimiterRune returns the first rune of the configured delimiter.
func (p Pipeline) DelimiterRune() rune {
	for _, r := range p.Input.Delimiter {
		return r
	}
	return ','
}

// Load reads a pipeline file. The format is chosen by extension: .yaml/.yml
// decode as YAML, anything else as JSON. Defaults are applied after decoding.
func Load(path string) (Pipeline, error) {
	var p Pipeline
	b, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &p); err != nil {
			return p, fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &p); err != nil {
			return p, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	p.ApplyDefaults()
	return p, nil
}
