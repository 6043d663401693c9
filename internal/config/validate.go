// This file adds a lightweight linter/validator for Pipeline values. It
// performs static checks over a decoded Pipeline and returns a list of issues
// (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"
	"time"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but may not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding for a Pipeline.
//
// Path is a dotted path into the config (e.g. "input.path"). Message is
// human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect one.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static validation of a Pipeline. It does not mutate the
// pipeline; callers decide whether warnings are fatal.
func Validate(p Pipeline) []Issue {
	var issues []Issue

	if strings.TrimSpace(p.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "job",
			Message:  "job must not be empty; it labels logs and metrics for the run",
		})
	}

	if strings.TrimSpace(p.Input.Path) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "input.path",
			Message:  "input.path must name the order-history export to read",
		})
	}
	if strings.TrimSpace(p.Output.Path) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "output.path",
			Message:  "output.path must name the ledger file to write",
		})
	}

	switch n := len([]rune(p.Input.Delimiter)); {
	case n == 0:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "input.delimiter",
			Message:  "delimiter must not be empty",
		})
	case n > 1:
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "input.delimiter",
			Message:  fmt.Sprintf("delimiter %q is longer than one rune; only the first is used", p.Input.Delimiter),
		})
	}

	if len(p.Input.DateLayouts) == 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "input.date_layouts",
			Message:  "at least one ship-date layout is required",
		})
	}
	ref := time.Date(2024, 2, 1, 15, 4, 5, 0, time.UTC)
	for i, layout := range p.Input.DateLayouts {
		// A layout whose own rendering of a reference time fails to parse, or
		// parses back to the zero year, is not a Go reference layout (the
		// classic mistake is strftime-style "YYYY-MM-DD").
		parsed, err := time.Parse(layout, ref.Format(layout))
		if err != nil || parsed.Year() == 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Path:     fmt.Sprintf("input.date_layouts[%d]", i),
				Message:  fmt.Sprintf("layout %q does not look like a Go reference layout (see time.Layout)", layout),
			})
		}
	}

	if !strings.Contains(p.URLTemplate, OrderIDPlaceholder) {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "order_url_template",
			Message:  fmt.Sprintf("template must contain the %s placeholder", OrderIDPlaceholder),
		})
	}

	if p.Output.AmountPrecision < 0 || p.Output.AmountPrecision > 10 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "output.amount_precision",
			Message:  fmt.Sprintf("amount precision %d is outside 0..10", p.Output.AmountPrecision),
		})
	}

	return issues
}

// HasErrors reports whether any issue carries SeverityError.
func HasErrors(issues []Issue) bool {
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return true
		}
	}
	return false
}
