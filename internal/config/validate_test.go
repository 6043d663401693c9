package config

import (
	"strings"
	"testing"
)

// hasIssue reports whether issues contains an Issue with the given severity,
// path, and a Message containing msgSubstr.
func hasIssue(t *testing.T, issues []Issue, sev IssueSeverity, path, msgSubstr string) bool {
	t.Helper()
	for _, iss := range issues {
		if iss.Severity == sev && iss.Path == path && strings.Contains(iss.Message, msgSubstr) {
			return true
		}
	}
	return false
}

// valid returns a pipeline that passes validation, for tests to break.
func valid() Pipeline {
	p := Default()
	p.Input.Path = "orders.csv"
	p.Output.Path = "ledger.csv"
	return p
}

/*
TestValidate_ValidMinimal verifies that a defaulted pipeline with both paths
set produces no issues at all.
*/
func TestValidate_ValidMinimal(t *testing.T) {
	if issues := Validate(valid()); len(issues) != 0 {
		t.Fatalf("expected no issues, got: %+v", issues)
	}
}

/*
TestValidate_Errors exercises each error-producing field in isolation and
checks severity, path, and message.
*/
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*Pipeline)
		path      string
		msgSubstr string
	}{
		{
			name:      "empty_job",
			mutate:    func(p *Pipeline) { p.Job = " " },
			path:      "job",
			msgSubstr: "job must not be empty",
		},
		{
			name:      "missing_input_path",
			mutate:    func(p *Pipeline) { p.Input.Path = "" },
			path:      "input.path",
			msgSubstr: "input.path",
		},
		{
			name:      "missing_output_path",
			mutate:    func(p *Pipeline) { p.Output.Path = "" },
			path:      "output.path",
			msgSubstr: "output.path",
		},
		{
			name:      "empty_delimiter",
			mutate:    func(p *Pipeline) { p.Input.Delimiter = "" },
			path:      "input.delimiter",
			msgSubstr: "must not be empty",
		},
		{
			name:      "no_date_layouts",
			mutate:    func(p *Pipeline) { p.Input.DateLayouts = nil },
			path:      "input.date_layouts",
			msgSubstr: "at least one",
		},
		{
			name:      "template_without_placeholder",
			mutate:    func(p *Pipeline) { p.URLTemplate = "https://example.com/orders" },
			path:      "order_url_template",
			msgSubstr: "placeholder",
		},
		{
			name:      "precision_out_of_range",
			mutate:    func(p *Pipeline) { p.Output.AmountPrecision = 11 },
			path:      "output.amount_precision",
			msgSubstr: "outside",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := valid()
			c.mutate(&p)

			issues := Validate(p)
			if !hasIssue(t, issues, SeverityError, c.path, c.msgSubstr) {
				t.Fatalf("expected error at %s containing %q; got: %+v", c.path, c.msgSubstr, issues)
			}
			if !HasErrors(issues) {
				t.Fatalf("HasErrors = false; want true for issues: %+v", issues)
			}
		})
	}
}

/*
TestValidate_Warnings covers the non-fatal findings: multi-rune delimiters and
date layouts that do not round-trip.
*/
func TestValidate_Warnings(t *testing.T) {
	p := valid()
	p.Input.Delimiter = ",;"
	p.Input.DateLayouts = []string{"YYYY-MM-DD"} // strftime-style, not a Go layout

	issues := Validate(p)

	if !hasIssue(t, issues, SeverityWarning, "input.delimiter", "only the first") {
		t.Fatalf("expected delimiter warning; got: %+v", issues)
	}
	if !hasIssue(t, issues, SeverityWarning, "input.date_layouts[0]", "reference layout") {
		t.Fatalf("expected layout warning; got: %+v", issues)
	}
	if HasErrors(issues) {
		t.Fatalf("warnings must not count as errors: %+v", issues)
	}
}
