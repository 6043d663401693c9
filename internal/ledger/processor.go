package ledger

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"orderledger/internal/config"
	"orderledger/internal/datasource/file"
	"orderledger/internal/metrics"
	"orderledger/pkg/records"
)

// Processor sequences the pipeline stages over one run's tables. Stages must
// be invoked in order (Load, Clean, Group, Format, Save); calling one before
// its prerequisite returns *StateError. Run executes all five.
//
// A Processor is single-use and not safe for concurrent use; each run is an
// independent pipeline over its own data.
type Processor struct {
	cfg config.Pipeline
	log zerolog.Logger

	raw       []records.Record
	rows      []Row
	txs       []Transaction
	formatted []Transaction

	loaded, cleaned, grouped, hasOutput bool

	loadStats  LoadStats
	cleanStats CleanStats
}

// Summary reports one completed run.
type Summary struct {
	Loaded       int
	Skipped      int
	Dropped      int
	Transactions int
}

// NewProcessor returns a Processor for one run.
func NewProcessor(cfg config.Pipeline, log zerolog.Logger) *Processor {
	return &Processor{cfg: cfg, log: log}
}

// Load reads the input export.
func (p *Processor) Load(ctx context.Context) error {
	recs, stats, err := Load(ctx, file.NewLocal(p.cfg.Input.Path), p.cfg)
	if err != nil {
		return err
	}
	p.raw, p.loadStats, p.loaded = recs, stats, true

	p.log.Info().
		Int("rows", stats.Rows).
		Int("skipped", stats.Skipped).
		Str("path", p.cfg.Input.Path).
		Msg("loaded order history")
	metrics.RecordRow(p.cfg.Job, "loaded", int64(stats.Rows))
	metrics.RecordRow(p.cfg.Job, "parse_skipped", int64(stats.Skipped))
	return nil
}

// Clean coerces and filters the loaded records.
func (p *Processor) Clean() error {
	if !p.loaded {
		return &StateError{Op: "clean", Requires: "load"}
	}
	p.rows, p.cleanStats = Clean(p.raw, p.cfg)
	p.cleaned = true

	if p.cleanStats.Dropped > 0 {
		p.log.Warn().
			Int("dropped", p.cleanStats.Dropped).
			Msg("dropped rows with missing critical data")
	}
	metrics.RecordRow(p.cfg.Job, "dropped", int64(p.cleanStats.Dropped))
	return nil
}

// Group folds cleaned rows into transactions.
func (p *Processor) Group() error {
	if !p.cleaned {
		return &StateError{Op: "group", Requires: "clean"}
	}
	p.txs = Group(p.rows)
	p.grouped = true

	p.log.Info().Int("transactions", len(p.txs)).Msg("grouped transactions")
	return nil
}

// Format derives URLs and sorts the transaction table.
func (p *Processor) Format() error {
	if !p.grouped {
		return &StateError{Op: "format", Requires: "group"}
	}
	p.formatted = Format(p.txs, p.cfg)
	p.hasOutput = true
	return nil
}

// Save writes the ledger file.
func (p *Processor) Save() error {
	if !p.hasOutput {
		return &StateError{Op: "save", Requires: "format"}
	}
	if err := Save(p.formatted, p.cfg); err != nil {
		return err
	}
	p.log.Info().
		Int("transactions", len(p.formatted)).
		Str("path", p.cfg.Output.Path).
		Msg("ledger written")
	metrics.RecordRow(p.cfg.Job, "transactions", int64(len(p.formatted)))
	return nil
}

// Run executes the full pipeline and reports a Summary. Stage timings feed
// the metrics backend; any stage error aborts the run before a single output
// byte is written.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	stages := []struct {
		name string
		fn   func() error
	}{
		{"load", func() error { return p.Load(ctx) }},
		{"clean", p.Clean},
		{"group", p.Group},
		{"format", p.Format},
		{"save", p.Save},
	}
	for _, s := range stages {
		start := time.Now()
		err := s.fn()
		metrics.RecordStage(p.cfg.Job, s.name, err, time.Since(start))
		if err != nil {
			return Summary{}, err
		}
	}
	return Summary{
		Loaded:       p.loadStats.Rows,
		Skipped:      p.loadStats.Skipped,
		Dropped:      p.cleanStats.Dropped,
		Transactions: len(p.formatted),
	}, nil
}
