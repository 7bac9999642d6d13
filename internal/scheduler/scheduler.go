// Package scheduler wires the scan jobs onto cron triggers for daemon mode.
package scheduler

import (
	"context"
	"fmt"
	"io"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"StockSentinel/internal/collector"
	"StockSentinel/internal/model"
	"StockSentinel/internal/report"
	"StockSentinel/internal/scanner"
	"StockSentinel/internal/strategy"
)

// Scheduler manages the cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Scanner   *scanner.Scanner
	Benchmark string
	Symbols   []string
	Out       io.Writer
	Log       zerolog.Logger
	Ctx       context.Context
}

func New(ctx context.Context, col *collector.Collector, sc *scanner.Scanner, benchmark string, symbols []string, out io.Writer, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Scanner:   sc,
		Benchmark: benchmark,
		Symbols:   symbols,
		Out:       out,
		Log:       log,
		Ctx:       ctx,
	}
}

// RegisterAll registers the end-of-day and intraday tasks.
func (s *Scheduler) RegisterAll(dailyCron, intradayCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	if _, err := s.Cron.AddFunc(intradayCron, s.intradayTask); err != nil {
		return fmt.Errorf("register intraday task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Info().Msg("scheduler stopped")
}

// RunDailyNow executes the end-of-day task immediately (manual trigger).
func (s *Scheduler) RunDailyNow() { s.dailyTask() }

// RunIntradayNow executes the intraday task immediately (manual trigger).
func (s *Scheduler) RunIntradayNow() { s.intradayTask() }

// dailyTask runs after market close: benchmark regime first, then dip and
// growth scans over the universe.
func (s *Scheduler) dailyTask() {
	s.Log.Info().Msg("running daily task")

	var trend model.TrendState
	if series, err := s.Collector.DailySeries(s.Benchmark, 300); err != nil {
		s.Log.Error().Err(err).Str("benchmark", s.Benchmark).Msg("benchmark fetch failed")
		trend = strategy.MarketUnavailable(err)
	} else {
		trend = strategy.ClassifyMarket(series)
	}
	fmt.Fprintln(s.Out, report.FormatMarketTrend(&trend))

	dips := s.Scanner.ScanDips(s.Ctx, s.Symbols)
	fmt.Fprintln(s.Out, report.FormatDipScan(dips))

	growth := s.Scanner.ScanCanslim(s.Ctx, s.Symbols)
	fmt.Fprintln(s.Out, report.FormatCanslimScan(growth))
}

// intradayTask runs during market hours: trains per-symbol models and
// prints high-confidence predictions.
func (s *Scheduler) intradayTask() {
	s.Log.Info().Msg("running intraday task")
	picks := s.Scanner.ScanAI(s.Ctx, s.Symbols)
	fmt.Fprintln(s.Out, report.FormatAIScan(picks))
}
