// Package scanner runs the strategy evaluators across a symbol universe
// with a bounded worker pool. One symbol failing never aborts the batch:
// errors are captured per symbol in the result slice.
package scanner

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"StockSentinel/internal/collector"
	"StockSentinel/internal/ml"
	"StockSentinel/internal/model"
	"StockSentinel/internal/strategy"
)

// Config controls batch scan behavior.
type Config struct {
	Workers         int
	DailyBars       int     // daily history per symbol
	ConfidenceFloor float64 // minimum confidence for AI picks
	Thresholds      strategy.Thresholds
}

func DefaultConfig() Config {
	return Config{
		Workers:         8,
		DailyBars:       300,
		ConfidenceFloor: 0.60,
		Thresholds:      strategy.DefaultThresholds(),
	}
}

type Scanner struct {
	collector *collector.Collector
	cfg       Config
	log       zerolog.Logger
}

func New(c *collector.Collector, cfg Config, log zerolog.Logger) *Scanner {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.DailyBars <= 0 {
		cfg.DailyBars = DefaultConfig().DailyBars
	}
	return &Scanner{collector: c, cfg: cfg, log: log}
}

// DipResult is one symbol's outcome from a dip scan.
type DipResult struct {
	Symbol string
	Signal *model.DipSignal
	Err    error
}

// CanslimResult is one symbol's outcome from a CANSLIM scan.
type CanslimResult struct {
	Symbol string
	Report *model.CriteriaReport
	Err    error
}

// AIResult is one symbol's outcome from a predictive scan.
type AIResult struct {
	Symbol     string
	Prediction model.Prediction
	Accuracy   float64
	Err        error
}

// ScanDips evaluates the dip strategy for every symbol. Results come back
// sorted by symbol; entries with Err set mark symbols that could not be
// evaluated.
func (s *Scanner) ScanDips(ctx context.Context, symbols []string) []DipResult {
	results := scanPool(ctx, s.cfg.Workers, symbols, func(symbol string) DipResult {
		series, err := s.collector.DailySeries(symbol, s.cfg.DailyBars)
		if err != nil {
			return DipResult{Symbol: symbol, Err: err}
		}
		signal, err := strategy.EvaluateDip(series)
		if err != nil {
			return DipResult{Symbol: symbol, Err: err}
		}
		return DipResult{Symbol: symbol, Signal: signal}
	})
	sort.Slice(results, func(i, j int) bool { return results[i].Symbol < results[j].Symbol })
	s.logFailures("dip", len(symbols), countErrs(results, func(r DipResult) error { return r.Err }))
	return results
}

// ScanCanslim scores every symbol against the six growth criteria.
func (s *Scanner) ScanCanslim(ctx context.Context, symbols []string) []CanslimResult {
	results := scanPool(ctx, s.cfg.Workers, symbols, func(symbol string) CanslimResult {
		series, fund, err := s.collector.Snapshot(symbol, s.cfg.DailyBars)
		if err != nil {
			return CanslimResult{Symbol: symbol, Err: err}
		}
		report, err := strategy.ScoreCanslim(symbol, series, fund, s.cfg.Thresholds)
		if err != nil {
			return CanslimResult{Symbol: symbol, Err: err}
		}
		return CanslimResult{Symbol: symbol, Report: report}
	})
	sort.Slice(results, func(i, j int) bool { return results[i].Symbol < results[j].Symbol })
	s.logFailures("canslim", len(symbols), countErrs(results, func(r CanslimResult) error { return r.Err }))
	return results
}

// ScanAI trains a per-symbol intraday model and keeps only predictions at or
// above the confidence floor, sorted by confidence descending. Failed
// symbols are returned after the picks with Err set.
func (s *Scanner) ScanAI(ctx context.Context, symbols []string) []AIResult {
	results := scanPool(ctx, s.cfg.Workers, symbols, func(symbol string) AIResult {
		series, err := s.collector.IntradaySeries(symbol)
		if err != nil {
			return AIResult{Symbol: symbol, Err: err}
		}
		tm, summary, err := ml.Train(series)
		if err != nil {
			return AIResult{Symbol: symbol, Err: err}
		}
		return AIResult{Symbol: symbol, Prediction: tm.Classify(), Accuracy: summary.Accuracy}
	})

	var picks, failed []AIResult
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed = append(failed, r)
		case r.Prediction.Confidence >= s.cfg.ConfidenceFloor:
			picks = append(picks, r)
		}
	}
	sort.Slice(picks, func(i, j int) bool {
		if picks[i].Prediction.Confidence != picks[j].Prediction.Confidence {
			return picks[i].Prediction.Confidence > picks[j].Prediction.Confidence
		}
		return picks[i].Symbol < picks[j].Symbol
	})
	sort.Slice(failed, func(i, j int) bool { return failed[i].Symbol < failed[j].Symbol })
	s.logFailures("ai", len(symbols), len(failed))
	return append(picks, failed...)
}

func (s *Scanner) logFailures(scan string, total, failed int) {
	if failed > 0 {
		s.log.Warn().Str("scan", scan).Int("total", total).Int("failed", failed).Msg("some symbols could not be evaluated")
	}
}

func countErrs[T any](results []T, errOf func(T) error) int {
	n := 0
	for _, r := range results {
		if errOf(r) != nil {
			n++
		}
	}
	return n
}

// scanPool fans symbols out to a fixed number of workers. Cancellation is
// checked at symbol granularity: already-started work finishes, queued
// symbols are skipped.
func scanPool[T any](ctx context.Context, workers int, symbols []string, work func(string) T) []T {
	symbolChan := make(chan string)
	resultChan := make(chan T)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range symbolChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				resultChan <- work(symbol)
			}
		}()
	}

	go func() {
		defer close(symbolChan)
		for _, symbol := range symbols {
			select {
			case <-ctx.Done():
				return
			case symbolChan <- symbol:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]T, 0, len(symbols))
	for r := range resultChan {
		results = append(results, r)
	}
	return results
}
