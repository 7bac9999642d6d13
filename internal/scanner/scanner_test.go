package scanner

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"StockSentinel/internal/collector"
	"StockSentinel/internal/model"
)

func shortHistory(n int) []model.OHLCV {
	bars := make([]model.OHLCV, n)
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = model.OHLCV{
			Time: start.AddDate(0, 0, i), Open: 100, High: 101, Low: 99, Close: 100, Volume: 1000,
		}
	}
	return bars
}

func newTestScanner(mock *collector.MockFetcher, cfg Config) *Scanner {
	c := collector.New(mock, mock, zerolog.Nop())
	return New(c, cfg, zerolog.Nop())
}

func TestScanDips_ErrorIsolation(t *testing.T) {
	mock := &collector.MockFetcher{
		Price: 100,
		DailyData: map[string][]model.OHLCV{
			"BAD": shortHistory(10), // too short for the dip evaluator
		},
	}
	s := newTestScanner(mock, DefaultConfig())

	results := s.ScanDips(context.Background(), []string{"TCS", "BAD", "INFY"})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Symbol == "BAD" {
			if r.Err == nil {
				t.Error("BAD should have failed")
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("%s: unexpected error: %v", r.Symbol, r.Err)
		}
		if r.Signal == nil {
			t.Errorf("%s: missing signal", r.Symbol)
		}
	}
}

func TestScanDips_SortedBySymbol(t *testing.T) {
	mock := &collector.MockFetcher{Price: 100}
	s := newTestScanner(mock, DefaultConfig())

	results := s.ScanDips(context.Background(), []string{"WIPRO", "INFY", "TCS", "SBIN"})
	for i := 1; i < len(results); i++ {
		if results[i-1].Symbol > results[i].Symbol {
			t.Fatalf("results not sorted: %q before %q", results[i-1].Symbol, results[i].Symbol)
		}
	}
}

func TestScanDips_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := &collector.MockFetcher{Price: 100}
	s := newTestScanner(mock, DefaultConfig())

	results := s.ScanDips(ctx, []string{"TCS", "INFY", "SBIN", "WIPRO", "HDFCBANK"})
	if len(results) != 0 {
		t.Fatalf("cancelled scan returned %d results, want 0", len(results))
	}
}

func TestScanCanslim_ErrorIsolation(t *testing.T) {
	mock := &collector.MockFetcher{
		Price: 100,
		DailyData: map[string][]model.OHLCV{
			"BAD": shortHistory(5),
		},
	}
	s := newTestScanner(mock, DefaultConfig())

	results := s.ScanCanslim(context.Background(), []string{"BAD", "TCS"})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Symbol != "BAD" || results[0].Err == nil {
		t.Errorf("BAD should be first (sorted) and failed: %+v", results[0])
	}
	if results[1].Err != nil {
		t.Errorf("TCS: unexpected error: %v", results[1].Err)
	}
	// No fundamentals in the mock: scoring still proceeds on price action.
	if results[1].Report == nil {
		t.Fatal("TCS: missing report")
	}
}

func TestScanAI_ConfidenceFilterAndIsolation(t *testing.T) {
	mock := &collector.MockFetcher{
		Price: 100,
		IntradayData: map[string][]model.OHLCV{
			"SHORT": shortHistory(50), // below the 100-candle minimum
		},
	}
	cfg := DefaultConfig()
	cfg.ConfidenceFloor = 0
	s := newTestScanner(mock, cfg)

	results := s.ScanAI(context.Background(), []string{"TCS", "SHORT", "INFY"})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	var picks, failed int
	lastConf := 2.0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if r.Symbol != "SHORT" {
				t.Errorf("unexpected failure for %s: %v", r.Symbol, r.Err)
			}
			continue
		}
		picks++
		if failed > 0 {
			t.Error("picks must come before failed entries")
		}
		if r.Prediction.Confidence > lastConf {
			t.Error("picks not sorted by confidence descending")
		}
		lastConf = r.Prediction.Confidence
	}
	if picks != 2 || failed != 1 {
		t.Fatalf("picks=%d failed=%d, want 2/1", picks, failed)
	}
}

func TestScanAI_FloorExcludesAll(t *testing.T) {
	mock := &collector.MockFetcher{Price: 100}
	cfg := DefaultConfig()
	cfg.ConfidenceFloor = 1.1 // unreachable
	s := newTestScanner(mock, cfg)

	results := s.ScanAI(context.Background(), []string{"TCS", "INFY"})
	if len(results) != 0 {
		t.Fatalf("got %d results, want 0 (all below floor, none failed)", len(results))
	}
}
