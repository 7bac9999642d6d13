package strategy

import (
	"errors"
	"strings"
	"testing"

	"StockSentinel/internal/model"
)

func ptr(v float64) *float64 { return &v }

// Closes rising from ~77 to 100 over a year: one-year return ~30%, final
// close within 5% of the trailing-year high.
func leaderCloses() []float64 {
	closes := make([]float64, 0, 300)
	price := 77.0
	for i := 0; i < 300; i++ {
		price *= 1.00088
		closes = append(closes, price)
	}
	return closes
}

func strongFundamentals() *model.FundamentalSnapshot {
	return &model.FundamentalSnapshot{
		Symbol:                  "TCS",
		EarningsQuarterlyGrowth: ptr(0.25),
		EarningsGrowth:          ptr(0.18),
		ReturnOnEquity:          ptr(0.12),
		MarketCap:               ptr(3e10),
	}
}

func TestScoreCanslim_AllSixPass(t *testing.T) {
	series := seriesFromCloses("TCS", leaderCloses())
	// Volume 500k x price ~100 => turnover ~5e7... push volume up to clear
	// the floor comfortably.
	for i := range series.Bars {
		series.Bars[i].Volume = 5_000_000
	}

	report, err := ScoreCanslim("TCS", series, strongFundamentals(), DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Score != 6 {
		for _, c := range report.Checks {
			t.Logf("%s passed=%v: %s", c.Name, c.Passed, c.Reason)
		}
		t.Fatalf("score = %d, want 6", report.Score)
	}
	if !report.Overall || report.Tier != model.TierStrongBuy {
		t.Errorf("overall=%v tier=%q, want true / %q", report.Overall, report.Tier, model.TierStrongBuy)
	}
	if len(report.Checks) != 6 {
		t.Fatalf("expected all six checks surfaced, got %d", len(report.Checks))
	}
	for _, c := range report.Checks {
		if c.Reason == "" {
			t.Errorf("%s: reason missing", c.Name)
		}
	}
}

func TestScoreCanslim_TierBoundaries(t *testing.T) {
	series := seriesFromCloses("SBIN", leaderCloses())
	for i := range series.Bars {
		series.Bars[i].Volume = 5_000_000
	}

	tests := []struct {
		name    string
		fund    *model.FundamentalSnapshot
		score   int
		tier    string
		overall bool
	}{
		{
			// N, S, L pass from price action alone; C, A, I fail.
			name:    "price action only",
			fund:    &model.FundamentalSnapshot{},
			score:   3,
			tier:    model.TierWatchlist,
			overall: false,
		},
		{
			// Add market cap: 4 passes, still watchlist.
			name:    "with market cap",
			fund:    &model.FundamentalSnapshot{MarketCap: ptr(2.5e10)},
			score:   4,
			tier:    model.TierWatchlist,
			overall: false,
		},
		{
			// Add ROE above 17%: 5 passes, strong buy.
			name: "with market cap and ROE",
			fund: &model.FundamentalSnapshot{
				MarketCap:      ptr(2.5e10),
				ReturnOnEquity: ptr(0.21),
			},
			score:   5,
			tier:    model.TierStrongBuy,
			overall: true,
		},
	}
	for _, tt := range tests {
		report, err := ScoreCanslim("SBIN", series, tt.fund, DefaultThresholds())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if report.Score != tt.score || report.Tier != tt.tier || report.Overall != tt.overall {
			t.Errorf("%s: score=%d tier=%q overall=%v, want %d/%q/%v",
				tt.name, report.Score, report.Tier, report.Overall, tt.score, tt.tier, tt.overall)
		}
	}
}

func TestScoreCanslim_AvoidTier(t *testing.T) {
	// Falling illiquid stock with empty fundamentals: everything fails.
	closes := make([]float64, 0, 300)
	price := 100.0
	for i := 0; i < 300; i++ {
		price *= 0.999
		closes = append(closes, price)
	}
	series := seriesFromCloses("PENNY", closes)
	for i := range series.Bars {
		series.Bars[i].Volume = 100
	}

	report, err := ScoreCanslim("PENNY", series, &model.FundamentalSnapshot{}, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Score >= 3 {
		t.Fatalf("score = %d, want < 3", report.Score)
	}
	if report.Tier != model.TierAvoid || report.Overall {
		t.Errorf("tier=%q overall=%v, want %q / false", report.Tier, report.Overall, model.TierAvoid)
	}
}

func TestScoreCanslim_MissingFundamentalsReported(t *testing.T) {
	series := seriesFromCloses("NEWCO", leaderCloses())
	report, err := ScoreCanslim("NEWCO", series, &model.FundamentalSnapshot{}, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sawNotReported bool
	for _, c := range report.Checks {
		if strings.Contains(c.Reason, "not reported") {
			sawNotReported = true
			if c.Passed {
				t.Errorf("%s passed despite missing data", c.Name)
			}
		}
	}
	if !sawNotReported {
		t.Error("expected missing metrics to be reported as absent, not zero")
	}
}

func TestScoreCanslim_InsufficientData(t *testing.T) {
	series := seriesFromCloses("TCS", constantCloses(10, 100))
	_, err := ScoreCanslim("TCS", series, strongFundamentals(), DefaultThresholds())
	if !errors.Is(err, model.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
