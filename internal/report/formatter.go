// Package report renders scan results as plain-text reports for the
// console and scheduled runs.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"StockSentinel/internal/model"
	"StockSentinel/internal/scanner"
)

// FormatMarketTrend renders the benchmark regime header shown at the top of
// every daily report.
func FormatMarketTrend(st *model.TrendState) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Market Trend | %s\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("  State: %s [%s]\n", st.State, st.Color))
	if st.State == model.TrendError {
		b.WriteString(fmt.Sprintf("  Reason: %s\n", st.Reason))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  Close: %.2f | SMA50: %.2f | SMA200: %.2f\n", st.Close, st.SMA50, st.SMA200))
	return b.String()
}

// FormatDipScan renders dip-scan results. Symbols with an active signal come
// first with their full reasoning; failures are summarized at the bottom.
func FormatDipScan(results []scanner.DipResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Dip Scan | %s\n", time.Now().Format("2006-01-02 15:04")))

	var signals, quiet, failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		if !r.Signal.HasSignal {
			quiet++
			continue
		}
		signals++
		b.WriteString(fmt.Sprintf("  %-12s %10.2f  RSI %5.1f  %+.1f%% vs SMA20  trend %s\n",
			r.Symbol, r.Signal.CurrentPrice, r.Signal.RSI, r.Signal.PctBelowSMA20, r.Signal.SMA200Trend))
		b.WriteString(fmt.Sprintf("    %s\n", r.Signal.Reason))
	}
	if signals == 0 {
		b.WriteString("  No dip signals today.\n")
	}
	b.WriteString(fmt.Sprintf("Scanned %d symbols: %d signals, %d quiet, %d failed\n",
		len(results), signals, quiet, failed))
	appendFailures(&b, results, func(r scanner.DipResult) (string, error) { return r.Symbol, r.Err })
	return b.String()
}

// FormatCanslimScan renders the growth-criteria report card for every scored
// symbol, highest score first is the caller's job (results arrive sorted by
// symbol).
func FormatCanslimScan(results []scanner.CanslimResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("CANSLIM Scan | %s\n", time.Now().Format("2006-01-02")))

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-12s score %d/6  %s\n", r.Symbol, r.Report.Score, r.Report.Tier))
		for _, c := range r.Report.Checks {
			mark := "✗"
			if c.Passed {
				mark = "✓"
			}
			b.WriteString(fmt.Sprintf("    %s %s: %s\n", mark, c.Name, c.Reason))
		}
	}
	appendFailures(&b, results, func(r scanner.CanslimResult) (string, error) { return r.Symbol, r.Err })
	return b.String()
}

// FormatAIScan renders high-confidence predictions.
func FormatAIScan(results []scanner.AIResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("AI Picks | %s\n", time.Now().Format("2006-01-02 15:04")))

	picks := 0
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		picks++
		b.WriteString(fmt.Sprintf("  %-12s %s  confidence %.0f%%  (model accuracy %.0f%%)\n",
			r.Symbol, r.Prediction.Direction, r.Prediction.Confidence*100, r.Accuracy*100))
	}
	if picks == 0 {
		b.WriteString("  No high-confidence predictions.\n")
	}
	appendFailures(&b, results, func(r scanner.AIResult) (string, error) { return r.Symbol, r.Err })
	return b.String()
}

// FormatFundamentals renders one company's snapshot with human-readable
// magnitudes for the large values.
func FormatFundamentals(f *model.FundamentalSnapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Fundamentals | %s\n", f.Symbol))
	writeMetric(&b, "Market cap", f.MarketCap, func(v float64) string { return humanize.SIWithDigits(v, 2, "") })
	writeMetric(&b, "Trailing P/E", f.TrailingPE, plain)
	writeMetric(&b, "Forward P/E", f.ForwardPE, plain)
	writeMetric(&b, "Price/Book", f.PriceToBook, plain)
	writeMetric(&b, "ROE", f.ReturnOnEquity, percent)
	writeMetric(&b, "Profit margin", f.ProfitMargin, percent)
	writeMetric(&b, "EPS", f.EPS, plain)
	writeMetric(&b, "Debt/Equity", f.DebtToEquity, plain)
	writeMetric(&b, "Earnings growth (y)", f.EarningsGrowth, percent)
	writeMetric(&b, "Earnings growth (q)", f.EarningsQuarterlyGrowth, percent)
	writeMetric(&b, "Revenue growth", f.RevenueGrowth, percent)
	writeMetric(&b, "Target price", f.TargetMeanPrice, plain)
	return b.String()
}

func writeMetric(b *strings.Builder, label string, v *float64, format func(float64) string) {
	val, ok := model.Float(v)
	if !ok {
		b.WriteString(fmt.Sprintf("  %-20s not reported\n", label))
		return
	}
	b.WriteString(fmt.Sprintf("  %-20s %s\n", label, format(val)))
}

func plain(v float64) string   { return fmt.Sprintf("%.2f", v) }
func percent(v float64) string { return fmt.Sprintf("%.1f%%", v*100) }

func appendFailures[T any](b *strings.Builder, results []T, get func(T) (string, error)) {
	wrote := false
	for _, r := range results {
		symbol, err := get(r)
		if err == nil {
			continue
		}
		if !wrote {
			b.WriteString("Failed:\n")
			wrote = true
		}
		b.WriteString(fmt.Sprintf("  %-12s %v\n", symbol, err))
	}
}
