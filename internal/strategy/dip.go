// Package strategy contains the rule-based signal evaluators: the
// buy-the-dip detector, the benchmark market-trend classifier, and the
// six-criteria CANSLIM growth scorer.
package strategy

import (
	"fmt"
	"math"
	"strings"

	"StockSentinel/internal/indicator"
	"StockSentinel/internal/model"
)

const dipMinBars = 200

// EvaluateDip checks a daily series for a "buy the dip" setup:
// RSI(14) < 30 (oversold), or price more than 5% below the 20-day SMA while
// the 200-day SMA is still rising. Requires at least 200 bars.
func EvaluateDip(series *model.PriceSeries) (*model.DipSignal, error) {
	n := series.Len()
	if n < dipMinBars {
		return nil, fmt.Errorf("%w: dip evaluator needs %d bars, have %d", model.ErrInsufficientData, dipMinBars, n)
	}

	rsi := indicator.RSI(series.Bars, 14)
	sma20 := indicator.SMA(series.Bars, 20)
	sma200 := indicator.SMA(series.Bars, 200)

	currentRSI := rsi[n-1]
	currentPrice := series.Last().Close
	currentSMA20 := sma20[n-1]
	currentSMA200 := sma200[n-1]
	prevSMA200 := sma200[n-2] // NaN at exactly 200 bars; treated as not rising

	pctBelowSMA20 := (currentPrice - currentSMA20) / currentSMA20 * 100
	sma200Rising := !math.IsNaN(prevSMA200) && currentSMA200 > prevSMA200

	oversold := currentRSI < 30
	dipWithTrend := pctBelowSMA20 < -5 && sma200Rising

	var reasons []string
	if oversold {
		reasons = append(reasons, fmt.Sprintf("RSI oversold (%.1f)", currentRSI))
	}
	if dipWithTrend {
		reasons = append(reasons, fmt.Sprintf("Price %.1f%% below 20-SMA with positive trend", math.Abs(pctBelowSMA20)))
	}
	reason := "No signal"
	if len(reasons) > 0 {
		reason = strings.Join(reasons, ", ")
	}

	trend := "Negative"
	if sma200Rising {
		trend = "Positive"
	}

	return &model.DipSignal{
		Symbol:        series.Symbol,
		HasSignal:     oversold || dipWithTrend,
		Reason:        reason,
		RSI:           currentRSI,
		PctBelowSMA20: pctBelowSMA20,
		SMA200Trend:   trend,
		CurrentPrice:  currentPrice,
	}, nil
}
