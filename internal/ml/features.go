// Package ml implements the per-symbol predictive pipeline: feature
// engineering from intraday OHLCV bars, chronological train/test splitting,
// gradient-boosted binary classification, and next-bar probability
// inference.
package ml

import (
	"fmt"
	"math"

	"StockSentinel/internal/indicator"
	"StockSentinel/internal/model"
)

// FeatureNames is the fixed, ordered feature vector every model expects.
var FeatureNames = []string{"RSI", "MACD", "Signal_Line", "BB_Width", "Return_1", "Return_5", "Range"}

// FeatureSet holds engineered rows with their binary labels. Rows are in
// chronological order. Last is the most recent bar's feature vector: its
// label is undefined (the next close does not exist yet), so it is excluded
// from Rows and kept solely for inference.
type FeatureSet struct {
	Rows   [][]float64
	Labels []float64
	Last   []float64
}

// BuildFeatures computes the feature matrix for a bar series. Each bar
// yields RSI(14), MACD, its signal line, Bollinger width, 1- and 5-bar
// returns, and the high-low range ratio, with label 1 when the next close
// is higher. Rows containing any undefined feature or label are dropped;
// the final bar is always dropped from training because its label is
// undefined.
func BuildFeatures(bars []model.OHLCV) (*FeatureSet, error) {
	n := len(bars)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 bars to build features", model.ErrInsufficientData)
	}

	rsi := indicator.RSI(bars, 14)
	macd, signalLine := indicator.MACD(bars)
	bbWidth := indicator.BollingerWidth(bars, 20, 2)
	ret1 := indicator.PctChange(bars, 1)
	ret5 := indicator.PctChange(bars, 5)
	rng := indicator.RangeRatio(bars)

	fs := &FeatureSet{}
	for t := 0; t < n; t++ {
		row := []float64{rsi[t], macd[t], signalLine[t], bbWidth[t], ret1[t], ret5[t], rng[t]}
		if hasNaN(row) {
			continue
		}
		if t == n-1 {
			fs.Last = row
			continue
		}
		label := 0.0
		if bars[t+1].Close > bars[t].Close {
			label = 1.0
		}
		fs.Rows = append(fs.Rows, row)
		fs.Labels = append(fs.Labels, label)
	}
	if len(fs.Rows) == 0 {
		return nil, fmt.Errorf("%w: no usable rows after feature engineering", model.ErrInsufficientData)
	}
	return fs, nil
}

func hasNaN(row []float64) bool {
	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
