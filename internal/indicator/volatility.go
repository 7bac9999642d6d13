package indicator

import (
	"math"

	"StockSentinel/internal/model"
)

// BollingerWidth computes the normalized Bollinger band width of closes:
// (upper - lower) / middle, where middle is the window SMA and the bands sit
// k sample standard deviations away. Sample deviation (ddof=1) is used
// throughout. The first window-1 positions are NaN.
func BollingerWidth(bars []model.OHLCV, window int, k float64) []float64 {
	out := nanSlice(len(bars))
	if window < 2 || len(bars) < window {
		return out
	}
	closes := extractCloses(bars)
	mid := SMA(bars, window)
	for i := window - 1; i < len(closes); i++ {
		var sq float64
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - mid[i]
			sq += d * d
		}
		sd := math.Sqrt(sq / float64(window-1))
		if mid[i] == 0 {
			continue // leave NaN rather than divide by zero
		}
		out[i] = 2 * k * sd / mid[i]
	}
	return out
}

// PctChange computes the fractional close-to-close return over the given
// lag: (close[t] - close[t-lag]) / close[t-lag]. The first lag positions
// are NaN, as is any position whose reference close is zero.
func PctChange(bars []model.OHLCV, lag int) []float64 {
	out := nanSlice(len(bars))
	if lag <= 0 {
		return out
	}
	closes := extractCloses(bars)
	for i := lag; i < len(closes); i++ {
		prev := closes[i-lag]
		if prev == 0 {
			continue
		}
		out[i] = (closes[i] - prev) / prev
	}
	return out
}

// RangeRatio computes the per-bar (high - low) / close volatility proxy.
// Defined for every bar with a non-zero close.
func RangeRatio(bars []model.OHLCV) []float64 {
	out := nanSlice(len(bars))
	for i, b := range bars {
		if b.Close == 0 {
			continue
		}
		out[i] = (b.High - b.Low) / b.Close
	}
	return out
}
