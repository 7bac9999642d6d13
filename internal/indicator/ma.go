// Package indicator provides pure technical-indicator functions over OHLCV
// bars. Every function returns one value per input bar, aligned by index;
// positions inside an indicator's warm-up window hold math.NaN() so that
// insufficient history is never confused with a real zero. Callers are
// responsible for dropping or ignoring warm-up rows.
package indicator

import (
	"math"

	"StockSentinel/internal/model"
)

// SMA computes the simple moving average of closes over the trailing window.
// The first window-1 positions are NaN.
func SMA(bars []model.OHLCV, window int) []float64 {
	out := nanSlice(len(bars))
	if window <= 0 || len(bars) < window {
		return out
	}
	sum := 0.0
	for i, b := range bars {
		sum += b.Close
		if i >= window {
			sum -= bars[i-window].Close
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// EMA computes the exponentially weighted moving average of closes with
// smoothing factor 2/(span+1), seeded by the first close. Defined for
// every bar.
func EMA(bars []model.OHLCV, span int) []float64 {
	return emaValues(extractCloses(bars), span)
}

func emaValues(values []float64, span int) []float64 {
	out := nanSlice(len(values))
	if span <= 0 || len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	ema := values[0]
	out[0] = ema
	for i := 1; i < len(values); i++ {
		ema = alpha*values[i] + (1-alpha)*ema
		out[i] = ema
	}
	return out
}

// MACD returns the MACD line, EMA(12)-EMA(26) of closes, and its signal
// line, EMA(9) of the MACD line. Both are defined for every bar.
func MACD(bars []model.OHLCV) (line, signal []float64) {
	fast := EMA(bars, 12)
	slow := EMA(bars, 26)
	line = make([]float64, len(bars))
	for i := range line {
		line[i] = fast[i] - slow[i]
	}
	signal = emaValues(line, 9)
	return line, signal
}

func extractCloses(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
