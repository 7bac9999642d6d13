package indicator

import "StockSentinel/internal/model"

// RSI computes the Relative Strength Index over the given period using
// rolling arithmetic means of gains and losses (Cutler's method): the
// average positive close delta over the window divided by the average
// absolute negative delta, mapped to 100 - 100/(1+rs).
//
// Zero-loss convention: when the average loss over the window is zero the
// ratio is undefined, so the output saturates at 100 if there were gains
// and settles at the neutral 50 if the window was completely flat.
//
// The first period positions are NaN (the delta at t=0 is undefined and the
// rolling window needs period deltas).
func RSI(bars []model.OHLCV, period int) []float64 {
	out := nanSlice(len(bars))
	if period <= 0 || len(bars) < period+1 {
		return out
	}
	closes := extractCloses(bars)

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)
		switch {
		case avgLoss == 0 && avgGain == 0:
			out[i] = 50
		case avgLoss == 0:
			out[i] = 100
		default:
			rs := avgGain / avgLoss
			out[i] = 100 - 100/(1+rs)
		}
	}
	return out
}
