package strategy

import (
	"fmt"

	"StockSentinel/internal/indicator"
	"StockSentinel/internal/model"
)

const trendMinBars = 200

// ClassifyMarket classifies the overall market regime from a benchmark
// index series using the 50- and 200-day SMAs. The three regular states are
// mutually exclusive and checked in priority order:
//
//	Uptrend                close > SMA200 and SMA50 > SMA200
//	Uptrend Under Pressure close > SMA200, SMA50 has slipped below SMA200
//	Market in Correction   close <= SMA200
//
// A series shorter than 200 bars yields the Error sentinel state.
func ClassifyMarket(series *model.PriceSeries) model.TrendState {
	n := series.Len()
	if n < trendMinBars {
		return MarketUnavailable(fmt.Errorf("%w: trend classifier needs %d bars, have %d", model.ErrInsufficientData, trendMinBars, n))
	}

	sma50 := indicator.SMA(series.Bars, 50)
	sma200 := indicator.SMA(series.Bars, 200)
	closeLast := series.Last().Close
	sma50Last := sma50[n-1]
	sma200Last := sma200[n-1]

	st := model.TrendState{
		Close:  closeLast,
		SMA50:  sma50Last,
		SMA200: sma200Last,
	}
	switch {
	case closeLast > sma200Last && sma50Last > sma200Last:
		st.State = model.TrendUptrend
		st.Color = "green"
	case closeLast > sma200Last:
		st.State = model.TrendUnderPressure
		st.Color = "orange"
	default:
		st.State = model.TrendCorrection
		st.Color = "red"
	}
	return st
}

// MarketUnavailable builds the Error sentinel state carrying the failure
// reason, used when the benchmark series could not be fetched or is too
// short to classify.
func MarketUnavailable(err error) model.TrendState {
	return model.TrendState{
		State:  model.TrendError,
		Color:  "grey",
		Reason: err.Error(),
	}
}
