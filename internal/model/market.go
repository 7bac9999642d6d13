package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds raw price data for one symbol. Bars are ordered by
// strictly increasing timestamp with no duplicates. The series is owned by
// the caller for the duration of one analysis call; evaluators never mutate it.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Len returns the number of bars in the series.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Closes extracts the close column.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Last returns the most recent bar. The series must be non-empty.
func (s *PriceSeries) Last() OHLCV { return s.Bars[len(s.Bars)-1] }

// Quote holds the current market snapshot of a symbol used in analysis reports.
type Quote struct {
	Symbol         string
	CurrentPrice   float64
	PreviousClose  float64
	DailyChangePct float64
	High52w        float64
	Low52w         float64
}
