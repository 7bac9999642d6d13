// Package collector fetches market data and assembles validated bar series
// for the strategy and prediction layers.
package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"StockSentinel/internal/model"
)

// Collector orchestrates data fetching and series validation.
type Collector struct {
	Fetcher      Fetcher
	Fundamentals FundamentalsFetcher
	Log          zerolog.Logger
}

func New(fetcher Fetcher, fundamentals FundamentalsFetcher, log zerolog.Logger) *Collector {
	return &Collector{Fetcher: fetcher, Fundamentals: fundamentals, Log: log}
}

// DailySeries fetches daily bars and returns them as a validated series.
func (c *Collector) DailySeries(symbol string, days int) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	return newSeries(symbol, bars)
}

// IntradaySeries fetches the intraday candle history used by the predictive
// pipeline.
func (c *Collector) IntradaySeries(symbol string) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchIntradayBars(symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch intraday bars for %s: %w", symbol, err)
	}
	return newSeries(symbol, bars)
}

// Snapshot bundles everything the CANSLIM scorer needs for one symbol. A
// fundamentals failure is logged and degrades to a nil snapshot rather than
// failing the whole symbol: the scorer treats missing metrics as failed
// criteria with an explanation.
func (c *Collector) Snapshot(symbol string, days int) (*model.PriceSeries, *model.FundamentalSnapshot, error) {
	series, err := c.DailySeries(symbol, days)
	if err != nil {
		return nil, nil, err
	}
	var fund *model.FundamentalSnapshot
	if c.Fundamentals != nil {
		fund, err = c.Fundamentals.FetchFundamentals(symbol)
		if err != nil {
			c.Log.Warn().Str("symbol", symbol).Err(err).Msg("fundamentals unavailable, scoring on price action only")
			fund = nil
		}
	}
	return series, fund, nil
}

// newSeries sorts the bars, drops duplicate timestamps, and rejects empty
// input, so downstream code can assume strictly increasing time order.
func newSeries(symbol string, bars []model.OHLCV) (*model.PriceSeries, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: no bars returned for %s", model.ErrInsufficientData, symbol)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	clean := bars[:1]
	for _, b := range bars[1:] {
		if !b.Time.After(clean[len(clean)-1].Time) {
			continue
		}
		clean = append(clean, b)
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Bars:      clean,
		FetchedAt: time.Now(),
	}, nil
}
