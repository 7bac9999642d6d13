package collector

import "StockSentinel/internal/model"

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	FetchIntradayBars(symbol string) ([]model.OHLCV, error)
	FetchQuote(symbol string) (*model.Quote, error)
	Name() string
}

// FundamentalsFetcher fetches company fundamentals. Kept separate from
// Fetcher because not every data source exposes them.
type FundamentalsFetcher interface {
	FetchFundamentals(symbol string) (*model.FundamentalSnapshot, error)
}
