package model

import "time"

// FundamentalSnapshot is a flat mapping of reported financial metrics.
// Every field is optional: a nil pointer means the provider did not report
// the metric, which is distinct from a reported zero.
type FundamentalSnapshot struct {
	Symbol    string
	FetchedAt time.Time

	// Valuation
	MarketCap   *float64
	TrailingPE  *float64
	ForwardPE   *float64
	PriceToBook *float64

	// Profitability
	ReturnOnEquity *float64
	ProfitMargin   *float64

	// Per-share
	EPS       *float64
	BookValue *float64

	// Financial health
	DebtToEquity *float64
	CurrentRatio *float64

	// Growth
	EarningsGrowth          *float64
	EarningsQuarterlyGrowth *float64
	RevenueGrowth           *float64

	// Analyst
	TargetMeanPrice    *float64
	RecommendationMean *float64
}

// Float dereferences an optional metric, reporting whether it was present.
func Float(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
