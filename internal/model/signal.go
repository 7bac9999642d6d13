package model

// DipSignal is the result of the buy-the-dip evaluator. It is pure derived
// data, recomputed on every call and never mutated after creation.
type DipSignal struct {
	Symbol        string
	HasSignal     bool
	Reason        string // comma-separated reasons, oversold first; "No signal" when empty
	RSI           float64
	PctBelowSMA20 float64
	SMA200Trend   string // "Positive" or "Negative"
	CurrentPrice  float64
}

// Market trend states, in priority order.
const (
	TrendUptrend       = "Uptrend"
	TrendUnderPressure = "Uptrend Under Pressure"
	TrendCorrection    = "Market in Correction"
	TrendError         = "Error"
)

// TrendState classifies the overall market regime from a benchmark index.
type TrendState struct {
	State  string
	Color  string // green / orange / red / grey
	Reason string // failure reason, set only for the Error state
	Close  float64
	SMA50  float64
	SMA200 float64
}

// CriteriaCheck is one CANSLIM criterion's verdict.
type CriteriaCheck struct {
	Name   string
	Passed bool
	Reason string
}

// CANSLIM tiers.
const (
	TierStrongBuy = "Strong Buy Candidate"
	TierWatchlist = "Watchlist Candidate"
	TierAvoid     = "Avoid"
)

// CriteriaReport aggregates the six CANSLIM criteria for one symbol.
// All six checks are always present regardless of tier.
type CriteriaReport struct {
	Symbol  string
	Checks  []CriteriaCheck
	Score   int // number of passed criteria, 0-6
	Tier    string
	Overall bool // true iff Score >= 5
}

// Prediction directions.
const (
	DirectionBullish = "Bullish"
	DirectionBearish = "Bearish"
)

// Prediction is the outcome of a next-bar probability inference.
type Prediction struct {
	Symbol     string
	ProbUp     float64 // P(next close > current close), in [0,1]
	Direction  string  // Bullish if ProbUp > 0.5, else Bearish
	Confidence float64 // max(ProbUp, 1-ProbUp)
}
