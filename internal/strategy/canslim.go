package strategy

import (
	"fmt"
	"math"

	"StockSentinel/internal/model"
)

const canslimMinBars = 20

// Thresholds holds the configurable floors used by the supply and
// institutional criteria, expressed in the series' native currency.
type Thresholds struct {
	LiquidityFloor float64 // minimum 20-bar average daily turnover
	LargeCapFloor  float64 // market cap proxy for institutional sponsorship
}

// DefaultThresholds returns the standard floors: 50M turnover, 20B cap.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LiquidityFloor: 50_000_000,
		LargeCapFloor:  20_000_000_000,
	}
}

// ScoreCanslim evaluates the six CANSLIM criteria against price history and
// fundamentals. Every criterion is independent and reports a reason whether
// it passed or failed, so callers can render a full report card. The score
// is the count of passed criteria; Overall is true iff score >= 5.
func ScoreCanslim(symbol string, series *model.PriceSeries, fund *model.FundamentalSnapshot, th Thresholds) (*model.CriteriaReport, error) {
	if series.Len() < canslimMinBars {
		return nil, fmt.Errorf("%w: CANSLIM scorer needs %d bars, have %d", model.ErrInsufficientData, canslimMinBars, series.Len())
	}
	if fund == nil {
		fund = &model.FundamentalSnapshot{}
	}

	checks := []model.CriteriaCheck{
		checkCurrentEarnings(fund),
		checkAnnualEarnings(fund),
		checkNewHighs(series),
		checkSupply(series, th.LiquidityFloor),
		checkLeader(series),
		checkInstitutional(fund, th.LargeCapFloor),
	}

	score := 0
	for _, c := range checks {
		if c.Passed {
			score++
		}
	}

	tier := model.TierAvoid
	switch {
	case score >= 5:
		tier = model.TierStrongBuy
	case score >= 3:
		tier = model.TierWatchlist
	}

	return &model.CriteriaReport{
		Symbol:  symbol,
		Checks:  checks,
		Score:   score,
		Tier:    tier,
		Overall: score >= 5,
	}, nil
}

// C: quarterly earnings growth above 20%.
func checkCurrentEarnings(fund *model.FundamentalSnapshot) model.CriteriaCheck {
	c := model.CriteriaCheck{Name: "C (Current Earnings)"}
	growth, ok := model.Float(fund.EarningsQuarterlyGrowth)
	if !ok {
		c.Reason = "Quarterly earnings growth not reported"
		return c
	}
	c.Passed = growth > 0.20
	verdict := "below"
	if c.Passed {
		verdict = "above"
	}
	c.Reason = fmt.Sprintf("Quarterly earnings growth %.1f%% is %s the 20%% bar", growth*100, verdict)
	return c
}

// A: annual earnings growth above 15%, or ROE above 17%.
func checkAnnualEarnings(fund *model.FundamentalSnapshot) model.CriteriaCheck {
	c := model.CriteriaCheck{Name: "A (Annual Earnings)"}
	growth, hasGrowth := model.Float(fund.EarningsGrowth)
	roe, hasROE := model.Float(fund.ReturnOnEquity)
	if !hasGrowth && !hasROE {
		c.Reason = "Annual earnings growth and ROE not reported"
		return c
	}
	switch {
	case hasGrowth && growth > 0.15:
		c.Passed = true
		c.Reason = fmt.Sprintf("Annual earnings growth %.1f%% above the 15%% bar", growth*100)
	case hasROE && roe > 0.17:
		c.Passed = true
		c.Reason = fmt.Sprintf("Return on equity %.1f%% above the 17%% bar", roe*100)
	case hasGrowth && hasROE:
		c.Reason = fmt.Sprintf("Annual growth %.1f%% and ROE %.1f%% both below their bars", growth*100, roe*100)
	case hasGrowth:
		c.Reason = fmt.Sprintf("Annual earnings growth %.1f%% below the 15%% bar, ROE not reported", growth*100)
	default:
		c.Reason = fmt.Sprintf("Return on equity %.1f%% below the 17%% bar, annual growth not reported", roe*100)
	}
	return c
}

// N: close within 15% of the trailing-year high.
func checkNewHighs(series *model.PriceSeries) model.CriteriaCheck {
	c := model.CriteriaCheck{Name: "N (New Highs)"}
	bars := series.Bars
	start := len(bars) - 252
	if start < 0 {
		start = 0
	}
	high := math.Inf(-1)
	for _, b := range bars[start:] {
		if b.High > high {
			high = b.High
		}
	}
	closeLast := series.Last().Close
	if high <= 0 {
		c.Reason = "No valid trailing-year high"
		return c
	}
	off := (high - closeLast) / high * 100
	c.Passed = off <= 15
	c.Reason = fmt.Sprintf("Price %.1f%% off the 52-week high of %.2f", off, high)
	return c
}

// S: 20-bar average daily turnover above the liquidity floor.
func checkSupply(series *model.PriceSeries, floor float64) model.CriteriaCheck {
	c := model.CriteriaCheck{Name: "S (Supply/Liquidity)"}
	bars := series.Bars[len(series.Bars)-20:]
	var volSum, closeSum float64
	for _, b := range bars {
		volSum += b.Volume
		closeSum += b.Close
	}
	turnover := (volSum / 20) * (closeSum / 20)
	c.Passed = turnover > floor
	verdict := "below"
	if c.Passed {
		verdict = "above"
	}
	c.Reason = fmt.Sprintf("Average daily turnover %.0f is %s the %.0f floor", turnover, verdict, floor)
	return c
}

// L: one-year absolute return above 20%.
func checkLeader(series *model.PriceSeries) model.CriteriaCheck {
	c := model.CriteriaCheck{Name: "L (Leader)"}
	bars := series.Bars
	start := len(bars) - 252
	if start < 0 {
		start = 0
	}
	base := bars[start].Close
	if base == 0 {
		c.Reason = "No valid year-ago close"
		return c
	}
	ret := (series.Last().Close - base) / base
	c.Passed = ret > 0.20
	verdict := "below"
	if c.Passed {
		verdict = "above"
	}
	c.Reason = fmt.Sprintf("One-year return %.1f%% is %s the 20%% bar", ret*100, verdict)
	return c
}

// I: market cap above the large-cap floor, a proxy for institutional
// sponsorship when holding data is unavailable.
func checkInstitutional(fund *model.FundamentalSnapshot, floor float64) model.CriteriaCheck {
	c := model.CriteriaCheck{Name: "I (Institutional)"}
	cap, ok := model.Float(fund.MarketCap)
	if !ok {
		c.Reason = "Market cap not reported"
		return c
	}
	c.Passed = cap > floor
	verdict := "below"
	if c.Passed {
		verdict = "above"
	}
	c.Reason = fmt.Sprintf("Market cap %.0f is %s the %.0f large-cap floor", cap, verdict, floor)
	return c
}
