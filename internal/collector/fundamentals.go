package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"StockSentinel/internal/model"
)

// YahooFundamentals fetches company fundamentals from the Yahoo Finance
// quoteSummary API. Metrics Yahoo does not report for a symbol stay nil in
// the snapshot so callers can tell "absent" from "zero".
type YahooFundamentals struct {
	Client       *http.Client
	SymbolSuffix string
}

func NewYahooFundamentals(symbolSuffix, proxyURL string) *YahooFundamentals {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFundamentals{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		SymbolSuffix: symbolSuffix,
	}
}

// rawValue is Yahoo's number wrapper: {"raw": 0.17, "fmt": "17.00%"}. Raw is
// a pointer so a missing metric decodes as nil rather than zero.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

type quoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price struct {
				MarketCap rawValue `json:"marketCap"`
			} `json:"price"`
			DefaultKeyStatistics struct {
				TrailingEPS             rawValue `json:"trailingEps"`
				ForwardPE               rawValue `json:"forwardPE"`
				PriceToBook             rawValue `json:"priceToBook"`
				BookValue               rawValue `json:"bookValue"`
				EarningsQuarterlyGrowth rawValue `json:"earningsQuarterlyGrowth"`
			} `json:"defaultKeyStatistics"`
			FinancialData struct {
				ReturnOnEquity     rawValue `json:"returnOnEquity"`
				ProfitMargins      rawValue `json:"profitMargins"`
				DebtToEquity       rawValue `json:"debtToEquity"`
				CurrentRatio       rawValue `json:"currentRatio"`
				EarningsGrowth     rawValue `json:"earningsGrowth"`
				RevenueGrowth      rawValue `json:"revenueGrowth"`
				TargetMeanPrice    rawValue `json:"targetMeanPrice"`
				RecommendationMean rawValue `json:"recommendationMean"`
			} `json:"financialData"`
			SummaryDetail struct {
				TrailingPE rawValue `json:"trailingPE"`
			} `json:"summaryDetail"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (f *YahooFundamentals) FetchFundamentals(symbol string) (*model.FundamentalSnapshot, error) {
	ticker := symbol
	if len(ticker) > 0 && ticker[0] != '^' {
		ticker += f.SymbolSuffix
	}
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=price,summaryDetail,defaultKeyStatistics,financialData",
		url.PathEscape(ticker))

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fundamentals fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fundamentals read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fundamentals: status %d, body: %s", resp.StatusCode, string(body))
	}

	var qs quoteSummary
	if err := json.Unmarshal(body, &qs); err != nil {
		return nil, fmt.Errorf("fundamentals decode: %w", err)
	}
	if qs.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("fundamentals api error: %s", qs.QuoteSummary.Error.Description)
	}
	if len(qs.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("fundamentals: no data returned for %s", symbol)
	}

	r := qs.QuoteSummary.Result[0]
	return &model.FundamentalSnapshot{
		Symbol:                  symbol,
		FetchedAt:               time.Now(),
		MarketCap:               r.Price.MarketCap.Raw,
		TrailingPE:              r.SummaryDetail.TrailingPE.Raw,
		ForwardPE:               r.DefaultKeyStatistics.ForwardPE.Raw,
		PriceToBook:             r.DefaultKeyStatistics.PriceToBook.Raw,
		ReturnOnEquity:          r.FinancialData.ReturnOnEquity.Raw,
		ProfitMargin:            r.FinancialData.ProfitMargins.Raw,
		EPS:                     r.DefaultKeyStatistics.TrailingEPS.Raw,
		BookValue:               r.DefaultKeyStatistics.BookValue.Raw,
		DebtToEquity:            r.FinancialData.DebtToEquity.Raw,
		CurrentRatio:            r.FinancialData.CurrentRatio.Raw,
		EarningsGrowth:          r.FinancialData.EarningsGrowth.Raw,
		EarningsQuarterlyGrowth: r.DefaultKeyStatistics.EarningsQuarterlyGrowth.Raw,
		RevenueGrowth:           r.FinancialData.RevenueGrowth.Raw,
		TargetMeanPrice:         r.FinancialData.TargetMeanPrice.Raw,
		RecommendationMean:      r.FinancialData.RecommendationMean.Raw,
	}, nil
}
