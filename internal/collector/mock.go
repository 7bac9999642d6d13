package collector

import (
	"fmt"
	"time"

	"StockSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	DailyData    map[string][]model.OHLCV
	IntradayData map[string][]model.OHLCV
	Fundamentals map[string]*model.FundamentalSnapshot
	Quotes       map[string]*model.Quote
	Price        float64
	Err          error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.DailyData[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.basePrice(), days, 24*time.Hour), nil
}

func (m *MockFetcher) FetchIntradayBars(symbol string) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if bars, ok := m.IntradayData[symbol]; ok {
		return bars, nil
	}
	return generateMockBars(m.basePrice(), 400, 15*time.Minute), nil
}

func (m *MockFetcher) FetchQuote(symbol string) (*model.Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if q, ok := m.Quotes[symbol]; ok {
		return q, nil
	}
	p := m.basePrice()
	return &model.Quote{
		Symbol:        symbol,
		CurrentPrice:  p,
		PreviousClose: p,
		High52w:       p * 1.2,
		Low52w:        p * 0.8,
	}, nil
}

func (m *MockFetcher) FetchFundamentals(symbol string) (*model.FundamentalSnapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if f, ok := m.Fundamentals[symbol]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("mock: no fundamentals for %s", symbol)
}

func (m *MockFetcher) basePrice() float64 {
	if m.Price != 0 {
		return m.Price
	}
	return 100
}

func generateMockBars(basePrice float64, count int, step time.Duration) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	start := time.Now().Add(-time.Duration(count) * step)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   start.Add(time.Duration(i) * step),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1_000_000,
		}
	}
	return bars
}
