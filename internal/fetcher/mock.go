package fetcher

import (
	"time"

	"StockExpert/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string]*model.PriceSeries
	Err    map[string]error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(symbol, _, _ string) (*model.PriceSeries, error) {
	m.Calls++
	if err, ok := m.Err[symbol]; ok {
		return nil, err
	}
	if s, ok := m.Series[symbol]; ok {
		return s, nil
	}
	return nil, &NoDataError{Symbol: symbol, Reason: "not mocked"}
}

// GenerateSeries builds a deterministic daily series ending today, useful for
// tests and local development without network access.
func GenerateSeries(symbol string, closes []float64) *model.PriceSeries {
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -len(closes))
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{
			Time:  start.AddDate(0, 0, i),
			Close: c,
		}
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Name:      symbol,
		Points:    points,
		FetchedAt: time.Now(),
	}
}
