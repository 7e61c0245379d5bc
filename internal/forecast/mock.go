package forecast

import (
	"time"

	"StockExpert/internal/model"
)

// MockForecaster returns fixed or synthesized predictions for tests.
type MockForecaster struct {
	Points []model.ForecastPoint
	Err    error
}

func (m *MockForecaster) Name() string { return "mock" }

// Forecast returns the configured points, or extends the last close flat
// across history plus horizon when none are set.
func (m *MockForecaster) Forecast(series *model.PriceSeries, horizon int, freq time.Duration) ([]model.ForecastPoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Points != nil {
		return m.Points, nil
	}
	last, ok := series.Last()
	if !ok {
		return nil, nil
	}
	points := make([]model.ForecastPoint, 0, series.Len()+horizon)
	for _, p := range series.Points {
		points = append(points, model.ForecastPoint{Time: p.Time, Value: p.Close})
	}
	for i := 1; i <= horizon; i++ {
		points = append(points, model.ForecastPoint{
			Time:  last.Time.Add(time.Duration(i) * freq),
			Value: last.Close,
		})
	}
	return points, nil
}
