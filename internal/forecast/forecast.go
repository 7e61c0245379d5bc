// Package forecast talks to the external additive-model forecasting service
// and slices its output down to what the dashboard consumes.
package forecast

import (
	"time"

	"StockExpert/internal/model"
)

// Forecaster produces predicted values covering the historical range plus
// horizon additional periods at the given sampling frequency.
type Forecaster interface {
	Forecast(series *model.PriceSeries, horizon int, freq time.Duration) ([]model.ForecastPoint, error)
	Name() string
}

// Future returns the points strictly after the last historical timestamp.
func Future(points []model.ForecastPoint, lastHistorical time.Time) []model.ForecastPoint {
	for i, p := range points {
		if p.Time.After(lastHistorical) {
			return points[i:]
		}
	}
	return nil
}

// At returns the point estimate offset periods into the future subsequence
// (0 = next period). The boolean is false when the horizon is too short.
func At(future []model.ForecastPoint, offset int) (float64, bool) {
	if offset < 0 || offset >= len(future) {
		return 0, false
	}
	return future[offset].Value, true
}

// Outlook assembles the dashboard's view of a forecast: the future
// subsequence plus the next-period and one-week-ahead estimates.
func Outlook(points []model.ForecastPoint, lastHistorical time.Time) *model.ForecastOutlook {
	future := Future(points, lastHistorical)
	if len(future) == 0 {
		return nil
	}
	out := &model.ForecastOutlook{Points: future}
	if v, ok := At(future, 0); ok {
		out.NextValue = v
	}
	if v, ok := At(future, 6); ok {
		out.WeekValue = v
	}
	return out
}
