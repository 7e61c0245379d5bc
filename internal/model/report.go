package model

import "time"

// ForecastPoint is one predicted value from the forecasting provider.
type ForecastPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
	Lower float64   `json:"lower,omitempty"`
	Upper float64   `json:"upper,omitempty"`
}

// ForecastOutlook is the slice of the forecast the dashboard consumes:
// the points strictly after the last historical timestamp plus the point
// estimates at fixed horizon offsets.
type ForecastOutlook struct {
	NextValue float64         `json:"next_value"` // next period's estimate
	WeekValue float64         `json:"week_value"` // seven periods ahead
	Points    []ForecastPoint `json:"points"`     // future subsequence
}

// TickerReport is the full analysis result for one ticker at one refresh.
type TickerReport struct {
	Symbol      string           `json:"symbol"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	PrevPrice   float64          `json:"prev_price"`
	Change      float64          `json:"change"` // price - prev_price
	Indicators  IndicatorPoint   `json:"indicators"`
	Advice      Advice           `json:"advice"`
	Target      TargetRule       `json:"target"`
	Status      TargetStatus     `json:"target_status"`
	Forecast    *ForecastOutlook `json:"forecast,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// TickerResult pairs a ticker with either its report or the error that kept
// one from being produced. A failed ticker never aborts the batch.
type TickerResult struct {
	Symbol string
	Report *TickerReport
	Err    error
}
