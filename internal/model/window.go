package model

// SeriesWindow is a trailing display window of prices with their indicator
// values, shaped for chart rendering.
type SeriesWindow struct {
	Symbol     string           `json:"symbol"`
	Prices     []PricePoint     `json:"prices"`
	Indicators []IndicatorPoint `json:"indicators"`
}
