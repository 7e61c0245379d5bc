package model

import (
	"encoding/json"
	"math"
	"time"
)

// IndicatorPoint holds the derived indicator values for one timestamp.
// Warm-up slots (first 14 points for RSI, first 19 for the bands) are NaN.
type IndicatorPoint struct {
	Time      time.Time
	RSI       float64
	MA20      float64
	StdDev20  float64
	UpperBand float64
	LowerBand float64
}

// IndicatorSet is the per-timestamp indicator series derived from a PriceSeries.
type IndicatorSet struct {
	Symbol string
	Points []IndicatorPoint
}

// MarshalJSON encodes NaN warm-up slots as null so the set survives
// encoding/json, which rejects NaN.
func (p IndicatorPoint) MarshalJSON() ([]byte, error) {
	opt := func(v float64) *float64 {
		if math.IsNaN(v) {
			return nil
		}
		return &v
	}
	return json.Marshal(struct {
		Time      time.Time `json:"time"`
		RSI       *float64  `json:"rsi"`
		MA20      *float64  `json:"ma20"`
		StdDev20  *float64  `json:"std_dev20"`
		UpperBand *float64  `json:"upper_band"`
		LowerBand *float64  `json:"lower_band"`
	}{p.Time, opt(p.RSI), opt(p.MA20), opt(p.StdDev20), opt(p.UpperBand), opt(p.LowerBand)})
}

// Latest returns the most recent indicator point. The boolean is false for an
// empty set.
func (s *IndicatorSet) Latest() (IndicatorPoint, bool) {
	if len(s.Points) == 0 {
		return IndicatorPoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Defined reports whether an indicator value is past its warm-up window.
func Defined(v float64) bool { return !math.IsNaN(v) }
