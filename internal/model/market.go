package model

import (
	"fmt"
	"math"
	"time"
)

// PricePoint is a single (timestamp, closing price) observation.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds the daily closing history for one ticker.
// Points are ordered by strictly increasing timestamp.
type PriceSeries struct {
	Symbol    string
	Name      string // display name from the data source, falls back to Symbol
	Points    []PricePoint
	FetchedAt time.Time
}

// Len returns the number of points in the series.
func (s *PriceSeries) Len() int { return len(s.Points) }

// Closes extracts the closing prices in order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Last returns the most recent point. The boolean is false for an empty series.
func (s *PriceSeries) Last() (PricePoint, bool) {
	if len(s.Points) == 0 {
		return PricePoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Tail returns the trailing n points (the whole series when shorter).
func (s *PriceSeries) Tail(n int) []PricePoint {
	if n >= len(s.Points) {
		return s.Points
	}
	return s.Points[len(s.Points)-n:]
}

// Validate checks the series invariants: strictly increasing timestamps and
// positive finite closes.
func (s *PriceSeries) Validate() error {
	for i, p := range s.Points {
		if p.Close <= 0 || math.IsNaN(p.Close) || math.IsInf(p.Close, 0) {
			return fmt.Errorf("series %s: point %d has invalid close %v", s.Symbol, i, p.Close)
		}
		if i > 0 && !s.Points[i-1].Time.Before(p.Time) {
			return fmt.Errorf("series %s: point %d timestamp %s not after %s",
				s.Symbol, i, p.Time.Format("2006-01-02"), s.Points[i-1].Time.Format("2006-01-02"))
		}
	}
	return nil
}
