package indicator

import (
	"errors"
	"math"
)

// Bands holds one Bollinger evaluation: rolling mean plus and minus
// width standard deviations.
type Bands struct {
	Mid   float64
	Sigma float64
	Upper float64
	Lower float64
}

// BollingerSeries computes the bands for every point using the trailing
// period closes. The first period-1 slots are NaN (warm-up). Sigma is the
// sample standard deviation (n-1 divisor).
func BollingerSeries(closes []float64, period int, width float64) []Bands {
	out := make([]Bands, len(closes))
	nan := math.NaN()
	for i := range out {
		out[i] = Bands{Mid: nan, Sigma: nan, Upper: nan, Lower: nan}
	}
	if period <= 1 || len(closes) < period {
		return out
	}
	for i := period - 1; i < len(closes); i++ {
		out[i] = bandsAt(closes, i, period, width)
	}
	return out
}

// Bollinger computes the bands at the last point of the series.
func Bollinger(closes []float64, period int, width float64) (Bands, error) {
	if period <= 1 {
		return Bands{}, errors.New("period must be greater than one")
	}
	if len(closes) < period {
		return Bands{}, &InsufficientHistoryError{Indicator: "Bollinger", Need: period, Have: len(closes)}
	}
	return bandsAt(closes, len(closes)-1, period, width), nil
}

func bandsAt(closes []float64, i, period int, width float64) Bands {
	window := closes[i-period+1 : i+1]

	mean := 0.0
	for _, c := range window {
		mean += c
	}
	mean /= float64(period)

	// Sample variance: pandas' rolling .std() default.
	variance := 0.0
	for _, c := range window {
		d := c - mean
		variance += d * d
	}
	sigma := math.Sqrt(variance / float64(period-1))

	return Bands{
		Mid:   mean,
		Sigma: sigma,
		Upper: mean + width*sigma,
		Lower: mean - width*sigma,
	}
}
