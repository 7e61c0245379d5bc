package indicator

import (
	"errors"
	"math"
)

// RSISeries computes the RSI for every point of the series using plain
// rolling means of gains and losses over the trailing period diffs. The first
// period slots are NaN (warm-up). A window with losses averaging zero but
// gains above zero yields 100; a completely flat window has no momentum and
// yields NaN. Each value depends only on the trailing period+1 closes, so a
// truncated trailing window recomputes to the same values.
func RSISeries(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	if period <= 0 || len(closes) < period+1 {
		return out
	}
	for i := period; i < len(closes); i++ {
		out[i] = rsiAt(closes, i, period)
	}
	return out
}

// RSI computes the RSI at the last point of the series.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period+1 {
		return 0, &InsufficientHistoryError{Indicator: "RSI", Need: period + 1, Have: len(closes)}
	}
	return rsiAt(closes, len(closes)-1, period), nil
}

// rsiAt evaluates the oscillator at index i from diffs i-period+1..i.
func rsiAt(closes []float64, i, period int) float64 {
	var gain, loss float64
	for j := i - period + 1; j <= i; j++ {
		change := closes[j] - closes[j-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}
	avgGain := gain / float64(period)
	avgLoss := loss / float64(period)

	if avgLoss == 0 {
		if avgGain == 0 {
			return math.NaN() // flat window, 0/0
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
