package indicator

import (
	"errors"
	"fmt"
)

// Standard windows used by the dashboard.
const (
	RSIPeriod  = 14
	BandPeriod = 20
	BandWidth  = 2.0
)

// InsufficientHistoryError means a series is shorter than the minimum window
// an indicator needs. Callers report the indicator as undefined instead of
// treating this as a failure.
type InsufficientHistoryError struct {
	Indicator string
	Need      int
	Have      int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("%s: need %d points, have %d", e.Indicator, e.Need, e.Have)
}

// IsInsufficientHistory reports whether err is an InsufficientHistoryError.
func IsInsufficientHistory(err error) bool {
	var ihe *InsufficientHistoryError
	return errors.As(err, &ihe)
}

// SMA computes the simple moving average over the trailing period.
func SMA(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(closes) < period {
		return 0, &InsufficientHistoryError{Indicator: "SMA", Need: period, Have: len(closes)}
	}
	sum := 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(period), nil
}
