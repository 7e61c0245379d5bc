package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ascending(n int, start float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)
	}
	return closes
}

func constant(n int, v float64) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = v
	}
	return closes
}

func TestRSISeries_Warmup(t *testing.T) {
	series := RSISeries(ascending(30, 100), RSIPeriod)
	require.Len(t, series, 30)
	for i := 0; i < RSIPeriod; i++ {
		assert.True(t, math.IsNaN(series[i]), "index %d should be warm-up", i)
	}
	for i := RSIPeriod; i < 30; i++ {
		assert.False(t, math.IsNaN(series[i]), "index %d should be defined", i)
	}
}

func TestRSI_MonotonicUp(t *testing.T) {
	rsi, err := RSI(ascending(30, 100), RSIPeriod)
	require.NoError(t, err)
	assert.Equal(t, 100.0, rsi)
}

func TestRSI_MonotonicDown(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	rsi, err := RSI(closes, RSIPeriod)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rsi)
}

func TestRSI_FlatSeriesUndefined(t *testing.T) {
	// 0/0: no gains, no losses. Must come back NaN, never panic or error.
	rsi, err := RSI(constant(25, 42.5), RSIPeriod)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rsi))
}

func TestRSI_BalancedMoves(t *testing.T) {
	// Alternating +2/-1 over the window: avg gain 1.0, avg loss 0.5,
	// rs = 2, rsi = 100 - 100/3.
	closes := []float64{100}
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			closes = append(closes, closes[len(closes)-1]+2)
		} else {
			closes = append(closes, closes[len(closes)-1]-1)
		}
	}
	rsi, err := RSI(closes, RSIPeriod)
	require.NoError(t, err)
	assert.InDelta(t, 100.0-100.0/3.0, rsi, 1e-9)
}

func TestRSI_InsufficientHistory(t *testing.T) {
	_, err := RSI(ascending(RSIPeriod, 100), RSIPeriod) // needs period+1
	require.Error(t, err)
	assert.True(t, IsInsufficientHistory(err))
}

func TestRSISeries_WindowInvariance(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)*0.7) + 0.05*float64(i)
	}
	full := RSISeries(closes, RSIPeriod)
	trunc := RSISeries(closes[60:], RSIPeriod)

	for i := RSIPeriod; i < len(trunc); i++ {
		assert.InDelta(t, full[60+i], trunc[i], 1e-12, "truncated index %d", i)
	}
}
