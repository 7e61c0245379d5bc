package indicator

import "StockExpert/internal/model"

// ComputeSet derives the full per-timestamp indicator series for a price
// series using the standard dashboard windows. Warm-up slots come back NaN.
func ComputeSet(series *model.PriceSeries) *model.IndicatorSet {
	closes := series.Closes()
	rsi := RSISeries(closes, RSIPeriod)
	bands := BollingerSeries(closes, BandPeriod, BandWidth)

	set := &model.IndicatorSet{
		Symbol: series.Symbol,
		Points: make([]model.IndicatorPoint, len(closes)),
	}
	for i := range closes {
		set.Points[i] = model.IndicatorPoint{
			Time:      series.Points[i].Time,
			RSI:       rsi[i],
			MA20:      bands[i].Mid,
			StdDev20:  bands[i].Sigma,
			UpperBand: bands[i].Upper,
			LowerBand: bands[i].Lower,
		}
	}
	return set
}
