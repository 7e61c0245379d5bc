package advice

import "StockExpert/internal/model"

// Thresholds for the momentum branches. Boundary values belong to the
// non-neutral branch.
const (
	OverboughtRSI = 70.0
	OversoldRSI   = 30.0
)

// Classify maps the latest indicator values to a recommendation. First match
// wins: overbought before oversold before neutral. An undefined (NaN) RSI or
// band never satisfies a comparison, so a ticker with unfilled windows
// classifies on whatever inputs remain defined.
func Classify(price, rsi, upperBand, lowerBand float64) model.Advice {
	switch {
	case rsi >= OverboughtRSI || price >= upperBand:
		return model.AdviceOverbought
	case rsi <= OversoldRSI || price <= lowerBand:
		return model.AdviceOversold
	default:
		return model.AdviceNeutral
	}
}

// ClassifyPoint is Classify over a full indicator point.
func ClassifyPoint(price float64, p model.IndicatorPoint) model.Advice {
	return Classify(price, p.RSI, p.UpperBand, p.LowerBand)
}
