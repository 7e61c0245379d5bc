package advice

import "StockExpert/internal/model"

// EvaluateTarget checks the current price against a ticker's target rule.
// Achievement is inclusive at equality: a buy target is reached when the
// price has fallen to or below the threshold, a sell target when it has risen
// to or above it. Distance is signed (price - threshold), Percent is the
// distance relative to the threshold.
func EvaluateTarget(price float64, rule model.TargetRule) model.TargetStatus {
	status := model.TargetStatus{
		Distance: price - rule.Threshold,
	}
	if rule.Threshold != 0 {
		status.Percent = status.Distance / rule.Threshold * 100
	}
	switch rule.Direction {
	case model.DirectionBuy:
		status.Achieved = price <= rule.Threshold
	case model.DirectionSell:
		status.Achieved = price >= rule.Threshold
	}
	return status
}
