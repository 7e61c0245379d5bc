package advice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"StockExpert/internal/model"
)

func TestEvaluateTarget_InclusiveAtEquality(t *testing.T) {
	buy := model.TargetRule{Threshold: 100, Direction: model.DirectionBuy}
	sell := model.TargetRule{Threshold: 100, Direction: model.DirectionSell}

	assert.True(t, EvaluateTarget(100, buy).Achieved)
	assert.True(t, EvaluateTarget(100, sell).Achieved)
}

func TestEvaluateTarget_Directions(t *testing.T) {
	buy := model.TargetRule{Threshold: 90, Direction: model.DirectionBuy}
	sell := model.TargetRule{Threshold: 110, Direction: model.DirectionSell}

	assert.False(t, EvaluateTarget(100, buy).Achieved)
	assert.True(t, EvaluateTarget(89, buy).Achieved)
	assert.False(t, EvaluateTarget(100, sell).Achieved)
	assert.True(t, EvaluateTarget(111, sell).Achieved)
}

func TestEvaluateTarget_Distances(t *testing.T) {
	buy := model.TargetRule{Threshold: 90, Direction: model.DirectionBuy}
	status := EvaluateTarget(100, buy)
	assert.InDelta(t, 10.0, status.Distance, 1e-12)
	assert.InDelta(t, 100.0/9.0, status.Percent, 1e-9) // 10/90*100

	sell := model.TargetRule{Threshold: 110, Direction: model.DirectionSell}
	status = EvaluateTarget(100, sell)
	assert.InDelta(t, -10.0, status.Distance, 1e-12)
	assert.InDelta(t, -100.0/11.0, status.Percent, 1e-9)
}
