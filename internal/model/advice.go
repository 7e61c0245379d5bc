package model

// Advice is the categorical recommendation derived from the latest
// indicator values. Exactly one applies at any time.
type Advice string

const (
	AdviceOverbought Advice = "overbought"
	AdviceOversold   Advice = "oversold"
	AdviceNeutral    Advice = "neutral"
)

// Direction is the side of a target rule.
type Direction string

const (
	DirectionBuy  Direction = "buy"  // target reached when price falls to the threshold
	DirectionSell Direction = "sell" // target reached when price rises to the threshold
)

// TargetRule is a ticker's static target configuration.
type TargetRule struct {
	Threshold float64   `yaml:"target" json:"threshold"`
	Direction Direction `yaml:"action" json:"direction"`
}

// TargetStatus is the evaluation of a TargetRule against the current price.
type TargetStatus struct {
	Achieved bool    `json:"achieved"`
	Distance float64 `json:"distance"` // price - threshold, signed
	Percent  float64 `json:"percent"`  // distance / threshold * 100
}
