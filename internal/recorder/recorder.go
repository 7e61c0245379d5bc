package recorder

import "StockExpert/internal/model"

// Recorder persists refresh history for later analysis.
type Recorder interface {
	RecordReport(report *model.TickerReport) error
	RecordFailure(symbol string, err error) error
	Close() error
}
