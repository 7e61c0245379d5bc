package recorder

import "StockExpert/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordReport(_ *model.TickerReport) error { return nil }
func (n *NoopRecorder) RecordFailure(_ string, _ error) error    { return nil }
func (n *NoopRecorder) Close() error                             { return nil }
