package server

import (
	"sync"
	"time"

	"StockExpert/internal/model"
)

// ReportStore holds the latest refresh results for the HTTP API and the
// command handler. The scheduler replaces the whole set on every cycle.
type ReportStore struct {
	mu        sync.RWMutex
	results   map[string]model.TickerResult
	order     []string
	updatedAt time.Time
}

func NewReportStore() *ReportStore {
	return &ReportStore{results: make(map[string]model.TickerResult)}
}

// SetAll replaces the stored results, preserving batch order.
func (s *ReportStore) SetAll(results []model.TickerResult, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = make(map[string]model.TickerResult, len(results))
	s.order = s.order[:0]
	for _, r := range results {
		s.results[r.Symbol] = r
		s.order = append(s.order, r.Symbol)
	}
	s.updatedAt = now
}

// All returns the stored results in batch order.
func (s *ReportStore) All() []model.TickerResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.TickerResult, 0, len(s.order))
	for _, sym := range s.order {
		out = append(out, s.results[sym])
	}
	return out
}

// Get returns the stored result for one symbol.
func (s *ReportStore) Get(symbol string) (model.TickerResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[symbol]
	return r, ok
}

// UpdatedAt returns the time of the last completed refresh.
func (s *ReportStore) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
