package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"StockExpert/internal/engine"
	"StockExpert/internal/model"
	"StockExpert/internal/notifier"
	"StockExpert/internal/recorder"
	"StockExpert/internal/server"

	"github.com/robfig/cron/v3"
)

// alertState remembers what was last pushed for a ticker so alerts fire on
// transitions, not on every refresh of an unchanged condition.
type alertState struct {
	achieved bool
	advice   model.Advice
}

// Scheduler drives the periodic refresh cycle.
type Scheduler struct {
	Cron     *cron.Cron
	Engine   *engine.Engine
	Store    *server.ReportStore
	Notifier notifier.Notifier
	Recorder recorder.Recorder
	Ctx      context.Context

	mu   sync.Mutex
	seen map[string]alertState
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, eng *engine.Engine, store *server.ReportStore, n notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Engine:   eng,
		Store:    store,
		Notifier: n,
		Recorder: rec,
		Ctx:      ctx,
		seen:     make(map[string]alertState),
	}
}

// Register registers the refresh task.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refresh); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh cycle immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refresh()
}

func (s *Scheduler) refresh() {
	log.Println("[INFO] running refresh cycle")
	results := s.Engine.AnalyzeAll()
	s.Store.SetAll(results, time.Now())

	ok := 0
	for _, res := range results {
		if res.Err != nil || res.Report == nil {
			if err := s.Recorder.RecordFailure(res.Symbol, res.Err); err != nil {
				log.Printf("[ERROR] record failure %s: %v", res.Symbol, err)
			}
			continue
		}
		ok++
		if err := s.Recorder.RecordReport(res.Report); err != nil {
			log.Printf("[ERROR] record report %s: %v", res.Symbol, err)
		}
		s.maybeAlert(res.Report)
	}
	log.Printf("[INFO] refresh done: %d/%d tickers ok", ok, len(results))
}

// maybeAlert pushes a notification when a ticker newly reaches its target or
// its advice moves away from neutral.
func (s *Scheduler) maybeAlert(r *model.TickerReport) {
	s.mu.Lock()
	prev, known := s.seen[r.Symbol]
	cur := alertState{achieved: r.Status.Achieved, advice: r.Advice}
	s.seen[r.Symbol] = cur
	s.mu.Unlock()

	newlyAchieved := cur.achieved && (!known || !prev.achieved)
	newAdvice := cur.advice != model.AdviceNeutral && (!known || prev.advice != cur.advice)
	if !newlyAchieved && !newAdvice {
		return
	}
	s.trySend(notifier.FormatAlert(r))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/report":
		if len(fields) > 1 {
			symbol := strings.ToUpper(fields[1])
			res, ok := s.Store.Get(symbol)
			if !ok {
				return fmt.Sprintf("unknown symbol: %s", symbol)
			}
			if res.Err != nil || res.Report == nil {
				return fmt.Sprintf("%s: last refresh failed: %v", symbol, res.Err)
			}
			return notifier.FormatReport(res.Report)
		}
		return notifier.FormatBatch(s.Store.All())
	case "/status":
		results := s.Store.All()
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		return fmt.Sprintf("tickers: %d (%d failed)\nlast refresh: %s",
			len(results), failed, s.Store.UpdatedAt().Format("2006-01-02 15:04:05"))
	case "/refresh":
		go s.RunNow()
		return "refresh started"
	default:
		return "commands:\n/report [SYMBOL]\n/status\n/refresh"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
