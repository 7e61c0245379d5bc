// Package engine runs the per-ticker analysis pipeline: cached fetch,
// indicator computation, advice classification, target evaluation and
// forecast consumption.
package engine

import (
	"fmt"
	"log"
	"math"
	"time"

	"StockExpert/internal/advice"
	"StockExpert/internal/cache"
	"StockExpert/internal/fetcher"
	"StockExpert/internal/forecast"
	"StockExpert/internal/indicator"
	"StockExpert/internal/model"
)

// Ticker is one watched instrument with its target rule.
type Ticker struct {
	Symbol string
	Rule   model.TargetRule
}

// Options tunes the analysis pipeline.
type Options struct {
	Lookback   string        // provider range token, e.g. "2y"
	Interval   string        // sampling interval, e.g. "1d"
	Horizon    int           // forecast periods beyond the last close
	Freq       time.Duration // forecast sampling frequency
	FetchDelay time.Duration // externally imposed pause between provider fetches
	Now        func() time.Time
}

// Engine analyzes a fixed list of tickers sequentially. Tickers share
// nothing but the read-through series cache.
type Engine struct {
	fetcher    fetcher.Fetcher
	forecaster forecast.Forecaster // nil disables forecasting
	cache      *cache.SeriesCache
	tickers    []Ticker
	opts       Options
}

// New creates an Engine. The ticker list and options are fixed at
// construction; there is no module-level configuration.
func New(f fetcher.Fetcher, fc forecast.Forecaster, c *cache.SeriesCache, tickers []Ticker, opts Options) *Engine {
	if opts.Lookback == "" {
		opts.Lookback = "2y"
	}
	if opts.Interval == "" {
		opts.Interval = "1d"
	}
	if opts.Horizon == 0 {
		opts.Horizon = 14
	}
	if opts.Freq == 0 {
		opts.Freq = 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{
		fetcher:    f,
		forecaster: fc,
		cache:      c,
		tickers:    tickers,
		opts:       opts,
	}
}

// Tickers returns the watched ticker list.
func (e *Engine) Tickers() []Ticker { return e.tickers }

// series returns the cached series for symbol, fetching on a miss.
// The second return reports whether a provider fetch happened.
func (e *Engine) series(symbol string) (*model.PriceSeries, bool, error) {
	key := cache.Key{Symbol: symbol, Resolution: e.opts.Lookback + "/" + e.opts.Interval}
	if s, ok := e.cache.Get(key, e.opts.Now()); ok {
		return s, false, nil
	}
	s, err := e.fetcher.FetchSeries(symbol, e.opts.Lookback, e.opts.Interval)
	if err != nil {
		return nil, true, err
	}
	e.cache.Put(key, s, e.opts.Now())
	return s, true, nil
}

// AnalyzeTicker produces the full report for one ticker.
func (e *Engine) AnalyzeTicker(t Ticker) (*model.TickerReport, error) {
	report, _, err := e.analyze(t)
	return report, err
}

func (e *Engine) analyze(t Ticker) (*model.TickerReport, bool, error) {
	series, fetched, err := e.series(t.Symbol)
	if err != nil {
		return nil, fetched, err
	}

	last, ok := series.Last()
	if !ok {
		return nil, fetched, &fetcher.NoDataError{Symbol: t.Symbol, Reason: "empty series"}
	}
	price := last.Close
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fetched, &ComputeError{Symbol: t.Symbol, Err: fmt.Errorf("current price %v", price)}
	}
	prev := price
	if series.Len() > 1 {
		prev = series.Points[series.Len()-2].Close
	}

	set := indicator.ComputeSet(series)
	latest, _ := set.Latest()

	report := &model.TickerReport{
		Symbol:      t.Symbol,
		Name:        series.Name,
		Price:       price,
		PrevPrice:   prev,
		Change:      price - prev,
		Indicators:  latest,
		Advice:      advice.ClassifyPoint(price, latest),
		Target:      t.Rule,
		Status:      advice.EvaluateTarget(price, t.Rule),
		GeneratedAt: e.opts.Now(),
	}

	if e.forecaster != nil {
		points, err := e.forecaster.Forecast(series, e.opts.Horizon, e.opts.Freq)
		if err != nil {
			// Degraded report: the metrics stand on their own, the
			// next cache cycle retries the forecast.
			log.Printf("[WARN] forecast %s failed: %v", t.Symbol, err)
		} else {
			report.Forecast = forecast.Outlook(points, last.Time)
		}
	}

	return report, fetched, nil
}

// AnalyzeAll analyzes every ticker sequentially, isolating failures per
// ticker. The configured fetch delay applies only between provider fetches,
// never after a cache hit.
func (e *Engine) AnalyzeAll() []model.TickerResult {
	results := make([]model.TickerResult, 0, len(e.tickers))
	for i, t := range e.tickers {
		report, fetched, err := e.analyze(t)
		if err != nil {
			log.Printf("[WARN] analyze %s: %v", t.Symbol, err)
		}
		results = append(results, model.TickerResult{Symbol: t.Symbol, Report: report, Err: err})

		if fetched && e.opts.FetchDelay > 0 && i < len(e.tickers)-1 {
			time.Sleep(e.opts.FetchDelay)
		}
	}
	return results
}

// SeriesWindow recomputes the indicator series over the full lookback and
// returns the trailing window points for chart rendering. Values inside the
// window match a recompute on any longer trailing slice.
func (e *Engine) SeriesWindow(symbol string, window int) (*model.SeriesWindow, error) {
	series, _, err := e.series(symbol)
	if err != nil {
		return nil, err
	}
	set := indicator.ComputeSet(series)

	n := series.Len()
	if window <= 0 || window > n {
		window = n
	}
	return &model.SeriesWindow{
		Symbol:     symbol,
		Prices:     series.Points[n-window:],
		Indicators: set.Points[n-window:],
	}, nil
}
