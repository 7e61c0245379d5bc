// Package server exposes the latest analysis as a JSON HTTP API for the
// web UI. It only reads structured values; nothing here feeds back into
// the engine.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"StockExpert/internal/engine"
	"StockExpert/internal/fetcher"
	"StockExpert/internal/model"
)

// DefaultChartWindow is the trailing bar count rendered by the price chart.
const DefaultChartWindow = 40

// Server serves the dashboard API.
type Server struct {
	store  *ReportStore
	engine *engine.Engine
}

func New(store *ReportStore, eng *engine.Engine) *Server {
	return &Server{store: store, engine: eng}
}

// Router sets up the HTTP routes.
func (s *Server) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	mux.HandleFunc("GET /api/v1/reports", s.handleReports)
	mux.HandleFunc("GET /api/v1/reports/{symbol}", s.handleReport)
	mux.HandleFunc("GET /api/v1/series/{symbol}", s.handleSeries)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"updated_at": s.store.UpdatedAt().Format(time.RFC3339),
	})
}

// reportEntry is the wire shape of one ticker result; a failed ticker
// carries its error string instead of a report.
type reportEntry struct {
	Symbol string              `json:"symbol"`
	Report *model.TickerReport `json:"report,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func toEntry(r model.TickerResult) reportEntry {
	e := reportEntry{Symbol: r.Symbol, Report: r.Report}
	if r.Err != nil {
		e.Error = r.Err.Error()
	}
	return e
}

func (s *Server) handleReports(w http.ResponseWriter, _ *http.Request) {
	results := s.store.All()
	entries := make([]reportEntry, len(results))
	for i, r := range results {
		entries[i] = toEntry(r)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"updated_at": s.store.UpdatedAt().Format(time.RFC3339),
		"reports":    entries,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	result, ok := s.store.Get(symbol)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown symbol: "+symbol)
		return
	}
	writeJSON(w, http.StatusOK, toEntry(result))
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	if _, ok := s.store.Get(symbol); !ok {
		writeError(w, http.StatusNotFound, "unknown symbol: "+symbol)
		return
	}

	window := DefaultChartWindow
	if v := r.URL.Query().Get("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "window must be a positive integer")
			return
		}
		window = n
	}

	sw, err := s.engine.SeriesWindow(symbol, window)
	if err != nil {
		if fetcher.IsNoData(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("[ERROR] series window %s: %v", symbol, err)
		writeError(w, http.StatusInternalServerError, "series unavailable")
		return
	}
	writeJSON(w, http.StatusOK, sw)
}
