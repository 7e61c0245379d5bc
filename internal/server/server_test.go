package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockExpert/internal/cache"
	"StockExpert/internal/engine"
	"StockExpert/internal/fetcher"
	"StockExpert/internal/model"
)

func testFixture(t *testing.T) (*Server, *ReportStore) {
	t.Helper()

	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	mf := &fetcher.MockFetcher{Series: map[string]*model.PriceSeries{
		"AAA": fetcher.GenerateSeries("AAA", closes),
	}}
	eng := engine.New(mf, nil, cache.New(time.Hour), nil, engine.Options{})

	store := NewReportStore()
	store.SetAll([]model.TickerResult{
		{Symbol: "AAA", Report: &model.TickerReport{
			Symbol: "AAA", Name: "Alpha", Price: 159, Advice: model.AdviceNeutral,
		}},
		{Symbol: "BBB", Err: &fetcher.NoDataError{Symbol: "BBB", Reason: "delisted"}},
	}, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC))

	return New(store, eng), store
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s, _ := testFixture(t)
	rec := doRequest(t, s, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["updated_at"])
}

func TestHandleReports(t *testing.T) {
	s, _ := testFixture(t)
	rec := doRequest(t, s, "/api/v1/reports")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		UpdatedAt string        `json:"updated_at"`
		Reports   []reportEntry `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Reports, 2)

	assert.Equal(t, "AAA", body.Reports[0].Symbol)
	require.NotNil(t, body.Reports[0].Report)
	assert.Empty(t, body.Reports[0].Error)

	assert.Equal(t, "BBB", body.Reports[1].Symbol)
	assert.Nil(t, body.Reports[1].Report)
	assert.Contains(t, body.Reports[1].Error, "delisted")
}

func TestHandleReport_Single(t *testing.T) {
	s, _ := testFixture(t)

	rec := doRequest(t, s, "/api/v1/reports/AAA")
	require.Equal(t, http.StatusOK, rec.Code)

	var entry reportEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "Alpha", entry.Report.Name)

	rec = doRequest(t, s, "/api/v1/reports/ZZZ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleSeries(t *testing.T) {
	s, _ := testFixture(t)

	rec := doRequest(t, s, "/api/v1/series/AAA?window=10")
	require.Equal(t, http.StatusOK, rec.Code)

	var sw model.SeriesWindow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sw))
	assert.Len(t, sw.Prices, 10)
	assert.Len(t, sw.Indicators, 10)

	rec = doRequest(t, s, "/api/v1/series/AAA?window=-3")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, "/api/v1/series/ZZZ")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportStore_Order(t *testing.T) {
	store := NewReportStore()
	store.SetAll([]model.TickerResult{
		{Symbol: "C"}, {Symbol: "A"}, {Symbol: "B"},
	}, time.Now())

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Symbol)
	assert.Equal(t, "A", all[1].Symbol)
	assert.Equal(t, "B", all[2].Symbol)
}
