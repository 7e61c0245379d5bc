package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartFixture = `{
	"chart": {
		"result": [{
			"meta": {"symbol": "7203.T", "shortName": "Toyota Motor Corp"},
			"timestamp": [1700000000, 1700086400, 1700172800],
			"indicators": {"quote": [{"close": [2500.5, null, 2510.0]}]}
		}],
		"error": null
	}
}`

func newFixtureFetcher(t *testing.T, handler http.HandlerFunc) (*YahooFetcher, func()) {
	t.Helper()
	ts := httptest.NewServer(handler)
	f := NewYahooFetcher("")
	f.BaseURL = ts.URL
	return f, ts.Close
}

func TestYahooFetcher_ParsesChart(t *testing.T) {
	f, done := newFixtureFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/7203.T", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "2y", r.URL.Query().Get("range"))
		w.Write([]byte(chartFixture))
	})
	defer done()

	series, err := f.FetchSeries("7203.T", "2y", "1d")
	require.NoError(t, err)

	assert.Equal(t, "Toyota Motor Corp", series.Name)
	require.Equal(t, 2, series.Len(), "null bar must be skipped")
	assert.Equal(t, 2500.5, series.Points[0].Close)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), series.Points[0].Time)
	assert.NoError(t, series.Validate())
}

func TestYahooFetcher_APIError(t *testing.T) {
	f, done := newFixtureFetcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
	})
	defer done()

	_, err := f.FetchSeries("NOPE", "2y", "1d")
	require.Error(t, err)
	assert.True(t, IsNoData(err))
}

func TestYahooFetcher_EmptyResult(t *testing.T) {
	f, done := newFixtureFetcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	})
	defer done()

	_, err := f.FetchSeries("EMPTY", "2y", "1d")
	require.Error(t, err)
	assert.True(t, IsNoData(err))
}

func TestYahooFetcher_MalformedPayload(t *testing.T) {
	f, done := newFixtureFetcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`this is not json`))
	})
	defer done()

	_, err := f.FetchSeries("BAD", "2y", "1d")
	require.Error(t, err)
	assert.True(t, IsNoData(err), "malformed payload must read as no data, not a crash")
}

func TestYahooFetcher_AllBarsNull(t *testing.T) {
	f, done := newFixtureFetcher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"X"},"timestamp":[1,2],"indicators":{"quote":[{"close":[null,null]}]}}],"error":null}}`))
	})
	defer done()

	_, err := f.FetchSeries("X", "2y", "1d")
	require.Error(t, err)
	assert.True(t, IsNoData(err))
}
