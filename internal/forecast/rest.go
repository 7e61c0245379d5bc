package forecast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockExpert/internal/model"
)

// RESTForecaster implements Forecaster against a forecasting service
// exposing a single fit-and-predict endpoint.
type RESTForecaster struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTForecaster creates a forecaster client with optional proxy support.
// Model fitting is slow compared to a quote fetch, hence the longer timeout.
func NewRESTForecaster(baseURL, apiKey, proxyURL string) *RESTForecaster {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTForecaster{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   60 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTForecaster) Name() string { return "rest" }

type forecastRequest struct {
	Symbol    string    `json:"symbol"`
	Timestamp []int64   `json:"timestamp"`
	Close     []float64 `json:"close"`
	Horizon   int       `json:"horizon"`
	FreqSec   int64     `json:"freq_sec"`
}

type forecastResponse struct {
	Points []struct {
		Timestamp int64   `json:"timestamp"`
		Value     float64 `json:"value"`
		Lower     float64 `json:"lower"`
		Upper     float64 `json:"upper"`
	} `json:"points"`
	Error string `json:"error"`
}

// Forecast posts the historical closes and decodes the predicted series.
// A single attempt: failures surface per ticker and the next cache cycle
// tries again.
func (f *RESTForecaster) Forecast(series *model.PriceSeries, horizon int, freq time.Duration) ([]model.ForecastPoint, error) {
	req := forecastRequest{
		Symbol:    series.Symbol,
		Timestamp: make([]int64, series.Len()),
		Close:     make([]float64, series.Len()),
		Horizon:   horizon,
		FreqSec:   int64(freq / time.Second),
	}
	for i, p := range series.Points {
		req.Timestamp[i] = p.Time.Unix()
		req.Close[i] = p.Close
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal forecast request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/forecast", f.BaseURL)
	httpReq, err := http.NewRequest("POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if f.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("forecast %s: %w", series.Symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("forecast %s: status %d, body: %s", series.Symbol, resp.StatusCode, string(respBody))
	}

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode forecast: %w", err)
	}
	if decoded.Error != "" {
		return nil, fmt.Errorf("forecast service: %s", decoded.Error)
	}

	points := make([]model.ForecastPoint, len(decoded.Points))
	for i, p := range decoded.Points {
		points[i] = model.ForecastPoint{
			Time:  time.Unix(p.Timestamp, 0).UTC(),
			Value: p.Value,
			Lower: p.Lower,
			Upper: p.Upper,
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return points, nil
}
