package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agro-forecast/clock"
	"agro-forecast/engine"
	"agro-forecast/metrics"
	"agro-forecast/models"
	"agro-forecast/random"
)

var testNow = time.Date(2024, 7, 10, 6, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := clock.Fixed{T: testNow}
	e := engine.New(engine.Options{
		Clock:  c,
		Rand:   random.Fixed{V: 0.5},
		Logger: logger,
	})
	s := NewServer(e, nil, c, metrics.New(), logger)
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestGetWeather(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/api/weather?lat=18.52&lon=73.85&days=10")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var series []models.WeatherDay
	decode(t, resp, &series)
	if len(series) != 10 {
		t.Errorf("expected 10 days, got %d", len(series))
	}
}

func TestGetWeatherDefaultDays(t *testing.T) {
	srv := newTestServer(t)

	var series []models.WeatherDay
	decode(t, get(t, srv, "/api/weather?lat=18.52&lon=73.85"), &series)
	if len(series) != defaultWeatherDays {
		t.Errorf("expected %d days, got %d", defaultWeatherDays, len(series))
	}
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"missing lat", "/api/weather?lon=73.85", http.StatusBadRequest},
		{"bad days", "/api/weather?lat=1&lon=2&days=abc", http.StatusBadRequest},
		{"zero days", "/api/weather?lat=1&lon=2&days=0", http.StatusBadRequest},
		{"days over a year", "/api/weather?lat=18.52&lon=73.85&days=1000000", http.StatusBadRequest},
		{"price horizon over a year", "/api/prices?lat=18.52&lon=73.85&days=366", http.StatusBadRequest},
		{"latitude out of range", "/api/crops?lat=95&lon=2", http.StatusBadRequest},
		{"unknown commodity", "/api/prices?lat=1&lon=2&commodity=dragonfruit", http.StatusNotFound},
		{"advice without user", "/api/advice?lat=1&lon=2", http.StatusBadRequest},
		{"advice with half location", "/api/advice?user_id=u&lat=1", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, srv, tt.path)
			if resp.StatusCode != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.StatusCode)
			}
			var body models.ErrorResponse
			decode(t, resp, &body)
			if body.Error == "" || body.Details == "" {
				t.Errorf("expected error body, got %+v", body)
			}
		})
	}
}

func TestGetCropsAndPrices(t *testing.T) {
	srv := newTestServer(t)

	var crops []models.CropRecommendation
	resp := get(t, srv, "/api/crops?lat=18.52&lon=73.85")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("crops: expected 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &crops)
	for _, c := range crops {
		if c.SuitabilityScore <= 0.4 {
			t.Errorf("%s: score %v should have been filtered", c.CropName, c.SuitabilityScore)
		}
	}

	var prices []models.MarketForecast
	resp = get(t, srv, "/api/prices?lat=18.52&lon=73.85&commodity=rice&days=14")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("prices: expected 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &prices)
	if len(prices) != 1 || prices[0].CommodityID != "rice" {
		t.Errorf("expected only rice, got %+v", prices)
	}
}

func TestGetAdvice(t *testing.T) {
	srv := newTestServer(t)

	var body adviceResponse
	resp := get(t, srv, "/api/advice?user_id=farmer-1&lat=18.52&lon=73.85")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	decode(t, resp, &body)
	if body.UserID != "farmer-1" || len(body.Items) == 0 {
		t.Errorf("unexpected advice %+v", body)
	}
}

func TestPublishAdviceWithoutPublisher(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/advice/publish?user_id=farmer-1", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", resp.StatusCode)
	}
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv, "/api/health")
	if resp.Header.Get(requestIDHeader) == "" {
		t.Error("expected generated request id")
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp2.Body.Close()
	if got := resp2.Header.Get(requestIDHeader); got != "abc-123" {
		t.Errorf("expected request id to be echoed, got %q", got)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	decode(t, get(t, srv, "/api/health"), &body)
	if body["status"] != "ok" || body["provider"] != "synthetic" {
		t.Errorf("unexpected health %+v", body)
	}
	if body["timestamp"] != testNow.Format(time.RFC3339) {
		t.Errorf("expected timestamp from injected clock, got %q", body["timestamp"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	get(t, srv, "/api/weather?lat=1&lon=2&days=0")

	resp := get(t, srv, "/metrics")
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(raw), `agro_http_requests_total{route="weather",status="400"} 1`) {
		t.Errorf("expected weather 400 counter in metrics output")
	}
}
