package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	return string(body)
}

func TestCountersExposed(t *testing.T) {
	m := New()
	m.ProviderFallback("error")
	m.ProviderRequest(150 * time.Millisecond)
	m.SyntheticDays(14)
	m.SyntheticDays(0)
	m.AdvisoryFallback()
	m.AdvisoryPublished(true)
	m.AdvisoryPublished(false)

	body := scrape(t, m)
	for _, want := range []string{
		`agro_weather_provider_fallbacks_total{reason="error"} 1`,
		`agro_weather_provider_duration_seconds_count 1`,
		`agro_weather_synthetic_days_total 14`,
		`agro_advisory_fallbacks_total 1`,
		`agro_advisory_batches_published_total{result="ok"} 1`,
		`agro_advisory_batches_published_total{result="error"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestWrapHandlerRecordsStatus(t *testing.T) {
	m := New()
	h := m.WrapHandler("prices", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/prices", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status to pass through, got %d", rec.Code)
	}

	body := scrape(t, m)
	if !strings.Contains(body, `agro_http_requests_total{route="prices",status="404"} 1`) {
		t.Errorf("expected request counter for prices/404, got:\n%s", body)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ProviderFallback("error")
	m.ProviderRequest(time.Second)
	m.SyntheticDays(3)
	m.AdvisoryFallback()
	m.AdvisoryPublished(true)

	called := false
	h := m.WrapHandler("x", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Error("wrapped handler not called")
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 from nil metrics handler, got %d", rec.Code)
	}
}
