package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.GoalRecorded("football", false)
	m.GoalRecorded("football", false)
	m.GoalRecorded("football", true)
	m.PartialReconciliation("football")
	m.FinalizeFallback("Final")
	m.WarmupRun("ok")

	if got := testutil.ToFloat64(m.goalsRecorded.WithLabelValues("football", "false")); got != 2 {
		t.Fatalf("unexpected goal count: %v", got)
	}
	if got := testutil.ToFloat64(m.goalsRecorded.WithLabelValues("football", "true")); got != 1 {
		t.Fatalf("unexpected own goal count: %v", got)
	}
	if got := testutil.ToFloat64(m.partialReconciliation.WithLabelValues("football")); got != 1 {
		t.Fatalf("unexpected partial reconciliation count: %v", got)
	}
	if got := testutil.ToFloat64(m.finalizeFallback.WithLabelValues("Final")); got != 1 {
		t.Fatalf("unexpected finalize fallback count: %v", got)
	}
	if got := testutil.ToFloat64(m.warmupRuns.WithLabelValues("ok")); got != 1 {
		t.Fatalf("unexpected warm-up count: %v", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveHTTP(http.MethodGet, "GET /v1/sports/{slug}/standings", http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "scoreboard_http_requests_total") {
		t.Fatalf("expected http counter in exposition")
	}
	if !strings.Contains(body, "scoreboard_http_request_duration_seconds_bucket") {
		t.Fatalf("expected latency histogram in exposition")
	}
}
