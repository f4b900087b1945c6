package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/user"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/logging"
	"github.com/riskibarqy/sports-scoreboard/internal/usecase"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORS(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantOrigin string
		wantCode   int
	}{
		{name: "configured origin", allowed: []string{"https://scoreboard.example.sch.id"}, method: http.MethodGet, origin: "https://scoreboard.example.sch.id", wantOrigin: "https://scoreboard.example.sch.id", wantCode: http.StatusOK},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: "https://scoreboard.example.sch.id", wantOrigin: "*", wantCode: http.StatusNoContent},
		{name: "unknown origin", allowed: []string{"https://allowed.example.com"}, method: http.MethodGet, origin: "https://not-allowed.example.com", wantOrigin: "", wantCode: http.StatusOK},
		{name: "no origin header", allowed: []string{"*"}, method: http.MethodGet, origin: "", wantOrigin: "", wantCode: http.StatusOK},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, "/v1/sports", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			CORS(tc.allowed, okHandler).ServeHTTP(rec, req)

			require.Equal(t, tc.wantCode, rec.Code)
			require.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /healthz ", "/metrics"} {
		require.False(t, shouldTraceRequest(path), path)
	}
	for _, path := range []string{"/v1/sports", "/v1/sports/football/standings", "/", "/docs"} {
		require.True(t, shouldTraceRequest(path), path)
	}
}

func TestStartSpan_OnlyHandlersUnderSampledParent(t *testing.T) {
	t.Parallel()

	ctx, span := startSpan(context.Background(), "httpapi.Handler.GetStandings")
	require.False(t, span.SpanContext().IsValid())
	require.Equal(t, context.Background(), ctx)

	parent := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{1},
		TraceFlags: trace.FlagsSampled,
	}))
	ctx, _ = startSpan(parent, "httpapi.writeError")
	require.Equal(t, parent, ctx)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	var seen user.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = principalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireAuth(staticVerifier{}, next)

	for _, header := range []string{"", "token-admin", "Basic token-admin", "Bearer ", "Bearer wrong"} {
		req := httptest.NewRequest(http.MethodPost, "/v1/matches/fb-m1/goals", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/matches/fb-m1/goals", nil)
	req.Header.Set("Authorization", "bearer token-admin")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, seen.UserID)
}

func TestObserveRequests_RecordsPatternAndStatus(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/sports/{sportSlug}/standings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	observer := &recordingObserver{}
	handler := ObserveRequests(observer, mux)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/sports/football/standings", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	observer.mu.Lock()
	defer observer.mu.Unlock()
	require.Equal(t, []string{
		"GET /v1/sports/{sportSlug}/standings|418",
		"unmatched|404",
	}, observer.routes)
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"Bearer abc":   true,
		"bearer  abc ": true,
		"Basic abc":    false,
		"Bearer":       false,
		"Bearer   ":    false,
		"":             false,
	}
	for header, ok := range cases {
		token, err := bearerToken(header)
		if ok {
			require.NoError(t, err, header)
			require.Equal(t, "abc", token)
			continue
		}
		require.ErrorIs(t, err, usecase.ErrUnauthorized, header)
	}
}

func TestRecoverPanic_AnswersInternalError(t *testing.T) {
	t.Parallel()

	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("standings exploded") })
	rec := httptest.NewRecorder()
	recoverPanic(logging.NewNop(), boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sports", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "standings exploded")
}

func TestChain_FirstMiddlewareIsOutermost(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := chain(okHandler, tag("outer"), tag("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"outer", "inner"}, order)
}
