package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/sports-scoreboard/internal/config"
	"github.com/riskibarqy/sports-scoreboard/internal/observability"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		Location:           time.UTC,
		StorageBackend:     config.StorageMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		WarmupEnabled:      false,
		WarmupInterval:     time.Minute,
		WarmupWorkers:      2,
		IdentityBaseURL:    "http://127.0.0.1:1",
	}
}

func TestNew_MemoryBackendServesStandings(t *testing.T) {
	t.Parallel()

	application, err := New(context.Background(), memoryConfig(), logging.NewNop(), observability.NewMetrics())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	srv := httptest.NewServer(application.Server.Handler)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/v1/sports/football/standings")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "fb-sma1")

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "http_requests_total"))
}

func TestNew_MetricsDisabledHidesEndpoint(t *testing.T) {
	t.Parallel()

	application, err := New(context.Background(), memoryConfig(), logging.NewNop(), nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	application.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	t.Parallel()

	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	_, err := New(context.Background(), cfg, logging.NewNop(), nil)
	require.Error(t, err)
}
