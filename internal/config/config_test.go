package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// setEnv applies vars for the duration of the test; an empty value blanks the variable.
func setEnv(t *testing.T, vars map[string]string) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"STORAGE_BACKEND":                "",
		"CACHE_TTL":                      "",
		"CORS_ALLOWED_ORIGINS":           "",
		"APP_TIMEZONE":                   "",
		"IDENTITY_CIRCUIT_FAILURE_COUNT": "",
		"IDENTITY_TIMEOUT":               "",
		"WARMUP_INTERVAL":                "",
		"WARMUP_WORKERS":                 "",
		"PPROF_ADDR":                     "  ",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	checks := []struct {
		name      string
		got, want any
	}{
		{"storage", cfg.StorageBackend, StorageMemory},
		{"cache enabled", cfg.CacheEnabled, true},
		{"cache ttl", cfg.CacheTTL, time.Minute},
		{"cors", cfg.CORSAllowedOrigins, []string{"*"}},
		{"timezone", cfg.Location.String(), "UTC"},
		{"prepared binary", cfg.DBDisablePreparedBinary, true},
		{"pprof addr", cfg.PprofAddr, ":6060"},
		{"circuit failures", cfg.IdentityCircuitFailureCount, 5},
		{"identity timeout", cfg.IdentityTimeout, 3 * time.Second},
		{"warmup enabled", cfg.WarmupEnabled, true},
		{"warmup interval", cfg.WarmupInterval, time.Minute},
		{"warmup workers", cfg.WarmupWorkers, 4},
		{"swagger in dev", cfg.SwaggerEnabled, true},
	}
	for _, c := range checks {
		if diff := cmp.Diff(c.want, c.got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"STORAGE_BACKEND":          " Postgres ",
		"CORS_ALLOWED_ORIGINS":     " https://a.example.com, ,http://localhost:5173 ",
		"APP_TIMEZONE":             "Asia/Jakarta",
		"APP_SERVICE_NAME":         "scoreboard-api-test",
		"PYROSCOPE_ENABLED":        "true",
		"PYROSCOPE_SERVER_ADDRESS": "http://localhost:4040",
		"PYROSCOPE_APP_NAME":       "",
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageBackend != StoragePostgres {
		t.Fatalf("unexpected storage backend: %q", cfg.StorageBackend)
	}
	if diff := cmp.Diff([]string{"https://a.example.com", "http://localhost:5173"}, cfg.CORSAllowedOrigins); diff != "" {
		t.Fatalf("cors mismatch (-want +got):\n%s", diff)
	}
	if cfg.Location.String() != "Asia/Jakarta" {
		t.Fatalf("unexpected location: %s", cfg.Location)
	}
	if cfg.PyroscopeAppName != "scoreboard-api-test" {
		t.Fatalf("pyroscope app name should default to the service name, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_SwaggerDisabledInProd(t *testing.T) {
	setEnv(t, map[string]string{"APP_ENV": EnvProd, "SWAGGER_ENABLED": ""})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SwaggerEnabled {
		t.Fatalf("expected swagger off in prod by default")
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"APP_ENV":                           {"APP_ENV": "invalid"},
		"STORAGE_BACKEND":                   {"STORAGE_BACKEND": "mongo"},
		"DB_DISABLE_PREPARED_BINARY_RESULT": {"DB_DISABLE_PREPARED_BINARY_RESULT": "not-bool"},
		"CACHE_TTL":                         {"CACHE_TTL": "bad"},
		"APP_TIMEZONE":                      {"APP_TIMEZONE": "Mars/Olympus"},
		"IDENTITY_CIRCUIT_FAILURE_COUNT":    {"IDENTITY_CIRCUIT_FAILURE_COUNT": "0"},
		"WARMUP_WORKERS":                    {"WARMUP_WORKERS": "-1"},
		"UPTRACE_DSN":                       {"UPTRACE_ENABLED": "true", "UPTRACE_DSN": "", "OTEL_EXPORTER_OTLP_HEADERS": ""},
		"PYROSCOPE_SERVER_ADDRESS":          {"PYROSCOPE_ENABLED": "true", "PYROSCOPE_SERVER_ADDRESS": ""},
	}
	for want, vars := range cases {
		t.Run(want, func(t *testing.T) {
			setEnv(t, vars)
			_, err := Load()
			if err == nil {
				t.Fatalf("expected error mentioning %s", want)
			}
			if !strings.Contains(err.Error(), want) {
				t.Fatalf("error %q should mention %s", err, want)
			}
		})
	}
}

func TestLoad_ReportsEveryInvalidVariable(t *testing.T) {
	setEnv(t, map[string]string{"CACHE_TTL": "bad", "WARMUP_WORKERS": "zero"})

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, key := range []string{"CACHE_TTL", "WARMUP_WORKERS"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("error %q should mention %s", err, key)
		}
	}
}

func TestEnvReader(t *testing.T) {
	t.Parallel()

	vars := map[string]string{"N": "7", "D": "250ms", "B": "yes", "S": "  value "}
	env := &envReader{lookup: func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}}

	if got := env.integer("N", 1, 1); got != 7 {
		t.Fatalf("integer = %d", got)
	}
	if got := env.duration("D", time.Second, atLeast(0)); got != 250*time.Millisecond {
		t.Fatalf("duration = %s", got)
	}
	if got := env.str("S", "x"); got != "value" {
		t.Fatalf("str = %q", got)
	}
	if got := env.str("MISSING", "x"); got != "x" {
		t.Fatalf("fallback = %q", got)
	}
	if got := env.boolean("B", true); !got {
		t.Fatalf("invalid bool should fall back")
	}
	if len(env.errs) != 1 || !strings.Contains(env.errs[0].Error(), "B:") {
		t.Fatalf("expected a single error for B, got %v", env.errs)
	}
}

func TestUptraceDSNFromHeaders(t *testing.T) {
	t.Parallel()

	got := uptraceDSNFromHeaders(`foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)
	if got != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn: %q", got)
	}
	if uptraceDSNFromHeaders("") != "" {
		t.Fatalf("expected empty dsn for empty headers")
	}
}
