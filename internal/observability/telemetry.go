package observability

import (
	"context"
	"errors"
	"net/http"

	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/sports-scoreboard/internal/config"
	"github.com/riskibarqy/sports-scoreboard/internal/platform/logging"
)

// Telemetry owns the process-wide exporters: Uptrace tracing and log mirroring,
// Pyroscope profiling and the pprof debug listener. Each part is optional.
type Telemetry struct {
	tracingOn bool
	profiler  *pyroscope.Profiler
	pprof     *http.Server
	logger    *logging.Logger
}

func Start(cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	t.tracingOn = startTracing(cfg, logger)

	profiler, err := startProfiling(cfg, logger)
	if err != nil {
		t.Shutdown(context.Background())
		return nil, err
	}
	t.profiler = profiler

	t.pprof = startPprof(cfg, logger)
	return t, nil
}

// Shutdown flushes exporters and stops listeners, returning every failure joined.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.pprof != nil {
		if err := t.pprof.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if t.profiler != nil {
		if err := t.profiler.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	logging.SetMirror(nil)
	if t.tracingOn {
		if err := shutdownTracing(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
