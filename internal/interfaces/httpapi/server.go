package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sports-scoreboard/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
	Observer       RequestObserver
}

// NewRouter builds the mux and wraps it, outermost first, in tracing, access logging,
// CORS, panic recovery and request metrics.
func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	for _, rt := range routes(handler, opts) {
		h := http.Handler(rt.handler)
		if rt.auth {
			h = RequireAuth(verifier, h)
		}
		mux.Handle(rt.pattern, h)
	}
	if opts.MetricsHandler != nil {
		mux.Handle("GET /metrics", opts.MetricsHandler)
	}

	return chain(mux,
		RequestTracing,
		func(next http.Handler) http.Handler { return RequestLogging(logger, next) },
		func(next http.Handler) http.Handler { return CORS(opts.CORSAllowedOrigins, next) },
		func(next http.Handler) http.Handler { return recoverPanic(logger, next) },
		func(next http.Handler) http.Handler { return ObserveRequests(opts.Observer, next) },
	)
}

type route struct {
	pattern string
	handler http.HandlerFunc
	auth    bool
}

func routes(h *Handler, opts RouterOptions) []route {
	rs := []route{
		{pattern: "GET /healthz", handler: h.Healthz},

		{pattern: "GET /v1/sports", handler: h.ListSports},
		{pattern: "GET /v1/sports/{sportSlug}/teams", handler: h.ListTeamsBySport},
		{pattern: "GET /v1/sports/{sportSlug}/matches", handler: h.ListMatchesBySport},
		{pattern: "GET /v1/sports/{sportSlug}/standings", handler: h.GetStandings},
		{pattern: "GET /v1/sports/{sportSlug}/standings/export", handler: h.ExportStandings},
		{pattern: "GET /v1/sports/{sportSlug}/teams/{teamID}/form", handler: h.GetTeamForm},
		{pattern: "GET /v1/sports/{sportSlug}/topscorers", handler: h.ListTopScorers},
		{pattern: "GET /v1/sports/{sportSlug}/highest-scorers", handler: h.ListHighestScorers},
		{pattern: "GET /v1/matches/{matchID}", handler: h.GetMatch},
		{pattern: "GET /v1/matches/{matchID}/goals", handler: h.ListMatchGoals},
		{pattern: "GET /v1/teams/{teamID}/players", handler: h.ListTeamPlayers},

		{pattern: "PUT /v1/matches/{matchID}/status", handler: h.UpdateMatchStatus, auth: true},
		{pattern: "POST /v1/matches/{matchID}/finalize", handler: h.FinalizeMatch, auth: true},
		{pattern: "POST /v1/matches/{matchID}/goals", handler: h.RecordGoal, auth: true},
		{pattern: "POST /v1/matches/{matchID}/score/resync", handler: h.ResyncMatchScore, auth: true},
		// Basketball only: football scores move through goal events.
		{pattern: "PUT /v1/matches/{matchID}/score", handler: h.SetMatchScore, auth: true},
		{pattern: "POST /v1/matches/{matchID}/highest-scorers", handler: h.RecordHighestScorer, auth: true},
		{pattern: "POST /v1/teams/{teamID}/players", handler: h.AddTeamPlayer, auth: true},

		{pattern: "GET /v1/session", handler: h.GetSession, auth: true},
		{pattern: "GET /v1/access-requests", handler: h.ListAccessRequests, auth: true},
		{pattern: "POST /v1/access-requests", handler: h.CreateAccessRequest, auth: true},
		{pattern: "POST /v1/access-requests/{requestID}/approve", handler: h.ApproveAccessRequest, auth: true},
		{pattern: "POST /v1/access-requests/{requestID}/reject", handler: h.RejectAccessRequest, auth: true},
	}
	if opts.SwaggerEnabled {
		rs = append(rs,
			route{pattern: "GET /openapi.yaml", handler: h.OpenAPI},
			route{pattern: "GET /docs", handler: h.SwaggerUI},
			route{pattern: "GET /docs/", handler: h.SwaggerUI},
		)
	}
	return rs
}

// chain applies mws so that the first one is the outermost.
func chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered", "panic", rec, "http_path", r.URL.Path)
			writeInternalError(r.Context(), w)
		}()
		next.ServeHTTP(w, r)
	})
}
