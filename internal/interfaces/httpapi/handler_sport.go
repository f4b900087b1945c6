package httpapi

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/standings"
	"github.com/riskibarqy/sports-scoreboard/internal/infrastructure/export"
	"github.com/riskibarqy/sports-scoreboard/internal/usecase"
)

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	sports, err := h.svc.Sports.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]sportDTO, 0, len(sports))
	for _, s := range sports {
		items = append(items, sportToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsBySport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsBySport")
	defer span.End()

	slug := r.PathValue("sportSlug")
	teams, err := h.svc.Sports.ListTeams(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "sport", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchesBySport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesBySport")
	defer span.End()

	page, err := queryInt(r, "page")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	pageSize, err := queryInt(r, "page_size")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	slug := r.PathValue("sportSlug")
	list, err := h.svc.Matches.ListBySport(ctx, slug, usecase.ListMatchesInput{
		TeamID:   r.URL.Query().Get("team_id"),
		Date:     r.URL.Query().Get("date"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "sport", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchPageToDTO(list))
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	slug := r.PathValue("sportSlug")
	view, err := h.svc.Standings.Standings(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "sport", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(view))
}

func (h *Handler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportStandings")
	defer span.End()

	slug := r.PathValue("sportSlug")
	view, err := h.svc.Standings.Standings(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "export standings failed", "sport", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	// Buffer so a failed render still gets a JSON error instead of a truncated file.
	var buf bytes.Buffer
	if err := export.WriteStandingsXLSX(&buf, view.Groups); err != nil {
		h.logger.ErrorContext(ctx, "render standings workbook failed", "sport", slug, "error", err)
		writeInternalError(ctx, w)
		return
	}

	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", `attachment; filename="`+view.Sport.Slug+`-standings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) GetTeamForm(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamForm")
	defer span.End()

	limit := standings.DefaultFormLength
	if strings.TrimSpace(r.URL.Query().Get("limit")) != "" {
		v, err := queryInt(r, "limit")
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		limit = v
	}

	slug := r.PathValue("sportSlug")
	teamID := r.PathValue("teamID")
	results, err := h.svc.Standings.Form(ctx, slug, teamID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get team form failed", "sport", slug, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formToDTO(teamID, results))
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	slug := r.PathValue("sportSlug")
	view, err := h.svc.TopScorers.TopScorers(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "sport", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(view))
}

func (h *Handler) ListHighestScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHighestScorers")
	defer span.End()

	slug := r.PathValue("sportSlug")
	view, err := h.svc.TopScorers.HighestScorers(ctx, slug)
	if err != nil {
		h.logger.WarnContext(ctx, "list highest scorers failed", "sport", slug, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(view))
}
