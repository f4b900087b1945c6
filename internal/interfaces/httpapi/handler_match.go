package httpapi

import (
	"net/http"

	"github.com/riskibarqy/sports-scoreboard/internal/usecase"
)

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	detail, err := h.svc.Matches.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailToDTO(detail))
}

func (h *Handler) ListMatchGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchGoals")
	defer span.End()

	matchID := r.PathValue("matchID")
	detail, err := h.svc.Matches.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}
	goals, err := h.svc.Matches.ListGoals(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match goals failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchGoalsToDTO(detail.Match, goals))
}

func (h *Handler) UpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchStatus")
	defer span.End()

	var req updateStatusRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	item, err := h.svc.Matches.UpdateStatusNote(ctx, matchID, req.StatusNote)
	if err != nil {
		h.logger.WarnContext(ctx, "update match status failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item, nil))
}

func (h *Handler) FinalizeMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	result, err := h.svc.Matches.Finalize(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "finalize match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, finalizeDTO{
		Match:     matchToDTO(result.Match, nil),
		Fallbacks: result.Fallbacks,
	})
}

func (h *Handler) RecordGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordGoal")
	defer span.End()

	var req recordGoalRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	result, err := h.svc.Matches.RecordGoal(ctx, usecase.RecordGoalInput{
		MatchID:    matchID,
		TeamID:     req.TeamID,
		PlayerName: req.PlayerName,
		Minute:     req.Minute,
		OwnGoal:    req.OwnGoal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record goal failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, recordGoalDTO{
		Goal:      goalToDTO(result.Goal),
		HomeScore: result.Score.Home,
		AwayScore: result.Score.Away,
	})
}

func (h *Handler) ResyncMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResyncMatchScore")
	defer span.End()

	matchID := r.PathValue("matchID")
	score, err := h.svc.Matches.ResyncScore(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "resync match score failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoreDTO{MatchID: matchID, HomeScore: score.Home, AwayScore: score.Away})
}

func (h *Handler) SetMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMatchScore")
	defer span.End()

	var req setScoreRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	item, err := h.svc.Matches.SetBasketballScore(ctx, usecase.SetScoreInput{
		MatchID:   matchID,
		HomeScore: *req.HomeScore,
		AwayScore: *req.AwayScore,
		TopScorer: req.TopScorer,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "set match score failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item, nil))
}

func (h *Handler) RecordHighestScorer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordHighestScorer")
	defer span.End()

	var req recordHighestScorerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matchID := r.PathValue("matchID")
	event, err := h.svc.Matches.RecordHighestScorer(ctx, usecase.RecordHighestScorerInput{
		MatchID:    matchID,
		TeamID:     req.TeamID,
		PlayerName: req.PlayerName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record highest scorer failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, highestScorerToDTO(event))
}
