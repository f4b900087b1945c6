package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/accessrequest"
	"github.com/riskibarqy/sports-scoreboard/internal/usecase"
)

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSession")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing auth principal", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionDTO{
		UserID:  principal.UserID,
		Email:   principal.Email,
		IsAdmin: true,
	})
}

func (h *Handler) ListAccessRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAccessRequests")
	defer span.End()

	items, err := h.svc.Access.ListPending(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list access requests failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accessRequestsToDTO(items))
}

func (h *Handler) CreateAccessRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAccessRequest")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: missing auth principal", usecase.ErrUnauthorized))
		return
	}

	var req createAccessRequestRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.svc.Access.Request(ctx, principal, req.TeamID)
	if err != nil {
		h.logger.WarnContext(ctx, "create access request failed", "team_id", req.TeamID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, accessRequestToDTO(item))
}

func (h *Handler) ApproveAccessRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveAccessRequest")
	defer span.End()

	requestID := r.PathValue("requestID")
	item, err := h.svc.Access.Approve(ctx, requestID)
	if err != nil {
		h.logger.WarnContext(ctx, "approve access request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accessRequestToDTO(item))
}

func (h *Handler) RejectAccessRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RejectAccessRequest")
	defer span.End()

	requestID := r.PathValue("requestID")
	item, err := h.svc.Access.Reject(ctx, requestID)
	if err != nil {
		h.logger.WarnContext(ctx, "reject access request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accessRequestToDTO(item))
}

func accessRequestsToDTO(items []accessrequest.Request) []accessRequestDTO {
	out := make([]accessRequestDTO, 0, len(items))
	for _, item := range items {
		out = append(out, accessRequestToDTO(item))
	}
	return out
}
