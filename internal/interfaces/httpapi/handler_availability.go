package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/grassrootshq/teamdesk/internal/domain/availability"
	"github.com/grassrootshq/teamdesk/internal/usecase"
)

type submitAvailabilityRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type availabilityRecordDTO struct {
	EventID string `json:"eventId"`
	UserID  string `json:"userId"`
	Role    string `json:"role"`
	Status  string `json:"status"`
}

type boardEntryDTO struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// SubmitAvailability records one role response. The caller submits for
// themselves by default; coaches may pass userId to respond on behalf of a
// player or parent.
func (h *Handler) SubmitAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitAvailability")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	eventID := r.PathValue("eventID")
	var req submitAvailabilityRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = principal.UserID
	}

	record, err := h.availabilityService.Submit(ctx, usecase.SubmitAvailabilityInput{
		EventID: eventID,
		UserID:  userID,
		Role:    availability.Role(req.Role),
		Status:  availability.Status(req.Status),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit availability failed", "event_id", eventID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, availabilityRecordDTO{
		EventID: record.EventID,
		UserID:  record.UserID,
		Role:    string(record.Role),
		Status:  string(record.Status),
	})
}

func (h *Handler) GetAvailabilityBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAvailabilityBoard")
	defer span.End()

	eventID := r.PathValue("eventID")
	board, err := h.availabilityService.Board(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get availability board failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]boardEntryDTO, 0, len(board))
	for _, entry := range board {
		items = append(items, boardEntryDTO{
			UserID: entry.UserID,
			Status: string(entry.Status),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
