package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/event"
	"github.com/grassrootshq/teamdesk/internal/usecase"
)

type createEventRequest struct {
	TeamID   string `json:"teamId" validate:"required"`
	Title    string `json:"title" validate:"required,max=200"`
	Type     string `json:"type" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Location string `json:"location" validate:"max=200"`
	Notes    string `json:"notes" validate:"max=2000"`
	Notify   bool   `json:"notify"`
}

type updateEventRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Date     string `json:"date" validate:"required"`
	Location string `json:"location" validate:"max=200"`
	Notes    string `json:"notes" validate:"max=2000"`
}

type eventDTO struct {
	ID       string `json:"id"`
	TeamID   string `json:"teamId"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
	MatchDay bool   `json:"matchDay"`
}

func eventToDTO(e event.Event) eventDTO {
	return eventDTO{
		ID:       e.ID,
		TeamID:   e.TeamID,
		Title:    e.Title,
		Type:     string(e.Type),
		Date:     e.Date.Format(time.RFC3339),
		Location: e.Location,
		Notes:    e.Notes,
		MatchDay: e.IsMatchDay(),
	}
}

func parseEventDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be RFC 3339: %v", usecase.ErrInvalidInput, err)
	}

	return parsed, nil
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	var req createEventRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.eventService.Create(ctx, usecase.CreateEventInput{
		TeamID:   req.TeamID,
		Title:    req.Title,
		Type:     event.Type(req.Type),
		Date:     date,
		Location: req.Location,
		Notes:    req.Notes,
		Notify:   req.Notify,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create event failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(created))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	var req updateEventRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.eventService.Update(ctx, usecase.UpdateEventInput{
		EventID:  eventID,
		Title:    req.Title,
		Date:     date,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(updated))
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	item, err := h.eventService.GetByID(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) ListEventsByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventsByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	events, err := h.eventService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	if err := h.eventService.Delete(ctx, eventID); err != nil {
		h.logger.WarnContext(ctx, "delete event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
