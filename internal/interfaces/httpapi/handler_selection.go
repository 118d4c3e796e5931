package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/grassrootshq/teamdesk/internal/domain/selection"
	"github.com/grassrootshq/teamdesk/internal/usecase"
)

type selectionPositionRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	Position string `json:"position" validate:"required,max=20"`
}

type selectionStaffRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,max=50"`
}

type saveSelectionRequest struct {
	Period      int                        `json:"period" validate:"required,min=1"`
	TeamNumber  int                        `json:"teamNumber" validate:"required,min=1"`
	FormationID string                     `json:"formationId"`
	Positions   []selectionPositionRequest `json:"positions" validate:"dive"`
	Substitutes []string                   `json:"substitutes" validate:"dive,required"`
	CaptainID   string                     `json:"captainId"`
	Staff       []selectionStaffRequest    `json:"staff" validate:"dive"`
}

type selectionPositionDTO struct {
	PlayerID string `json:"playerId"`
	Position string `json:"position"`
}

type selectionStaffDTO struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type selectionDTO struct {
	EventID     string                 `json:"eventId"`
	TeamID      string                 `json:"teamId"`
	Period      int                    `json:"period"`
	TeamNumber  int                    `json:"teamNumber"`
	FormationID string                 `json:"formationId,omitempty"`
	Positions   []selectionPositionDTO `json:"positions"`
	Substitutes []string               `json:"substitutes,omitempty"`
	CaptainID   string                 `json:"captainId,omitempty"`
	Staff       []selectionStaffDTO    `json:"staff,omitempty"`
}

type saveSelectionResponse struct {
	Selection selectionDTO        `json:"selection"`
	Conflicts map[string][]string `json:"conflicts,omitempty"`
}

type positionMapDTO struct {
	FormationID string                 `json:"formationId"`
	Assigned    []selectionPositionDTO `json:"assigned"`
	Unassigned  []string               `json:"unassigned,omitempty"`
	Phase       string                 `json:"phase"`
}

func selectionToDTO(s selection.Selection) selectionDTO {
	positions := make([]selectionPositionDTO, 0, len(s.PlayerPositions))
	for _, pp := range s.PlayerPositions {
		positions = append(positions, selectionPositionDTO{PlayerID: pp.PlayerID, Position: pp.Position})
	}

	staff := make([]selectionStaffDTO, 0, len(s.Staff))
	for _, sa := range s.Staff {
		staff = append(staff, selectionStaffDTO{UserID: sa.UserID, Role: sa.Role})
	}

	return selectionDTO{
		EventID:     s.EventID,
		TeamID:      s.TeamID,
		Period:      s.Period,
		TeamNumber:  s.TeamNumber,
		FormationID: s.FormationID,
		Positions:   positions,
		Substitutes: s.Substitutes,
		CaptainID:   s.CaptainID,
		Staff:       staff,
	}
}

func selectionSlotParams(r *http.Request) (int, int, error) {
	period, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("period")))
	if err != nil || period < 1 {
		return 0, 0, fmt.Errorf("%w: period query parameter must be a positive integer", usecase.ErrInvalidInput)
	}

	teamNumber, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("team_number")))
	if err != nil || teamNumber < 1 {
		return 0, 0, fmt.Errorf("%w: team_number query parameter must be a positive integer", usecase.ErrInvalidInput)
	}

	return period, teamNumber, nil
}

func (h *Handler) SaveSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveSelection")
	defer span.End()

	eventID := r.PathValue("eventID")
	teamID := r.PathValue("teamID")
	var req saveSelectionRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	positions := make([]selection.PlayerPosition, 0, len(req.Positions))
	for _, p := range req.Positions {
		positions = append(positions, selection.PlayerPosition{PlayerID: p.PlayerID, Position: p.Position})
	}

	staff := make([]selection.StaffAssignment, 0, len(req.Staff))
	for _, s := range req.Staff {
		staff = append(staff, selection.StaffAssignment{UserID: s.UserID, Role: s.Role})
	}

	result, err := h.selectionService.Save(ctx, selection.Selection{
		EventID:         eventID,
		TeamID:          teamID,
		Period:          req.Period,
		TeamNumber:      req.TeamNumber,
		FormationID:     req.FormationID,
		PlayerPositions: positions,
		Substitutes:     req.Substitutes,
		CaptainID:       req.CaptainID,
		Staff:           staff,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save selection failed", "event_id", eventID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saveSelectionResponse{
		Selection: selectionToDTO(result.Selection),
		Conflicts: result.Conflicts,
	})
}

func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSelection")
	defer span.End()

	eventID := r.PathValue("eventID")
	teamID := r.PathValue("teamID")
	period, teamNumber, err := selectionSlotParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.selectionService.Get(ctx, eventID, teamID, period, teamNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "get selection failed", "event_id", eventID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selectionToDTO(item))
}

func (h *Handler) GetSelectionPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSelectionPositions")
	defer span.End()

	eventID := r.PathValue("eventID")
	teamID := r.PathValue("teamID")
	period, teamNumber, err := selectionSlotParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	mapping, err := h.selectionService.PositionMap(ctx, eventID, teamID, period, teamNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "get selection positions failed", "event_id", eventID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	assigned := make([]selectionPositionDTO, 0, len(mapping.Assigned))
	for _, pp := range mapping.Assigned {
		assigned = append(assigned, selectionPositionDTO{PlayerID: pp.PlayerID, Position: pp.Position})
	}

	writeSuccess(ctx, w, http.StatusOK, positionMapDTO{
		FormationID: mapping.Formation.ID,
		Assigned:    assigned,
		Unassigned:  mapping.Unassigned,
		Phase:       string(mapping.Phase()),
	})
}

func (h *Handler) GetSelectionConflicts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSelectionConflicts")
	defer span.End()

	eventID := r.PathValue("eventID")
	teamID := r.PathValue("teamID")
	period, teamNumber, err := selectionSlotParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	conflicts, err := h.selectionService.Conflicts(ctx, eventID, teamID, period, teamNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "get selection conflicts failed", "event_id", eventID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, conflicts)
}
