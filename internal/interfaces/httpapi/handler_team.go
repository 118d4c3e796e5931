package httpapi

import (
	"net/http"
	"time"

	"github.com/grassrootshq/teamdesk/internal/domain/team"
	"github.com/grassrootshq/teamdesk/internal/usecase"
)

type createTeamRequest struct {
	ClubID      string `json:"clubId" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	AgeGroup    string `json:"ageGroup" validate:"max=50"`
	GameFormat  string `json:"gameFormat" validate:"required"`
	YearGroupID string `json:"yearGroupId"`
}

type updateTeamRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	AgeGroup   string `json:"ageGroup" validate:"max=50"`
	GameFormat string `json:"gameFormat" validate:"required"`
}

type teamDTO struct {
	ID          string `json:"id"`
	ClubID      string `json:"clubId"`
	Name        string `json:"name"`
	AgeGroup    string `json:"ageGroup"`
	GameFormat  string `json:"gameFormat"`
	YearGroupID string `json:"yearGroupId,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:          t.ID,
		ClubID:      t.ClubID,
		Name:        t.Name,
		AgeGroup:    t.AgeGroup,
		GameFormat:  string(t.GameFormat),
		YearGroupID: t.YearGroupID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamService.Create(ctx, usecase.CreateTeamInput{
		ClubID:      req.ClubID,
		Name:        req.Name,
		AgeGroup:    req.AgeGroup,
		GameFormat:  team.GameFormat(req.GameFormat),
		YearGroupID: req.YearGroupID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create team failed", "club_id", req.ClubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(created))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	var req updateTeamRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamService.Update(ctx, usecase.UpdateTeamInput{
		TeamID:     teamID,
		Name:       req.Name,
		AgeGroup:   req.AgeGroup,
		GameFormat: team.GameFormat(req.GameFormat),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(updated))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	item, err := h.teamService.GetByID(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) ListTeamsByClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByClub")
	defer span.End()

	clubID := r.PathValue("clubID")
	teams, err := h.teamService.ListByClub(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeamsByYearGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByYearGroup")
	defer span.End()

	yearGroupID := r.PathValue("yearGroupID")
	teams, err := h.teamService.ListByYearGroup(ctx, yearGroupID)
	if err != nil {
		h.logger.WarnContext(ctx, "list year group teams failed", "year_group_id", yearGroupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	if err := h.teamService.Delete(ctx, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
