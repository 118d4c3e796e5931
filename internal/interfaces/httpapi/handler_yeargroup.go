package httpapi

import (
	"net/http"

	"github.com/grassrootshq/teamdesk/internal/domain/team"
	"github.com/grassrootshq/teamdesk/internal/domain/yeargroup"
	"github.com/grassrootshq/teamdesk/internal/usecase"
)

type createYearGroupRequest struct {
	ClubID          string `json:"clubId" validate:"required"`
	Name            string `json:"name" validate:"required,max=100"`
	AgeYear         int    `json:"ageYear" validate:"min=0"`
	PlayingFormat   string `json:"playingFormat" validate:"max=50"`
	SoftPlayerLimit int    `json:"softPlayerLimit" validate:"min=0"`
}

type updateYearGroupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	PlayingFormat   string `json:"playingFormat" validate:"max=50"`
	SoftPlayerLimit *int   `json:"softPlayerLimit" validate:"omitempty,min=0"`
}

type splitYearGroupRequest struct {
	SourceTeamID      string         `json:"sourceTeamId" validate:"required"`
	NewTeamNames      []string       `json:"newTeamNames" validate:"required,min=2,dive,required"`
	GameFormat        string         `json:"gameFormat"`
	ManualAssignments map[string]int `json:"manualAssignments"`
}

type yearGroupDTO struct {
	ID              string `json:"id"`
	ClubID          string `json:"clubId"`
	Name            string `json:"name"`
	AgeYear         int    `json:"ageYear"`
	PlayingFormat   string `json:"playingFormat,omitempty"`
	SoftPlayerLimit int    `json:"softPlayerLimit,omitempty"`
}

type splitResultDTO struct {
	YearGroup       yearGroupDTO `json:"yearGroup"`
	Teams           []teamDTO    `json:"teams"`
	MovedCount      int          `json:"movedCount"`
	FailedPlayerIDs []string     `json:"failedPlayerIds,omitempty"`
	Warnings        []string     `json:"warnings,omitempty"`
}

func yearGroupToDTO(g yeargroup.YearGroup) yearGroupDTO {
	return yearGroupDTO{
		ID:              g.ID,
		ClubID:          g.ClubID,
		Name:            g.Name,
		AgeYear:         g.AgeYear,
		PlayingFormat:   g.PlayingFormat,
		SoftPlayerLimit: g.SoftPlayerLimit,
	}
}

func splitResultToDTO(result usecase.SplitResult) splitResultDTO {
	teams := make([]teamDTO, 0, len(result.Teams))
	for _, t := range result.Teams {
		teams = append(teams, teamToDTO(t))
	}

	return splitResultDTO{
		YearGroup:       yearGroupToDTO(result.YearGroup),
		Teams:           teams,
		MovedCount:      result.MovedCount,
		FailedPlayerIDs: result.FailedPlayerIDs,
		Warnings:        result.Warnings,
	}
}

func (h *Handler) CreateYearGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateYearGroup")
	defer span.End()

	var req createYearGroupRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.yearGroupService.Create(ctx, usecase.CreateYearGroupInput{
		ClubID:          req.ClubID,
		Name:            req.Name,
		AgeYear:         req.AgeYear,
		PlayingFormat:   req.PlayingFormat,
		SoftPlayerLimit: req.SoftPlayerLimit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create year group failed", "club_id", req.ClubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, yearGroupToDTO(created))
}

func (h *Handler) UpdateYearGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateYearGroup")
	defer span.End()

	yearGroupID := r.PathValue("yearGroupID")
	var req updateYearGroupRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.yearGroupService.Update(ctx, usecase.UpdateYearGroupInput{
		YearGroupID:     yearGroupID,
		Name:            req.Name,
		PlayingFormat:   req.PlayingFormat,
		SoftPlayerLimit: req.SoftPlayerLimit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update year group failed", "year_group_id", yearGroupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, yearGroupToDTO(updated))
}

func (h *Handler) GetYearGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetYearGroup")
	defer span.End()

	yearGroupID := r.PathValue("yearGroupID")
	item, err := h.yearGroupService.GetByID(ctx, yearGroupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get year group failed", "year_group_id", yearGroupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, yearGroupToDTO(item))
}

func (h *Handler) ListYearGroupsByClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListYearGroupsByClub")
	defer span.End()

	clubID := r.PathValue("clubID")
	groups, err := h.yearGroupService.ListByClub(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "list year groups failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]yearGroupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, yearGroupToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) DeleteYearGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteYearGroup")
	defer span.End()

	yearGroupID := r.PathValue("yearGroupID")
	if err := h.yearGroupService.Delete(ctx, yearGroupID); err != nil {
		h.logger.WarnContext(ctx, "delete year group failed", "year_group_id", yearGroupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SplitYearGroup runs the roster split wizard. A partial failure still
// returns the committed split state alongside the failed player ids, so the
// response body is written with a 207 rather than a straight error.
func (h *Handler) SplitYearGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SplitYearGroup")
	defer span.End()

	yearGroupID := r.PathValue("yearGroupID")
	var req splitYearGroupRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.yearGroupService.Split(ctx, usecase.SplitInput{
		YearGroupID:       yearGroupID,
		SourceTeamID:      req.SourceTeamID,
		NewTeamNames:      req.NewTeamNames,
		GameFormat:        team.GameFormat(req.GameFormat),
		ManualAssignments: req.ManualAssignments,
	})
	if err != nil {
		if len(result.FailedPlayerIDs) == 0 {
			h.logger.WarnContext(ctx, "split year group failed", "year_group_id", yearGroupID, "error", err)
			writeError(ctx, w, err)
			return
		}

		h.logger.ErrorContext(ctx, "split year group partially failed",
			"year_group_id", yearGroupID,
			"moved", result.MovedCount,
			"failed", len(result.FailedPlayerIDs),
			"error", err,
		)
		writeSuccess(ctx, w, http.StatusMultiStatus, splitResultToDTO(result))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, splitResultToDTO(result))
}
