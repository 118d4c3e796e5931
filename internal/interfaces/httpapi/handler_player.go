package httpapi

import (
	"net/http"

	"github.com/grassrootshq/teamdesk/internal/domain/player"
	"github.com/grassrootshq/teamdesk/internal/usecase"
)

type createPlayerRequest struct {
	TeamID       string `json:"teamId" validate:"required"`
	Name         string `json:"name" validate:"required,max=100"`
	SquadNumber  int    `json:"squadNumber" validate:"required,min=1,max=99"`
	Subscription string `json:"subscription"`
}

type updatePlayerRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	SquadNumber  int    `json:"squadNumber" validate:"required,min=1,max=99"`
	Subscription string `json:"subscription"`
}

type reassignPlayerRequest struct {
	TeamID      string `json:"teamId" validate:"required"`
	SquadNumber int    `json:"squadNumber" validate:"required,min=1,max=99"`
}

type playerDTO struct {
	ID            string `json:"id"`
	TeamID        string `json:"teamId"`
	Name          string `json:"name"`
	SquadNumber   int    `json:"squadNumber"`
	Subscription  string `json:"subscription"`
	MatchEligible bool   `json:"matchEligible"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		TeamID:        p.TeamID,
		Name:          p.Name,
		SquadNumber:   p.SquadNumber,
		Subscription:  string(p.Subscription),
		MatchEligible: p.MatchEligible(),
	}
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{
		TeamID:       req.TeamID,
		Name:         req.Name,
		SquadNumber:  req.SquadNumber,
		Subscription: player.SubscriptionType(req.Subscription),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req updatePlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, usecase.UpdatePlayerInput{
		PlayerID:     playerID,
		Name:         req.Name,
		SquadNumber:  req.SquadNumber,
		Subscription: player.SubscriptionType(req.Subscription),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.playerService.ListByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ReassignPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReassignPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req reassignPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	moved, err := h.playerService.Reassign(ctx, playerID, req.TeamID, req.SquadNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "reassign player failed", "player_id", playerID, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(moved))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
