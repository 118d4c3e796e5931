package httpapi

import (
	"net/http"

	"github.com/grassrootshq/teamdesk/internal/domain/squad"
)

type addSquadPlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
}

type setCaptainRequest struct {
	PlayerID string `json:"playerId"`
}

type squadDTO struct {
	EventID       string   `json:"eventId"`
	TeamID        string   `json:"teamId"`
	PlayerIDs     []string `json:"playerIds"`
	CaptainID     string   `json:"captainId,omitempty"`
	ViceCaptainID string   `json:"viceCaptainId,omitempty"`
}

type squadPlayerDTO struct {
	Player       playerDTO `json:"player"`
	Availability string    `json:"availability"`
	Role         string    `json:"role"`
}

func squadToDTO(s squad.Squad) squadDTO {
	return squadDTO{
		EventID:       s.EventID,
		TeamID:        s.TeamID,
		PlayerIDs:     s.PlayerIDs,
		CaptainID:     s.CaptainID,
		ViceCaptainID: s.ViceCaptainID,
	}
}

func (h *Handler) AddSquadPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddSquadPlayer")
	defer span.End()

	eventID := r.PathValue("eventID")
	teamID := r.PathValue("teamID")
	var req addSquadPlayerRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.squadService.AddPlayer(ctx, eventID, teamID, req.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "add squad player failed", "event_id", eventID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(updated))
}

func (h *Handler) RemoveSquadPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveSquadPlayer")
	defer span.End()

	eventID := r.PathValue("eventID")
	teamID := r.PathValue("teamID")
	playerID := r.PathValue("playerID")

	updated, err := h.squadService.RemovePlayer(ctx, eventID, teamID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove squad player failed", "event_id", eventID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(updated))
}

// SetSquadCaptain assigns the armband. An empty playerId clears it. A
// non-member is joined to the squad and made captain in the same write.
func (h *Handler) SetSquadCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetSquadCaptain")
	defer span.End()

	eventID := r.PathValue("eventID")
	teamID := r.PathValue("teamID")
	var req setCaptainRequest
	if err := h.decodeRequest(ctx, r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.squadService.SetCaptain(ctx, eventID, teamID, req.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "set squad captain failed", "event_id", eventID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, squadToDTO(updated))
}

func (h *Handler) ListSquadPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSquadPlayers")
	defer span.End()

	eventID := r.PathValue("eventID")
	teamID := r.PathValue("teamID")
	players, err := h.squadService.ListPlayers(ctx, eventID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list squad players failed", "event_id", eventID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]squadPlayerDTO, 0, len(players))
	for _, sp := range players {
		items = append(items, squadPlayerDTO{
			Player:       playerToDTO(sp.Player),
			Availability: string(sp.Availability),
			Role:         string(sp.Role),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
