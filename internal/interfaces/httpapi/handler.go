package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/grassrootshq/teamdesk/internal/domain/selection"
	"github.com/grassrootshq/teamdesk/internal/platform/logging"
	"github.com/grassrootshq/teamdesk/internal/usecase"
)

type Handler struct {
	teamService         *usecase.TeamService
	playerService       *usecase.PlayerService
	yearGroupService    *usecase.YearGroupService
	eventService        *usecase.EventService
	availabilityService *usecase.AvailabilityService
	squadService        *usecase.SquadService
	selectionService    *usecase.SelectionService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	yearGroupService *usecase.YearGroupService,
	eventService *usecase.EventService,
	availabilityService *usecase.AvailabilityService,
	squadService *usecase.SquadService,
	selectionService *usecase.SelectionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:         teamService,
		playerService:       playerService,
		yearGroupService:    yearGroupService,
		eventService:        eventService,
		availabilityService: availabilityService,
		squadService:        squadService,
		selectionService:    selectionService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, selection.FormationIDs())
}

func (h *Handler) decodeRequest(ctx context.Context, body io.Reader, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
