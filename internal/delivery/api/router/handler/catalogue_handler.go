package handler

import (
	"log/slog"
	"net/http"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogueHandlerParams holds dependencies for CatalogueHandler, injected by Fx.
type CatalogueHandlerParams struct {
	fx.In

	WorkshopUC    usecase.WorkshopUsecase
	ParticipantUC usecase.ParticipantUsecase
	Logger        *slog.Logger
}

// CatalogueHandler serves the read-only listings: workshops and registered attendees.
type CatalogueHandler struct {
	workshopUC    usecase.WorkshopUsecase
	participantUC usecase.ParticipantUsecase
	logger        *slog.Logger
}

// NewCatalogueHandler is the constructor for CatalogueHandler.
func NewCatalogueHandler(params CatalogueHandlerParams) *CatalogueHandler {
	return &CatalogueHandler{
		workshopUC:    params.WorkshopUC,
		participantUC: params.ParticipantUC,
		logger:        params.Logger,
	}
}

// ListWorkshops handles GET /workshops.
func (h *CatalogueHandler) ListWorkshops(c echo.Context) error {
	schedule, err := h.workshopUC.ListByTimeSlot(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule)
}

// GetWorkshop handles GET /workshops/:id.
func (h *CatalogueHandler) GetWorkshop(c echo.Context) error {
	workshop, err := h.workshopUC.GetWorkshop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, workshop)
}

// ListParticipants handles GET /participants.
func (h *CatalogueHandler) ListParticipants(c echo.Context) error {
	users, err := h.participantUC.ListRegistered(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}
