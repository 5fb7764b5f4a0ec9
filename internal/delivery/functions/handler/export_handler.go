package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "github.com/TimDev9492/chad-website/internal/delivery/context"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	exportFileName    = "data.xlsx"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxExportBodySize = 64 << 10
)

// ExportHandlerParams holds dependencies for ExportHandler, injected by Fx.
type ExportHandlerParams struct {
	fx.In

	ParticipantUC usecase.ParticipantUsecase
	Logger        *slog.Logger
}

// ExportHandler renders the participant workbook for admins.
type ExportHandler struct {
	participantUC usecase.ParticipantUsecase
	logger        *slog.Logger
}

// NewExportHandler is the constructor for ExportHandler.
func NewExportHandler(params ExportHandlerParams) *ExportHandler {
	return &ExportHandler{
		participantUC: params.ParticipantUC,
		logger:        params.Logger,
	}
}

// Handle expects a bearer token and an optional JSON array of payment statuses.
func (h *ExportHandler) Handle(c echo.Context) error {
	logger := deliverycontext.Logger(c.Request().Context(), h.logger)

	if c.Request().Method != http.MethodPost {
		return methodNotAllowed(c)
	}

	token, _ := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	if err := h.participantUC.AuthorizeExport(c.Request().Context(), strings.TrimSpace(token)); err != nil {
		return respondError(c, logger, err)
	}

	statuses, err := readStatusFilter(c.Request().Body)
	if err != nil {
		return respondError(c, logger, err)
	}

	workbook, err := h.participantUC.Export(c.Request().Context(), statuses)
	if err != nil {
		return respondError(c, logger, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFileName+`"`)

	return c.Blob(http.StatusOK, xlsxContentType, workbook)
}

// readStatusFilter accepts an empty body as "no filter".
func readStatusFilter(body io.Reader) ([]string, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxExportBodySize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read request body")
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil, nil
	}

	var statuses []string
	if err := json.Unmarshal(raw, &statuses); err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidPaymentStatus.WithDetails("body must be a JSON array of payment statuses"))
	}

	return statuses, nil
}
