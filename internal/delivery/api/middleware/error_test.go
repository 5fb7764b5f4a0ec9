package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantErrCode string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "client app error keeps details",
			err:         errors.WithStack(domainerrors.ErrInvalidWorkshopID.WithDetails("abc")),
			wantCode:    http.StatusBadRequest,
			wantErrCode: domainerrors.ErrInvalidWorkshopID.ErrorCode(),
			wantMessage: domainerrors.ErrInvalidWorkshopID.Message(),
			wantDetails: "abc",
		},
		{
			name:        "unauthorized hides details",
			err:         errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("token expired")),
			wantCode:    http.StatusUnauthorized,
			wantErrCode: "UNAUTHORIZED",
			wantMessage: "Unauthorized",
		},
		{
			name:        "server app error hides details",
			err:         errors.Wrap(domainerrors.ErrExportFailed.WithDetails("disk full"), "export"),
			wantCode:    http.StatusInternalServerError,
			wantErrCode: "EXPORT_FAILED",
			wantMessage: domainerrors.ErrExportFailed.Message(),
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusNotFound, "route not found"),
			wantCode:    http.StatusNotFound,
			wantErrCode: "HTTP_ERROR",
			wantMessage: "route not found",
		},
		{
			name:        "unknown error",
			err:         errors.New("database exploded"),
			wantCode:    http.StatusInternalServerError,
			wantErrCode: "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(ErrorMiddlewareParams{Logger: newDiscardLogger()})

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/workshops/abc", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErrCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError_CommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(ErrorMiddlewareParams{Logger: newDiscardLogger()})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusNoContent))

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
