package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TimDev9492/chad-website/internal/delivery/api/validator"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	mockUsecase "github.com/TimDev9492/chad-website/internal/mocks/usecase"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSongHandler(t *testing.T) (*SongHandler, *mockUsecase.MockSongUsecase) {
	t.Helper()

	songUC := mockUsecase.NewMockSongUsecase(t)

	return NewSongHandler(SongHandlerParams{
		SongUC: songUC,
		Logger: newDiscardLogger(),
	}), songUC
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSongHandler_SubmitSuggestion(t *testing.T) {
	h, songUC := createTestSongHandler(t)

	body := `{"id":"4uLU6hMCjMI75M1A2tKUQC","name":"Never Gonna Give You Up","artists":["Rick Astley"],"duration":213573,"popularity":80}`
	c, rec := newJSONContext(http.MethodPost, "/user/songs", body)
	state := withSession(c, entity.RoleUser)

	songUC.EXPECT().
		SubmitSuggestion(mock.Anything, state.Profile.PublicID, mock.MatchedBy(func(s *entity.SongSearchResult) bool {
			return s.ID == "4uLU6hMCjMI75M1A2tKUQC" && len(s.Artists) == 1 && s.Duration == 213573
		})).
		Return(&entity.SongSuggestion{}, nil)

	require.NoError(t, h.SubmitSuggestion(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSongHandler_SubmitSuggestion_Invalid(t *testing.T) {
	h, _ := createTestSongHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/user/songs", `{"id":"x","name":"","artists":[]}`)
	withSession(c, entity.RoleUser)

	require.NoError(t, h.SubmitSuggestion(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSongHandler_DeleteSuggestion_PassesAdminFlag(t *testing.T) {
	h, songUC := createTestSongHandler(t)

	c, rec := newJSONContext(http.MethodDelete, "/user/songs/5", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	state := withSession(c, entity.RoleAdmin)

	songUC.EXPECT().
		DeleteSuggestion(mock.Anything, usecase.SongActor{PublicID: state.Profile.PublicID, IsAdmin: true}, "5").
		Return(nil)

	require.NoError(t, h.DeleteSuggestion(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSongHandler_Like_AlreadyLiked(t *testing.T) {
	h, songUC := createTestSongHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/user/songs/5/like", "")
	c.SetParamNames("id")
	c.SetParamValues("5")
	withSession(c, entity.RoleUser)

	songUC.EXPECT().Like(mock.Anything, mock.Anything, "5").
		Return(errors.WithStack(domainerrors.ErrSongAlreadyLiked))

	require.NoError(t, h.Like(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSongHandler_Search(t *testing.T) {
	h, songUC := createTestSongHandler(t)
	songUC.EXPECT().Search(mock.Anything, "abba", 5).
		Return([]*entity.SongSearchResult{{ID: "1", Name: "Dancing Queen"}}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/spotify-search?q=abba&limit=5", "")

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "results")
	assert.NotContains(t, body, "data")

	var results []entity.SongSearchResult
	require.NoError(t, json.Unmarshal(body["results"], &results))
	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ID)
	assert.Equal(t, "Dancing Queen", results[0].Name)
}

func TestSongHandler_Search_EmptyResults(t *testing.T) {
	h, songUC := createTestSongHandler(t)
	songUC.EXPECT().Search(mock.Anything, "", 0).Return(nil, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/spotify-search", "")

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}
