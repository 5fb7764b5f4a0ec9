package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	"github.com/TimDev9492/chad-website/internal/delivery/api/validator"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SongHandlerParams holds dependencies for SongHandler, injected by Fx.
type SongHandlerParams struct {
	fx.In

	SongUC usecase.SongUsecase
	Logger *slog.Logger
}

// SongHandler serves the dance evening song suggestions and the music search.
type SongHandler struct {
	songUC usecase.SongUsecase
	logger *slog.Logger
}

// NewSongHandler is the constructor for SongHandler.
func NewSongHandler(params SongHandlerParams) *SongHandler {
	return &SongHandler{
		songUC: params.SongUC,
		logger: params.Logger,
	}
}

// SubmitSongRequest is a search result the attendee picked.
type SubmitSongRequest struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Artists       []string `json:"artists" validate:"required,min=1,dive,required"`
	Album         string   `json:"album"`
	ReleaseDate   string   `json:"releaseDate"`
	Duration      int      `json:"duration" validate:"gte=0"`
	Popularity    int      `json:"popularity" validate:"gte=0,lte=100"`
	CoverImageURL string   `json:"coverImageUrl" validate:"omitempty,url"`
	SpotifyURL    string   `json:"spotifyUrl" validate:"omitempty,url"`
}

// SearchResponse is the search body the song picker reads.
type SearchResponse struct {
	Results []*entity.SongSearchResult `json:"results"`
}

// ListSuggestions handles GET /user/songs.
func (h *SongHandler) ListSuggestions(c echo.Context) error {
	suggestions, err := h.songUC.ListSuggestions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, suggestions)
}

// SubmitSuggestion handles POST /user/songs.
func (h *SongHandler) SubmitSuggestion(c echo.Context) error {
	state, err := requireProfile(c)
	if err != nil {
		return err
	}

	var req SubmitSongRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid song input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid song input", validator.Describe(err))
	}

	suggestion, err := h.songUC.SubmitSuggestion(c.Request().Context(), state.Profile.PublicID, &entity.SongSearchResult{
		ID:            req.ID,
		Name:          req.Name,
		Artists:       req.Artists,
		Album:         req.Album,
		ReleaseDate:   req.ReleaseDate,
		Duration:      req.Duration,
		Popularity:    req.Popularity,
		CoverImageURL: req.CoverImageURL,
		SpotifyURL:    req.SpotifyURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, suggestion)
}

// DeleteSuggestion handles DELETE /user/songs/:id.
func (h *SongHandler) DeleteSuggestion(c echo.Context) error {
	state, err := requireProfile(c)
	if err != nil {
		return err
	}

	actor := usecase.SongActor{PublicID: state.Profile.PublicID, IsAdmin: state.IsAdmin()}
	if err := h.songUC.DeleteSuggestion(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Like handles POST /user/songs/:id/like.
func (h *SongHandler) Like(c echo.Context) error {
	state, err := requireProfile(c)
	if err != nil {
		return err
	}

	if err := h.songUC.Like(c.Request().Context(), state.Profile.PublicID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Unlike handles DELETE /user/songs/:id/like.
func (h *SongHandler) Unlike(c echo.Context) error {
	state, err := requireProfile(c)
	if err != nil {
		return err
	}

	if err := h.songUC.Unlike(c.Request().Context(), state.Profile.PublicID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /api/spotify-search?q=&limit=.
func (h *SongHandler) Search(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	results, err := h.songUC.Search(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if results == nil {
		results = []*entity.SongSearchResult{}
	}

	return c.JSON(http.StatusOK, SearchResponse{Results: results})
}
