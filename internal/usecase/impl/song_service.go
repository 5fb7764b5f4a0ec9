package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// songService implements the SongUsecase interface.
type songService struct {
	songRepo     repository.SongRepository
	search       service.MusicSearch
	defaultLimit int
	logger       *slog.Logger
}

// SongServiceParams holds dependencies for SongService, injected by Fx.
type SongServiceParams struct {
	fx.In

	SongRepo repository.SongRepository
	Search   service.MusicSearch
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSongService is the constructor for songService.
func NewSongService(params SongServiceParams) usecase.SongUsecase {
	srv := &songService{
		songRepo:     params.SongRepo,
		search:       params.Search,
		defaultLimit: defaultSearchLimit,
		logger:       params.Logger,
	}
	if params.Config != nil && params.Config.Spotify != nil && params.Config.Spotify.DefaultLimit > 0 {
		srv.defaultLimit = min(params.Config.Spotify.DefaultLimit, maxSearchLimit)
	}

	return srv
}

func (srv *songService) ListSuggestions(ctx context.Context) ([]*entity.SongSuggestion, error) {
	suggestions, err := srv.songRepo.FindAllWithLikes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list song suggestions")
	}
	if suggestions == nil {
		suggestions = []*entity.SongSuggestion{}
	}

	entity.SortByLikes(suggestions)

	return suggestions, nil
}

func (srv *songService) SubmitSuggestion(ctx context.Context, submitter uuid.UUID, song *entity.SongSearchResult) (*entity.SongSuggestion, error) {
	if song == nil || strings.TrimSpace(song.ID) == "" || strings.TrimSpace(song.Name) == "" || len(song.Artists) == 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("song id, name and artists are required"))
	}

	suggestion := &entity.SongSuggestion{
		ID:            uuid.New(),
		SpotifyID:     song.ID,
		Name:          song.Name,
		Artists:       song.Artists,
		Album:         song.Album,
		Duration:      song.Duration,
		Popularity:    song.Popularity,
		ReleaseDate:   song.ReleaseDate,
		CoverImageURL: song.CoverImageURL,
		SpotifyURL:    song.SpotifyURL,
		SubmittedBy:   submitter,
		LikedBy:       []uuid.UUID{},
	}

	if err := srv.songRepo.Create(ctx, suggestion); err != nil {
		if errors.Is(err, repository.ErrDuplicateSuggestion) {
			return nil, errors.WithStack(domainerrors.ErrSongAlreadySuggested)
		}

		return nil, errors.Wrap(err, "failed to create song suggestion")
	}

	srv.logger.Info("Song suggested", "songID", suggestion.ID, "spotifyID", suggestion.SpotifyID)

	return suggestion, nil
}

func (srv *songService) DeleteSuggestion(ctx context.Context, actor usecase.SongActor, songID string) error {
	id, err := parseSongID(songID)
	if err != nil {
		return err
	}

	suggestion, err := srv.songRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return errors.WithStack(domainerrors.ErrSongNotFound)
		}

		return errors.Wrap(err, "failed to find song suggestion")
	}

	if suggestion.SubmittedBy != actor.PublicID && !actor.IsAdmin {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	if err := srv.songRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			return errors.WithStack(domainerrors.ErrSongNotFound)
		}

		return errors.Wrap(err, "failed to delete song suggestion")
	}

	srv.logger.Info("Song suggestion deleted", "songID", id, "byAdmin", actor.IsAdmin)

	return nil
}

func (srv *songService) Like(ctx context.Context, publicID uuid.UUID, songID string) error {
	id, err := parseSongID(songID)
	if err != nil {
		return err
	}

	if err := srv.songRepo.Like(ctx, id, publicID); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateLike):
			return errors.WithStack(domainerrors.ErrSongAlreadyLiked)
		case errors.Is(err, repository.ErrSongNotFound):
			return errors.WithStack(domainerrors.ErrSongNotFound)
		}

		return errors.Wrap(err, "failed to like song")
	}

	return nil
}

// Unlike succeeds when there was no like to remove.
func (srv *songService) Unlike(ctx context.Context, publicID uuid.UUID, songID string) error {
	id, err := parseSongID(songID)
	if err != nil {
		return err
	}

	if err := srv.songRepo.Unlike(ctx, id, publicID); err != nil {
		return errors.Wrap(err, "failed to unlike song")
	}

	return nil
}

func (srv *songService) Search(ctx context.Context, query string, limit int) ([]*entity.SongSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.WithStack(domainerrors.ErrSearchQueryMissing)
	}

	if limit <= 0 {
		limit = srv.defaultLimit
	}
	limit = min(limit, maxSearchLimit)

	results, err := srv.search.SearchTracks(ctx, query, limit)
	if err != nil {
		srv.logger.Error("Music search failed", "query", query, "error", err)

		return nil, errors.Wrap(domainerrors.ErrMusicSearchFailed, err.Error())
	}
	if results == nil {
		results = []*entity.SongSearchResult{}
	}

	return results, nil
}

func parseSongID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidSongID.WithDetails(raw))
	}

	return id, nil
}
