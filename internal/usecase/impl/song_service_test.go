package impl

import (
	"context"
	"testing"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	mockRepo "github.com/TimDev9492/chad-website/internal/mocks/repository"
	mockService "github.com/TimDev9492/chad-website/internal/mocks/service"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type songServiceFixtures struct {
	service  usecase.SongUsecase
	songRepo *mockRepo.MockSongRepository
	search   *mockService.MockMusicSearch
}

func createTestSongService(t *testing.T) songServiceFixtures {
	songRepo := mockRepo.NewMockSongRepository(t)
	search := mockService.NewMockMusicSearch(t)

	return songServiceFixtures{
		service: NewSongService(SongServiceParams{
			SongRepo: songRepo,
			Search:   search,
			Config:   &config.Config{Spotify: &config.SpotifyConfig{DefaultLimit: 20}},
			Logger:   newDiscardLogger(),
		}),
		songRepo: songRepo,
		search:   search,
	}
}

func TestSongService_ListSuggestions_SortedByLikes(t *testing.T) {
	fx := createTestSongService(t)

	ctx := context.Background()
	quiet := &entity.SongSuggestion{ID: uuid.New(), Name: "Quiet", LikedBy: []uuid.UUID{}}
	popular := &entity.SongSuggestion{ID: uuid.New(), Name: "Popular", LikedBy: []uuid.UUID{uuid.New(), uuid.New()}}
	liked := &entity.SongSuggestion{ID: uuid.New(), Name: "Liked", LikedBy: []uuid.UUID{uuid.New()}}

	fx.songRepo.EXPECT().FindAllWithLikes(ctx).Return([]*entity.SongSuggestion{quiet, popular, liked}, nil)

	got, err := fx.service.ListSuggestions(ctx)

	require.NoError(t, err)
	assert.Equal(t, []*entity.SongSuggestion{popular, liked, quiet}, got)
}

func TestSongService_SubmitSuggestion(t *testing.T) {
	fx := createTestSongService(t)

	ctx := context.Background()
	submitter := uuid.New()
	song := &entity.SongSearchResult{
		ID:      "4uLU6hMCjMI75M1A2tKUQC",
		Name:    "Never Gonna Give You Up",
		Artists: []string{"Rick Astley"},
		Album:   "Whenever You Need Somebody",
	}

	fx.songRepo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.SongSuggestion) bool {
		return s.SpotifyID == song.ID && s.SubmittedBy == submitter && s.ID != uuid.Nil
	})).Return(nil)

	got, err := fx.service.SubmitSuggestion(ctx, submitter, song)

	require.NoError(t, err)
	assert.Equal(t, "Never Gonna Give You Up", got.Name)
	assert.Empty(t, got.LikedBy)
}

func TestSongService_SubmitSuggestion_Errors(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		fx := createTestSongService(t)

		_, err := fx.service.SubmitSuggestion(context.Background(), uuid.New(), &entity.SongSearchResult{ID: "x", Artists: []string{"a"}})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestSongService(t)

		ctx := context.Background()
		fx.songRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateSuggestion)

		_, err := fx.service.SubmitSuggestion(ctx, uuid.New(), &entity.SongSearchResult{ID: "x", Name: "y", Artists: []string{"a"}})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrSongAlreadySuggested))
	})
}

func TestSongService_DeleteSuggestion(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name    string
		actor   usecase.SongActor
		wantErr error
	}{
		{name: "submitter", actor: usecase.SongActor{PublicID: owner}},
		{name: "admin", actor: usecase.SongActor{PublicID: uuid.New(), IsAdmin: true}},
		{name: "someone else", actor: usecase.SongActor{PublicID: uuid.New()}, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSongService(t)

			ctx := context.Background()
			songID := uuid.New()

			fx.songRepo.EXPECT().FindByID(ctx, songID).Return(&entity.SongSuggestion{ID: songID, SubmittedBy: owner}, nil)
			if tt.wantErr == nil {
				fx.songRepo.EXPECT().Delete(ctx, songID).Return(nil)
			}

			err := fx.service.DeleteSuggestion(ctx, tt.actor, songID.String())

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestSongService_DeleteSuggestion_NotFound(t *testing.T) {
	fx := createTestSongService(t)

	ctx := context.Background()
	songID := uuid.New()

	fx.songRepo.EXPECT().FindByID(ctx, songID).Return(nil, repository.ErrSongNotFound)

	err := fx.service.DeleteSuggestion(ctx, usecase.SongActor{PublicID: uuid.New()}, songID.String())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSongNotFound))
}

func TestSongService_Like(t *testing.T) {
	fx := createTestSongService(t)

	ctx := context.Background()
	songID := uuid.New()
	publicID := uuid.New()

	fx.songRepo.EXPECT().Like(ctx, songID, publicID).Return(nil).Once()
	require.NoError(t, fx.service.Like(ctx, publicID, songID.String()))

	fx.songRepo.EXPECT().Like(ctx, songID, publicID).Return(repository.ErrDuplicateLike).Once()
	err := fx.service.Like(ctx, publicID, songID.String())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSongAlreadyLiked))
}

func TestSongService_Like_InvalidID(t *testing.T) {
	fx := createTestSongService(t)

	err := fx.service.Like(context.Background(), uuid.New(), "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSongID))
}

func TestSongService_Unlike(t *testing.T) {
	fx := createTestSongService(t)

	ctx := context.Background()
	songID := uuid.New()
	publicID := uuid.New()

	fx.songRepo.EXPECT().Unlike(ctx, songID, publicID).Return(nil)

	assert.NoError(t, fx.service.Unlike(ctx, publicID, songID.String()))
}

func TestSongService_Search(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default limit", limit: 0, wantLimit: 20},
		{name: "explicit limit", limit: 5, wantLimit: 5},
		{name: "capped limit", limit: 500, wantLimit: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSongService(t)

			ctx := context.Background()
			results := []*entity.SongSearchResult{{ID: "1", Name: "Song"}}

			fx.search.EXPECT().SearchTracks(ctx, "astley", tt.wantLimit).Return(results, nil)

			got, err := fx.service.Search(ctx, " astley ", tt.limit)

			require.NoError(t, err)
			assert.Equal(t, results, got)
		})
	}
}

func TestSongService_Search_Errors(t *testing.T) {
	t.Run("empty query", func(t *testing.T) {
		fx := createTestSongService(t)

		_, err := fx.service.Search(context.Background(), "  ", 0)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrSearchQueryMissing))
	})

	t.Run("upstream failure", func(t *testing.T) {
		fx := createTestSongService(t)

		ctx := context.Background()
		fx.search.EXPECT().SearchTracks(ctx, "astley", 20).Return(nil, errors.New("status 502"))

		_, err := fx.service.Search(ctx, "astley", 0)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrMusicSearchFailed))
	})
}
