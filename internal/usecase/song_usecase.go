package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"

	"github.com/google/uuid"
)

// SongUsecase defines the song suggestions for the dance evening.
type SongUsecase interface {
	// ListSuggestions returns all suggestions, most liked first.
	ListSuggestions(ctx context.Context) ([]*entity.SongSuggestion, error)
	SubmitSuggestion(ctx context.Context, submitter uuid.UUID, song *entity.SongSearchResult) (*entity.SongSuggestion, error)

	// DeleteSuggestion removes a suggestion. Only its submitter or an admin may do so.
	DeleteSuggestion(ctx context.Context, actor SongActor, songID string) error
	Like(ctx context.Context, publicID uuid.UUID, songID string) error
	Unlike(ctx context.Context, publicID uuid.UUID, songID string) error

	// Search queries the music catalogue. A non-positive limit uses the configured default.
	Search(ctx context.Context, query string, limit int) ([]*entity.SongSearchResult, error)
}

// SongActor identifies who acts on a suggestion.
type SongActor struct {
	PublicID uuid.UUID
	IsAdmin  bool
}
