package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/google/uuid"
)

var (
	ErrSongNotFound        = errors.New("song suggestion not found")
	ErrDuplicateSuggestion = errors.New("song already suggested")
	ErrDuplicateLike       = errors.New("song already liked")
)

// SongRepository persists song_suggestions and song_suggestion_likes.
type SongRepository interface {
	// FindAllWithLikes returns every suggestion with the public ids of its likers, unordered.
	FindAllWithLikes(ctx context.Context) ([]*entity.SongSuggestion, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SongSuggestion, error)
	Create(ctx context.Context, suggestion *entity.SongSuggestion) error
	Delete(ctx context.Context, id uuid.UUID) error
	Like(ctx context.Context, songID, publicID uuid.UUID) error
	Unlike(ctx context.Context, songID, publicID uuid.UUID) error
}
