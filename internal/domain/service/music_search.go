package service

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
)

// MusicSearch looks up tracks in the external catalogue.
type MusicSearch interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]*entity.SongSearchResult, error)
}
