package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"

	"github.com/google/uuid"
)

// FoodPreferenceRepository persists food_preferences rows.
type FoodPreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.FoodPreference, error)

	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// CreateMany inserts one row per preference. An empty slice is a no-op.
	CreateMany(ctx context.Context, userID uuid.UUID, prefs []entity.FoodPreference) error
}
