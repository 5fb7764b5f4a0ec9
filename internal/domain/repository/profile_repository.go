package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when no user_infos row exists for the user.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads and writes the user_infos and public_infos rows of an attendee.
type ProfileRepository interface {
	// FindByUserID assembles the full profile including role, payment, address and food preferences.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// UpdateRegistration writes the personal and logistics fields of the registration form.
	// Public id, email, avatar, role and payment columns are never touched.
	UpdateRegistration(ctx context.Context, userID uuid.UUID, data *entity.RegistrationData) error

	// UpdateAvatarURL points public_infos.avatar_url at a new image.
	UpdateAvatarURL(ctx context.Context, publicID uuid.UUID, avatarURL string) error

	// SyncOAuthProfile copies name and picture from an identity provider into public_infos.
	// Empty fields in the provider profile leave the stored value untouched.
	SyncOAuthProfile(ctx context.Context, userID uuid.UUID, profile entity.OAuthProfile) error

	// CountRegistered returns the number of accounts that have a user_infos row.
	CountRegistered(ctx context.Context) (int64, error)
}
