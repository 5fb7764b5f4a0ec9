package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"

	"github.com/google/uuid"
)

// AvatarUsecase manages profile pictures in the avatars bucket.
type AvatarUsecase interface {
	// UploadAvatar stores the image under {public_id}.{ext} and points the profile at it.
	// It returns the new cache-busted avatar URL.
	UploadAvatar(ctx context.Context, publicID uuid.UUID, mimeType string, data []byte) (string, error)

	// ReconcileAvatars deletes the older pictures of the owner of a newly inserted object
	// and returns how many files were removed.
	ReconcileAvatars(ctx context.Context, inserted *entity.StorageObjectRecord) (int, error)
}
