package impl

import (
	"context"
	"log/slog"
	"mime"
	"strconv"
	"strings"
	"time"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/constants"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultAvatarBatchSize = 100

// avatarExtensions is the fixed MIME type to file extension table for uploads.
var avatarExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// avatarService implements the AvatarUsecase interface.
type avatarService struct {
	storage     service.AvatarStorage
	images      service.ImageProcessor
	profileRepo repository.ProfileRepository
	batchSize   int
	now         func() time.Time
	logger      *slog.Logger
}

// AvatarServiceParams holds dependencies for AvatarService, injected by Fx.
type AvatarServiceParams struct {
	fx.In

	Storage     service.AvatarStorage
	Images      service.ImageProcessor
	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAvatarService is the constructor for avatarService.
func NewAvatarService(params AvatarServiceParams) usecase.AvatarUsecase {
	batchSize := defaultAvatarBatchSize
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.AvatarBatchSize > 0 {
		batchSize = params.Config.Storage.AvatarBatchSize
	}

	return &avatarService{
		storage:     params.Storage,
		images:      params.Images,
		profileRepo: params.ProfileRepo,
		batchSize:   batchSize,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// UploadAvatar overwrites {public_id}.{ext} and stores a cache-busted URL on the profile.
func (srv *avatarService) UploadAvatar(ctx context.Context, publicID uuid.UUID, mimeType string, data []byte) (string, error) {
	mimeType = normalizeMimeType(mimeType)

	ext, ok := avatarExtensions[mimeType]
	if !ok {
		return "", errors.WithStack(domainerrors.ErrUnsupportedMimeType.WithDetails(mimeType))
	}

	normalized, err := srv.images.Normalize(data, mimeType)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImage) || errors.Is(err, service.ErrMimeMismatch) {
			return "", errors.Wrapf(domainerrors.ErrInvalidImage, "failed to normalize avatar: %v", err)
		}
		srv.logger.Error("Failed to normalize avatar", "publicID", publicID, "error", err)

		return "", errors.Wrapf(domainerrors.ErrAvatarUpdateFailed, "failed to normalize avatar: %v", err)
	}

	key := publicID.String() + "." + ext
	if err := srv.storage.Upload(ctx, key, mimeType, normalized); err != nil {
		srv.logger.Error("Failed to upload avatar", "publicID", publicID, "key", key, "error", err)

		return "", errors.Wrapf(domainerrors.ErrAvatarUpdateFailed, "failed to upload avatar: %v", err)
	}

	avatarURL := srv.storage.PublicURL(key) + "?t=" + strconv.FormatInt(srv.now().UnixMilli(), 10)
	if err := srv.profileRepo.UpdateAvatarURL(ctx, publicID, avatarURL); err != nil {
		srv.logger.Error("Failed to update avatar url", "publicID", publicID, "error", err)

		return "", errors.Wrapf(domainerrors.ErrAvatarUpdateFailed, "failed to update avatar url: %v", err)
	}

	srv.logger.Info("Avatar updated", "publicID", publicID, "key", key)

	return avatarURL, nil
}

// ReconcileAvatars removes every older picture sharing the new object's public id prefix.
func (srv *avatarService) ReconcileAvatars(ctx context.Context, inserted *entity.StorageObjectRecord) (int, error) {
	if inserted == nil || inserted.Name == "" {
		return 0, errors.WithStack(domainerrors.ErrInvalidWebhookPayload)
	}
	if inserted.BucketID != constants.AvatarBucket {
		return 0, errors.WithStack(domainerrors.ErrUnsupportedBucket.WithDetails(inserted.BucketID))
	}

	publicID := inserted.PublicIDPrefix()
	if publicID == "" {
		return 0, errors.WithStack(domainerrors.ErrInvalidWebhookPayload.WithDetails(inserted.Name))
	}

	objects, err := srv.listAll(ctx)
	if err != nil {
		srv.logger.Error("Failed to list avatars", "error", err)

		return 0, errors.Wrapf(domainerrors.ErrAvatarListFailed, "failed to list avatars: %v", err)
	}

	stale := staleAvatars(objects, inserted, publicID)
	if len(stale) == 0 {
		return 0, nil
	}

	if err := srv.storage.Delete(ctx, stale); err != nil {
		srv.logger.Error("Failed to delete old avatars", "publicID", publicID, "keys", stale, "error", err)

		return 0, errors.Wrapf(domainerrors.ErrAvatarDeleteFailed, "failed to delete avatars: %v", err)
	}

	srv.logger.Info("Deleted old avatars", "publicID", publicID, "count", len(stale))

	return len(stale), nil
}

// listAll pages through the bucket until a page comes back short or without a next token.
func (srv *avatarService) listAll(ctx context.Context) ([]service.StoredObject, error) {
	var (
		objects []service.StoredObject
		token   []byte
	)

	for {
		page, next, err := srv.storage.ListPage(ctx, token, srv.batchSize)
		if err != nil {
			return nil, err
		}
		objects = append(objects, page...)

		if len(page) < srv.batchSize || len(next) == 0 {
			return objects, nil
		}
		token = next
	}
}

func staleAvatars(objects []service.StoredObject, inserted *entity.StorageObjectRecord, publicID string) []string {
	prefix := publicID + "."
	stale := make([]string, 0)

	for _, obj := range objects {
		if obj.Key == inserted.Name || !strings.HasPrefix(obj.Key, prefix) {
			continue
		}
		if !obj.ModTime.Before(inserted.CreatedAt) {
			continue
		}
		stale = append(stale, obj.Key)
	}

	return stale
}

func normalizeMimeType(raw string) string {
	mediaType, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(raw))
	}

	return mediaType
}
