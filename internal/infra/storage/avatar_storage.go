// Package storage keeps profile pictures in an object bucket opened through gocloud.dev.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/constants"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets, including S3-compatible storage endpoints
)

const avatarCacheControl = "public, max-age=3600"

// Params holds dependencies for the avatar bucket, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// bucketStorage implements service.AvatarStorage on top of a *blob.Bucket.
type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewAvatarStorage opens the bucket named by storage.avatarBucketUrl and closes it on shutdown.
func NewAvatarStorage(params Params) (service.AvatarStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.AvatarBucketURL == "" {
		return nil, errors.New("storage.avatarBucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.AvatarBucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open avatar bucket %s", redactBucketURL(cfg.AvatarBucketURL))
	}

	params.Logger.Info("Avatar bucket opened", slog.String("bucket", redactBucketURL(cfg.AvatarBucketURL)))

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) service.AvatarStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *bucketStorage) Upload(ctx context.Context, key, contentType string, data []byte) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: avatarCacheControl,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload %s", key)
	}

	return nil
}

func (s *bucketStorage) ListPage(ctx context.Context, pageToken []byte, pageSize int) ([]service.StoredObject, []byte, error) {
	if len(pageToken) == 0 {
		pageToken = blob.FirstPageToken
	}

	page, next, err := s.bucket.ListPage(ctx, pageToken, pageSize, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to list avatar bucket")
	}

	objects := make([]service.StoredObject, 0, len(page))
	for _, obj := range page {
		if obj.IsDir {
			continue
		}
		objects = append(objects, service.StoredObject{
			Key:     obj.Key,
			ModTime: obj.ModTime,
			Size:    obj.Size,
		})
	}

	return objects, next, nil
}

// Delete removes every key and reports all failures together. Missing keys are not an error.
func (s *bucketStorage) Delete(ctx context.Context, keys []string) error {
	var errs []error
	for _, key := range keys {
		if err := s.bucket.Delete(ctx, key); err != nil && !isNotFound(err) {
			errs = append(errs, errors.Wrapf(err, "failed to delete %s", key))
		}
	}

	return errors.Join(errs...)
}

// PublicURL follows the storage API's public object route.
func (s *bucketStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/storage/v1/object/public/" + constants.AvatarBucket + "/" + url.PathEscape(key)
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid>"
	}
	u.RawQuery = ""

	return u.String()
}
