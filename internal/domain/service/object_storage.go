package service

import (
	"context"
	"time"
)

// StoredObject is one entry of a bucket listing.
type StoredObject struct {
	Key     string
	ModTime time.Time
	Size    int64
}

// AvatarStorage is the bucket profile pictures live in.
type AvatarStorage interface {
	// Upload writes the object, replacing any existing object with the same key.
	Upload(ctx context.Context, key, contentType string, data []byte) error

	// ListPage returns up to pageSize objects starting at pageToken (nil for the first page)
	// and the token of the next page, empty when the listing is exhausted.
	ListPage(ctx context.Context, pageToken []byte, pageSize int) ([]StoredObject, []byte, error)

	Delete(ctx context.Context, keys []string) error

	// PublicURL is the URL browsers load the object from.
	PublicURL(key string) string
}
