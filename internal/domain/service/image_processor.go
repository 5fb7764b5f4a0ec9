package service

import "github.com/TimDev9492/chad-website/internal/errors"

var (
	// ErrUnsupportedImage is returned for content that is not a decodable image.
	ErrUnsupportedImage = errors.New("unsupported image content")
	// ErrMimeMismatch is returned when the bytes do not match the declared MIME type.
	ErrMimeMismatch = errors.New("image content does not match declared mime type")
)

// ImageProcessor prepares uploaded avatars for storage.
type ImageProcessor interface {
	// Normalize checks data against declaredMime and returns the bytes to store, in the same format.
	Normalize(data []byte, declaredMime string) ([]byte, error)
}
