// Package image normalizes uploaded profile pictures before they are stored.
package image

import (
	"bytes"
	stdimage "image"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const (
	defaultMaxEdge = 512
	jpegQuality    = 85
	webpQuality    = 85
)

// processor crops avatars to a centered square no larger than maxEdge and re-encodes them.
type processor struct {
	maxEdge int
}

// NewProcessor is the constructor for processor.
func NewProcessor(cfg *config.Config) service.ImageProcessor {
	maxEdge := defaultMaxEdge
	if cfg.Storage != nil && cfg.Storage.AvatarMaxEdge > 0 {
		maxEdge = cfg.Storage.AvatarMaxEdge
	}

	return &processor{maxEdge: maxEdge}
}

func (p *processor) Normalize(data []byte, declaredMime string) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(service.ErrUnsupportedImage, "empty upload")
	}

	detected := mimetype.Detect(data)
	if !detected.Is(declaredMime) {
		return nil, errors.Wrapf(service.ErrMimeMismatch, "declared %s, detected %s", declaredMime, detected.String())
	}

	img, err := decode(data, declaredMime)
	if err != nil {
		return nil, errors.Wrap(service.ErrUnsupportedImage, err.Error())
	}

	img = p.squareCrop(img)

	return encode(img, declaredMime)
}

// squareCrop keeps small square images untouched so re-uploads stay byte-stable in size.
func (p *processor) squareCrop(img stdimage.Image) stdimage.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	edge := min(w, h, p.maxEdge)
	if w == h && w == edge {
		return img
	}

	return imaging.Fill(img, edge, edge, imaging.Center, imaging.Lanczos)
}

func decode(data []byte, mime string) (stdimage.Image, error) {
	if mime == "image/webp" {
		return webp.Decode(bytes.NewReader(data))
	}

	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

func encode(img stdimage.Image, mime string) ([]byte, error) {
	buf := new(bytes.Buffer)

	var err error
	switch mime {
	case "image/jpeg":
		err = imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	case "image/png":
		err = imaging.Encode(buf, img, imaging.PNG)
	case "image/gif":
		err = imaging.Encode(buf, img, imaging.GIF)
	case "image/webp":
		err = webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality})
	default:
		return nil, errors.Wrapf(service.ErrUnsupportedImage, "cannot encode %s", mime)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", mime)
	}

	return buf.Bytes(), nil
}
