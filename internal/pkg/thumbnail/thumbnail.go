package thumbnail

import (
	"bytes"
	"context"
	"image/jpeg"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const (
	// Width x Height of the derived feed image.
	Width  = 960
	Height = 339

	// Prefix is the object-key namespace of derived thumbnails.
	Prefix = "thumbs/"
)

// ObjectStore is the slice of object storage the generator and the post
// pipeline need.
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
	List(ctx context.Context, prefix string) ([]string, error)
	PublicURL(objectName string) string
}

// Key derives the thumbnail object key from an image object key.
func Key(imageKey string) string {
	return Prefix + imageKey + ".jpg"
}

// ImageKey is the inverse of Key. ok is false for keys outside Prefix.
func ImageKey(thumbKey string) (string, bool) {
	if !strings.HasPrefix(thumbKey, Prefix) || !strings.HasSuffix(thumbKey, ".jpg") {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(thumbKey, Prefix), ".jpg"), true
}

type Generator struct {
	store ObjectStore
}

func NewGenerator(store ObjectStore) *Generator {
	return &Generator{store: store}
}

// Create builds the 960x339 center-cropped thumbnail for an uploaded
// image and stores it next to the original. Small sources are upscaled.
func (s *Generator) Create(ctx context.Context, imageKey string, src io.Reader) (string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", errors.Wrap(err, "decode image")
	}

	thumb := imaging.Fill(img, Width, Height, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return "", errors.Wrap(err, "encode thumbnail")
	}

	key := Key(imageKey)
	if _, err = s.store.Upload(ctx, key, &buf, int64(buf.Len()), "image/jpeg"); err != nil {
		return "", errors.Wrap(err, "upload thumbnail")
	}
	return key, nil
}

// Release drops the derived thumbnail of an image. Deleting a missing
// artifact is not an error.
func (s *Generator) Release(ctx context.Context, imageKey string) error {
	if imageKey == "" {
		return nil
	}
	return s.store.Delete(ctx, Key(imageKey))
}
