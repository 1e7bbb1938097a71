// Package imaging checks uploaded item photos. Files are stored exactly as
// received; only their format and dimensions are verified.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for anything that is not a readable
// JPEG, PNG or WebP image.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrTooLarge is returned when an image exceeds the dimension limit.
var ErrTooLarge = errors.New("image dimensions too large")

// Options bounds what is accepted.
type Options struct {
	// MaxDimension bounds both width and height. Zero means no limit.
	MaxDimension int
}

// DefaultOptions are used for item photos.
var DefaultOptions = Options{MaxDimension: 8192}

// extensions maps accepted content types, sniffed from the data, to the
// extension the stored file gets.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Photo is a verified item photo.
type Photo struct {
	Data   []byte
	MIME   string
	Ext    string
	Width  int
	Height int
}

// Inspect reads r fully, sniffs its format and reads the image header.
// Client-supplied content types are never trusted.
func Inspect(r io.Reader, opts Options) (*Photo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading image data: %w", err)
	}

	detected := http.DetectContentType(data)
	ext, ok := extensions[detected]
	if !ok {
		return nil, fmt.Errorf("%w: %s (only JPEG, PNG and WebP accepted)", ErrUnsupportedFormat, detected)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrUnsupportedFormat, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty image", ErrUnsupportedFormat)
	}
	if opts.MaxDimension > 0 && (cfg.Width > opts.MaxDimension || cfg.Height > opts.MaxDimension) {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrTooLarge, cfg.Width, cfg.Height, opts.MaxDimension)
	}

	return &Photo{
		Data:   data,
		MIME:   detected,
		Ext:    ext,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
