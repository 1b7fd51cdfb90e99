// Package imaging validates and normalises business images before upload.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const webpQuality = 85

var (
	ErrTooLarge       = errors.New("imaging: file too large")
	ErrUnsupported    = errors.New("imaging: unsupported file type")
	ErrCorruptedImage = errors.New("imaging: corrupted image")
	ErrTooManyPixels  = errors.New("imaging: image dimensions too large")
)

var allowed = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Options struct {
	MaxBytes     int64
	MaxDimension int
	// MaxPixels bounds width*height before the image is decoded.
	MaxPixels    int
}

// Image is ready to be sent to the backend.
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
	Resized     bool
}

// Prepare reads at most opts.MaxBytes from r, checks the content is a
// supported image and downsizes it to WebP when a side exceeds
// opts.MaxDimension. The whole image is decoded on every path so that a
// valid header over a broken body is rejected.
func Prepare(r io.Reader, filename string, opts Options) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, opts.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("imaging: read: %w", err)
	}
	if int64(len(data)) > opts.MaxBytes {
		return nil, ErrTooLarge
	}

	mt := mimetype.Detect(data)
	if !allowed[mt.String()] {
		return nil, ErrUnsupported
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, ErrCorruptedImage
	}

	if opts.MaxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(opts.MaxPixels) {
		return nil, ErrTooManyPixels
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrCorruptedImage
	}

	if opts.MaxDimension <= 0 || (cfg.Width <= opts.MaxDimension && cfg.Height <= opts.MaxDimension) {
		return &Image{Filename: filename, ContentType: mt.String(), Data: data}, nil
	}

	w, h := fit(cfg.Width, cfg.Height, opts.MaxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode webp: %w", err)
	}

	return &Image{
		Filename:    withExt(filename, ".webp"),
		ContentType: "image/webp",
		Data:        buf.Bytes(),
		Resized:     true,
	}, nil
}

func fit(w, h, max int) (int, int) {
	if w >= h {
		return max, maxInt(1, h*max/w)
	}
	return maxInt(1, w*max/h), max
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func withExt(name, ext string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." {
		base = "image"
	}
	return base + ext
}
