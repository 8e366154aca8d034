package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
)

// SnapshotResult contains a PNG rendering of the committed display image.
type SnapshotResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Snapshot renders the buffer's display image, or the region r of it, as base64 PNG.
//
// r must lie inside the buffer and have positive size; nil means the whole
// buffer. A scale other than 1 resizes the result with Lanczos resampling; the
// scaled size must stay within MaxDimension and MaxRegionPixels.
func Snapshot(b *Buffer, r *Rect, scale float64) (*SnapshotResult, error) {
	var img image.Image = b.Image()

	if r != nil {
		if r.X < 0 || r.Y < 0 || r.W > b.width-r.X || r.H > b.height-r.Y {
			return nil, fmt.Errorf("snapshot region %v outside image bounds %dx%d", *r, b.width, b.height)
		}
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("invalid snapshot region %v: width and height must be positive", *r)
		}
		img = imaging.Crop(img, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H))
	}

	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return nil, fmt.Errorf("invalid snapshot scale %v: must be a positive number", scale)
	}
	if scale != 1.0 {
		w := float64(img.Bounds().Dx()) * scale
		h := float64(img.Bounds().Dy()) * scale
		if w > MaxDimension || h > MaxDimension || w*h > MaxRegionPixels {
			return nil, fmt.Errorf("snapshot scale %v gives %.0fx%.0f, larger than %dx%d: %w",
				scale, w, h, MaxDimension, MaxDimension, ErrRegionOutOfBounds)
		}
		newWidth := int(w)
		newHeight := int(h)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("snapshot scale %v gives an empty image", scale)
		}
		img = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return &SnapshotResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
