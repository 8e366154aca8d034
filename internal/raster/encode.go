package raster

import (
	"fmt"
	"io"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// DefaultJPEGQuality is used when no quality is configured.
const DefaultJPEGQuality = 90

// Encoder turns a region of packed pixels into an image file stream.
type Encoder struct {
	// Format is the short format name: "jpeg", "png" or "bmp".
	Format string

	// MimeType is the MIME type of the encoded stream.
	MimeType string

	enc imgio.Encoder
}

// JPEGEncoder returns an encoder producing baseline JPEG at the given quality (1-100).
func JPEGEncoder(quality int) Encoder {
	return Encoder{Format: "jpeg", MimeType: "image/jpeg", enc: imgio.JPEGEncoder(quality)}
}

// PNGEncoder returns a lossless PNG encoder.
func PNGEncoder() Encoder {
	return Encoder{Format: "png", MimeType: "image/png", enc: imgio.PNGEncoder()}
}

// BMPEncoder returns a BMP encoder.
func BMPEncoder() Encoder {
	return Encoder{Format: "bmp", MimeType: "image/bmp", enc: imgio.BMPEncoder()}
}

// EncoderFor looks up an encoder by format name. Names are case-insensitive
// and "jpg" is accepted for "jpeg".
func EncoderFor(format string, quality int) (Encoder, error) {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		if quality < 1 || quality > 100 {
			return Encoder{}, fmt.Errorf("jpeg quality %d outside 1-100", quality)
		}
		return JPEGEncoder(quality), nil
	case "png":
		return PNGEncoder(), nil
	case "bmp":
		return BMPEncoder(), nil
	default:
		return Encoder{}, fmt.Errorf("unknown export format: %s", format)
	}
}

// Valid reports whether e was built by one of the constructors.
func (e Encoder) Valid() bool {
	return e.enc != nil
}

// Encode writes a width x height region of packed pixels to w.
func (e Encoder) Encode(w io.Writer, width, height int, pixels []uint32) error {
	if e.enc == nil {
		return fmt.Errorf("encoder not configured")
	}
	if err := e.enc(w, ToImage(width, height, pixels)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", e.Format, err)
	}
	return nil
}
