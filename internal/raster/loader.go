package raster

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
)

// Load decodes the image file at path into a new Buffer.
//
// Supported formats are those registered with the image package (PNG, JPEG,
// GIF, plus BMP and TIFF through the imaging library). EXIF orientation is
// applied so the buffer matches what an image viewer shows.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
func Load(path string) (*Buffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return FromImage(img), nil
}

// FromImage packs any image into a new Buffer whose origin is the image's Min point.
func FromImage(img image.Image) *Buffer {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()

	pixels := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			pixels[y*w+x] = Pack(p[0], p[1], p[2], p[3])
		}
	}

	b := &Buffer{}
	b.commit(w, h, pixels)
	return b
}

// ToImage expands packed pixels into an NRGBA image with bounds (0,0)-(width,height).
//
// Missing trailing pixels are left transparent black.
func ToImage(width, height int, pixels []uint32) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	n := width * height
	if len(pixels) < n {
		n = len(pixels)
	}
	for i := 0; i < n; i++ {
		r, g, b, a := Unpack(pixels[i])
		o := (i/width)*img.Stride + (i%width)*4
		img.Pix[o+0] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = a
	}
	return img
}

// Pack encodes 8-bit non-premultiplied channels as 0xAARRGGBB.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a 0xAARRGGBB value into its channels.
func Unpack(p uint32) (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}
