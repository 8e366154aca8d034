package raster

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrRegionOutOfBounds is returned when a region has a negative width or
	// height, or is larger than MaxDimension or MaxRegionPixels allow.
	ErrRegionOutOfBounds = errors.New("region has negative or oversized dimensions")

	// ErrPixelCount is returned when a pixel slice is shorter than its region requires.
	ErrPixelCount = errors.New("pixel count does not match region size")
)

// Buffer is a mutable raster of packed ARGB pixels.
//
// The zero value is an empty 0x0 buffer. Buffer is not safe for concurrent
// use; it is owned by a single editor.
type Buffer struct {
	width   int
	height  int
	pixels  []uint32
	display *image.NRGBA
}

// NewBuffer creates a width x height buffer with every pixel set to 0.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{}
	b.commit(width, height, make([]uint32, width*height))
	return b
}

// NewBufferFromPixels creates a buffer that takes a copy of pixels.
//
// The pixel slice must hold exactly width*height values.
func NewBufferFromPixels(width, height int, pixels []uint32) (*Buffer, error) {
	b := &Buffer{}
	if err := b.Replace(width, height, pixels); err != nil {
		return nil, err
	}
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Bounds returns the full buffer as a Rect.
func (b *Buffer) Bounds() Rect {
	return Rect{W: b.width, H: b.height}
}

// Pixel returns the packed value at (x, y) and whether the point is inside the buffer.
func (b *Buffer) Pixel(x, y int) (uint32, bool) {
	if !b.contains(x, y) {
		return 0, false
	}
	return b.pixels[y*b.width+x], true
}

// Pixels returns a copy of the full pixel slice in row-major order.
func (b *Buffer) Pixels() []uint32 {
	out := make([]uint32, len(b.pixels))
	copy(out, b.pixels)
	return out
}

// Image returns the committed display image.
//
// The returned image is replaced, not modified, by later mutations, so callers
// may hold on to it as a snapshot.
func (b *Buffer) Image() *image.NRGBA {
	if b.display == nil {
		b.display = ToImage(b.width, b.height, b.pixels)
	}
	return b.display
}

// Replace swaps in a new pixel array and dimensions.
//
// The previous array is discarded, never resized in place.
func (b *Buffer) Replace(width, height int, pixels []uint32) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("replace %dx%d: %w", width, height, ErrRegionOutOfBounds)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("replace %dx%d with %d pixels: %w", width, height, len(pixels), ErrPixelCount)
	}
	next := make([]uint32, len(pixels))
	copy(next, pixels)
	b.commit(width, height, next)
	return nil
}

// ExtractRegion copies the pixels of r into a new row-major slice of length r.W*r.H.
//
// Cells of r that fall outside the buffer read as 0.
func (b *Buffer) ExtractRegion(r Rect) ([]uint32, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("extract %v: %w", r, ErrRegionOutOfBounds)
	}

	out := make([]uint32, r.W*r.H)
	for j := 0; j < r.H; j++ {
		sy := r.Y + j
		if sy < 0 || sy >= b.height {
			continue
		}
		for i := 0; i < r.W; i++ {
			sx := r.X + i
			if sx < 0 || sx >= b.width {
				continue
			}
			out[j*r.W+i] = b.pixels[sy*b.width+sx]
		}
	}
	return out, nil
}

// CompositeRegion overwrites the cells of r with pixels, clipped to the buffer.
//
// pixels is read row-major with stride r.W. Rows at or below the bottom edge
// and columns at or past the right edge end their loops early; cells with a
// negative destination coordinate are skipped. On success the display image
// is rebuilt. On error the buffer is left unchanged.
func (b *Buffer) CompositeRegion(pixels []uint32, r Rect) error {
	if !r.Valid() {
		return fmt.Errorf("composite %v: %w", r, ErrRegionOutOfBounds)
	}
	if len(pixels) < r.W*r.H {
		return fmt.Errorf("composite %v with %d pixels: %w", r, len(pixels), ErrPixelCount)
	}

	next := make([]uint32, len(b.pixels))
	copy(next, b.pixels)

	for y := 0; y < r.H; y++ {
		dy := r.Y + y
		if dy >= b.height {
			break
		}
		if dy < 0 {
			continue
		}
		for x := 0; x < r.W; x++ {
			dx := r.X + x
			if dx >= b.width {
				break
			}
			if dx < 0 {
				continue
			}
			next[dy*b.width+dx] = pixels[r.W*y+x]
		}
	}

	b.commit(b.width, b.height, next)
	return nil
}

// commit installs a pixel array and rebuilds the display image from it.
func (b *Buffer) commit(width, height int, pixels []uint32) {
	b.width = width
	b.height = height
	b.pixels = pixels
	b.display = ToImage(width, height, pixels)
}

func (b *Buffer) contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}
