package raster

import (
	"errors"
	"math"
	"testing"
)

// newPatternBuffer creates a buffer where each pixel holds a unique opaque value.
func newPatternBuffer(t *testing.T, width, height int) *Buffer {
	t.Helper()
	pixels := make([]uint32, width*height)
	for i := range pixels {
		pixels[i] = 0xFF000000 | uint32(i+1)
	}
	b, err := NewBufferFromPixels(width, height, pixels)
	if err != nil {
		t.Fatalf("NewBufferFromPixels failed: %v", err)
	}
	return b
}

func equalPixels(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewBuffer(t *testing.T) {
	b := NewBuffer(4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", b.Width(), b.Height())
	}
	if len(b.Pixels()) != 12 {
		t.Errorf("pixel count: got %d, want 12", len(b.Pixels()))
	}
	for i, p := range b.Pixels() {
		if p != 0 {
			t.Fatalf("pixel %d: got %#x, want 0", i, p)
		}
	}
}

func TestNewBuffer_NegativeDimensions(t *testing.T) {
	b := NewBuffer(-2, 5)
	if b.Width() != 0 || len(b.Pixels()) != 0 {
		t.Errorf("negative width should clamp to empty buffer, got %dx%d", b.Width(), b.Height())
	}
}

func TestNewBufferFromPixels_WrongLength(t *testing.T) {
	_, err := NewBufferFromPixels(2, 2, []uint32{1, 2, 3})
	if !errors.Is(err, ErrPixelCount) {
		t.Errorf("got %v, want ErrPixelCount", err)
	}
}

func TestBuffer_Replace(t *testing.T) {
	b := NewBuffer(2, 2)
	before := b.Image()

	if err := b.Replace(3, 1, []uint32{7, 8, 9}); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if b.Width() != 3 || b.Height() != 1 {
		t.Errorf("dimensions: got %dx%d, want 3x1", b.Width(), b.Height())
	}
	if !equalPixels(b.Pixels(), []uint32{7, 8, 9}) {
		t.Errorf("pixels: got %v", b.Pixels())
	}
	if b.Image() == before {
		t.Error("Replace should rebuild the display image")
	}
}

func TestBuffer_Replace_Invalid(t *testing.T) {
	b := NewBuffer(2, 2)

	if err := b.Replace(-1, 2, nil); !errors.Is(err, ErrRegionOutOfBounds) {
		t.Errorf("negative width: got %v, want ErrRegionOutOfBounds", err)
	}
	if err := b.Replace(2, 2, []uint32{1}); !errors.Is(err, ErrPixelCount) {
		t.Errorf("short slice: got %v, want ErrPixelCount", err)
	}
	if b.Width() != 2 || b.Height() != 2 {
		t.Error("failed Replace must not change the buffer")
	}
}

func TestBuffer_Pixel(t *testing.T) {
	b := newPatternBuffer(t, 3, 3)

	p, ok := b.Pixel(2, 1)
	if !ok || p != 0xFF000006 {
		t.Errorf("Pixel(2,1): got %#x,%v want 0xff000006,true", p, ok)
	}

	for _, pt := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, ok := b.Pixel(pt.X, pt.Y); ok {
			t.Errorf("Pixel%v should be outside the buffer", pt)
		}
	}
}

func TestBuffer_Pixels_ReturnsCopy(t *testing.T) {
	b := newPatternBuffer(t, 2, 2)
	px := b.Pixels()
	px[0] = 0

	if p, _ := b.Pixel(0, 0); p == 0 {
		t.Error("mutating the Pixels result must not change the buffer")
	}
}

func TestExtractRegion(t *testing.T) {
	b := newPatternBuffer(t, 4, 4)

	got, err := b.ExtractRegion(Rect{X: 1, Y: 1, W: 2, H: 2})
	if err != nil {
		t.Fatalf("ExtractRegion failed: %v", err)
	}

	// Indices 5, 6, 9, 10 hold values i+1.
	want := []uint32{0xFF000006, 0xFF000007, 0xFF00000A, 0xFF00000B}
	if !equalPixels(got, want) {
		t.Errorf("got %#x, want %#x", got, want)
	}
}

func TestExtractRegion_ZeroPadsOutsideBounds(t *testing.T) {
	b := newPatternBuffer(t, 2, 2)

	tests := []struct {
		name string
		r    Rect
		want []uint32
	}{
		{"past right edge", Rect{X: 1, Y: 0, W: 2, H: 1}, []uint32{0xFF000002, 0}},
		{"past bottom edge", Rect{X: 0, Y: 1, W: 1, H: 2}, []uint32{0xFF000003, 0}},
		{"negative origin", Rect{X: -1, Y: -1, W: 2, H: 2}, []uint32{0, 0, 0, 0xFF000001}},
		{"fully outside", Rect{X: 5, Y: 5, W: 2, H: 1}, []uint32{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.ExtractRegion(tt.r)
			if err != nil {
				t.Fatalf("ExtractRegion failed: %v", err)
			}
			if !equalPixels(got, tt.want) {
				t.Errorf("got %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestExtractRegion_ZeroSize(t *testing.T) {
	b := newPatternBuffer(t, 2, 2)

	for _, r := range []Rect{{W: 0, H: 2}, {W: 2, H: 0}, {W: 0, H: 0}} {
		got, err := b.ExtractRegion(r)
		if err != nil {
			t.Errorf("ExtractRegion(%v) failed: %v", r, err)
		}
		if len(got) != 0 {
			t.Errorf("ExtractRegion(%v): got %d pixels, want 0", r, len(got))
		}
	}
}

func TestExtractRegion_NegativeDimensions(t *testing.T) {
	b := newPatternBuffer(t, 4, 4)

	for _, r := range []Rect{{X: 3, Y: 3, W: -2, H: 1}, {X: 3, Y: 3, W: 1, H: -2}} {
		_, err := b.ExtractRegion(r)
		if !errors.Is(err, ErrRegionOutOfBounds) {
			t.Errorf("ExtractRegion(%v): got %v, want ErrRegionOutOfBounds", r, err)
		}
	}
}

func TestExtractRegion_Oversized(t *testing.T) {
	b := newPatternBuffer(t, 4, 4)

	tests := []struct {
		name string
		r    Rect
	}{
		{"area overflows int", Rect{W: math.MaxInt / 2, H: math.MaxInt / 2}},
		{"area past pixel cap", Rect{W: 100000, H: 100000}},
		{"height past dimension cap", Rect{W: 1, H: MaxDimension + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.ExtractRegion(tt.r); !errors.Is(err, ErrRegionOutOfBounds) {
				t.Errorf("got %v, want ErrRegionOutOfBounds", err)
			}
		})
	}
}

func TestCompositeRegion(t *testing.T) {
	b := NewBuffer(3, 3)

	if err := b.CompositeRegion([]uint32{1, 2, 3, 4}, Rect{X: 1, Y: 1, W: 2, H: 2}); err != nil {
		t.Fatalf("CompositeRegion failed: %v", err)
	}

	want := []uint32{
		0, 0, 0,
		0, 1, 2,
		0, 3, 4,
	}
	if !equalPixels(b.Pixels(), want) {
		t.Errorf("got %v, want %v", b.Pixels(), want)
	}
}

func TestCompositeRegion_Clipped(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want []uint32
	}{
		{
			"past bottom-right",
			Rect{X: 2, Y: 2, W: 2, H: 2},
			[]uint32{0, 0, 0, 0, 0, 0, 0, 0, 1},
		},
		{
			"negative origin",
			Rect{X: -1, Y: -1, W: 2, H: 2},
			[]uint32{4, 0, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			"fully outside",
			Rect{X: 10, Y: 0, W: 2, H: 2},
			[]uint32{0, 0, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(3, 3)
			if err := b.CompositeRegion([]uint32{1, 2, 3, 4}, tt.r); err != nil {
				t.Fatalf("CompositeRegion failed: %v", err)
			}
			if !equalPixels(b.Pixels(), tt.want) {
				t.Errorf("got %v, want %v", b.Pixels(), tt.want)
			}
		})
	}
}

func TestCompositeRegion_NeverWritesOutsideBounds(t *testing.T) {
	// Every rectangle from a grid of origins and sizes, many of which overhang.
	for x := -3; x <= 5; x++ {
		for y := -3; y <= 5; y++ {
			for w := 0; w <= 5; w++ {
				for h := 0; h <= 5; h++ {
					b := NewBuffer(4, 3)
					fill := make([]uint32, w*h)
					for i := range fill {
						fill[i] = 0xDEADBEEF
					}
					r := Rect{X: x, Y: y, W: w, H: h}
					if err := b.CompositeRegion(fill, r); err != nil {
						t.Fatalf("CompositeRegion(%v) failed: %v", r, err)
					}
					if len(b.Pixels()) != 12 {
						t.Fatalf("CompositeRegion(%v) changed buffer length", r)
					}
					for py := 0; py < 3; py++ {
						for px := 0; px < 4; px++ {
							inside := px >= x && px < x+w && py >= y && py < y+h
							p, _ := b.Pixel(px, py)
							if inside != (p == 0xDEADBEEF) {
								t.Fatalf("CompositeRegion(%v): pixel (%d,%d) = %#x", r, px, py, p)
							}
						}
					}
				}
			}
		}
	}
}

func TestCompositeRegion_Errors(t *testing.T) {
	b := newPatternBuffer(t, 3, 3)
	before := b.Pixels()

	if err := b.CompositeRegion(nil, Rect{W: -1, H: 1}); !errors.Is(err, ErrRegionOutOfBounds) {
		t.Errorf("negative width: got %v, want ErrRegionOutOfBounds", err)
	}
	if err := b.CompositeRegion(nil, Rect{W: math.MaxInt / 2, H: math.MaxInt / 2}); !errors.Is(err, ErrRegionOutOfBounds) {
		t.Errorf("overflowing area: got %v, want ErrRegionOutOfBounds", err)
	}
	if err := b.CompositeRegion([]uint32{1}, Rect{W: MaxDimension + 1, H: 1}); !errors.Is(err, ErrRegionOutOfBounds) {
		t.Errorf("oversized width: got %v, want ErrRegionOutOfBounds", err)
	}
	if err := b.CompositeRegion([]uint32{1, 2}, Rect{W: 2, H: 2}); !errors.Is(err, ErrPixelCount) {
		t.Errorf("short slice: got %v, want ErrPixelCount", err)
	}
	if !equalPixels(b.Pixels(), before) {
		t.Error("failed CompositeRegion must not mutate the buffer")
	}
}

func TestCompositeRegion_RoundTrip(t *testing.T) {
	b := newPatternBuffer(t, 5, 4)
	before := b.Pixels()

	rects := []Rect{
		{X: 0, Y: 0, W: 5, H: 4},
		{X: 1, Y: 1, W: 3, H: 2},
		{X: 4, Y: 3, W: 1, H: 1},
		{X: 2, Y: 0, W: 0, H: 4},
	}
	for _, r := range rects {
		px, err := b.ExtractRegion(r)
		if err != nil {
			t.Fatalf("ExtractRegion(%v) failed: %v", r, err)
		}
		if err := b.CompositeRegion(px, r); err != nil {
			t.Fatalf("CompositeRegion(%v) failed: %v", r, err)
		}
		if !equalPixels(b.Pixels(), before) {
			t.Errorf("round trip through %v changed the buffer", r)
		}
	}
}

func TestCompositeRegion_RebuildsDisplayImage(t *testing.T) {
	b := NewBuffer(2, 2)
	before := b.Image()

	if err := b.CompositeRegion([]uint32{0xFF00FF00}, Rect{X: 1, Y: 0, W: 1, H: 1}); err != nil {
		t.Fatalf("CompositeRegion failed: %v", err)
	}

	after := b.Image()
	if after == before {
		t.Fatal("display image should be replaced after a mutation")
	}
	if c := after.NRGBAAt(1, 0); c.R != 0 || c.G != 255 || c.B != 0 || c.A != 255 {
		t.Errorf("display pixel (1,0): got %v, want opaque green", c)
	}
	if c := before.NRGBAAt(1, 0); c.A != 0 {
		t.Error("previous display snapshot must not be modified")
	}
}

func TestRect(t *testing.T) {
	tests := []struct {
		r     Rect
		area  int
		valid bool
	}{
		{Rect{W: 3, H: 2}, 6, true},
		{Rect{W: 0, H: 2}, 0, true},
		{Rect{W: -3, H: 2}, 0, false},
		{Rect{W: -3, H: -2}, 0, false},
		{Rect{W: MaxDimension, H: 1}, MaxDimension, true},
		{Rect{W: MaxDimension + 1, H: 1}, MaxDimension + 1, false},
		{Rect{W: MaxDimension, H: MaxDimension}, MaxDimension * MaxDimension, false},
	}

	for _, tt := range tests {
		if got := tt.r.Area(); got != tt.area {
			t.Errorf("%v.Area(): got %d, want %d", tt.r, got, tt.area)
		}
		if got := tt.r.Valid(); got != tt.valid {
			t.Errorf("%v.Valid(): got %v, want %v", tt.r, got, tt.valid)
		}
	}
}
