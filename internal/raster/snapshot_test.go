package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/png"
	"math"
	"testing"
)

func decodeSnapshot(t *testing.T, result *SnapshotResult) *Buffer {
	t.Helper()
	decoded, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(decoded))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return FromImage(img)
}

func TestSnapshot_Full(t *testing.T) {
	b := FromImage(createQuadrantImage(100, 100))

	result, err := Snapshot(b, nil, 1.0)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	got := decodeSnapshot(t, result)
	if p, _ := got.Pixel(75, 25); p != 0xFF00FF00 {
		t.Errorf("top-right: got %#x, want green", p)
	}
}

func TestSnapshot_Region(t *testing.T) {
	b := FromImage(createQuadrantImage(100, 100))

	result, err := Snapshot(b, &Rect{X: 50, Y: 50, W: 50, H: 50}, 1.0)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if result.Width != 50 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}

	got := decodeSnapshot(t, result)
	if p, _ := got.Pixel(25, 25); p != 0xFFFFFFFF {
		t.Errorf("bottom-right quadrant: got %#x, want white", p)
	}
}

func TestSnapshot_ReflectsMutations(t *testing.T) {
	b := NewBuffer(4, 4)
	if err := b.CompositeRegion([]uint32{0xFFFF0000}, Rect{X: 2, Y: 2, W: 1, H: 1}); err != nil {
		t.Fatalf("CompositeRegion failed: %v", err)
	}

	result, err := Snapshot(b, nil, 1.0)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	got := decodeSnapshot(t, result)
	if p, _ := got.Pixel(2, 2); p != 0xFFFF0000 {
		t.Errorf("pixel (2,2): got %#x, want red", p)
	}
}

func TestSnapshot_WithScale(t *testing.T) {
	b := FromImage(createQuadrantImage(100, 100))

	result, err := Snapshot(b, &Rect{W: 50, H: 50}, 2.0)
	if err != nil {
		t.Fatalf("Snapshot with scale failed: %v", err)
	}
	if result.Width != 100 || result.Height != 100 {
		t.Errorf("scaled dimensions: got %dx%d, want 100x100", result.Width, result.Height)
	}
}

func TestSnapshot_InvalidRegion(t *testing.T) {
	b := NewBuffer(100, 100)

	tests := []struct {
		name string
		r    Rect
	}{
		{"x negative", Rect{X: -1, W: 50, H: 50}},
		{"y negative", Rect{Y: -1, W: 50, H: 50}},
		{"too wide", Rect{X: 60, W: 50, H: 50}},
		{"too tall", Rect{Y: 60, W: 50, H: 50}},
		{"zero width", Rect{W: 0, H: 50}},
		{"negative height", Rect{Y: 50, W: 10, H: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Snapshot(b, &tt.r, 1.0); err == nil {
				t.Error("Snapshot should fail for an invalid region")
			}
		})
	}
}

func TestSnapshot_InvalidScale(t *testing.T) {
	b := NewBuffer(100, 100)

	tests := []struct {
		name    string
		r       *Rect
		scale   float64
		bounded bool
	}{
		{"huge scale", nil, 1e6, true},
		{"wide result", &Rect{W: 100, H: 1}, 400, true},
		{"area past pixel cap", nil, 100, true},
		{"negative", nil, -2, false},
		{"zero", nil, 0, false},
		{"NaN", nil, math.NaN(), false},
		{"infinite", nil, math.Inf(1), false},
		{"shrinks to nothing", nil, 0.001, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Snapshot(b, tt.r, tt.scale)
			if err == nil {
				t.Fatal("Snapshot should fail")
			}
			if tt.bounded && !errors.Is(err, ErrRegionOutOfBounds) {
				t.Errorf("got %v, want ErrRegionOutOfBounds", err)
			}
		})
	}
}

func TestSnapshot_RegionOverflow(t *testing.T) {
	b := NewBuffer(10, 10)
	r := Rect{X: math.MaxInt, Y: 0, W: 1, H: 1}

	if _, err := Snapshot(b, &r, 1.0); err == nil {
		t.Error("Snapshot should reject a region whose end overflows")
	}
}
