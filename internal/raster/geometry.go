package raster

import "fmt"

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a region given by its origin and size.
//
// W and H may be zero, negative or huge; Valid reports whether the
// rectangle can be extracted or composited.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"width"`
	H int `json:"height"`
}

// Area returns W*H, or 0 when either dimension is not positive.
func (r Rect) Area() int {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// MaxDimension is the largest width or height of a region the editor moves.
const MaxDimension = 1 << 15

// MaxRegionPixels bounds the cell count of a single region.
const MaxRegionPixels = 1 << 26

// Valid reports whether both dimensions are non-negative and the region is
// small enough to hold in memory.
func (r Rect) Valid() bool {
	if r.W < 0 || r.H < 0 || r.W > MaxDimension || r.H > MaxDimension {
		return false
	}
	return r.W*r.H <= MaxRegionPixels
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}
