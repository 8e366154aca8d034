// Package selection tracks the rectangle a user drags out with the pointer
// and the point where pasted pixels land.
//
// The model stores two corners, start and finish, and derives a rectangle
// from them without normalizing: dragging up or left yields negative width
// or height. Two predicates answer different questions and must not be
// swapped:
//
//   - HasNonEmptySelection: the corners differ (enables cut and copy)
//   - HasPaintableSelection: width and height are both positive (draw the outline)
package selection

import "github.com/ironsheep/image-editor-mcp/internal/raster"

// Model holds the selection corners and the paste anchor.
//
// The zero value is an idle selection at the origin with no anchor.
type Model struct {
	start     raster.Point
	finish    raster.Point
	anchor    raster.Point
	anchorSet bool
}

// New returns an idle selection at the origin.
func New() *Model {
	return &Model{}
}

// OnPrimaryPress collapses the selection onto p. A following drag grows it.
func (m *Model) OnPrimaryPress(p raster.Point) {
	m.start = p
	m.finish = p
}

// OnDrag moves the finish corner to p. The start corner is unchanged.
func (m *Model) OnDrag(p raster.Point) {
	m.finish = p
}

// OnSecondaryPress records p as the paste anchor. The selection is unchanged.
func (m *Model) OnSecondaryPress(p raster.Point) {
	m.anchor = p
	m.anchorSet = true
}

// Start returns the corner set by the last primary press.
func (m *Model) Start() raster.Point { return m.start }

// Finish returns the corner set by the last drag.
func (m *Model) Finish() raster.Point { return m.finish }

// PasteAnchor returns the last secondary-press point and whether one was recorded.
func (m *Model) PasteAnchor() (raster.Point, bool) {
	return m.anchor, m.anchorSet
}

// Rect returns the rectangle from start to finish. Width and height may be negative.
func (m *Model) Rect() raster.Rect {
	return raster.Rect{
		X: m.start.X,
		Y: m.start.Y,
		W: m.finish.X - m.start.X,
		H: m.finish.Y - m.start.Y,
	}
}

// HasNonEmptySelection reports whether the corners differ.
func (m *Model) HasNonEmptySelection() bool {
	return m.finish != m.start
}

// HasPaintableSelection reports whether the rectangle has positive width and height.
func (m *Model) HasPaintableSelection() bool {
	r := m.Rect()
	return r.W > 0 && r.H > 0
}
