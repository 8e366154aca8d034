package server

import (
	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/raster"
)

// MenuEvent asks the client to show the action menu.
type MenuEvent struct {
	X          int               `json:"x"`
	Y          int               `json:"y"`
	Enablement editor.Enablement `json:"enabled"`
}

// FailureEvent reports a failed action to the user.
type FailureEvent struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

// ViewEvents collects the requests the editor made during one tool call.
type ViewEvents struct {
	Repaint  bool           `json:"repaint"`
	Menu     *MenuEvent     `json:"menu,omitempty"`
	Failures []FailureEvent `json:"failures,omitempty"`
}

// eventView implements editor.View by recording requests until drained.
type eventView struct {
	pending ViewEvents
}

func (v *eventView) RequestRepaint() {
	v.pending.Repaint = true
}

func (v *eventView) RequestMenuShow(p raster.Point, e editor.Enablement) {
	v.pending.Menu = &MenuEvent{X: p.X, Y: p.Y, Enablement: e}
}

func (v *eventView) ReportFailure(kind editor.ActionKind, message string) {
	v.pending.Failures = append(v.pending.Failures, FailureEvent{Action: kind.String(), Message: message})
}

// drain returns the recorded events and starts a new batch.
func (v *eventView) drain() ViewEvents {
	out := v.pending
	v.pending = ViewEvents{}
	return out
}

var _ editor.View = (*eventView)(nil)
