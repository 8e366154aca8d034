package editor

import (
	"fmt"
	"strings"

	"github.com/ironsheep/image-editor-mcp/internal/raster"
)

// ActionKind identifies an entry of the action menu.
type ActionKind int

const (
	ActionCopy ActionKind = iota
	ActionCut
	ActionPaste
	ActionSave
)

func (k ActionKind) String() string {
	switch k {
	case ActionCopy:
		return "copy"
	case ActionCut:
		return "cut"
	case ActionPaste:
		return "paste"
	case ActionSave:
		return "save"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// ParseAction converts a menu entry name ("copy", "cut", "paste", "save") to an ActionKind.
func ParseAction(name string) (ActionKind, error) {
	switch strings.ToLower(name) {
	case "copy":
		return ActionCopy, nil
	case "cut":
		return ActionCut, nil
	case "paste":
		return ActionPaste, nil
	case "save":
		return ActionSave, nil
	default:
		return 0, fmt.Errorf("unknown action: %s", name)
	}
}

// Enablement says which menu entries are usable right now.
type Enablement struct {
	Cut   bool `json:"cut"`
	Copy  bool `json:"copy"`
	Paste bool `json:"paste"`
	Save  bool `json:"save"`
}

// View receives the requests the controller makes of the user interface.
type View interface {
	// RequestRepaint asks for the image and selection outline to be redrawn.
	RequestRepaint()

	// RequestMenuShow asks for the action menu at p with the given entries enabled.
	RequestMenuShow(p raster.Point, e Enablement)

	// ReportFailure shows the user a failed action.
	ReportFailure(kind ActionKind, message string)
}

// NopView ignores every request.
type NopView struct{}

func (NopView) RequestRepaint()                         {}
func (NopView) RequestMenuShow(raster.Point, Enablement) {}
func (NopView) ReportFailure(ActionKind, string)         {}

var _ View = NopView{}
