// Package editor wires the selection model, the raster buffer and the
// clipboard together into copy, cut, paste and save actions.
//
// A Controller is driven by pointer events and menu actions from a user
// interface and answers through the View interface. It runs on one goroutine;
// the only shared state it touches is the clipboard Bridge, which it reads
// exactly once per operation.
package editor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ironsheep/image-editor-mcp/internal/clipboard"
	"github.com/ironsheep/image-editor-mcp/internal/raster"
	"github.com/ironsheep/image-editor-mcp/internal/selection"
)

// ErrNoSelection is returned by Copy and Cut when the selection corners coincide.
var ErrNoSelection = errors.New("no region selected")

// pasteFailureMessage is shown for every failed paste.
const pasteFailureMessage = "Unable to paste clipboard data"

// SaveError reports an I/O failure while writing the clipboard stream to a file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save clipboard to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// Options configures a Controller. Zero fields take defaults.
type Options struct {
	// Bridge is the clipboard slot. Defaults to clipboard.Shared().
	Bridge clipboard.Bridge

	// Encoder produces the stream flavor of copied regions. Defaults to JPEG.
	Encoder raster.Encoder

	// View receives repaint, menu and failure requests. Defaults to NopView.
	View View

	// Logger receives diagnostic messages. Defaults to discarding them.
	Logger *log.Logger
}

// Controller performs editor actions on one buffer.
type Controller struct {
	buffer  *raster.Buffer
	sel     *selection.Model
	bridge  clipboard.Bridge
	encoder raster.Encoder
	view    View
	logger  *log.Logger
}

// New creates a controller editing buf with an idle selection.
func New(buf *raster.Buffer, opts Options) *Controller {
	c := &Controller{
		buffer:  buf,
		sel:     selection.New(),
		bridge:  opts.Bridge,
		encoder: opts.Encoder,
		view:    opts.View,
		logger:  opts.Logger,
	}
	if c.bridge == nil {
		c.bridge = clipboard.Shared()
	}
	if !c.encoder.Valid() {
		c.encoder = raster.JPEGEncoder(raster.DefaultJPEGQuality)
	}
	if c.view == nil {
		c.view = NopView{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}
	return c
}

// Buffer returns the edited buffer.
func (c *Controller) Buffer() *raster.Buffer { return c.buffer }

// Selection returns the selection model.
func (c *Controller) Selection() *selection.Model { return c.sel }

// OnPrimaryPress starts a new selection at p.
func (c *Controller) OnPrimaryPress(p raster.Point) {
	c.sel.OnPrimaryPress(p)
}

// OnDrag extends the selection to p and requests a repaint.
func (c *Controller) OnDrag(p raster.Point) {
	c.sel.OnDrag(p)
	c.view.RequestRepaint()
}

// OnSecondaryPress records p as the paste anchor and asks for the action menu there.
func (c *Controller) OnSecondaryPress(p raster.Point) {
	c.sel.OnSecondaryPress(p)
	c.view.RequestMenuShow(p, c.Enablement())
}

// MenuActionInvoked runs the chosen menu action. dest is the save
// destination and is ignored by the other actions.
//
// Every failure is returned. Paste and save failures are also passed to
// View.ReportFailure; copy and cut failures leave the user interface quiet.
func (c *Controller) MenuActionInvoked(kind ActionKind, dest string) error {
	var err error
	switch kind {
	case ActionCopy:
		err = c.Copy()
	case ActionCut:
		err = c.Cut()
	case ActionPaste:
		err = c.Paste()
	case ActionSave:
		err = c.Save(dest)
	default:
		err = fmt.Errorf("unknown action: %v", kind)
	}

	if err != nil {
		c.logger.Printf("%s failed: %v", kind, err)
		switch kind {
		case ActionPaste:
			c.view.ReportFailure(kind, pasteFailureMessage)
		case ActionSave:
			c.view.ReportFailure(kind, fmt.Sprintf("Unable to save: %v", err))
		}
	}
	return err
}

// Enablement recomputes which menu entries are usable from the current
// selection and a fresh read of the clipboard.
func (c *Controller) Enablement() Enablement {
	selected := c.sel.HasNonEmptySelection()
	e := Enablement{Cut: selected, Copy: selected}

	p, err := c.bridge.Contents()
	if err != nil {
		c.logger.Printf("clipboard unavailable: %v", err)
		return e
	}
	if p != nil {
		e.Paste = p.SupportsFlavor(clipboard.RasterFlavor)
		e.Save = p.SupportsFlavor(clipboard.StreamFlavor)
	}
	return e
}

// Copy places the selected region on the clipboard, replacing what was there.
func (c *Controller) Copy() error {
	_, _, err := c.capture()
	return err
}

// Cut copies the selected region, then erases it to transparent black.
func (c *Controller) Cut() error {
	r, pixels, err := c.capture()
	if err != nil {
		return err
	}

	// The payload holds its own copy, so the extracted slice can be reused.
	for i := range pixels {
		pixels[i] = 0
	}
	if err := c.buffer.CompositeRegion(pixels, r); err != nil {
		return err
	}
	c.view.RequestRepaint()
	return nil
}

// capture extracts the selected region and deposits it on the clipboard.
func (c *Controller) capture() (raster.Rect, []uint32, error) {
	if !c.sel.HasNonEmptySelection() {
		return raster.Rect{}, nil, ErrNoSelection
	}

	r := c.sel.Rect()
	pixels, err := c.buffer.ExtractRegion(r)
	if err != nil {
		return r, nil, err
	}

	p, err := clipboard.NewPayload(r.W, r.H, pixels, clipboard.WithEncoder(c.encoder))
	if err != nil {
		return r, nil, err
	}
	if err := c.bridge.SetContents(p); err != nil {
		return r, nil, err
	}

	c.logger.Printf("copied region %v to clipboard", r)
	return r, pixels, nil
}

// Paste composites the clipboard raster at the paste anchor, or at the
// selection start when no anchor has been recorded.
//
// On failure the buffer is unchanged.
func (c *Controller) Paste() error {
	p, err := c.bridge.Contents()
	if err != nil {
		return err
	}
	if p == nil {
		return clipboard.ErrNoPayload
	}

	data, err := p.Raster()
	if err != nil {
		return err
	}

	at, ok := c.sel.PasteAnchor()
	if !ok {
		at = c.sel.Start()
	}
	r := raster.Rect{X: at.X, Y: at.Y, W: data.Width, H: data.Height}
	if err := c.buffer.CompositeRegion(data.Pixels, r); err != nil {
		return err
	}

	c.logger.Printf("pasted %dx%d at %v", data.Width, data.Height, at)
	c.view.RequestRepaint()
	return nil
}

// Save writes the clipboard's encoded stream to dest, byte for byte.
//
// Having nothing to save is not an error: an empty dest, an empty clipboard
// or a payload without a stream flavor all return nil without touching the
// file system. The file is written to a temporary name in the same directory
// and renamed over dest, so a failed save leaves any existing dest intact.
// Write failures are returned as *SaveError.
func (c *Controller) Save(dest string) error {
	if dest == "" {
		c.logger.Printf("save skipped: no destination")
		return nil
	}

	p, err := c.bridge.Contents()
	if err != nil {
		return err
	}
	if p == nil || !p.SupportsFlavor(clipboard.StreamFlavor) {
		c.logger.Printf("save skipped: no encodable clipboard data")
		return nil
	}

	rc, err := p.Stream()
	if err != nil {
		return &SaveError{Path: dest, Err: err}
	}
	defer rc.Close()

	if err := writeFileAtomic(dest, rc); err != nil {
		return &SaveError{Path: dest, Err: err}
	}

	c.logger.Printf("saved clipboard (%s) to %s", p.StreamMimeType(), dest)
	return nil
}

// writeFileAtomic copies r into a temporary file next to path and renames it into place.
func writeFileAtomic(path string, r io.Reader) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
