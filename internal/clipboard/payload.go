package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ironsheep/image-editor-mcp/internal/raster"
)

var (
	// ErrNoPayload is returned when the clipboard holds nothing.
	ErrNoPayload = errors.New("clipboard is empty")

	// ErrUnsupportedFlavor is returned when a payload cannot provide the requested flavor.
	ErrUnsupportedFlavor = errors.New("clipboard data flavor not supported")
)

// Flavor names a representation a payload may provide.
type Flavor string

const (
	// RasterFlavor carries width, height and packed ARGB pixels in row-major order.
	RasterFlavor Flavor = "application/x-raster-argb32"

	// StreamFlavor carries an encoded image file as an opaque byte stream.
	StreamFlavor Flavor = "application/x-image-stream"
)

// RasterData is the content of the raster flavor.
type RasterData struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Pixels []uint32 `json:"-"`
}

// Payload is an immutable snapshot of a pixel region placed on a clipboard.
//
// A payload built by NewPayload provides the raster flavor, and also the
// stream flavor when an encoder is attached and the region is not empty. The
// encoded stream is produced on the first Stream call and reused afterwards.
// A payload built by NewForeignPayload stands for clipboard content another
// application placed there and provides no flavor at all.
type Payload struct {
	raster  *RasterData
	source  string
	encoder raster.Encoder

	once    sync.Once
	encoded []byte
	encErr  error
}

// Option configures a Payload.
type Option func(*Payload)

// WithEncoder attaches the encoder used to produce the stream flavor.
func WithEncoder(enc raster.Encoder) Option {
	return func(p *Payload) {
		p.encoder = enc
	}
}

// NewPayload snapshots a width x height region. The pixel slice is copied.
func NewPayload(width, height int, pixels []uint32, opts ...Option) (*Payload, error) {
	if !(raster.Rect{W: width, H: height}).Valid() {
		return nil, fmt.Errorf("payload %dx%d: %w", width, height, raster.ErrRegionOutOfBounds)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("payload %dx%d with %d pixels: %w", width, height, len(pixels), raster.ErrPixelCount)
	}

	snapshot := make([]uint32, len(pixels))
	copy(snapshot, pixels)

	p := &Payload{
		raster: &RasterData{Width: width, Height: height, Pixels: snapshot},
		source: "image-editor",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// NewForeignPayload represents clipboard content this editor cannot read.
// source describes where it came from, e.g. "text/plain".
func NewForeignPayload(source string) *Payload {
	return &Payload{source: source}
}

// Source describes the origin of the payload.
func (p *Payload) Source() string {
	return p.source
}

// SupportsFlavor reports whether the payload can provide f.
func (p *Payload) SupportsFlavor(f Flavor) bool {
	switch f {
	case RasterFlavor:
		return p.raster != nil
	case StreamFlavor:
		return p.raster != nil && p.encoder.Valid() && p.raster.Width > 0 && p.raster.Height > 0
	default:
		return false
	}
}

// Flavors lists the supported flavors in preference order.
func (p *Payload) Flavors() []Flavor {
	var out []Flavor
	for _, f := range []Flavor{RasterFlavor, StreamFlavor} {
		if p.SupportsFlavor(f) {
			out = append(out, f)
		}
	}
	return out
}

// Raster returns the raster flavor. The returned pixel slice is a copy.
func (p *Payload) Raster() (RasterData, error) {
	if !p.SupportsFlavor(RasterFlavor) {
		return RasterData{}, fmt.Errorf("%s: %w", RasterFlavor, ErrUnsupportedFlavor)
	}
	out := *p.raster
	out.Pixels = make([]uint32, len(p.raster.Pixels))
	copy(out.Pixels, p.raster.Pixels)
	return out, nil
}

// StreamMimeType returns the MIME type of the stream flavor, or "" if unsupported.
func (p *Payload) StreamMimeType() string {
	if !p.SupportsFlavor(StreamFlavor) {
		return ""
	}
	return p.encoder.MimeType
}

// Stream returns a reader over the encoded form of the region.
//
// The region is encoded once; later calls return fresh readers over the same bytes.
func (p *Payload) Stream() (io.ReadCloser, error) {
	if !p.SupportsFlavor(StreamFlavor) {
		return nil, fmt.Errorf("%s: %w", StreamFlavor, ErrUnsupportedFlavor)
	}

	p.once.Do(func() {
		var buf bytes.Buffer
		p.encErr = p.encoder.Encode(&buf, p.raster.Width, p.raster.Height, p.raster.Pixels)
		p.encoded = buf.Bytes()
	})
	if p.encErr != nil {
		return nil, p.encErr
	}
	return io.NopCloser(bytes.NewReader(p.encoded)), nil
}

// Equal reports whether two payloads carry the same raster data.
func (p *Payload) Equal(o *Payload) bool {
	if p == nil || o == nil {
		return p == o
	}
	if (p.raster == nil) != (o.raster == nil) {
		return false
	}
	if p.raster == nil {
		return p.source == o.source
	}
	if p.raster.Width != o.raster.Width || p.raster.Height != o.raster.Height {
		return false
	}
	for i := range p.raster.Pixels {
		if p.raster.Pixels[i] != o.raster.Pixels[i] {
			return false
		}
	}
	return true
}
