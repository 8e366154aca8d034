package clipboard

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/ironsheep/image-editor-mcp/internal/raster"
)

// textHeader tags clipboard text written by this editor.
const textHeader = "image-editor-mcp/raster;v1"

var errMalformed = errors.New("malformed raster clipboard text")

// SystemBridge stores payloads on the desktop clipboard.
//
// The desktop clipboard only exchanges text here, so a payload is written as
// a tagged header line followed by base64 of its raster data. Text without
// the header is reported as a foreign payload that provides no flavor.
type SystemBridge struct {
	encoder raster.Encoder
	read    func() (string, error)
	write   func(string) error
}

// NewSystemBridge returns a bridge over the desktop clipboard. Payloads read
// back from it get enc attached for their stream flavor.
func NewSystemBridge(enc raster.Encoder) *SystemBridge {
	return &SystemBridge{
		encoder: enc,
		read:    clipboard.ReadAll,
		write:   clipboard.WriteAll,
	}
}

// SystemClipboardAvailable reports whether the platform has a clipboard tool
// the bridge can drive (xclip, xsel, wl-clipboard, pbcopy or the Windows API).
func SystemClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// Contents implements Bridge.
func (b *SystemBridge) Contents() (*Payload, error) {
	text, err := b.read()
	if err != nil {
		return nil, fmt.Errorf("failed to read system clipboard: %w", err)
	}
	if text == "" {
		return nil, nil
	}
	if !strings.HasPrefix(text, textHeader+"\n") {
		return NewForeignPayload("text/plain"), nil
	}

	p, err := DecodeText(text, WithEncoder(b.encoder))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SetContents implements Bridge.
func (b *SystemBridge) SetContents(p *Payload) error {
	text := ""
	if p != nil {
		var err error
		if text, err = EncodeText(p); err != nil {
			return err
		}
	}
	if err := b.write(text); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	return nil
}

// EncodeText serializes the raster flavor of p as tagged clipboard text.
//
// Layout after the header line: base64 of little-endian uint32 width,
// uint32 height, then width*height uint32 pixels.
func EncodeText(p *Payload) (string, error) {
	data, err := p.Raster()
	if err != nil {
		return "", err
	}

	raw := make([]byte, 0, 8+4*len(data.Pixels))
	raw = binary.LittleEndian.AppendUint32(raw, uint32(data.Width))
	raw = binary.LittleEndian.AppendUint32(raw, uint32(data.Height))
	for _, px := range data.Pixels {
		raw = binary.LittleEndian.AppendUint32(raw, px)
	}

	return textHeader + "\n" + base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeText parses text produced by EncodeText into a new payload.
func DecodeText(text string, opts ...Option) (*Payload, error) {
	body, ok := strings.CutPrefix(text, textHeader+"\n")
	if !ok {
		return nil, fmt.Errorf("missing %q header: %w", textHeader, errMalformed)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if len(raw) < 8 {
		return nil, fmt.Errorf("short header: %w", errMalformed)
	}

	width := binary.LittleEndian.Uint32(raw[0:4])
	height := binary.LittleEndian.Uint32(raw[4:8])
	if width > raster.MaxDimension || height > raster.MaxDimension ||
		!(raster.Rect{W: int(width), H: int(height)}).Valid() {
		return nil, fmt.Errorf("dimensions %dx%d too large: %w", width, height, errMalformed)
	}
	n := int(width) * int(height)
	if len(raw)-8 != 4*n {
		return nil, fmt.Errorf("got %d pixel bytes for %dx%d: %w", len(raw)-8, width, height, errMalformed)
	}

	pixels := make([]uint32, n)
	for i := range pixels {
		pixels[i] = binary.LittleEndian.Uint32(raw[8+4*i:])
	}
	return NewPayload(int(width), int(height), pixels, opts...)
}

var _ Bridge = (*SystemBridge)(nil)
