package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/image-editor-mcp/internal/clipboard"
	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "editor_press", "editor_action").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResult is the JSON text returned for every successful tool call.
type ToolResult struct {
	// Result is the tool-specific payload.
	Result interface{} `json:"result"`

	// Events lists the repaint, menu and failure requests the editor made.
	Events ViewEvents `json:"events"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON ToolResult>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// A menu action that runs but fails is not a tool error: it is reported in
// the result and as a failure event, the way a dialog would show it.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.view.drain()
	result, err := s.executeTool(params.Name, params.Arguments)
	events := s.view.drain()
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(ToolResult{Result: result, Events: events}),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session Information
	case "editor_info":
		return s.handleEditorInfo(args)
	case "editor_clipboard":
		return s.handleEditorClipboard(args)

	// Pointer Events
	case "editor_press":
		return s.handleEditorPress(args)
	case "editor_drag":
		return s.handleEditorDrag(args)

	// Menu Actions
	case "editor_menu":
		return s.handleEditorMenu(args)
	case "editor_action":
		return s.handleEditorAction(args)

	// Inspection
	case "editor_sample_pixel":
		return s.handleEditorSamplePixel(args)
	case "editor_snapshot":
		return s.handleEditorSnapshot(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes optional tool arguments; absent arguments leave v untouched.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Session Information Handlers ===

// InfoResult describes the image and the selection state.
type InfoResult struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Selection   raster.Rect   `json:"selection"`
	NonEmpty    bool          `json:"non_empty"`
	Paintable   bool          `json:"paintable"`
	PasteAnchor *raster.Point `json:"paste_anchor,omitempty"`
}

func (s *Server) handleEditorInfo(args json.RawMessage) (interface{}, error) {
	sel := s.ctrl.Selection()
	buf := s.ctrl.Buffer()

	result := &InfoResult{
		Width:     buf.Width(),
		Height:    buf.Height(),
		Selection: sel.Rect(),
		NonEmpty:  sel.HasNonEmptySelection(),
		Paintable: sel.HasPaintableSelection(),
	}
	if p, ok := sel.PasteAnchor(); ok {
		result.PasteAnchor = &p
	}
	return result, nil
}

// ClipboardResult describes the clipboard contents.
type ClipboardResult struct {
	Present        bool               `json:"present"`
	Source         string             `json:"source,omitempty"`
	Flavors        []clipboard.Flavor `json:"flavors"`
	Width          int                `json:"width,omitempty"`
	Height         int                `json:"height,omitempty"`
	StreamMimeType string             `json:"stream_mime_type,omitempty"`
}

func (s *Server) handleEditorClipboard(args json.RawMessage) (interface{}, error) {
	p, err := s.bridge.Contents()
	if err != nil {
		return nil, err
	}

	result := &ClipboardResult{Flavors: []clipboard.Flavor{}}
	if p == nil {
		return result, nil
	}

	result.Present = true
	result.Source = p.Source()
	result.Flavors = p.Flavors()
	result.StreamMimeType = p.StreamMimeType()
	if data, err := p.Raster(); err == nil {
		result.Width = data.Width
		result.Height = data.Height
	}
	return result, nil
}

// === Pointer Event Handlers ===

type editorPressArgs struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Button string `json:"button"`
}

func (s *Server) handleEditorPress(args json.RawMessage) (interface{}, error) {
	var a editorPressArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	p := raster.Pt(a.X, a.Y)
	switch a.Button {
	case "", "primary":
		s.ctrl.OnPrimaryPress(p)
	case "secondary":
		s.ctrl.OnSecondaryPress(p)
	default:
		return nil, fmt.Errorf("unknown button: %s", a.Button)
	}
	return s.handleEditorInfo(nil)
}

type editorPointArgs struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleEditorDrag(args json.RawMessage) (interface{}, error) {
	var a editorPointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	s.ctrl.OnDrag(raster.Pt(a.X, a.Y))
	return s.handleEditorInfo(nil)
}

// === Menu Action Handlers ===

func (s *Server) handleEditorMenu(args json.RawMessage) (interface{}, error) {
	return s.ctrl.Enablement(), nil
}

type editorActionArgs struct {
	Action string `json:"action"`
	Path   string `json:"path"`
}

// ActionResult reports the outcome of a menu action.
type ActionResult struct {
	Action string `json:"action"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleEditorAction(args json.RawMessage) (interface{}, error) {
	var a editorActionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	kind, err := editor.ParseAction(a.Action)
	if err != nil {
		return nil, err
	}

	result := &ActionResult{Action: kind.String(), OK: true}
	if err := s.ctrl.MenuActionInvoked(kind, a.Path); err != nil {
		result.OK = false
		result.Error = err.Error()
	}
	return result, nil
}

// === Inspection Handlers ===

// PixelResult is a sampled pixel and its location.
type PixelResult struct {
	X     int              `json:"x"`
	Y     int              `json:"y"`
	Color raster.PixelInfo `json:"color"`
}

func (s *Server) handleEditorSamplePixel(args json.RawMessage) (interface{}, error) {
	var a editorPointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, ok := s.ctrl.Buffer().Pixel(a.X, a.Y)
	if !ok {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", a.X, a.Y)
	}
	return &PixelResult{X: a.X, Y: a.Y, Color: raster.DescribePixel(p)}, nil
}

type editorSnapshotArgs struct {
	Region *raster.Rect `json:"region"`
	Scale  float64      `json:"scale"`
}

func (s *Server) handleEditorSnapshot(args json.RawMessage) (interface{}, error) {
	var a editorSnapshotArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	return raster.Snapshot(s.ctrl.Buffer(), a.Region, a.Scale)
}
