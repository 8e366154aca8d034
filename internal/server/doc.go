// Package server implements the MCP (Model Context Protocol) front end of the image editor.
//
// This package provides a JSON-RPC 2.0 server that plays the role of the
// editor window: clients send pointer presses, drags and menu choices as tool
// calls, and receive the editor's repaint, menu and failure requests back in
// each result. One server edits one image for the lifetime of the process.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Session Information:
//   - editor_info: Image size, selection rectangle, paste point
//   - editor_clipboard: Clipboard presence, flavors and size
//
// Pointer Events:
//   - editor_press: Primary press starts a selection; secondary press opens the menu
//   - editor_drag: Move the selection's finish corner
//
// Menu Actions:
//   - editor_menu: Recompute enabled menu entries
//   - editor_action: Run copy, cut, paste or save
//
// Inspection:
//   - editor_sample_pixel: Packed ARGB value of a pixel
//   - editor_snapshot: Current image (or a region) as base64 PNG
//
// # Results
//
// Every successful call returns a ToolResult as JSON text:
//
//	{
//	  "result": { ...tool specific... },
//	  "events": {"repaint": true, "menu": {...}, "failures": [...]}
//	}
//
// # Error Handling
//
// Malformed arguments and unknown tools are returned as JSON-RPC error
// responses with code -32000 (tool execution failure) or -32602 (invalid
// params). A menu action that fails, such as paste with an empty clipboard,
// is not a protocol error: the result carries ok=false and the failure is
// listed in events, as a dialog would show it.
package server
