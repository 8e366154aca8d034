package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pointProperties are the x/y arguments shared by the pointer tools
func pointProperties(what string) map[string]interface{} {
	return map[string]interface{}{
		"x": map[string]interface{}{
			"type":        "integer",
			"description": what + " X coordinate (0-based)",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": what + " Y coordinate (0-based)",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	pressProps := pointProperties("Pointer")
	pressProps["button"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"primary", "secondary"},
		"description": "primary starts a new selection; secondary sets the paste point and opens the action menu. Default primary",
		"default":     "primary",
	}

	return []Tool{
		// Session Information
		{
			Name:        "editor_info",
			Description: "Get the image dimensions, the current selection rectangle and the paste point.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "editor_clipboard",
			Description: "Describe the clipboard contents: whether a payload is present, the flavors it offers and its size.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Pointer Events
		{
			Name:        "editor_press",
			Description: "Press a pointer button at a pixel. A primary press collapses the selection onto the point; a secondary press records the paste point and returns the action menu with its enabled entries.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pressProps,
				"required":   []string{"x", "y"},
			},
		},
		{
			Name:        "editor_drag",
			Description: "Drag the pointer to a pixel, moving the selection's finish corner there. Dragging up or left gives a selection that cannot be painted but can still be copied.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pointProperties("Pointer"),
				"required":   []string{"x", "y"},
			},
		},

		// Menu Actions
		{
			Name:        "editor_menu",
			Description: "Recompute which action menu entries (cut, copy, paste, save) are enabled right now.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "editor_action",
			Description: "Invoke an action menu entry. copy and cut place the selection on the clipboard (cut also erases it); paste writes the clipboard at the paste point; save writes the clipboard's encoded image to a file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"action": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"copy", "cut", "paste", "save"},
						"description": "Menu entry to invoke",
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Destination file for save. Ignored by other actions",
					},
				},
				"required": []string{"action"},
			},
		},

		// Inspection
		{
			Name:        "editor_sample_pixel",
			Description: "Get the packed ARGB value of a pixel in the edited image, with hex, RGBA and HSL forms.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pointProperties("Pixel"),
				"required":   []string{"x", "y"},
			},
		},
		{
			Name:        "editor_snapshot",
			Description: "Render the edited image, or a region of it, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region {x, y, width, height}. Default: whole image",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
