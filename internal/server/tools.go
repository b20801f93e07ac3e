package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// alphaProperties are the per-call overrides of the configured display
// options. Omitted flags keep the configured value.
func alphaProperties(props map[string]interface{}) map[string]interface{} {
	props["rgba"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Append alpha (0.000-1.000) to the RGB read-out",
	}
	props["hexa"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Append alpha (AA) to the HEX read-out",
	}
	props["hsla"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Append alpha (0-255) to the HSL read-out",
	}
	return props
}

// GetToolDefinitions returns all available tools with their JSON Schema
// input definitions, in the order tools/list reports them.
//
// The pick tools share the path property and the optional rgba, hexa and
// hsla overrides. Coordinates are image-space pixels from the top-left.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and alpha support. The image stays cached for later picks.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "color_pick",
			Description: "Pick the color of the pixel at (x, y) and return it as RGB(A), HEX(A), CMYK and HSL(A) with a contrast text color. A point outside the image returns an empty read-out with sampled=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": alphaProperties(map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				}),
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "color_pick_multi",
			Description: "Pick colors at several pixel coordinates in one call. Each point gets its own read-out; points outside the image are returned with sampled=false.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": alphaProperties(map[string]interface{}{
					"path": pathProperty(),
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Array of points to sample",
					},
				}),
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "color_convert",
			Description: "Convert a hex color (#RGB, #RGBA, #RRGGBB or #RRGGBBAA) to the same read-out color_pick returns.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": alphaProperties(map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, '#' optional",
					},
				}),
				"required": []string{"hex"},
			},
		},
		{
			Name:        "color_loupe",
			Description: "Return a magnified, pixelated view of the area around (x, y) as base64 PNG, with the centre pixel outlined.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x":    map[string]interface{}{"type": "integer", "description": "Centre X"},
					"y":    map[string]interface{}{"type": "integer", "description": "Centre Y"},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels shown on each side of the centre (default from settings)",
					},
					"zoom": map[string]interface{}{
						"type":        "integer",
						"description": "Magnification factor (default from settings)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "color_picker_settings",
			Description: "Return the effective color picker settings: alpha display options and loupe defaults.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
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
