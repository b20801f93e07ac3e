package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ironsheep/colorpick-mcp/internal/config"
	"github.com/ironsheep/colorpick-mcp/internal/imaging"
	"github.com/ironsheep/colorpick-mcp/internal/picker"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_pick").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000,
// and a result that cannot be encoded returns -32603.
// A pick outside the image is not an error; it returns a blank read-out.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.log.Debug().Str("tool", params.Name).Dur("duration", time.Since(start)).Msg("tool executed")

	text, err := s.marshalResult(params.Name, result)
	if err != nil {
		return s.errorResponse(req.ID, -32603, "Internal error", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "color_pick":
		return s.handleColorPick(args)
	case "color_pick_multi":
		return s.handleColorPickMulti(args)
	case "color_convert":
		return s.handleColorConvert(args)
	case "color_loupe":
		return s.handleColorLoupe(args)
	case "color_picker_settings":
		return s.handleSettings()
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// marshalResult renders a tool result as pretty-printed JSON. A failure is
// logged with the tool name and returned; the caller answers with -32603.
func (s *Server) marshalResult(tool string, v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Str("tool", tool).Msg("failed to marshal tool result")
		return "", fmt.Errorf("failed to marshal %s result: %w", tool, err)
	}
	return string(b), nil
}

// unmarshalArgs decodes tool arguments; a missing arguments object is
// treated as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// alphaArgs are the optional per-call display overrides.
type alphaArgs struct {
	RGBA *bool `json:"rgba,omitempty"`
	HEXA *bool `json:"hexa,omitempty"`
	HSLA *bool `json:"hsla,omitempty"`
}

// options merges the overrides onto the configured display options.
func (a alphaArgs) options(base picker.Options) picker.Options {
	if a.RGBA != nil {
		base.RGBA = *a.RGBA
	}
	if a.HEXA != nil {
		base.HEXA = *a.HEXA
	}
	if a.HSLA != nil {
		base.HSLA = *a.HSLA
	}
	return base
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	// Reloading an image replaces the cached copy so edits on disk show up.
	s.cache.Evict(a.Path)
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Color Handlers ===

type colorPickArgs struct {
	alphaArgs
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleColorPick(args json.RawMessage) (interface{}, error) {
	var a colorPickArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := a.options(s.cfg.Picker)
	c, ok := picker.SampleAt(img, a.X, a.Y)
	if !ok {
		return picker.Blank(opts), nil
	}
	return picker.Render(c, a.X, a.Y, opts), nil
}

// LabeledDisplay is one point of a color_pick_multi result.
type LabeledDisplay struct {
	Label string `json:"label,omitempty"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	picker.Display
}

type colorPickMultiArgs struct {
	alphaArgs
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleColorPickMulti(args json.RawMessage) (interface{}, error) {
	var a colorPickMultiArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := a.options(s.cfg.Picker)
	samples := make([]LabeledDisplay, 0, len(a.Points))
	for _, p := range a.Points {
		d := picker.Blank(opts)
		if c, ok := picker.SampleAt(img, p.X, p.Y); ok {
			d = picker.Render(c, p.X, p.Y, opts)
		}
		samples = append(samples, LabeledDisplay{Label: p.Label, X: p.X, Y: p.Y, Display: d})
	}
	return map[string]interface{}{"samples": samples}, nil
}

type colorConvertArgs struct {
	alphaArgs
	Hex string `json:"hex"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (interface{}, error) {
	var a colorConvertArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := picker.ParseHex(a.Hex)
	if err != nil {
		return nil, err
	}

	d := picker.Render(c, 0, 0, a.options(s.cfg.Picker))
	d.Location = ""
	return d, nil
}

type colorLoupeArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Radius int    `json:"radius"`
	Zoom   int    `json:"zoom"`
}

func (s *Server) handleColorLoupe(args json.RawMessage) (interface{}, error) {
	var a colorLoupeArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = s.cfg.Loupe.Radius
	}
	if a.Zoom == 0 {
		a.Zoom = s.cfg.Loupe.Zoom
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Loupe(img, a.X, a.Y, a.Radius, a.Zoom)
}

// settingsResult is the read-only settings object of color_picker_settings.
type settingsResult struct {
	ColorPicker picker.Options `json:"color_picker"`
	Loupe       config.Loupe   `json:"loupe"`
	Formats     []string       `json:"formats"`
}

func (s *Server) handleSettings() (interface{}, error) {
	return settingsResult{
		ColorPicker: s.cfg.Picker,
		Loupe:       s.cfg.Loupe,
		Formats:     []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"},
	}, nil
}
