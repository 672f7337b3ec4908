package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/garden-regions/internal/raster"
	"github.com/ironsheep/garden-regions/internal/region"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "region_extract").
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
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
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
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls into the raster/region packages
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Region Extraction
	case "region_extract":
		return s.handleRegionExtract(args)

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

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

// ImageInfo describes a loaded image.
type ImageInfo struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &ImageInfo{
		Path:   a.Path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

type sampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// ColorSample is the color at a sampled pixel.
type ColorSample struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Color raster.RGB `json:"color"`
	Hex   string     `json:"hex"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a sampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	buf := raster.FromImage(img)
	if !buf.Contains(a.X, a.Y) {
		return nil, fmt.Errorf("point (%d,%d) outside image bounds %dx%d", a.X, a.Y, buf.Width(), buf.Height())
	}
	c := buf.RGBAt(a.X, a.Y)
	return &ColorSample{
		X:     a.X,
		Y:     a.Y,
		Color: c,
		Hex:   fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
	}, nil
}

// === Region Extraction Handlers ===

type regionExtractArgs struct {
	Path            string            `json:"path"`
	X               int               `json:"x"`
	Y               int               `json:"y"`
	Tolerance       *int              `json:"tolerance"`
	CompareMode     string            `json:"compare_mode"`
	MaxPixels       *int              `json:"max_pixels"`
	SimplifyEpsilon *float64          `json:"simplify_epsilon"`
	BlurRadius      float64           `json:"blur_radius"`
	MaxDimension    int               `json:"max_dimension"`
	Exclusions      [][]region.Vertex `json:"exclusions"`
}

// ExtractResult is the region_extract tool output: the extracted polygon
// plus the dimensions of the image space the coordinates refer to.
type ExtractResult struct {
	Region *region.Region `json:"region"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
}

func (s *Server) handleRegionExtract(args json.RawMessage) (interface{}, error) {
	var a regionExtractArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	opts := region.DefaultOptions()
	if a.Tolerance != nil {
		opts.Tolerance = *a.Tolerance
	}
	if a.MaxPixels != nil {
		opts.MaxPixels = *a.MaxPixels
	}
	if a.SimplifyEpsilon != nil {
		opts.SimplifyEpsilon = *a.SimplifyEpsilon
	}
	switch a.CompareMode {
	case "", "rgb":
		opts.CompareMode = raster.CompareRGB
	case "lab":
		opts.CompareMode = raster.CompareLab
	default:
		return nil, fmt.Errorf("unknown compare_mode: %s", a.CompareMode)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img = raster.Prepare(img, raster.PrepareOptions{
		BlurRadius:   a.BlurRadius,
		MaxDimension: a.MaxDimension,
	})
	buf := raster.FromImage(img)

	reg, err := region.Extract(buf, a.X, a.Y, a.Exclusions, opts)
	if err != nil {
		return nil, err
	}

	return &ExtractResult{
		Region: reg,
		Width:  buf.Width(),
		Height: buf.Height(),
	}, nil
}
