package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions. Loaded images are cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the RGB color at a pixel coordinate. Useful for checking what a flood fill seeded at that point would match.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Region Extraction
		{
			Name:        "region_extract",
			Description: "Flood-fill from a seed pixel across similar colors and return the region as a simplified polygon with any enclosed holes. Coordinates are in the prepared image space when blur_radius or max_dimension are set.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Seed X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Seed Y coordinate (0-based, from top)",
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"description": "Color similarity tolerance, 0-255. Default 32",
						"default":     32,
					},
					"compare_mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rgb", "lab"},
						"description": "Color comparison: per-channel RGB box or perceptual Lab distance. Default rgb",
						"default":     "rgb",
					},
					"max_pixels": map[string]interface{}{
						"type":        "integer",
						"description": "Flood fill pixel budget; the region is reported partial when hit. Default 200000",
						"default":     200000,
					},
					"simplify_epsilon": map[string]interface{}{
						"type":        "number",
						"description": "Polygon simplification tolerance in pixels. Default 2.0",
						"default":     2.0,
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian blur applied before filling, to bridge speckle noise",
					},
					"max_dimension": map[string]interface{}{
						"type":        "integer",
						"description": "Optional downscale so the longer side does not exceed this",
					},
					"exclusions": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "array",
							"items": map[string]interface{}{
								"type": "object",
								"properties": map[string]interface{}{
									"x": map[string]interface{}{"type": "number"},
									"y": map[string]interface{}{"type": "number"},
								},
								"required": []string{"x", "y"},
							},
						},
						"description": "Polygons whose covered pixels the fill must not enter",
					},
				},
				"required": []string{"path", "x", "y"},
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
