package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, paint func(x, y int) color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, paint(x, y))
		}
	}

	tmpFile, err := os.CreateTemp(t.TempDir(), "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func solidPainter(c color.Color) func(x, y int) color.Color {
	return func(x, y int) color.Color { return c }
}

func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	return s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, solidPainter(color.RGBA{255, 0, 0, 255}))

	resp := callTool(t, s, "image_load", map[string]interface{}{"path": imgPath})
	if resp == nil {
		t.Fatal("handleToolsCall returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
}

func TestHandleToolsCall_SampleColor(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, solidPainter(color.RGBA{60, 140, 50, 255}))

	resp := callTool(t, s, "image_sample_color", map[string]interface{}{
		"path": imgPath,
		"x":    5,
		"y":    5,
	})
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	var sample ColorSample
	decodeToolResult(t, resp, &sample)
	if sample.Color.R != 60 || sample.Color.G != 140 || sample.Color.B != 50 {
		t.Errorf("color: got %+v, want (60,140,50)", sample.Color)
	}
	if sample.Hex != "#3c8c32" {
		t.Errorf("hex: got %s, want #3c8c32", sample.Hex)
	}
}

func TestHandleToolsCall_SampleColorOutOfBounds(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, solidPainter(color.RGBA{0, 0, 0, 255}))

	resp := callTool(t, s, "image_sample_color", map[string]interface{}{
		"path": imgPath,
		"x":    50,
		"y":    5,
	})
	if resp.Error == nil {
		t.Fatal("expected an error for out-of-bounds point")
	}
}

func TestHandleToolsCall_RegionExtract(t *testing.T) {
	s := New()
	grass := color.RGBA{60, 140, 50, 255}
	water := color.RGBA{40, 80, 200, 255}
	imgPath := createTestImageFile(t, 40, 40, func(x, y int) color.Color {
		if x >= 5 && x < 35 && y >= 5 && y < 35 {
			return grass
		}
		return water
	})

	resp := callTool(t, s, "region_extract", map[string]interface{}{
		"path": imgPath,
		"x":    20,
		"y":    20,
	})
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	var result ExtractResult
	decodeToolResult(t, resp, &result)
	if result.Region == nil {
		t.Fatal("result has no region")
	}
	if len(result.Region.Outer) != 4 {
		t.Errorf("outer vertices: got %d, want 4", len(result.Region.Outer))
	}
	if result.Width != 40 || result.Height != 40 {
		t.Errorf("dimensions: got %dx%d, want 40x40", result.Width, result.Height)
	}
}

func TestHandleToolsCall_RegionExtractNoMatch(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, func(x, y int) color.Color {
		if x == 5 && y == 5 {
			return color.RGBA{255, 255, 255, 255}
		}
		return color.RGBA{0, 0, 0, 255}
	})

	resp := callTool(t, s, "region_extract", map[string]interface{}{
		"path":      imgPath,
		"x":         5,
		"y":         5,
		"tolerance": 0,
	})
	if resp.Error == nil {
		t.Fatal("expected an error when no region can be formed")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_RegionExtractBadMode(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, solidPainter(color.RGBA{0, 0, 0, 255}))

	resp := callTool(t, s, "region_extract", map[string]interface{}{
		"path":         imgPath,
		"x":            5,
		"y":            5,
		"compare_mode": "hsv",
	})
	if resp.Error == nil {
		t.Fatal("expected an error for unknown compare_mode")
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := New()

	resp := callTool(t, s, "image_load", map[string]interface{}{
		"path": "/nonexistent/image.png",
	})
	if resp.Error == nil {
		t.Fatal("expected an error for non-existent file")
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := New()

	resp := callTool(t, s, "no_such_tool", map[string]interface{}{})
	if resp.Error == nil {
		t.Fatal("expected an error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`not json`),
	})
	if resp.Error == nil {
		t.Fatal("expected an error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("error code: got %d, want -32602", resp.Error.Code)
	}
}

// decodeToolResult unwraps the MCP content envelope and unmarshals the
// embedded JSON text into v.
func decodeToolResult(t *testing.T, resp *MCPResponse, v interface{}) {
	t.Helper()

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result is not a map: %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("Result has no content: %+v", result)
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("Content has no text: %+v", content[0])
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		t.Fatalf("Failed to unmarshal tool result: %v", err)
	}
}
