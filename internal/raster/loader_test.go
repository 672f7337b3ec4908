package raster

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid PNG to dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, width, height int) string {
	t.Helper()
	img := createTestImage(width, height, color.RGBA{50, 150, 50, 255})
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestCache_Load(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "plan.png", 12, 7)

	cache := NewCache()
	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 12 || bounds.Dy() != 7 {
		t.Errorf("dimensions: got %dx%d, want 12x7", bounds.Dx(), bounds.Dy())
	}
}

func TestCache_LoadCached(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "plan.png", 4, 4)

	cache := NewCache()
	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	// Remove the file: a second load must be served from cache.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("cached Load failed: %v", err)
	}
	if first != second {
		t.Error("expected the cached image instance")
	}
}

func TestCache_Evict(t *testing.T) {
	dir := t.TempDir()
	path := writeTestPNG(t, dir, "plan.png", 4, 4)

	cache := NewCache()
	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("expected load failure after evicting and deleting the file")
	}
}

func TestCache_LoadMissing(t *testing.T) {
	cache := NewCache()
	if _, err := cache.Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCache_LoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-an-image.png")
	if err := os.WriteFile(path, []byte("garden notes"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cache := NewCache()
	if _, err := cache.Load(path); err == nil {
		t.Error("expected decode error for non-image file")
	}
}
