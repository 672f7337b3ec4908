// Command region-extract runs one region extraction against an image file
// and prints the resulting polygon set as JSON on stdout.
//
// It exists for batch use and for debugging extraction parameters outside
// the canvas UI: point it at a garden photo, give it a seed pixel and a
// tolerance, and inspect what the engine would hand the canvas.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/garden-regions/internal/raster"
	"github.com/ironsheep/garden-regions/internal/region"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		imagePath   = flag.String("image", "", "path to the raster image (png, jpeg, gif, bmp, tiff, webp)")
		seedX       = flag.Int("x", 0, "seed pixel X coordinate")
		seedY       = flag.Int("y", 0, "seed pixel Y coordinate")
		tolerance   = flag.Int("tolerance", 32, "color similarity tolerance (0-255)")
		maxPixels   = flag.Int("max-pixels", 200000, "flood fill pixel budget")
		mode        = flag.String("mode", "rgb", "color comparison mode: rgb or lab")
		blurRadius  = flag.Float64("blur", 0, "Gaussian pre-blur radius (0 = off)")
		maxDim      = flag.Int("max-dim", 0, "downscale so the longer side is at most this (0 = off)")
		excludePath = flag.String("exclude", "", "JSON file with existing polygons to exclude ([][]{x,y})")
		showVersion = flag.Bool("version", false, "print version information and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("region-extract %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// All logging goes to stderr; stdout carries only the JSON result.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := region.DefaultOptions()
	opts.Tolerance = *tolerance
	opts.MaxPixels = *maxPixels
	switch *mode {
	case "rgb":
		opts.CompareMode = raster.CompareRGB
	case "lab":
		opts.CompareMode = raster.CompareLab
	default:
		log.Fatalf("unknown mode %q (want rgb or lab)", *mode)
	}

	cache := raster.NewCache()
	img, err := cache.Load(*imagePath)
	if err != nil {
		log.Fatalf("load image: %v", err)
	}

	img = raster.Prepare(img, raster.PrepareOptions{
		BlurRadius:   *blurRadius,
		MaxDimension: *maxDim,
	})
	buf := raster.FromImage(img)

	var exclude [][]region.Vertex
	if *excludePath != "" {
		exclude, err = loadPolygons(*excludePath)
		if err != nil {
			log.Fatalf("load exclusion polygons: %v", err)
		}
	}

	result, err := region.Extract(buf, *seedX, *seedY, exclude, opts)
	if err != nil {
		switch {
		case errors.Is(err, region.ErrNoRegionFound), errors.Is(err, region.ErrDegenerateRegion):
			log.Fatalf("extraction failed: %v (try a different tolerance)", err)
		default:
			log.Fatalf("extraction failed: %v", err)
		}
	}
	if result.Partial {
		log.Printf("pixel budget reached; result is likely incomplete")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}

// loadPolygons reads a JSON array of polygons, each an array of {x, y}
// vertices in the image's pixel coordinate space.
func loadPolygons(path string) ([][]region.Vertex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read polygon file: %w", err)
	}
	var polys [][]region.Vertex
	if err := json.Unmarshal(data, &polys); err != nil {
		return nil, fmt.Errorf("failed to parse polygon file: %w", err)
	}
	return polys, nil
}
