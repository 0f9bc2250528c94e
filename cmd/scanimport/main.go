// Command scanimport converts a scanned floor plan image into an
// .fplan document by detecting wall lines and, optionally, reading
// dimension labels.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"floorsketch/internal/plan"
	"floorsketch/internal/project"
	"floorsketch/internal/scan"
	"floorsketch/internal/units"
)

func main() {
	imagePath := flag.String("image", "", "Path to scanned floor plan (TIFF, PNG, or JPEG)")
	outPath := flag.String("out", "", "Output .fplan path (default: image name with .fplan)")
	scale := flag.Float64("scale", 100, "Pixels per meter in the scan")
	refPixels := flag.Float64("ref-pixels", 0, "Calibration: measured length in pixels")
	refMeters := flag.Float64("ref-meters", 0, "Calibration: the same length in meters")
	thickness := flag.Float64("thickness", 0.2, "Wall thickness in meters")
	minLine := flag.Float64("min-line", 40, "Minimum detected line length in pixels")
	ocr := flag.Bool("ocr", false, "Run OCR to report dimension labels")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: scanimport -image <path> [-out plan.fplan] [-scale 100] [-ocr]")
		os.Exit(1)
	}

	img, err := scan.ReadImage(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read image: %v\n", err)
		os.Exit(1)
	}
	defer img.Close()
	fmt.Printf("Loaded %s: %dx%d pixels\n", *imagePath, img.Cols(), img.Rows())

	pixelsPerMeter := *scale
	if *refPixels > 0 && *refMeters > 0 {
		fitted, err := scan.FitScale([]scan.Reference{{Pixels: *refPixels, Meters: *refMeters}})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Calibration failed: %v\n", err)
			os.Exit(1)
		}
		pixelsPerMeter = fitted
		fmt.Printf("Calibrated scale: %.1f px/m\n", pixelsPerMeter)
	}

	opts := scan.DefaultOptions()
	opts.MinLineLength = *minLine
	segments := scan.DetectWallSegments(img, opts)
	fmt.Printf("Detected %d wall segments\n", len(segments))

	if *ocr {
		engine := scan.NewOCREngine()
		labels, err := engine.DetectLabels(img)
		engine.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "OCR failed: %v\n", err)
		} else {
			fmt.Printf("Found %d dimension labels:\n", len(labels))
			for _, l := range labels {
				fmt.Printf("  %q -> %.2f %s (conf %.0f) at (%.0f,%.0f)\n",
					l.Text, l.Value, l.Unit.Symbol(), l.Confidence, l.Bounds.X, l.Bounds.Y)
			}
		}
	}

	// Wall geometry is stored in model pixels at the document scale.
	walls := scan.ToWalls(segments, 1.0, *thickness*pixelsPerMeter)
	p := plan.New()
	for _, w := range walls {
		p.Add(w)
	}

	elements, err := plan.MarshalElements(p.Elements())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode elements: %v\n", err)
		os.Exit(1)
	}

	name := strings.TrimSuffix(filepath.Base(*imagePath), filepath.Ext(*imagePath))
	doc := &project.Document{
		Version:        project.CurrentVersion,
		Name:           name,
		Unit:           units.Meters,
		PixelsPerMeter: pixelsPerMeter,
		GridSize:       0.5,
		Defaults: project.Defaults{
			WallThickness: *thickness * pixelsPerMeter,
			OpeningWidth:  0.9 * pixelsPerMeter,
			OpeningHeight: 2.0 * pixelsPerMeter,
		},
		SavedAt:  time.Now().UTC(),
		Elements: elements,
	}

	out := *outPath
	if out == "" {
		out = name + ".fplan"
	}
	if err := doc.Save(out); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s: %d walls\n", out, len(walls))
}
