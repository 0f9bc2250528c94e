// Package scan imports scanned floor plans: it detects straight wall
// candidates, reads printed dimension labels, and calibrates the
// pixel scale against reference distances.
package scan

import (
	"fmt"
	"image"
	"math"

	"gocv.io/x/gocv"

	"floorsketch/internal/plan"
	"floorsketch/pkg/geometry"
)

// DetectionOptions configures wall candidate detection.
type DetectionOptions struct {
	MinLineLength float64 // minimum segment length in pixels
	MaxLineGap    float64 // max gap bridged between collinear segments
	HoughVotes    int     // accumulator threshold for the Hough transform
	AxisSnapDeg   float64 // segments within this angle of an axis are straightened
}

// DefaultOptions returns detection options tuned for 300 DPI
// architectural scans.
func DefaultOptions() DetectionOptions {
	return DetectionOptions{
		MinLineLength: 40,
		MaxLineGap:    8,
		HoughVotes:    60,
		AxisSnapDeg:   4,
	}
}

// ReadImage loads a scan image into a gocv matrix.
func ReadImage(path string) (gocv.Mat, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	if img.Empty() {
		return gocv.NewMat(), fmt.Errorf("cannot read image %s", path)
	}
	return img, nil
}

// DetectWallSegments finds straight line segments in a scanned plan.
// The returned segments are in scan pixel coordinates.
func DetectWallSegments(img gocv.Mat, opts DetectionOptions) []geometry.Segment {
	if img.Empty() {
		return nil
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: 3, Y: 3}, 0, 0, gocv.BorderDefault)

	// Walls are dark strokes on light paper
	binary := gocv.NewMat()
	defer binary.Close()
	gocv.AdaptiveThreshold(blurred, &binary, 255,
		gocv.AdaptiveThresholdMean, gocv.ThresholdBinaryInv, 15, 10)

	// Close small gaps in the strokes before the line transform
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 3, Y: 3})
	defer kernel.Close()
	gocv.MorphologyEx(binary, &binary, gocv.MorphClose, kernel)

	lines := gocv.NewMat()
	defer lines.Close()
	gocv.HoughLinesPWithParams(binary, &lines, 1, math.Pi/180,
		opts.HoughVotes, float32(opts.MinLineLength), float32(opts.MaxLineGap))

	var segments []geometry.Segment
	for i := 0; i < lines.Rows(); i++ {
		v := lines.GetVeciAt(i, 0)
		seg := geometry.NewSegment(
			geometry.Point2D{X: float64(v[0]), Y: float64(v[1])},
			geometry.Point2D{X: float64(v[2]), Y: float64(v[3])},
		)
		if seg.Length() < opts.MinLineLength {
			continue
		}
		segments = append(segments, axisSnap(seg, opts.AxisSnapDeg))
	}
	return segments
}

// axisSnap straightens segments that are nearly horizontal or
// vertical; scans are rarely perfectly square on the platen.
func axisSnap(seg geometry.Segment, toleranceDeg float64) geometry.Segment {
	if toleranceDeg <= 0 {
		return seg
	}
	angle := math.Abs(seg.Angle()) * 180 / math.Pi

	// Near horizontal
	if angle < toleranceDeg || angle > 180-toleranceDeg {
		midY := (seg.Start.Y + seg.End.Y) / 2
		seg.Start.Y = midY
		seg.End.Y = midY
		return seg
	}
	// Near vertical
	if math.Abs(angle-90) < toleranceDeg {
		midX := (seg.Start.X + seg.End.X) / 2
		seg.Start.X = midX
		seg.End.X = midX
	}
	return seg
}

// ToWalls converts detected segments into wall elements, scaling scan
// pixels to model pixels and applying the given thickness.
func ToWalls(segments []geometry.Segment, scale, thickness float64) []*plan.Wall {
	if scale <= 0 {
		scale = 1
	}
	walls := make([]*plan.Wall, 0, len(segments))
	for _, seg := range segments {
		walls = append(walls, plan.NewWall(
			seg.Start.Scale(scale),
			seg.End.Scale(scale),
			thickness,
		))
	}
	return walls
}
