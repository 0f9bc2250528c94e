package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"sort"

	"floorsketch/pkg/geometry"
)

// Palette used when rasterizing a scene.
var (
	colorBackground  = color.RGBA{R: 250, G: 250, B: 248, A: 255}
	colorGrid        = color.RGBA{R: 225, G: 228, B: 232, A: 255}
	colorWall        = color.RGBA{R: 70, G: 72, B: 80, A: 255}
	colorDoor        = color.RGBA{R: 176, G: 122, B: 62, A: 255}
	colorWindow      = color.RGBA{R: 96, G: 160, B: 220, A: 255}
	colorMeasure     = color.RGBA{R: 200, G: 60, B: 140, A: 255}
	colorSelection   = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	colorHandle      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorHandleRing  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorLabel       = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	colorPreviewWall = color.RGBA{R: 70, G: 72, B: 80, A: 160}
)

const arrowSize = 8.0

// Rasterize draws the scene onto a fresh RGBA image of the given size.
func Rasterize(scene Scene, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetRGBA(x, y, colorBackground)
		}
	}

	for _, line := range scene.Grid {
		drawLine(out, line.Start, line.End, colorGrid, 1, false)
	}

	for _, quad := range scene.Walls {
		fillQuad(out, quad.Corners, colorWall)
		if quad.Selected {
			outlineQuad(out, quad.Corners, colorSelection, 2)
		}
	}

	if scene.PreviewWall != nil {
		fillQuad(out, scene.PreviewWall.Corners, colorPreviewWall)
	}

	for _, quad := range scene.Openings {
		col := colorDoor
		if quad.Kind.String() == "window" {
			col = colorWindow
		}
		fillQuad(out, quad.Corners, col)
		if quad.Selected {
			outlineQuad(out, quad.Corners, colorSelection, 2)
		}
	}

	for _, m := range scene.Measurements {
		drawMeasurement(out, m)
	}
	if scene.PreviewMeasure != nil {
		drawMeasurement(out, *scene.PreviewMeasure)
	}

	for _, handle := range scene.Handles {
		drawHandle(out, handle.Center)
	}

	return out
}

// ExportPNG rasterizes the scene and writes it to a PNG file.
func ExportPNG(scene Scene, w, h int, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, Rasterize(scene, w, h)); err != nil {
		return fmt.Errorf("encode export image: %w", err)
	}
	return nil
}

// drawMeasurement draws a dashed line with arrow heads at both ends
// and a centered label.
func drawMeasurement(out *image.RGBA, m MeasureLine) {
	col := colorMeasure
	if m.Selected {
		col = colorSelection
	}
	drawLine(out, m.Start, m.End, col, 1, true)
	drawArrowHead(out, m.End, m.Start, col)
	drawArrowHead(out, m.Start, m.End, col)

	mid := geometry.Point2D{X: (m.Start.X + m.End.X) / 2, Y: (m.Start.Y + m.End.Y) / 2}
	drawLabel(out, m.Label, int(mid.X), int(mid.Y)-8, colorLabel)
}

// drawArrowHead draws the two barbs of an arrow at tip, pointing away
// from toward.
func drawArrowHead(out *image.RGBA, tip, toward geometry.Point2D, col color.RGBA) {
	angle := math.Atan2(toward.Y-tip.Y, toward.X-tip.X)
	for _, spread := range []float64{-math.Pi / 6, math.Pi / 6} {
		barb := geometry.Point2D{
			X: tip.X + arrowSize*math.Cos(angle+spread),
			Y: tip.Y + arrowSize*math.Sin(angle+spread),
		}
		drawLine(out, tip, barb, col, 1, false)
	}
}

// drawHandle draws a filled endpoint handle with a dark ring.
func drawHandle(out *image.RGBA, center geometry.Point2D) {
	drawCircle(out, center, 5, colorHandle, true)
	drawCircle(out, center, 5, colorHandleRing, false)
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(out *image.RGBA, from, to geometry.Point2D, col color.RGBA, thickness int, dashed bool) {
	bounds := out.Bounds()
	x1, y1 := int(from.X), int(from.Y)
	x2, y2 := int(to.X), int(to.Y)

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	step := 0

	for {
		// Dash pattern: 4 on, 4 off
		if !dashed || step%8 < 4 {
			for t := -thickness / 2; t <= thickness/2; t++ {
				for s := -thickness / 2; s <= thickness/2; s++ {
					px, py := x1+s, y1+t
					if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
						out.SetRGBA(px, py, col)
					}
				}
			}
		}
		step++

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillQuad fills a four-corner polygon using a scanline algorithm.
func fillQuad(out *image.RGBA, corners [4]geometry.Point2D, col color.RGBA) {
	bounds := out.Bounds()

	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}

	for y := int(minY); y <= int(maxY); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}

		var xs []float64
		for i := 0; i < 4; i++ {
			p1 := corners[i]
			p2 := corners[(i+1)%4]
			if (p1.Y <= float64(y) && p2.Y > float64(y)) ||
				(p2.Y <= float64(y) && p1.Y > float64(y)) {
				t := (float64(y) - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(xs[i]); x <= int(xs[i+1]); x++ {
				if x >= bounds.Min.X && x < bounds.Max.X {
					out.SetRGBA(x, y, col)
				}
			}
		}
	}
}

// outlineQuad draws the edges of a four-corner polygon.
func outlineQuad(out *image.RGBA, corners [4]geometry.Point2D, col color.RGBA, thickness int) {
	for i := 0; i < 4; i++ {
		drawLine(out, corners[i], corners[(i+1)%4], col, thickness, false)
	}
}

// drawCircle draws a filled or outlined circle.
func drawCircle(out *image.RGBA, center geometry.Point2D, radius float64, col color.RGBA, filled bool) {
	bounds := out.Bounds()
	r2 := radius * radius
	inner2 := (radius - 1.5) * (radius - 1.5)

	for y := int(center.Y - radius - 1); y <= int(center.Y+radius+1); y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := int(center.X - radius - 1); x <= int(center.X+radius+1); x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) - center.X
			dy := float64(y) - center.Y
			dist2 := dx*dx + dy*dy
			if filled {
				if dist2 <= r2 {
					out.SetRGBA(x, y, col)
				}
			} else if dist2 <= r2 && dist2 >= inner2 {
				out.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLabel draws a label centered at the given coordinates using the
// 3x5 bitmap font.
func drawLabel(out *image.RGBA, label string, centerX, centerY int, col color.RGBA) {
	const scale = 2
	charWidth := 3 * scale
	charHeight := 5 * scale
	spacing := scale
	labelWidth := len(label)*charWidth + (len(label)-1)*spacing

	startX := centerX - labelWidth/2
	startY := centerY - charHeight/2

	bounds := out.Bounds()

	for i, ch := range label {
		pattern := charPattern(ch)
		charX := startX + i*(charWidth+spacing)

		for row := 0; row < 5; row++ {
			for c := 0; c < 3; c++ {
				if (pattern[row] & (1 << (2 - c))) == 0 {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						px := charX + c*scale + dx
						py := startY + row*scale + dy
						if px >= bounds.Min.X && px < bounds.Max.X &&
							py >= bounds.Min.Y && py < bounds.Max.Y {
							out.SetRGBA(px, py, col)
						}
					}
				}
			}
		}
	}
}
