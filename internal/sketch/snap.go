package sketch

import (
	"math"

	"floorsketch/pkg/geometry"
)

// ToModel converts a client-space point into model space, applying the
// pan offset and zoom scale. It always returns a point.
func (s *State) ToModel(clientX, clientY float64) geometry.Point2D {
	zoom := s.zoom
	if zoom <= 0 {
		zoom = 1
	}
	return geometry.Point2D{
		X: clientX/zoom - s.pan.X,
		Y: clientY/zoom - s.pan.Y,
	}
}

// Snap rounds a model-space point to the nearest grid intersection
// when snapping is enabled. The grid spacing is configured in the
// active real-world unit and converted to pixels through the active
// baseline. Snapping an already-snapped point is a no-op.
func (s *State) Snap(p geometry.Point2D) geometry.Point2D {
	if !s.snapToGrid {
		return p
	}
	grid := s.GridPixels()
	if grid <= 0 {
		return p
	}
	return geometry.Point2D{
		X: math.Round(p.X/grid) * grid,
		Y: math.Round(p.Y/grid) * grid,
	}
}

// GridPixels returns the grid spacing in model pixels.
func (s *State) GridPixels() float64 {
	if s.gridSize <= 0 {
		return 0
	}
	return s.converter.UnitsToPixels(s.gridSize)
}

// snappedModel converts client coordinates to model space and applies
// grid snapping.
func (s *State) snappedModel(clientX, clientY float64) geometry.Point2D {
	return s.Snap(s.ToModel(clientX, clientY))
}

// clampRightAngle clamps end so the segment from start is purely
// horizontal or vertical, keeping whichever axis has the larger
// absolute delta.
func clampRightAngle(start, end geometry.Point2D) geometry.Point2D {
	dx := math.Abs(end.X - start.X)
	dy := math.Abs(end.Y - start.Y)
	if dx >= dy {
		return geometry.Point2D{X: end.X, Y: start.Y}
	}
	return geometry.Point2D{X: start.X, Y: end.Y}
}
