package sketch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"floorsketch/pkg/geometry"
)

func TestToModelAppliesPanAndZoom(t *testing.T) {
	s := NewState()
	s.SetZoom(2)
	s.SetPan(geometry.Point2D{X: 10, Y: 20})

	got := s.ToModel(200, 100)
	assert.Equal(t, geometry.Point2D{X: 90, Y: 30}, got)
}

func TestGridPixels(t *testing.T) {
	s := NewState()
	// 0.5 m at 100 px/m.
	assert.InDelta(t, 50.0, s.GridPixels(), 1e-9)

	s.SetGridSize(0)
	assert.Equal(t, 0.0, s.GridPixels())
}

func TestSnapRoundsToNearestIntersection(t *testing.T) {
	s := NewState()

	assert.Equal(t, geometry.Point2D{X: 150, Y: 0}, s.Snap(geometry.Point2D{X: 150, Y: 5}))
	assert.Equal(t, geometry.Point2D{X: 100, Y: 50}, s.Snap(geometry.Point2D{X: 97, Y: 44}))
	assert.Equal(t, geometry.Point2D{X: -50, Y: 0}, s.Snap(geometry.Point2D{X: -60, Y: -20}))
}

func TestSnapIdempotentAndBounded(t *testing.T) {
	s := NewState()
	grid := s.GridPixels()

	points := []geometry.Point2D{
		{X: 13, Y: 87}, {X: -41.2, Y: 350.9}, {X: 24.999, Y: 25.001},
	}
	for _, p := range points {
		snapped := s.Snap(p)
		assert.Equal(t, snapped, s.Snap(snapped), "snapping must be idempotent")
		assert.LessOrEqual(t, math.Abs(p.X-snapped.X), grid/2)
		assert.LessOrEqual(t, math.Abs(p.Y-snapped.Y), grid/2)
	}
}

func TestSnapDisabled(t *testing.T) {
	s := NewState()
	s.SetSnapToGrid(false)

	p := geometry.Point2D{X: 13.7, Y: 86.2}
	assert.Equal(t, p, s.Snap(p))
}

func TestClampRightAngleKeepsDominantAxis(t *testing.T) {
	start := geometry.Point2D{X: 0, Y: 0}

	// Mostly horizontal stays horizontal.
	assert.Equal(t, geometry.Point2D{X: 150, Y: 0}, clampRightAngle(start, geometry.Point2D{X: 150, Y: 5}))
	// Mostly vertical stays vertical.
	assert.Equal(t, geometry.Point2D{X: 0, Y: 120}, clampRightAngle(start, geometry.Point2D{X: 30, Y: 120}))
	// Exact diagonal resolves to horizontal.
	assert.Equal(t, geometry.Point2D{X: 80, Y: 0}, clampRightAngle(start, geometry.Point2D{X: 80, Y: 80}))
}

func TestSetZoomClamps(t *testing.T) {
	s := NewState()
	s.SetZoom(100)
	assert.Equal(t, MaxZoom, s.Zoom())

	s.SetZoom(0.001)
	assert.Equal(t, MinZoom, s.Zoom())
}
