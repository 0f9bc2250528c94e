package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorsketch/internal/plan"
	"floorsketch/internal/sketch"
	"floorsketch/pkg/geometry"
)

func TestBuildWallQuad(t *testing.T) {
	s := sketch.NewState()
	wall := plan.NewWall(geometry.Point2D{}, geometry.Point2D{X: 100, Y: 0}, 20)
	s.Plan().Add(wall)

	scene := Build(s, 800, 600)
	require.Len(t, scene.Walls, 1)

	q := scene.Walls[0]
	assert.Equal(t, wall.ID, q.ID)
	assert.Equal(t, plan.KindWall, q.Kind)
	assert.False(t, q.Selected)

	// Thickness 20 offsets the centerline by 10 on each side.
	assert.Equal(t, geometry.Point2D{X: 0, Y: 10}, q.Corners[0])
	assert.Equal(t, geometry.Point2D{X: 100, Y: -10}, q.Corners[2])
}

func TestBuildAppliesPanAndZoom(t *testing.T) {
	s := sketch.NewState()
	s.Plan().Add(plan.NewWall(geometry.Point2D{}, geometry.Point2D{X: 100, Y: 0}, 20))
	s.SetPan(geometry.Point2D{X: 50, Y: 0})
	s.SetZoom(2)

	scene := Build(s, 800, 600)
	require.Len(t, scene.Walls, 1)
	assert.Equal(t, geometry.Point2D{X: 100, Y: 20}, scene.Walls[0].Corners[0])
}

func TestBuildSkipsDanglingOpening(t *testing.T) {
	s := sketch.NewState()
	wall := plan.NewWall(geometry.Point2D{}, geometry.Point2D{X: 100, Y: 0}, 20)
	s.Plan().Add(wall)
	s.Plan().Add(plan.NewDoor(wall.ID, geometry.Point2D{X: 50, Y: 0}, 90, 200))

	scene := Build(s, 800, 600)
	assert.Len(t, scene.Openings, 1)

	// Deleting the wall orphans the door; it stops rendering but stays
	// in the plan.
	s.Plan().Remove(wall.ID)
	scene = Build(s, 800, 600)
	assert.Empty(t, scene.Openings)
	assert.Equal(t, 1, s.Plan().Len())
}

func TestBuildHidesMeasurements(t *testing.T) {
	s := sketch.NewState()
	s.Plan().Add(plan.NewMeasurement(geometry.Point2D{}, geometry.Point2D{X: 100}, "1.00 m"))

	scene := Build(s, 800, 600)
	require.Len(t, scene.Measurements, 1)
	assert.Equal(t, "1.00 m", scene.Measurements[0].Label)

	s.SetShowMeasurements(false)
	scene = Build(s, 800, 600)
	assert.Empty(t, scene.Measurements)
}

func TestBuildHandlesForSelectedWall(t *testing.T) {
	s := sketch.NewState()
	wall := plan.NewWall(geometry.Point2D{}, geometry.Point2D{X: 100, Y: 0}, 20)
	s.Plan().Add(wall)

	scene := Build(s, 800, 600)
	assert.Empty(t, scene.Handles)

	// Select via a pointer click.
	s.PointerDown(50, 0)
	s.PointerUp(50, 0)
	scene = Build(s, 800, 600)
	require.Len(t, scene.Handles, 2)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0}, scene.Handles[0].Center)
	assert.Equal(t, geometry.Point2D{X: 100, Y: 0}, scene.Handles[1].Center)
}

func TestBuildWallPreview(t *testing.T) {
	s := sketch.NewState()
	s.SetTool(sketch.ToolWall)
	s.PointerDown(0, 0)
	s.PointerMove(150, 0)

	scene := Build(s, 800, 600)
	require.NotNil(t, scene.PreviewWall)
	assert.Equal(t, plan.KindWall, scene.PreviewWall.Kind)
	assert.Empty(t, scene.Walls, "preview must not be committed")
}

func TestBuildMeasurePreviewLabel(t *testing.T) {
	s := sketch.NewState()
	s.SetTool(sketch.ToolMeasure)
	s.PointerDown(0, 0)
	s.PointerMove(150, 0)

	scene := Build(s, 800, 600)
	require.NotNil(t, scene.PreviewMeasure)
	assert.Equal(t, "1.50 m", scene.PreviewMeasure.Label)
}

func TestBuildDraggedHandleOverridesEndpoint(t *testing.T) {
	s := sketch.NewState()
	s.SetSnapToGrid(false)
	wall := plan.NewWall(geometry.Point2D{}, geometry.Point2D{X: 100, Y: 0}, 20)
	s.Plan().Add(wall)

	s.PointerDown(50, 0)
	s.PointerUp(50, 0)
	s.PointerDown(0, 0)
	s.PointerMove(0, 60)

	scene := Build(s, 800, 600)
	require.Len(t, scene.Handles, 2)
	// The scene shows the live drag position while the model holds the
	// committed endpoint.
	assert.Equal(t, geometry.Point2D{X: 0, Y: 60}, scene.Handles[0].Center)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0}, wall.Start)
}

func TestGridLines(t *testing.T) {
	s := sketch.NewState()

	scene := Build(s, 200, 100)
	// 50 px grid: verticals at 0,50,100,150,200 and horizontals at 0,50,100.
	require.Len(t, scene.Grid, 8)

	s.SetShowGrid(false)
	scene = Build(s, 200, 100)
	assert.Empty(t, scene.Grid)
}

func TestGridSkippedWhenTooDense(t *testing.T) {
	s := sketch.NewState()
	s.SetZoom(sketch.MinZoom)
	s.SetGridSize(0.05) // 5 px at zoom 1, 0.5 px at min zoom
	scene := Build(s, 200, 100)
	assert.Empty(t, scene.Grid)
}
