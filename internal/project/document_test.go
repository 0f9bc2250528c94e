package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorsketch/internal/plan"
	"floorsketch/internal/sketch"
	"floorsketch/internal/units"
	"floorsketch/pkg/geometry"
)

func TestSnapshotApplyRoundTrip(t *testing.T) {
	src := sketch.NewState()
	wall := plan.NewWall(geometry.Point2D{}, geometry.Point2D{X: 150, Y: 0}, 20)
	src.Plan().Add(wall)
	src.Plan().Add(plan.NewDoor(wall.ID, geometry.Point2D{X: 75, Y: 0}, 90, 200))
	src.SetUnit(units.Feet)
	src.SetGridSize(1.0)

	doc, err := Snapshot(src, "test plan")
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, doc.Version)
	assert.Equal(t, "test plan", doc.Name)
	assert.Equal(t, units.Feet, doc.Unit)

	dst := sketch.NewState()
	require.NoError(t, doc.Apply(dst))

	assert.Equal(t, 2, dst.Plan().Len())
	assert.Equal(t, units.Feet, dst.Unit())
	assert.Equal(t, 1.0, dst.GridSize())

	got, ok := dst.Plan().WallByID(wall.ID)
	require.True(t, ok)
	assert.Equal(t, wall.End, got.End)
	assert.Equal(t, wall.Thickness, got.Thickness)
}

func TestSaveLoadFile(t *testing.T) {
	src := sketch.NewState()
	src.Plan().Add(plan.NewMeasurement(geometry.Point2D{}, geometry.Point2D{X: 150}, "1.50 m"))

	doc, err := Snapshot(src, "kitchen")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "kitchen.fplan")
	require.NoError(t, doc.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "kitchen", loaded.Name)
	assert.Equal(t, doc.PixelsPerMeter, loaded.PixelsPerMeter)

	elements, err := loaded.DecodeElements()
	require.NoError(t, err)
	require.Len(t, elements, 1)
	assert.Equal(t, "1.50 m", elements[0].(*plan.Measurement).Label)
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.fplan")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.fplan"))
	assert.Error(t, err)
}
