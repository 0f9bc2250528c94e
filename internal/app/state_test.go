package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorsketch/internal/plan"
	"floorsketch/internal/sketch"
	"floorsketch/pkg/geometry"
)

func TestElementChangeDirtiesDocument(t *testing.T) {
	s := NewState()
	require.False(t, s.Modified)

	s.Sketch.Plan().Add(plan.NewWall(geometry.Point2D{}, geometry.Point2D{X: 100}, 20))
	s.Sketch.Emit(sketch.EventElementsChanged, nil)
	assert.True(t, s.Modified)
}

func TestSaveLoadFileRoundTrip(t *testing.T) {
	src := NewState()
	src.Name = "studio"
	wall := plan.NewWall(geometry.Point2D{}, geometry.Point2D{X: 150}, 20)
	src.Sketch.Plan().Add(wall)
	src.SetModified(true)

	path := filepath.Join(t.TempDir(), "studio.fplan")
	require.NoError(t, src.SaveFile(path))
	assert.False(t, src.Modified)
	assert.Equal(t, path, src.Path)

	dst := NewState()
	require.NoError(t, dst.LoadFile(path))
	assert.Equal(t, "studio", dst.Name)
	assert.Equal(t, path, dst.Path)
	assert.False(t, dst.Modified)

	got, ok := dst.Sketch.Plan().WallByID(wall.ID)
	require.True(t, ok)
	assert.Equal(t, wall.End, got.End)
}

func TestLoadFileMissing(t *testing.T) {
	s := NewState()
	err := s.LoadFile(filepath.Join(t.TempDir(), "missing.fplan"))
	assert.Error(t, err)
}

func TestModifiedEvent(t *testing.T) {
	s := NewState()

	var got []bool
	s.On(EventModified, func(data interface{}) {
		got = append(got, data.(bool))
	})

	s.SetModified(true)
	s.SetModified(true) // no change, no event
	s.SetModified(false)
	assert.Equal(t, []bool{true, false}, got)
}
