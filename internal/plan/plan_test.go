package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorsketch/pkg/geometry"
)

func TestPlanAddRemove(t *testing.T) {
	p := New()
	w := NewWall(geometry.Point2D{}, geometry.Point2D{X: 100}, 20)
	p.Add(w)
	require.Equal(t, 1, p.Len())

	got, ok := p.ByID(w.ID)
	require.True(t, ok)
	assert.Same(t, w, got.(*Wall))

	assert.True(t, p.Remove(w.ID))
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Remove(w.ID))
}

func TestWallByIDRejectsNonWalls(t *testing.T) {
	p := New()
	w := NewWall(geometry.Point2D{}, geometry.Point2D{X: 100}, 20)
	d := NewDoor(w.ID, geometry.Point2D{X: 50}, 90, 200)
	p.Add(w)
	p.Add(d)

	_, ok := p.WallByID(w.ID)
	assert.True(t, ok)

	_, ok = p.WallByID(d.ID)
	assert.False(t, ok)

	_, ok = p.WallByID("missing")
	assert.False(t, ok)
}

func TestRemoveWallKeepsOrphanedOpenings(t *testing.T) {
	p := New()
	w := NewWall(geometry.Point2D{}, geometry.Point2D{X: 100}, 20)
	d := NewDoor(w.ID, geometry.Point2D{X: 50}, 90, 200)
	p.Add(w)
	p.Add(d)

	require.True(t, p.Remove(w.ID))

	// The opening stays in the plan but its wall reference dangles.
	got, ok := p.ByID(d.ID)
	require.True(t, ok)
	opening := got.(*Opening)
	_, ok = p.WallByID(opening.WallID)
	assert.False(t, ok)
}

func TestNewDoorDefaultsSwingLeft(t *testing.T) {
	d := NewDoor("wall-1", geometry.Point2D{X: 10}, 90, 200)
	assert.Equal(t, KindDoor, d.Kind())
	assert.Equal(t, "left", d.Properties["swing"])

	win := NewWindow("wall-1", geometry.Point2D{X: 10}, 90, 200)
	assert.Equal(t, KindWindow, win.Kind())
}
