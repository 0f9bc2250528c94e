package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floorsketch/internal/units"
	"floorsketch/pkg/geometry"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		text  string
		value float64
		unit  units.Unit
		ok    bool
	}{
		{"3.50 M", 3.5, units.Meters, true},
		{"3.50m", 3.5, units.Meters, true},
		{"12 FT", 12, units.Feet, true},
		{"24 in", 24, units.Inches, true},
		{"4.2", 4.2, units.Meters, true},
		{"", 0, units.Meters, false},
		{"wall", 0, units.Meters, false},
		{"0 M", 0, units.Meters, false},
		{"3.5 KM", 0, units.Meters, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			value, unit, ok := ParseDimension(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.value, value, 1e-9)
				assert.Equal(t, tt.unit, unit)
			}
		})
	}
}

func TestFitScaleSingleReference(t *testing.T) {
	scale, err := FitScale([]Reference{{Pixels: 350, Meters: 3.5}})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, scale, 1e-6)
}

func TestFitScaleAveragesNoise(t *testing.T) {
	scale, err := FitScale([]Reference{
		{Pixels: 102, Meters: 1.0},
		{Pixels: 198, Meters: 2.0},
		{Pixels: 401, Meters: 4.0},
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, scale, 2.0)
}

func TestFitScaleValidation(t *testing.T) {
	_, err := FitScale(nil)
	assert.Error(t, err)

	_, err = FitScale([]Reference{{Pixels: -10, Meters: 1}})
	assert.Error(t, err)
}

func TestAxisSnapStraightensNearAxisLines(t *testing.T) {
	seg := axisSnap(geometry.Segment{
		Start: geometry.Point2D{X: 0, Y: 0},
		End:   geometry.Point2D{X: 200, Y: 3},
	}, 4)
	assert.Equal(t, seg.Start.Y, seg.End.Y, "near-horizontal lines snap flat")

	diagonal := axisSnap(geometry.Segment{
		Start: geometry.Point2D{X: 0, Y: 0},
		End:   geometry.Point2D{X: 100, Y: 100},
	}, 4)
	assert.Equal(t, geometry.Point2D{X: 100, Y: 100}, diagonal.End)
}

func TestToWalls(t *testing.T) {
	segments := []geometry.Segment{
		{Start: geometry.Point2D{X: 0, Y: 0}, End: geometry.Point2D{X: 100, Y: 0}},
		{Start: geometry.Point2D{X: 100, Y: 0}, End: geometry.Point2D{X: 100, Y: 80}},
	}

	walls := ToWalls(segments, 2.0, 20)
	require.Len(t, walls, 2)
	assert.Equal(t, geometry.Point2D{X: 200, Y: 0}, walls[0].End)
	assert.Equal(t, 20.0, walls[0].Thickness)
	assert.NotEmpty(t, walls[0].ID)
	assert.NotEqual(t, walls[0].ID, walls[1].ID)
}
