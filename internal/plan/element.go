// Package plan provides the floor-plan element model: walls, openings,
// and measurement annotations.
package plan

import (
	"github.com/google/uuid"

	"floorsketch/pkg/geometry"
)

// Kind identifies the element variant.
type Kind int

const (
	KindWall Kind = iota
	KindDoor
	KindWindow
	KindMeasurement
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindDoor:
		return "door"
	case KindWindow:
		return "window"
	case KindMeasurement:
		return "measurement"
	default:
		return "unknown"
	}
}

// ParseKind returns the kind matching a stored name.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "wall":
		return KindWall, true
	case "door":
		return KindDoor, true
	case "window":
		return KindWindow, true
	case "measurement":
		return KindMeasurement, true
	default:
		return KindWall, false
	}
}

// Element is one geometric object on the floor plan.
type Element interface {
	ElementID() string
	Kind() Kind
}

// Wall is a straight wall segment. Coordinates are in model pixel
// space; Thickness is in pixels, derived from a real-world unit value.
type Wall struct {
	ID         string            `json:"id"`
	Start      geometry.Point2D  `json:"start"`
	End        geometry.Point2D  `json:"end"`
	Thickness  float64           `json:"thickness"`
	Properties map[string]string `json:"properties,omitempty"`
}

// NewWall creates a wall with a fresh id.
func NewWall(start, end geometry.Point2D, thickness float64) *Wall {
	return &Wall{
		ID:        uuid.NewString(),
		Start:     start,
		End:       end,
		Thickness: thickness,
	}
}

func (w *Wall) ElementID() string { return w.ID }
func (w *Wall) Kind() Kind        { return KindWall }

// Segment returns the wall centerline.
func (w *Wall) Segment() geometry.Segment {
	return geometry.NewSegment(w.Start, w.End)
}

// Length returns the wall centerline length in pixels.
func (w *Wall) Length() float64 {
	return w.Start.Distance(w.End)
}

// Opening is a door or window placed on an owning wall. WallID is a
// weak reference: it is resolved by id lookup at use time, and an
// opening whose wall has been deleted simply stops rendering.
type Opening struct {
	ID         string            `json:"id"`
	WallID     string            `json:"wall_id"`
	Position   geometry.Point2D  `json:"position"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Properties map[string]string `json:"properties,omitempty"`

	kind Kind
}

// NewDoor creates a door opening on the given wall.
func NewDoor(wallID string, position geometry.Point2D, width, height float64) *Opening {
	return &Opening{
		ID:       uuid.NewString(),
		WallID:   wallID,
		Position: position,
		Width:    width,
		Height:   height,
		Properties: map[string]string{
			"swing": "left",
		},
		kind: KindDoor,
	}
}

// NewWindow creates a window opening on the given wall.
func NewWindow(wallID string, position geometry.Point2D, width, height float64) *Opening {
	return &Opening{
		ID:       uuid.NewString(),
		WallID:   wallID,
		Position: position,
		Width:    width,
		Height:   height,
		kind:     KindWindow,
	}
}

func (o *Opening) ElementID() string { return o.ID }
func (o *Opening) Kind() Kind        { return o.kind }

// Measurement is a free-angle annotation between two points with a
// precomputed display label (value + unit symbol).
type Measurement struct {
	ID    string           `json:"id"`
	Start geometry.Point2D `json:"start"`
	End   geometry.Point2D `json:"end"`
	Label string           `json:"label"`
}

// NewMeasurement creates a measurement annotation with a fresh id.
func NewMeasurement(start, end geometry.Point2D, label string) *Measurement {
	return &Measurement{
		ID:    uuid.NewString(),
		Start: start,
		End:   end,
		Label: label,
	}
}

func (m *Measurement) ElementID() string { return m.ID }
func (m *Measurement) Kind() Kind        { return KindMeasurement }

// Segment returns the measurement line.
func (m *Measurement) Segment() geometry.Segment {
	return geometry.NewSegment(m.Start, m.End)
}
