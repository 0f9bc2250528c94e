package sketch

import "floorsketch/pkg/geometry"

// Gesture is the transient drawing/drag buffer. Exactly one variant is
// active at a time; pointer-move handlers mutate only this buffer,
// never the committed element list.
type Gesture interface {
	isGesture()
}

// Idle means no gesture is in progress.
type Idle struct{}

func (Idle) isGesture() {}

// DrawingWall is an in-progress wall drawing gesture. Current holds
// the live end point, already clamped when right-angle enforcement is
// active.
type DrawingWall struct {
	Start   geometry.Point2D
	Current geometry.Point2D
}

func (DrawingWall) isGesture() {}

// DrawingMeasurement is an in-progress measurement gesture. No angle
// clamp applies.
type DrawingMeasurement struct {
	Start   geometry.Point2D
	Current geometry.Point2D
}

func (DrawingMeasurement) isGesture() {}

// Handle identifies a wall endpoint handle.
type Handle int

const (
	HandleStart Handle = iota
	HandleEnd
)

// DraggingHandle is an in-progress endpoint drag on the selected wall.
// Current holds the live endpoint position; the wall itself is updated
// on pointer-up.
type DraggingHandle struct {
	ElementID string
	Handle    Handle
	Start     geometry.Point2D
	Current   geometry.Point2D
}

func (DraggingHandle) isGesture() {}
