package sketch

import (
	"floorsketch/internal/plan"
	"floorsketch/pkg/geometry"
)

// PointerDown feeds a pointer-down event in client coordinates into
// the state machine.
func (s *State) PointerDown(clientX, clientY float64) {
	model := s.ToModel(clientX, clientY)

	switch s.tool {
	case ToolWall:
		start := s.Snap(model)
		s.gesture = DrawingWall{Start: start, Current: start}
		s.Emit(EventGestureChanged, nil)

	case ToolMeasure:
		start := s.Snap(model)
		s.gesture = DrawingMeasurement{Start: start, Current: start}
		s.Emit(EventGestureChanged, nil)

	case ToolDoor:
		s.placeOpening(model, plan.KindDoor)

	case ToolWindow:
		s.placeOpening(model, plan.KindWindow)

	case ToolErase:
		if id := s.ElementAt(model); id != "" {
			s.plan.Remove(id)
			if s.selectedID == id {
				s.setSelected("")
			}
			s.Emit(EventElementsChanged, nil)
		}

	case ToolSelect:
		if w, handle, ok := s.handleAt(model); ok {
			var start geometry.Point2D
			if handle == HandleStart {
				start = w.Start
			} else {
				start = w.End
			}
			s.gesture = DraggingHandle{
				ElementID: w.ID,
				Handle:    handle,
				Start:     start,
				Current:   start,
			}
			s.Emit(EventGestureChanged, nil)
			return
		}
		s.setSelected(s.ElementAt(model))
	}
}

// PointerMove feeds a pointer-move event into the state machine. Only
// the transient gesture buffer is mutated, so repeated invocation with
// the same position is idempotent.
func (s *State) PointerMove(clientX, clientY float64) {
	switch g := s.gesture.(type) {
	case DrawingWall:
		current := s.snappedModel(clientX, clientY)
		if s.rightAngles {
			current = clampRightAngle(g.Start, current)
		}
		g.Current = current
		s.gesture = g
		s.Emit(EventGestureChanged, nil)

	case DrawingMeasurement:
		g.Current = s.snappedModel(clientX, clientY)
		s.gesture = g
		s.Emit(EventGestureChanged, nil)

	case DraggingHandle:
		g.Current = s.snappedModel(clientX, clientY)
		s.gesture = g
		s.Emit(EventGestureChanged, nil)
	}
}

// PointerUp feeds a pointer-up event into the state machine,
// committing or discarding the in-progress gesture at the release
// position.
func (s *State) PointerUp(clientX, clientY float64) {
	switch g := s.gesture.(type) {
	case DrawingWall:
		end := s.snappedModel(clientX, clientY)
		if s.rightAngles {
			end = clampRightAngle(g.Start, end)
		}
		s.gesture = Idle{}
		if g.Start.Distance(end) >= MinWallLength {
			s.plan.Add(plan.NewWall(g.Start, end, s.defaults.WallThickness))
			s.Emit(EventElementsChanged, nil)
		}
		s.Emit(EventGestureChanged, nil)

	case DrawingMeasurement:
		end := s.snappedModel(clientX, clientY)
		s.gesture = Idle{}
		length := g.Start.Distance(end)
		if length >= MinMeasurementLength {
			label := s.converter.FormatMeasurement(length)
			s.plan.Add(plan.NewMeasurement(g.Start, end, label))
			s.Emit(EventElementsChanged, nil)
		}
		s.Emit(EventGestureChanged, nil)

	case DraggingHandle:
		g.Current = s.snappedModel(clientX, clientY)
		s.gesture = Idle{}
		s.commitHandleDrag(g)
		s.Emit(EventGestureChanged, nil)
	}
}

// commitHandleDrag applies the dragged endpoint to the wall. A drag
// that would leave the wall shorter than the draw minimum is dropped,
// so committed walls never fall below MinWallLength.
func (s *State) commitHandleDrag(g DraggingHandle) {
	w, ok := s.plan.WallByID(g.ElementID)
	if !ok {
		return
	}
	opposite := w.End
	if g.Handle == HandleEnd {
		opposite = w.Start
	}
	if g.Current.Distance(opposite) < MinWallLength {
		return
	}
	if g.Handle == HandleStart {
		w.Start = g.Current
	} else {
		w.End = g.Current
	}
	s.Emit(EventElementsChanged, nil)
}

// Cancel handles the Escape key: it discards the in-progress gesture,
// clears the current selection, and resets the active tool to select.
// A handle drag is dropped without touching the wall.
func (s *State) Cancel() {
	if _, idle := s.gesture.(Idle); !idle {
		s.gesture = Idle{}
		s.Emit(EventGestureChanged, nil)
	}
	s.setSelected("")
	s.SetTool(ToolSelect)
}

// DeleteSelected removes the selected element, if any.
func (s *State) DeleteSelected() {
	if s.selectedID == "" {
		return
	}
	if s.plan.Remove(s.selectedID) {
		s.Emit(EventElementsChanged, nil)
	}
	s.setSelected("")
}

// placeOpening creates a door or window at the click position
// projected onto the nearest wall. Out-of-tolerance clicks are a
// silent no-op.
func (s *State) placeOpening(p geometry.Point2D, kind plan.Kind) {
	wall, projected, ok := s.NearestWall(p, PlacementTolerance)
	if !ok {
		return
	}

	var opening *plan.Opening
	if kind == plan.KindDoor {
		opening = plan.NewDoor(wall.ID, projected, s.defaults.OpeningWidth, s.defaults.OpeningHeight)
	} else {
		opening = plan.NewWindow(wall.ID, projected, s.defaults.OpeningWidth, s.defaults.OpeningHeight)
	}
	s.plan.Add(opening)
	s.Emit(EventElementsChanged, nil)
}

func (s *State) setSelected(id string) {
	if s.selectedID == id {
		return
	}
	s.selectedID = id
	s.Emit(EventSelectionChanged, id)
}
