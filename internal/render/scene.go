// Package render derives visual primitives from the plan and canvas
// state. Derivation is pure; nothing here mutates the model.
package render

import (
	"floorsketch/internal/plan"
	"floorsketch/internal/sketch"
	"floorsketch/pkg/geometry"
)

// Quad is a filled four-corner polygon in client coordinates.
type Quad struct {
	ID       string
	Corners  [4]geometry.Point2D
	Kind     plan.Kind
	Selected bool
}

// Line is a solid straight line in client coordinates.
type Line struct {
	Start geometry.Point2D
	End   geometry.Point2D
}

// MeasureLine is a dashed measurement line with arrow heads and a
// centered label.
type MeasureLine struct {
	ID       string
	Start    geometry.Point2D
	End      geometry.Point2D
	Label    string
	Selected bool
}

// HandleDot marks a draggable wall endpoint handle.
type HandleDot struct {
	Center geometry.Point2D
}

// Scene is the full set of primitives for one frame.
type Scene struct {
	Grid         []Line
	Walls        []Quad
	Openings     []Quad
	Measurements []MeasureLine
	Handles      []HandleDot

	// Live previews from the in-progress gesture.
	PreviewWall    *Quad
	PreviewMeasure *MeasureLine
}

// Build derives the scene for a viewport of width x height client
// pixels. Openings whose wall id does not resolve to a wall are
// skipped silently.
func Build(s *sketch.State, width, height float64) Scene {
	var scene Scene

	if s.ShowGrid() {
		scene.Grid = gridLines(s, width, height)
	}

	dragged, draggedStart, draggedEnd := draggedWall(s)

	for _, e := range s.Plan().Elements() {
		switch el := e.(type) {
		case *plan.Wall:
			start, end := el.Start, el.End
			if el.ID == dragged {
				start, end = draggedStart, draggedEnd
			}
			seg := geometry.NewSegment(start, end)
			scene.Walls = append(scene.Walls, Quad{
				ID:       el.ID,
				Corners:  toClientQuad(s, seg.Offset(el.Thickness/2)),
				Kind:     plan.KindWall,
				Selected: el.ID == s.SelectedID(),
			})

		case *plan.Opening:
			quad, ok := openingQuad(s, el)
			if !ok {
				continue // dangling wall reference
			}
			quad.Selected = el.ID == s.SelectedID()
			scene.Openings = append(scene.Openings, quad)

		case *plan.Measurement:
			if !s.ShowMeasurements() {
				continue
			}
			scene.Measurements = append(scene.Measurements, MeasureLine{
				ID:       el.ID,
				Start:    toClient(s, el.Start),
				End:      toClient(s, el.End),
				Label:    el.Label,
				Selected: el.ID == s.SelectedID(),
			})
		}
	}

	scene.Handles = handleDots(s, dragged, draggedStart, draggedEnd)
	addPreviews(s, &scene)

	return scene
}

// toClient maps a model-space point to client space.
func toClient(s *sketch.State, p geometry.Point2D) geometry.Point2D {
	return geometry.Point2D{
		X: (p.X + s.Pan().X) * s.Zoom(),
		Y: (p.Y + s.Pan().Y) * s.Zoom(),
	}
}

func toClientQuad(s *sketch.State, corners [4]geometry.Point2D) [4]geometry.Point2D {
	var out [4]geometry.Point2D
	for i, c := range corners {
		out[i] = toClient(s, c)
	}
	return out
}

// draggedWall returns the wall id and live endpoints when a handle
// drag is in progress.
func draggedWall(s *sketch.State) (id string, start, end geometry.Point2D) {
	g, ok := s.Gesture().(sketch.DraggingHandle)
	if !ok {
		return "", geometry.Point2D{}, geometry.Point2D{}
	}
	w, ok := s.Plan().WallByID(g.ElementID)
	if !ok {
		return "", geometry.Point2D{}, geometry.Point2D{}
	}
	start, end = w.Start, w.End
	if g.Handle == sketch.HandleStart {
		start = g.Current
	} else {
		end = g.Current
	}
	return g.ElementID, start, end
}

// openingQuad computes the rectangle of a door/window on its owning
// wall: element width along the wall direction, wall thickness across.
func openingQuad(s *sketch.State, o *plan.Opening) (Quad, bool) {
	wall, ok := s.Plan().WallByID(o.WallID)
	if !ok {
		return Quad{}, false
	}

	seg := wall.Segment()
	dir := seg.Direction()
	normal := seg.Normal()

	along := dir.Scale(o.Width / 2)
	across := normal.Scale(wall.Thickness / 2)

	corners := [4]geometry.Point2D{
		o.Position.Sub(along).Add(across),
		o.Position.Add(along).Add(across),
		o.Position.Add(along).Sub(across),
		o.Position.Sub(along).Sub(across),
	}

	return Quad{
		ID:      o.ID,
		Corners: toClientQuad(s, corners),
		Kind:    o.Kind(),
	}, true
}

// handleDots emits endpoint handles for the selected wall.
func handleDots(s *sketch.State, dragged string, draggedStart, draggedEnd geometry.Point2D) []HandleDot {
	id := s.SelectedID()
	if id == "" {
		return nil
	}
	w, ok := s.Plan().WallByID(id)
	if !ok {
		return nil
	}
	start, end := w.Start, w.End
	if id == dragged {
		start, end = draggedStart, draggedEnd
	}
	return []HandleDot{
		{Center: toClient(s, start)},
		{Center: toClient(s, end)},
	}
}

// addPreviews emits primitives for the in-progress gesture.
func addPreviews(s *sketch.State, scene *Scene) {
	switch g := s.Gesture().(type) {
	case sketch.DrawingWall:
		seg := geometry.NewSegment(g.Start, g.Current)
		if seg.Length() == 0 {
			return
		}
		q := Quad{
			Corners: toClientQuad(s, seg.Offset(s.Defaults().WallThickness/2)),
			Kind:    plan.KindWall,
		}
		scene.PreviewWall = &q

	case sketch.DrawingMeasurement:
		length := g.Start.Distance(g.Current)
		if length == 0 {
			return
		}
		m := MeasureLine{
			Start: toClient(s, g.Start),
			End:   toClient(s, g.Current),
			Label: s.Converter().FormatMeasurement(length),
		}
		scene.PreviewMeasure = &m
	}
}

// gridLines generates vertical and horizontal grid lines covering the
// viewport, aligned to model-space grid intersections.
func gridLines(s *sketch.State, width, height float64) []Line {
	grid := s.GridPixels() * s.Zoom()
	if grid < 4 {
		return nil // too dense to be useful
	}

	offsetX := mod(s.Pan().X*s.Zoom(), grid)
	offsetY := mod(s.Pan().Y*s.Zoom(), grid)

	var lines []Line
	for x := offsetX; x <= width; x += grid {
		lines = append(lines, Line{
			Start: geometry.Point2D{X: x, Y: 0},
			End:   geometry.Point2D{X: x, Y: height},
		})
	}
	for y := offsetY; y <= height; y += grid {
		lines = append(lines, Line{
			Start: geometry.Point2D{X: 0, Y: y},
			End:   geometry.Point2D{X: width, Y: y},
		})
	}
	return lines
}

func mod(a, b float64) float64 {
	m := a - b*float64(int(a/b))
	if m < 0 {
		m += b
	}
	return m
}
