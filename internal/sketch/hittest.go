package sketch

import (
	"floorsketch/internal/plan"
	"floorsketch/pkg/geometry"
)

// NearestWall returns the wall closest to p within tolerance, along
// with the projection of p onto its centerline. Returns false when no
// wall is within tolerance.
func (s *State) NearestWall(p geometry.Point2D, tolerance float64) (*plan.Wall, geometry.Point2D, bool) {
	var best *plan.Wall
	var bestPoint geometry.Point2D
	bestDist := tolerance

	for _, w := range s.plan.Walls() {
		seg := w.Segment()
		closest := seg.ClosestPoint(p)
		dist := p.Distance(closest)
		if dist <= bestDist {
			best = w
			bestPoint = closest
			bestDist = dist
		}
	}

	if best == nil {
		return nil, geometry.Point2D{}, false
	}
	return best, bestPoint, true
}

// ElementAt returns the id of the topmost element under p, or "" when
// nothing is hit. Walls are tested by point-to-segment distance
// against thickness/2 plus a fixed tolerance; measurements by segment
// distance; openings by distance to their placement position.
func (s *State) ElementAt(p geometry.Point2D) string {
	elements := s.plan.Elements()
	for i := len(elements) - 1; i >= 0; i-- {
		if s.hits(elements[i], p) {
			return elements[i].ElementID()
		}
	}
	return ""
}

func (s *State) hits(e plan.Element, p geometry.Point2D) bool {
	switch el := e.(type) {
	case *plan.Wall:
		return el.Segment().DistanceTo(p) <= el.Thickness/2+HitTolerance
	case *plan.Opening:
		reach := el.Width/2 + HitTolerance
		return p.Distance(el.Position) <= reach
	case *plan.Measurement:
		return el.Segment().DistanceTo(p) <= HitTolerance
	default:
		return false
	}
}

// handleAt returns the endpoint handle of the selected wall under p,
// if any.
func (s *State) handleAt(p geometry.Point2D) (*plan.Wall, Handle, bool) {
	if s.selectedID == "" {
		return nil, 0, false
	}
	w, ok := s.plan.WallByID(s.selectedID)
	if !ok {
		return nil, 0, false
	}
	if p.Distance(w.Start) <= HandleRadius {
		return w, HandleStart, true
	}
	if p.Distance(w.End) <= HandleRadius {
		return w, HandleEnd, true
	}
	return nil, 0, false
}
