package geometry

import "math"

// Segment represents a directed line segment between two points.
type Segment struct {
	Start Point2D `json:"start"`
	End   Point2D `json:"end"`
}

// NewSegment creates a new Segment.
func NewSegment(start, end Point2D) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() Point2D {
	return Point2D{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}

// Direction returns the unit direction vector from Start to End.
// Degenerate segments return the zero vector.
func (s Segment) Direction() Point2D {
	d := s.End.Sub(s.Start)
	length := d.Norm()
	if length == 0 {
		return Point2D{}
	}
	return d.Scale(1 / length)
}

// Normal returns the unit vector perpendicular to the segment
// (direction rotated 90 degrees counter-clockwise in screen space).
func (s Segment) Normal() Point2D {
	d := s.Direction()
	return Point2D{X: -d.Y, Y: d.X}
}

// Angle returns the segment angle in radians, measured from the positive X axis.
func (s Segment) Angle() float64 {
	d := s.End.Sub(s.Start)
	return math.Atan2(d.Y, d.X)
}

// Project returns the scalar projection parameter of p onto the segment,
// clamped to [0,1]. 0 maps to Start, 1 maps to End.
func (s Segment) Project(p Point2D) float64 {
	d := s.End.Sub(s.Start)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return 0
	}
	t := p.Sub(s.Start).Dot(d) / lenSq
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// ClosestPoint returns the point on the segment closest to p.
func (s Segment) ClosestPoint(p Point2D) Point2D {
	t := s.Project(p)
	d := s.End.Sub(s.Start)
	return s.Start.Add(d.Scale(t))
}

// DistanceTo returns the Euclidean distance from p to the segment.
func (s Segment) DistanceTo(p Point2D) float64 {
	return p.Distance(s.ClosestPoint(p))
}

// Offset returns the four corners of the quad obtained by offsetting
// the segment by halfWidth on both sides perpendicular to its direction.
// Corners are returned in drawing order (start-left, end-left,
// end-right, start-right).
func (s Segment) Offset(halfWidth float64) [4]Point2D {
	n := s.Normal().Scale(halfWidth)
	return [4]Point2D{
		s.Start.Add(n),
		s.End.Add(n),
		s.End.Sub(n),
		s.Start.Sub(n),
	}
}
