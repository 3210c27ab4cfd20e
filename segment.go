package sweepline

import (
	"fmt"
	"math"
)

// Segment is a straight line segment between P1 and P2. The line through the segment satisfies Normal()·X = Offset(), where the unit normal points away from the origin. Segments are immutable, use NewSegment to create one.
type Segment struct {
	P1, P2 Point

	n Point   // outward unit normal
	a float64 // offset along n, never negative
}

// NewSegment returns the segment from P1 to P2.
func NewSegment(p1, p2 Point) Segment {
	n := p2.Sub(p1).Rot90CW().Unit() // zero for zero-length segments
	a := n.Dot(p1)
	if a < 0.0 {
		n, a = n.Neg(), -a
	}
	return Segment{
		P1: p1,
		P2: p2,
		n:  n,
		a:  a,
	}
}

// Normal returns the unit normal of the segment's line that points away from the origin. It is zero for a zero-length segment.
func (s Segment) Normal() Point {
	return s.n
}

// Offset returns the distance of the segment's line to the origin.
func (s Segment) Offset() float64 {
	return s.a
}

// Bounds returns the axis-aligned bounding box.
func (s Segment) Bounds() Rect {
	return RectFromPoints(s.P1, s.P2)
}

// Left returns the endpoint with the smallest x-coordinate, or P1 if both are equal.
func (s Segment) Left() Point {
	if s.P2.X < s.P1.X {
		return s.P2
	}
	return s.P1
}

// Right returns the endpoint with the largest x-coordinate, or P2 if both are equal.
func (s Segment) Right() Point {
	if s.P2.X < s.P1.X {
		return s.P1
	}
	return s.P2
}

// Vertical returns true if both endpoints have the same x-coordinate within Epsilon.
func (s Segment) Vertical() bool {
	return Equal(s.P1.X, s.P2.X)
}

// Degenerate returns true if the segment is a single point.
func (s Segment) Degenerate() bool {
	return s.P1 == s.P2
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P2.Sub(s.P1).Length()
}

// Slope returns dy/dx, or +Inf for vertical segments.
func (s Segment) Slope() float64 {
	if s.Vertical() {
		return math.Inf(1)
	}
	return (s.P2.Y - s.P1.Y) / (s.P2.X - s.P1.X)
}

// YAt returns the y-coordinate of the segment's line at x. Vertical segments return the y-coordinate of P1.
func (s Segment) YAt(x float64) float64 {
	dx := s.P2.X - s.P1.X
	if math.Abs(dx) < Epsilon {
		return s.P1.Y
	}
	return s.P1.Y + (x-s.P1.X)/dx*(s.P2.Y-s.P1.Y)
}

// Crosses returns true if the segments intersect, either properly or by touching at an endpoint or overlapping collinearly. It is symmetric.
func (s Segment) Crosses(o Segment) bool {
	a := Ccw(o.P1, o.P2, s.P1)
	b := Ccw(o.P1, o.P2, s.P2)
	c := Ccw(s.P1, s.P2, o.P1)
	d := Ccw(s.P1, s.P2, o.P2)

	h1, h2 := a*b, c*d
	if h1 == 1 || h2 == 1 {
		// one segment lies strictly to one side of the other's line
		return false
	} else if h1 == -1 && h2 == -1 {
		// both segments straddle each other's line
		return true
	}

	// at least one endpoint is collinear with the other segment, it touches when it is also within its bounds
	return a == Middle && o.Bounds().Contains(s.P1) ||
		b == Middle && o.Bounds().Contains(s.P2) ||
		c == Middle && s.Bounds().Contains(o.P1) ||
		d == Middle && s.Bounds().Contains(o.P2)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.P1, s.P2)
}

// CrossingPoint returns the intersection point of two crossing segments. The result is interpolated along A by the ratio of the distances of A's endpoints to B's line and is inaccurate for nearly parallel segments. Collinear segments return an endpoint of their overlap.
func CrossingPoint(a, b Segment) Point {
	if a.Degenerate() {
		return a.P1
	} else if b.Degenerate() {
		return b.P1
	}

	lb := b.Length()
	d1 := math.Abs(det(b.P1, b.P2, a.P1)) / lb
	d2 := math.Abs(det(b.P1, b.P2, a.P2)) / lb
	if d1+d2 == 0.0 {
		// collinear
		if rb := b.Bounds(); rb.Contains(a.P1) {
			return a.P1
		} else if rb.Contains(a.P2) {
			return a.P2
		} else if ra := a.Bounds(); ra.Contains(b.P1) {
			return b.P1
		} else if ra.Contains(b.P2) {
			return b.P2
		}
		return a.P1
	}
	return a.P1.Interpolate(a.P2, d1/(d1+d2))
}
