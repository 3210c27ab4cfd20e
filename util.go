package sweepline

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance used for orientation decisions and for detecting vertical segments.
const Epsilon = 1e-12

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Interval returns true if f is in closed interval [lower,upper].
func Interval(f, lower, upper float64) bool {
	return lower <= f && f <= upper
}

// equalScaled returns true if a and b are equal relative to their magnitude.
func equalScaled(a, b float64) bool {
	scale := math.Max(1.0, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= 1e3*Epsilon*scale
}

////////////////////////////////////////////////////////////////

// Point is a position in the plane, or the displacement between two positions.
type Point struct {
	X, Y float64
}

// Neg flips the direction of displacement P.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add moves P by displacement Q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the displacement from Q to P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Rot90CW turns displacement P a quarter turn clockwise.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Dot returns the projection of P onto Q times the length of Q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the magnitude of displacement P.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns displacement P scaled to length one, the zero displacement has no direction and stays zero.
func (p Point) Unit() Point {
	d := p.Length()
	if d == 0.0 {
		return Point{}
	}
	return Point{p.X / d, p.Y / d}
}

// Interpolate returns the point at fraction t along the way from P to Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned bounding box between (X0,Y0) and (X1,Y1), with X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFromPoints returns the bounding box of P and Q.
func RectFromPoints(p, q Point) Rect {
	return Rect{
		math.Min(p.X, q.X),
		math.Min(p.Y, q.Y),
		math.Max(p.X, q.X),
		math.Max(p.Y, q.Y),
	}
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// Contains returns true if P lies inside or on the boundary of R.
func (r Rect) Contains(p Point) bool {
	return Interval(p.X, r.X0, r.X1) && Interval(p.Y, r.Y0, r.Y1)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.X0, r.Y0, r.X1, r.Y1)
}
