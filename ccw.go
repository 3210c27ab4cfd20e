package sweepline

import "strings"

// Orientation is the side of a directed line PQ on which a point R lies.
type Orientation int

// see Orientation
const (
	Left   Orientation = -1
	Middle Orientation = 0 // collinear
	Right  Orientation = 1
)

// Orientations in ascending order.
var orientations = [3]Orientation{Left, Middle, Right}

func (o Orientation) String() string {
	switch o {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "Orientation(?)"
}

// det returns twice the signed area of the triangle PQR.
func det(p, q, r Point) float64 {
	return p.X*q.Y - p.Y*q.X + q.X*r.Y - q.Y*r.X + p.Y*r.X - p.X*r.Y
}

// Ccw returns the orientation of R with respect to the directed line PQ. Values within Epsilon of zero are collinear (Middle). This is the only side test used by the package, so that crossing and touching decisions always agree.
func Ccw(p, q, r Point) Orientation {
	d := det(p, q, r)
	if d < -Epsilon {
		return Left
	} else if d < Epsilon {
		return Middle
	}
	return Right
}

////////////////////////////////////////////////////////////////

// Combination holds the orientations of two segments A and B relative to each other: B.P1 and B.P2 against A, then A.P1 and A.P2 against B.
type Combination [4]Orientation

// Orientations returns the orientation combination of segments A and B.
func Orientations(a, b Segment) Combination {
	return Combination{
		Ccw(a.P1, a.P2, b.P1),
		Ccw(a.P1, a.P2, b.P2),
		Ccw(b.P1, b.P2, a.P1),
		Ccw(b.P1, b.P2, a.P2),
	}
}

// Canonical returns the representative of the combination under reversal of either segment, reflection and swapping both segments.
func (c Combination) Canonical() Combination {
	c[0], c[1] = canonicalPair(c[0], c[1])
	c[2], c[3] = canonicalPair(c[2], c[3])
	if c[2] < c[0] || c[0] == c[2] && c[3] < c[1] {
		return Combination{c[2], c[3], c[0], c[1]}
	}
	return c
}

func canonicalPair(a, b Orientation) (Orientation, Orientation) {
	if b < a {
		a, b = b, a // reverse segment
	}

	// mirror to the left
	if a == Right {
		return Left, Left
	} else if a == Middle && b == Right {
		return Left, Middle
	}
	return a, b
}

// Possible returns false for the canonical combinations that two straight segments cannot produce. Both impossible cases require one segment to lie on the other's line while the other does not.
func (c Combination) Possible() bool {
	c = c.Canonical()
	return c != Combination{Left, Middle, Middle, Middle} && c != Combination{Left, Right, Middle, Middle}
}

func (c Combination) String() string {
	sb := strings.Builder{}
	sb.WriteByte('{')
	for i, o := range c {
		if i != 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(o.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Combinations returns all distinct canonical combinations.
func Combinations() []Combination {
	cs := []Combination{}
	for _, a := range orientations {
		for _, b := range orientations {
			for _, c := range orientations {
				for _, d := range orientations {
					canonical := Combination{a, b, c, d}.Canonical()
					unique := true
					for _, prev := range cs {
						if prev == canonical {
							unique = false
							break
						}
					}
					if unique {
						cs = append(cs, canonical)
					}
				}
			}
		}
	}
	return cs
}
