package sweepline

import (
	"fmt"
	"time"
)

// Crossing is a reported intersection between the input segments with indices A and B, with A < B.
type Crossing struct {
	Point
	A, B int
}

func (z Crossing) String() string {
	return fmt.Sprintf("#%d×#%d at %v", z.A, z.B, z.Point)
}

// Result holds the outcome of a sweep.
type Result struct {
	Count     int        // number of intersection events, ie. reported intersections
	Crossings []Crossing // reported intersections in sweep order
	Segments  int        // number of swept segments
	Vertical  int        // number of skipped vertical segments
	Events    int        // number of processed events
	Elapsed   time.Duration
}

// SplitVertical returns the segments that can be swept and the number of vertical segments that were left out.
func SplitVertical(segments []Segment) ([]Segment, int) {
	swept := make([]Segment, 0, len(segments))
	for _, s := range segments {
		if !s.Vertical() {
			swept = append(swept, s)
		}
	}
	return swept, len(segments) - len(swept)
}

type segmentPair struct {
	a, b int
}

type sweeper struct {
	queue   Events
	status  *Status
	handled map[segmentPair]bool // prevent testing for intersections more than once
	result  Result
}

// Sweep reports all intersections between the segments using a plane sweep from left to right in O((n+k) log n), with n the number of segments and k the number of intersections. Vertical segments are not supported by the sweep and are skipped, see Result.Vertical. Segments that touch at an endpoint count as intersecting, but touching at the left endpoint of the later segment or many coincident segments may make the count deviate from BruteForce.
func Sweep(segments []Segment) Result {
	// Implementation of the Bentley-Ottmann algorithm, see M. de Berg, et al. "Computational
	// Geometry", Chapter 2, DOI: 10.1007/978-3-540-77974-2
	sw := &sweeper{
		status:  NewStatus(),
		handled: map[segmentPair]bool{},
	}

	items := make([]SweepSegment, 0, len(segments))
	for i, s := range segments {
		if s.Vertical() {
			sw.result.Vertical++
			continue
		}
		items = append(items, SweepSegment{Segment: s, Index: i})
	}
	sw.result.Segments = len(items)

	sw.queue = make(Events, 0, 2*len(items))
	for i := range items {
		sw.queue.AddSegment(&items[i])
	}

	t0 := time.Now()
	sw.queue.Init() // sort from left to right
	for 0 < len(sw.queue) {
		event := sw.queue.Pop()
		sw.result.Events++
		switch event.Kind {
		case StartEvent:
			sw.start(event)
		case EndEvent:
			sw.end(event)
		case IntersectionEvent:
			sw.intersection(event)
		}
	}
	sw.result.Elapsed = time.Since(t0)
	return sw.result
}

func (sw *sweeper) start(event *Event) {
	// add segment to sweep status
	s := event.Segment
	sw.status.X = event.X
	n := sw.status.Insert(s)
	if prev := n.Prev(); prev != nil {
		sw.addIntersection(prev.SweepSegment, s, event.X)
	}
	if next := n.Next(); next != nil {
		sw.addIntersection(s, next.SweepSegment, event.X)
	}
}

func (sw *sweeper) end(event *Event) {
	// remove segment from sweep status
	s := event.Segment
	if !s.InStatus() {
		return
	}
	sw.status.X = event.X

	// Remove moves segments between nodes, keep the segments and not their nodes
	var below, above *SweepSegment
	if prev := s.node.Prev(); prev != nil {
		below = prev.SweepSegment
	}
	if next := s.node.Next(); next != nil {
		above = next.SweepSegment
	}
	sw.status.Remove(s.node)

	if below != nil && above != nil {
		sw.addIntersection(below, above, event.X)
	}
}

func (sw *sweeper) intersection(event *Event) {
	a, b := event.A, event.B
	z := Crossing{event.Point, a.Index, b.Index}
	if z.B < z.A {
		z.A, z.B = z.B, z.A
	}
	sw.result.Count++
	sw.result.Crossings = append(sw.result.Crossings, z)

	if !a.InStatus() || !b.InStatus() {
		// one has ended at the intersection already
		return
	}

	// Swap A and B by reinserting them just right of the intersection, where their order is
	// reversed. This is an approximation: it assumes no other event lies within Epsilon.
	sw.status.Remove(a.node)
	sw.status.Remove(b.node)
	sw.status.X = event.X + Epsilon
	sw.status.Insert(a)
	sw.status.Insert(b)

	lower, upper := a, b
	if 0 < sw.status.Compare(a, b) {
		lower, upper = b, a
	}
	if prev := lower.node.Prev(); prev != nil {
		sw.addIntersection(prev.SweepSegment, lower, event.X)
	}
	if next := upper.node.Next(); next != nil {
		sw.addIntersection(upper, next.SweepSegment, event.X)
	}
}

// addIntersection schedules the intersection of neighbours A and B if they cross to the right of x.
func (sw *sweeper) addIntersection(a, b *SweepSegment, x float64) {
	pair := segmentPair{a.Index, b.Index}
	if pair.b < pair.a {
		pair.a, pair.b = pair.b, pair.a
	}
	if sw.handled[pair] {
		return
	}
	sw.handled[pair] = true

	if !a.Crosses(b.Segment) {
		return
	}
	z := CrossingPoint(a.Segment, b.Segment)
	if z.X <= x {
		return
	}
	sw.queue.Push(&Event{
		X:       z.X,
		Kind:    IntersectionEvent,
		Segment: a,
		Point:   z,
		A:       a,
		B:       b,
	})
}
