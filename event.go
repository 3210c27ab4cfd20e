package sweepline

import (
	"fmt"
	"io"
	"strings"
)

// EventKind is the kind of sweep event.
type EventKind int

// see EventKind
const (
	StartEvent EventKind = iota
	EndEvent
	IntersectionEvent
)

func (k EventKind) String() string {
	switch k {
	case StartEvent:
		return "Start"
	case EndEvent:
		return "End"
	case IntersectionEvent:
		return "Intersection"
	}
	return "EventKind(?)"
}

// Event is a position along the sweep where the sweep status changes. Point, A and B are set only for intersection events.
type Event struct {
	X       float64
	Kind    EventKind
	Segment *SweepSegment

	Point Point
	A, B  *SweepSegment
}

func (e *Event) String() string {
	if e.Kind == IntersectionEvent {
		return fmt.Sprintf("%v@%g %v %v×%v", e.Kind, e.X, e.Point, e.A, e.B)
	}
	return fmt.Sprintf("%v@%g %v", e.Kind, e.X, e.Segment)
}

// Events is a heap priority queue of sweep events, ordered by X only. The order of events at equal X is unspecified.
type Events []*Event

func (q Events) Less(i, j int) bool {
	return q[i].X < q[j].X
}

func (q Events) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

// AddSegment appends the start and end events of a segment. Call Init afterwards.
func (q *Events) AddSegment(s *SweepSegment) {
	*q = append(*q,
		&Event{X: s.Left().X, Kind: StartEvent, Segment: s},
		&Event{X: s.Right().X, Kind: EndEvent, Segment: s},
	)
}

// Init establishes the heap ordering.
func (q Events) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *Events) Push(item *Event) {
	*q = append(*q, item)
	q.up(len(*q) - 1)
}

// Pop removes and returns the event with the smallest X.
func (q *Events) Pop() *Event {
	n := len(*q) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	(*q)[n] = nil // help the GC
	*q = (*q)[:n]
	return item
}

// up moves the event at j towards the root while it is smaller than its parent.
func (q Events) up(j int) {
	for 0 < j {
		i := (j - 1) / 2 // parent
		if !q.Less(j, i) {
			return
		}
		q.Swap(i, j)
		j = i
	}
}

// down moves the event at i towards the leaves while it is larger than one of its children, for a heap of length n.
func (q Events) down(i, n int) {
	for {
		j := i
		if l := 2*i + 1; l < n && q.Less(l, j) {
			j = l
		}
		if r := 2*i + 2; r < n && q.Less(r, j) {
			j = r
		}
		if j == i {
			return
		}
		q.Swap(i, j)
		i = j
	}
}

// Print writes the events in the order they would be popped.
func (q Events) Print(w io.Writer) {
	q2 := make(Events, len(q))
	copy(q2, q)
	for i := 0; 0 < len(q2); i++ {
		fmt.Fprintln(w, i, q2.Pop())
	}
}

func (q Events) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
