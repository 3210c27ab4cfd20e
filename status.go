package sweepline

import (
	"fmt"
	"strings"
	"sync"
)

// SweepSegment is a segment taking part in the sweep. Inside the sweep status it is ordered by its y-coordinate at the status' sweep position.
type SweepSegment struct {
	Segment
	Index int // index into the input segments

	node *StatusNode // used for fast accessing the status node in O(1) (instead of Find in O(log n))
}

// InStatus returns true if the segment is currently in a sweep status.
func (s *SweepSegment) InStatus() bool {
	return s.node != nil
}

func (s *SweepSegment) String() string {
	return fmt.Sprintf("#%d%v", s.Index, s.Segment)
}

////////////////////////////////////////////////////////////////

// StatusNode is a node of the sweep status tree.
type StatusNode struct {
	parent, left, right *StatusNode
	height              int

	*SweepSegment
}

func height(n *StatusNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *StatusNode) leftmost() *StatusNode {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *StatusNode) rightmost() *StatusNode {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Prev returns the node below, or nil.
func (n *StatusNode) Prev() *StatusNode {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil && n.parent.left == n {
		n = n.parent
	}
	return n.parent
}

// Next returns the node above, or nil.
func (n *StatusNode) Next() *StatusNode {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil && n.parent.right == n {
		n = n.parent
	}
	return n.parent
}

// balance is positive when the right subtree is higher.
func (n *StatusNode) balance() int {
	return height(n.right) - height(n.left)
}

func (n *StatusNode) fixHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *StatusNode) print(sb *strings.Builder, depth int) {
	if n.right != nil {
		n.right.print(sb, depth+1)
	}
	fmt.Fprintf(sb, "%s%v\n", strings.Repeat("  ", depth), n.SweepSegment)
	if n.left != nil {
		n.left.print(sb, depth+1)
	}
}

////////////////////////////////////////////////////////////////

// Status is the sweep line status: the segments currently intersected by the sweep line, ordered bottom to top by their y-coordinate at X. It is an AVL tree whose order depends on X, so segments must be removed and inserted again whenever their relative order changes (ie. at intersections), they are never re-keyed in place.
type Status struct {
	X float64 // sweep position at which segments are compared

	root *StatusNode
	size int
	pool *sync.Pool
}

func NewStatus() *Status {
	return &Status{
		pool: &sync.Pool{New: func() any { return &StatusNode{} }},
	}
}

func (s *Status) newNode(item *SweepSegment) *StatusNode {
	n := s.pool.Get().(*StatusNode)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.SweepSegment = item
	n.SweepSegment.node = n
	return n
}

func (s *Status) returnNode(n *StatusNode) {
	n.SweepSegment.node = nil
	n.SweepSegment = nil // help the GC
	s.pool.Put(n)
}

// Compare returns -1, 0, or 1 if A is below, equal to, or above B at the sweep position. Segments that coincide at the sweep position are ordered as they are just to the right of it, ie. by slope, and identical segments by their index.
func (s *Status) Compare(a, b *SweepSegment) int {
	ya, yb := a.YAt(s.X), b.YAt(s.X)
	if !equalScaled(ya, yb) {
		if ya < yb {
			return -1
		}
		return 1
	}

	if ma, mb := a.Slope(), b.Slope(); ma < mb {
		return -1
	} else if mb < ma {
		return 1
	} else if a.Index < b.Index {
		return -1
	} else if b.Index < a.Index {
		return 1
	}
	return 0
}

// replace puts m at the place of n in the tree, m may be nil.
func (s *Status) replace(n, m *StatusNode) {
	if m != nil {
		m.parent = n.parent
	}
	if n.parent == nil {
		s.root = m
	} else if n.parent.left == n {
		n.parent.left = m
	} else {
		n.parent.right = m
	}
}

// rotateLeft lifts the right child of n above n and returns it.
func (s *Status) rotateLeft(n *StatusNode) *StatusNode {
	r := n.right
	s.replace(n, r)
	if n.right = r.left; n.right != nil {
		n.right.parent = n
	}
	r.left, n.parent = n, r
	n.fixHeight()
	r.fixHeight()
	return r
}

// rotateRight lifts the left child of n above n and returns it.
func (s *Status) rotateRight(n *StatusNode) *StatusNode {
	l := n.left
	s.replace(n, l)
	if n.left = l.right; n.left != nil {
		n.left.parent = n
	}
	l.right, n.parent = n, l
	n.fixHeight()
	l.fixHeight()
	return l
}

// rebalance restores the AVL property from n up to the root after n's subtree changed height by one.
func (s *Status) rebalance(n *StatusNode) {
	for ; n != nil; n = n.parent {
		oheight := n.height
		switch balance := n.balance(); {
		case balance < -2 || 2 < balance:
			panic("sweep status out of balance")
		case balance == -2:
			if 0 < n.left.balance() {
				s.rotateLeft(n.left)
			}
			n = s.rotateRight(n)
		case balance == 2:
			if n.right.balance() < 0 {
				s.rotateRight(n.right)
			}
			n = s.rotateLeft(n)
		default:
			n.fixHeight()
		}
		if n.height == oheight {
			return
		}
	}
}

// Len returns the number of segments in the status.
func (s *Status) Len() int {
	return s.size
}

// First returns the lowest node, or nil.
func (s *Status) First() *StatusNode {
	if s.root == nil {
		return nil
	}
	return s.root.leftmost()
}

// Last returns the highest node, or nil.
func (s *Status) Last() *StatusNode {
	if s.root == nil {
		return nil
	}
	return s.root.rightmost()
}

// Segments returns the segments from bottom to top.
func (s *Status) Segments() []*SweepSegment {
	items := make([]*SweepSegment, 0, s.size)
	for n := s.First(); n != nil; n = n.Next() {
		items = append(items, n.SweepSegment)
	}
	return items
}

// Find returns the node holding item at the current sweep position, or nil.
func (s *Status) Find(item *SweepSegment) *StatusNode {
	n := s.root
	for n != nil {
		if cmp := s.Compare(item, n.SweepSegment); cmp < 0 {
			n = n.left
		} else if 0 < cmp {
			n = n.right
		} else {
			return n
		}
	}
	return nil
}

// Insert adds a segment at its position for the current sweep position and returns its node.
func (s *Status) Insert(item *SweepSegment) *StatusNode {
	var parent *StatusNode
	cmp := 0
	for n := s.root; n != nil; {
		parent = n
		if cmp = s.Compare(item, n.SweepSegment); cmp < 0 {
			n = n.left
		} else if 0 < cmp {
			n = n.right
		} else {
			// equal, replace
			n.SweepSegment.node = nil
			n.SweepSegment = item
			item.node = n
			return n
		}
	}

	n := s.newNode(item)
	n.parent = parent
	if parent == nil {
		s.root = n
	} else if cmp < 0 {
		parent.left = n
	} else {
		parent.right = n
	}
	s.size++
	s.rebalance(parent)
	return n
}

// Remove removes the node from the status. Its segment is no longer InStatus afterwards. Segments of other nodes may move to a different node, the node pointers of their segments stay valid.
func (s *Status) Remove(n *StatusNode) {
	if n.left != nil && n.right != nil {
		// take the place of the successor, which has no left child
		m := n.right.leftmost()
		n.SweepSegment, m.SweepSegment = m.SweepSegment, n.SweepSegment
		n.SweepSegment.node, m.SweepSegment.node = n, m
		n = m
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	parent := n.parent
	s.replace(n, child)
	s.rebalance(parent)
	s.size--
	s.returnNode(n)
}

func (s *Status) String() string {
	if s.root == nil {
		return "nil"
	}
	sb := strings.Builder{}
	s.root.print(&sb, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}
