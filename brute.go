package sweepline

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// BruteForce returns the number of crossing segment pairs by testing all pairs in O(n^2).
func BruteForce(segments []Segment) int {
	count := 0
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if segments[i].Crosses(segments[j]) {
				count++
			}
		}
	}
	return count
}

// boundsPadding is the relative padding of bounding boxes in the R-tree. The R-tree does not report boxes that only touch and does not accept boxes of zero width or height.
const boundsPadding = 1e-9

type indexedSegment struct {
	Segment
	index int
	rect  rtreego.Rect
}

func (s *indexedSegment) Bounds() rtreego.Rect {
	return s.rect
}

func paddedRect(r Rect) (rtreego.Rect, error) {
	scale := math.Max(1.0, math.Max(math.Max(math.Abs(r.X0), math.Abs(r.X1)), math.Max(math.Abs(r.Y0), math.Abs(r.Y1))))
	pad := boundsPadding * scale
	return rtreego.NewRect(rtreego.Point{r.X0 - pad, r.Y0 - pad}, []float64{r.W() + 2.0*pad, r.H() + 2.0*pad})
}

// BruteForceIndexed returns the same count as BruteForce, but only tests pairs with overlapping bounding boxes as found by an R-tree.
func BruteForceIndexed(segments []Segment) (int, error) {
	items := make([]indexedSegment, len(segments))
	spatials := make([]rtreego.Spatial, len(segments))
	for i, s := range segments {
		rect, err := paddedRect(s.Bounds())
		if err != nil {
			return 0, err
		}
		items[i] = indexedSegment{s, i, rect}
		spatials[i] = &items[i]
	}
	tree := rtreego.NewTree(2, 25, 50, spatials...)

	count := 0
	for i := range items {
		a := &items[i]
		for _, spatial := range tree.SearchIntersect(a.rect) {
			b := spatial.(*indexedSegment)
			if a.index < b.index && a.Crosses(b.Segment) {
				count++
			}
		}
	}
	return count, nil
}
