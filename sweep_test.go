package sweepline

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func TestSweep(t *testing.T) {
	var tts = []struct {
		name      string
		segments  []Segment
		crossings []Crossing
	}{
		{"empty", []Segment{}, []Crossing{}},
		{"single", []Segment{seg(0, 0, 1, 1)}, []Crossing{}},
		{"cross", []Segment{seg(0, 0, 2, 2), seg(0, 2, 2, 0)}, []Crossing{
			{Point{1, 1}, 0, 1},
		}},
		{"reversed", []Segment{seg(2, 2, 0, 0), seg(2, 0, 0, 2)}, []Crossing{
			{Point{1, 1}, 0, 1},
		}},
		{"parallel", []Segment{seg(0, 0, 2, 2), seg(0, 1, 2, 3), seg(1, 0, 3, 2)}, []Crossing{}},
		{"disjoint", []Segment{seg(0, 0, 1, 1), seg(2, 2, 3, 0)}, []Crossing{}},
		{"triangle", []Segment{seg(0, 0, 4, 4), seg(0, 4, 4, 0), seg(0, 1, 4, 2)}, []Crossing{
			{Point{4.0 / 3.0, 4.0 / 3.0}, 0, 2},
			{Point{2, 2}, 0, 1},
			{Point{2.4, 1.6}, 1, 2},
		}},
		{"touching end", []Segment{seg(0, 0, 2, 2), seg(0, 4, 2, 2)}, []Crossing{
			{Point{2, 2}, 0, 1},
		}},
		{"touching interior", []Segment{seg(0, 0, 4, 0), seg(1, 3, 2, 0)}, []Crossing{
			{Point{2, 0}, 0, 1},
		}},
		{"later start", []Segment{seg(0, 0, 10, 10), seg(1, 5, 6, 0), seg(4, 8, 9, 3)}, []Crossing{
			{Point{3, 3}, 0, 1},
			{Point{6, 6}, 0, 2},
		}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			res := Sweep(tt.segments)
			test.T(t, res.Count, len(tt.crossings))
			test.T(t, res.Count, BruteForce(tt.segments))
			test.T(t, res.Segments, len(tt.segments))
			test.T(t, res.Vertical, 0)
			test.T(t, res.Events, 2*len(tt.segments)+len(tt.crossings))
			test.T(t, len(res.Crossings), len(tt.crossings))
			for i, z := range res.Crossings {
				if i < len(tt.crossings) {
					test.T(t, z.A, tt.crossings[i].A)
					test.T(t, z.B, tt.crossings[i].B)
					test.Float(t, z.X, tt.crossings[i].X)
					test.Float(t, z.Y, tt.crossings[i].Y)
				}
			}
		})
	}
}

func TestSweepDegenerate(t *testing.T) {
	// known deviations from BruteForce, reported by the check command
	var tts = []struct {
		name     string
		segments []Segment
		count    int
		brute    int
	}{
		// the crossing of the outer lines is never scheduled, since they are never neighbours
		{"concurrent", []Segment{seg(0, 0, 2, 2), seg(0, 2, 2, 0), seg(0, 1, 2, 1)}, 2, 3},
		// the crossing lies at the current sweep position when the second segment starts
		{"touching left end", []Segment{seg(0, 0, 4, 0), seg(2, 0, 3, 3)}, 0, 1},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			res := Sweep(tt.segments)
			test.T(t, res.Count, tt.count)
			test.T(t, BruteForce(tt.segments), tt.brute)
			test.T(t, res.Events, 2*len(tt.segments)+tt.count)
		})
	}
}

func TestSweepVertical(t *testing.T) {
	segments := []Segment{
		seg(0, 0, 2, 2),
		seg(1, -5, 1, 5),
		seg(0, 2, 2, 0),
		seg(0.5, -5, 0.5+Epsilon/2.0, 5),
	}
	res := Sweep(segments)
	test.T(t, res.Count, 1)
	test.T(t, res.Segments, 2)
	test.T(t, res.Vertical, 2)
	test.T(t, res.Crossings[0].A, 0)
	test.T(t, res.Crossings[0].B, 2)

	swept, vertical := SplitVertical(segments)
	test.T(t, len(swept), 2)
	test.T(t, vertical, 2)
	test.T(t, BruteForce(swept), res.Count)
}

func TestSweepString(t *testing.T) {
	res := Sweep([]Segment{seg(0, 0, 2, 2), seg(0, 2, 2, 0)})
	test.String(t, res.Crossings[0].String(), "#0×#1 at (1,1)")
}

func TestSweepRandom(t *testing.T) {
	var tts = []struct {
		n            int
		size, length float64
	}{
		{1000, 1000.0, 100.0},
		{1000, 1000.0, 10.0},
		{200, 1000.0, 0.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(uint64(i), 42))
			segments := RandomSegments(rng, tt.n, tt.size, tt.length)
			res := Sweep(segments)
			swept, _ := SplitVertical(segments)
			test.T(t, res.Count, BruteForce(swept))
			test.T(t, res.Segments+res.Vertical, tt.n)

			x := math.Inf(-1)
			pairs := map[[2]int]bool{}
			for _, z := range res.Crossings {
				test.That(t, z.A < z.B, "ordered pair")
				test.That(t, !pairs[[2]int{z.A, z.B}], "reported once")
				test.That(t, segments[z.A].Crosses(segments[z.B]), "segments cross")
				test.That(t, x <= z.X, "sweep order")
				pairs[[2]int{z.A, z.B}] = true
				x = z.X
			}
		})
	}
}

func BenchmarkSweep(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))
	segments := RandomSegments(rng, 10000, 1000.0, 10.0)
	b.Run("Sweep", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Sweep(segments)
		}
	})
	b.Run("BruteForce", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BruteForce(segments)
		}
	})
	b.Run("BruteForceIndexed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := BruteForceIndexed(segments); err != nil {
				b.Fatal(err)
			}
		}
	})
}
