package sweepline

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestReadSegments(t *testing.T) {
	segments, err := ReadSegments(strings.NewReader("0 0 1 1\n\n  2\t3 4 5 \r\n-1.5 2e3 .5 7"))
	test.Error(t, err)
	test.T(t, len(segments), 3)
	test.T(t, segments[0].P1, Point{0, 0})
	test.T(t, segments[0].P2, Point{1, 1})
	test.T(t, segments[1].P1, Point{2, 3})
	test.T(t, segments[1].P2, Point{4, 5})
	test.T(t, segments[2].P1, Point{-1.5, 2000})
	test.T(t, segments[2].P2, Point{0.5, 7})

	segments, err = ReadSegments(strings.NewReader(""))
	test.Error(t, err)
	test.T(t, len(segments), 0)

	segments, err = ReadSegments(strings.NewReader("\n\n1 2 3 4\n\n"))
	test.Error(t, err)
	test.T(t, len(segments), 1)
}

func TestReadSegmentsErrors(t *testing.T) {
	var tts = []string{
		"0 0 1\n",
		"0 0 1 1 2\n",
		"0 0 x 1\n",
		"0 0 1 1\n0 0",
		"0 0 1,5 1\n",
		"1 2 3 4\n5 6 7 8 9\n",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ReadSegments(strings.NewReader(tt))
			test.That(t, err != nil, "must fail")
		})
	}
}

func TestReadSegmentsFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "segments.txt")
	test.Error(t, os.WriteFile(filename, []byte("0 0 1 1\n1 0 0 1\n"), 0644))

	segments, err := ReadSegmentsFile(filename)
	test.Error(t, err)
	test.T(t, len(segments), 2)
	test.T(t, Sweep(segments).Count, 1)

	_, err = ReadSegmentsFile(filepath.Join(t.TempDir(), "missing.txt"))
	test.That(t, err != nil, "missing file")

	test.Error(t, os.WriteFile(filename, []byte("0 0 1 1\n1 0 0\n"), 0644))
	_, err = ReadSegmentsFile(filename)
	test.That(t, err != nil && strings.HasPrefix(err.Error(), filename), "error names the file")
}

func TestWriteSegments(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, WriteSegments(buf, []Segment{seg(0, 0, 1.5, 2), seg(-1, 1e-3, 3, 4)}))
	test.String(t, buf.String(), "0 0 1.5 2\n-1 0.001 3 4\n")

	rng := rand.New(rand.NewPCG(11, 12))
	segments := RandomSegments(rng, 100, 1000.0, 1.0)
	buf.Reset()
	test.Error(t, WriteSegments(buf, segments))
	segments2, err := ReadSegments(buf)
	test.Error(t, err)
	test.T(t, len(segments2), len(segments))
	for i := range segments {
		test.Float(t, segments2[i].P1.X, segments[i].P1.X)
		test.Float(t, segments2[i].P1.Y, segments[i].P1.Y)
		test.Float(t, segments2[i].P2.X, segments[i].P2.X)
		test.Float(t, segments2[i].P2.Y, segments[i].P2.Y)
	}
}

func TestRandomSegments(t *testing.T) {
	inSquare := func(p Point, size float64) bool {
		return 0.0 <= p.X && p.X <= size && 0.0 <= p.Y && p.Y <= size
	}

	rng := rand.New(rand.NewPCG(13, 14))
	for _, s := range RandomSegments(rng, 1000, 10.0, 0.5) {
		test.That(t, inSquare(s.P1, 10.0), "first endpoint in square")
		test.That(t, inSquare(s.P2, 10.0), "second endpoint in square")
		d := s.P2.Sub(s.P1)
		test.That(t, -0.5 <= d.X && d.X <= 0.5 && -0.5 <= d.Y && d.Y <= 0.5, "second endpoint near the first")
	}

	// offsets larger than the square are reflected back into it
	for _, s := range RandomSegments(rng, 1000, 10.0, 100.0) {
		test.That(t, inSquare(s.P1, 10.0), "first endpoint in square")
		test.That(t, inSquare(s.P2, 10.0), "second endpoint in square")
	}
	for _, s := range RandomSegments(rng, 1000, 10.0, 0.0) {
		test.That(t, inSquare(s.P2, 10.0), "uniform second endpoint in square")
	}
	test.T(t, len(RandomSegments(rng, 0, 10.0, 0.0)), 0)
}
