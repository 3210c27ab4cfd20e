package sweepline

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// ReadSegments parses segments from r, one segment per line as four whitespace separated numbers "x1 y1 x2 y2". Empty lines are skipped. Any malformed line fails the whole read.
func ReadSegments(r io.Reader) ([]Segment, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	segments := []Segment{}
	var coords [4]float64
	n := 0 // number of values on the current line
	for {
		c := z.Peek(0)
		eof := c == 0 && z.Err() != nil
		if isBlank(c) {
			z.Move(1)
			z.Skip()
			continue
		} else if c == '\n' || eof {
			if n != 0 {
				if n != 4 {
					return nil, parse.NewErrorLexer(z, "expected 4 coordinates per segment, got %d", n)
				}
				segments = append(segments, NewSegment(Point{coords[0], coords[1]}, Point{coords[2], coords[3]}))
				n = 0
			}
			if eof {
				if err := z.Err(); err != io.EOF {
					return nil, err
				}
				return segments, nil
			}
			z.Move(1)
			z.Skip()
			continue
		}

		for c := z.Peek(0); !isBlank(c) && c != '\n' && (c != 0 || z.Err() == nil); c = z.Peek(0) {
			z.Move(1)
		}
		num := z.Lexeme()
		f, m := strconv.ParseFloat(num)
		if m != len(num) {
			return nil, parse.NewErrorLexer(z, "bad coordinate: %s", num)
		}
		if n < 4 {
			coords[n] = f
		}
		n++
		z.Skip()
	}
}

// ReadSegmentsFile parses segments from a file, see ReadSegments.
func ReadSegmentsFile(filename string) ([]Segment, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	segments, err := ReadSegments(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return segments, nil
}

// WriteSegments writes segments in the format read by ReadSegments.
func WriteSegments(w io.Writer, segments []Segment) error {
	bw := bufio.NewWriter(w)
	for _, s := range segments {
		if _, err := fmt.Fprintf(bw, "%v %v %v %v\n", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RandomSegments returns n random segments with both endpoints in the square [0,size]x[0,size]. The first endpoint is uniform in the square. The second endpoint is offset by at most length along each axis and reflected at the sides of the square, or is uniform in the square as well when length is not positive.
func RandomSegments(rng *rand.Rand, n int, size, length float64) []Segment {
	reflect := func(f float64) float64 {
		if size <= 0.0 {
			return 0.0
		}
		f = math.Mod(f, 2.0*size)
		if f < 0.0 {
			f += 2.0 * size
		}
		if size < f {
			f = 2.0*size - f
		}
		return f
	}

	segments := make([]Segment, n)
	for i := range segments {
		p1 := Point{rng.Float64() * size, rng.Float64() * size}
		var p2 Point
		if 0.0 < length {
			p2 = p1.Add(Point{(2.0*rng.Float64() - 1.0) * length, (2.0*rng.Float64() - 1.0) * length})
			p2 = Point{reflect(p2.X), reflect(p2.Y)}
		} else {
			p2 = Point{rng.Float64() * size, rng.Float64() * size}
		}
		segments[i] = NewSegment(p1, p2)
	}
	return segments
}
