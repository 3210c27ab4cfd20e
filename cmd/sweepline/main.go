package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweepline"
	"github.com/ttacon/chalk"
)

type Count struct {
	Crossings bool     `short:"c" desc:"Print every reported intersection"`
	Files     []string `index:"*" desc:"Segment files"`
}

type Brute struct {
	Index bool     `short:"i" desc:"Only test pairs with overlapping bounding boxes using an R-tree"`
	Files []string `index:"*" desc:"Segment files"`
}

type Check struct {
	Files []string `index:"*" desc:"Segment files"`
}

type Generate struct {
	N      int     `short:"n" default:"1000" desc:"Number of segments"`
	Size   float64 `default:"1000" desc:"Width and height of the square containing the first endpoints"`
	Length float64 `default:"1" desc:"Maximum offset of the second endpoint along each axis, zero for uniform endpoints"`
	Seed   int     `default:"0" desc:"Random seed"`
	Output string  `short:"o" desc:"Output file"`
}

type Cases struct{}

func main() {
	root := argp.NewCmd(&Count{}, "Line segment intersections by plane sweep")
	root.AddCmd(&Brute{}, "brute", "Count intersections by testing all pairs")
	root.AddCmd(&Check{}, "check", "Compare the plane sweep against brute force")
	root.AddCmd(&Generate{}, "generate", "Generate random segments")
	root.AddCmd(&Cases{}, "cases", "List the canonical orientation combinations of two segments")
	root.Parse()
	root.PrintHelp()
}

func warn(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, chalk.Yellow.Color("WARNING: "+fmt.Sprintf(format, args...)))
}

func name(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (cmd *Count) Run() error {
	if len(cmd.Files) == 0 {
		return argp.ShowUsage
	}

	for _, filename := range cmd.Files {
		segments, err := sweepline.ReadSegmentsFile(filename)
		if err != nil {
			return err
		}

		res := sweepline.Sweep(segments)
		fmt.Println(name(filename))
		if cmd.Crossings {
			for _, z := range res.Crossings {
				fmt.Println(" ", z)
			}
		}
		fmt.Println("intersections:", res.Count)
		fmt.Println("time:", res.Elapsed)
		fmt.Println("segments:", res.Segments)
		if 0 < res.Vertical {
			warn("skipped %d vertical segments", res.Vertical)
		}
	}
	return nil
}

func (cmd *Brute) Run() error {
	if len(cmd.Files) == 0 {
		return argp.ShowUsage
	}

	for _, filename := range cmd.Files {
		segments, err := sweepline.ReadSegmentsFile(filename)
		if err != nil {
			return err
		}
		segments, vertical := sweepline.SplitVertical(segments)

		var count int
		t0 := time.Now()
		if cmd.Index {
			if count, err = sweepline.BruteForceIndexed(segments); err != nil {
				return err
			}
		} else {
			count = sweepline.BruteForce(segments)
		}
		elapsed := time.Since(t0)

		fmt.Println(name(filename))
		fmt.Println("intersections:", count)
		fmt.Println("time:", elapsed)
		fmt.Println("segments:", len(segments))
		if 0 < vertical {
			warn("skipped %d vertical segments", vertical)
		}
	}
	return nil
}

func (cmd *Check) Run() error {
	if len(cmd.Files) == 0 {
		return argp.ShowUsage
	}

	diverged := 0
	for _, filename := range cmd.Files {
		segments, err := sweepline.ReadSegmentsFile(filename)
		if err != nil {
			return err
		}

		res := sweepline.Sweep(segments)
		swept, _ := sweepline.SplitVertical(segments)
		count := sweepline.BruteForce(swept)

		fmt.Printf("%s: sweep %d, brute force %d\n", name(filename), res.Count, count)
		if res.Count != count {
			fmt.Fprintln(os.Stderr, chalk.Red.Color(fmt.Sprintf("ERROR: %s: sweep reports %d intersections, brute force finds %d", filename, res.Count, count)))
			diverged++
		}
	}
	if diverged != 0 {
		return fmt.Errorf("sweep diverges from brute force for %d of %d files", diverged, len(cmd.Files))
	}
	return nil
}

func (cmd *Generate) Run() error {
	if cmd.N < 0 {
		return fmt.Errorf("number of segments must not be negative")
	} else if cmd.Size <= 0.0 {
		return fmt.Errorf("size must be positive")
	}

	seed := uint64(cmd.Seed)
	if cmd.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	segments := sweepline.RandomSegments(rng, cmd.N, cmd.Size, cmd.Length)

	if cmd.Output == "" || cmd.Output == "-" {
		return sweepline.WriteSegments(os.Stdout, segments)
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := sweepline.WriteSegments(f, segments); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (cmd *Cases) Run() error {
	for _, c := range sweepline.Combinations() {
		if c.Possible() {
			fmt.Println(c)
		} else {
			fmt.Println(c, chalk.Red.Color("impossible"))
		}
	}
	return nil
}
