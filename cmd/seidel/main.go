// Command seidel is the CLI front end for the triangulator: a benchmark
// mode that loads a .poly file and repeatedly triangulates it, and a root
// command that would otherwise launch the interactive 2D editor/viewer,
// which is out of scope for this module.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/osuushi/seidel/engine"
	"github.com/osuushi/seidel/polyfile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var bench bool

	root := &cobra.Command{
		Use:           "seidel [-b <polyfile> <iterations>]",
		Short:         "Triangulate simple polygons with Seidel's algorithm",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !bench {
				return errors.New("the interactive polygon editor/viewer is out of scope for this module; run with -b <polyfile> <iterations>")
			}
			if len(args) != 2 {
				return errors.Errorf("-b requires exactly 2 arguments (<polyfile> <iterations>), got %d", len(args))
			}
			return runBenchmark(stdout, args[0], args[1])
		},
	}
	root.Flags().BoolVarP(&bench, "bench", "b", false, "run the benchmark mode")
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return -1
	}
	return 0
}

func runBenchmark(out io.Writer, polyPath, iterationsArg string) error {
	iterations, err := strconv.Atoi(iterationsArg)
	if err != nil || iterations <= 0 {
		return errors.Errorf("invalid iteration count %q", iterationsArg)
	}

	f, err := os.Open(polyPath)
	if err != nil {
		return errors.Wrapf(err, "opening %s", polyPath)
	}
	defer f.Close()

	outlines, err := polyfile.ReadPoly(f)
	if err != nil {
		return errors.Wrapf(err, "loading %s", polyPath)
	}

	numPoints := 0
	for _, o := range outlines {
		numPoints += len(o)
	}

	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := time.Now()
		t := engine.New(outlines)
		if !t.IsSimplePolygon() {
			return errors.Errorf("%s is not a valid simple polygon", polyPath)
		}
		if !t.BuildTrapezoidTree(nil) {
			return errors.New("internal error building trapezoid tree")
		}
		if _, ok := t.Triangulate(nil); !ok {
			return errors.New("internal error triangulating")
		}
		total += time.Since(start)
	}

	avg := total / time.Duration(iterations)
	fmt.Fprintf(out, "outlines: %d\n", len(outlines))
	fmt.Fprintf(out, "points: %d\n", numPoints)
	fmt.Fprintf(out, "iterations: %d\n", iterations)
	fmt.Fprintf(out, "total: %s\n", total)
	fmt.Fprintf(out, "average: %s\n", avg)
	return nil
}
