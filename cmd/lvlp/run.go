// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"

	"github.com/katalvlaran/lvlp/chart"
	"github.com/katalvlaran/lvlp/problem"
	"github.com/katalvlaran/lvlp/simplex"
)

const (
	exitOK          = 0
	exitSolve       = 1
	exitUsage       = 2
	exitOutput      = 3
	exitInterrupted = 130
)

// options holds the parsed command line.
type options struct {
	verbose  bool
	maxIter  int
	eps      float64
	json     bool
	plotPath string
	path     string
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("lvlp", flag.ContinueOnError)
	fs.BoolVar(&o.verbose, "v", false, "trace every pivot and tableau to stderr")
	fs.IntVar(&o.maxIter, "max-iter", 0, "pivot cap (0 = 10·(variables+constraints))")
	fs.Float64Var(&o.eps, "eps", simplex.DefaultEpsilon, "selection tolerance")
	fs.BoolVar(&o.json, "json", false, "print the report as JSON")
	fs.StringVar(&o.plotPath, "plot", "", "write the objective trajectory chart (.png, .svg, .pdf)")
	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintln(out, "  lvlp [options] problem.yaml")
		_, _ = fmt.Fprintln(out, "\nOptions:")
		fs.PrintDefaults()
	}

	return fs
}

// parseArgs parses argv into options. flag.ErrHelp is passed through.
func parseArgs(fs *flag.FlagSet, o *options, argv []string) error {
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one problem file, got %d arguments", fs.NArg())
	}
	if o.maxIter < 0 {
		return fmt.Errorf("-max-iter must be >= 0, got %d", o.maxIter)
	}
	if math.IsNaN(o.eps) || math.IsInf(o.eps, 0) || o.eps < 0 {
		return fmt.Errorf("-eps must be finite and >= 0, got %g", o.eps)
	}
	o.path = fs.Arg(0)

	return nil
}

// run is the whole command behind main; it returns the exit status.
func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "lvlp: ", 0)
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var o options
	fs := newFlagSet(&o)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	if err := parseArgs(fs, &o, argv); err != nil {
		fs.SetOutput(stderr)
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return exitOK
		}
		logger.Print(err)
		fs.Usage()
		return exitUsage
	}

	p, err := problem.LoadFile(o.path)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	opts := []simplex.Option{simplex.WithEpsilon(o.eps), simplex.WithMaxIterations(o.maxIter)}
	if o.verbose {
		opts = append(opts, simplex.WithVerbose(stderr))
	}
	res, solveErr := p.SolveContext(ctx, opts...)
	code := exitStatus(solveErr)
	if res == nil {
		logger.Print(solveErr)
		return code
	}

	rep, err := problem.NewReport(p, res)
	if err != nil {
		logger.Print(err)
		return exitOutput
	}
	if o.json {
		err = rep.WriteJSON(outw)
	} else {
		err = rep.WriteText(outw)
	}
	if err == nil {
		err = outw.Flush()
	}
	if err != nil {
		logger.Print(err)
		return exitOutput
	}

	if o.plotPath != "" {
		title := p.Name
		if title == "" {
			title = o.path
		}
		if err = chart.SaveObjectiveTrajectory(res, title, o.plotPath, chart.DefaultWidth, chart.DefaultHeight); err != nil {
			logger.Print(err)
			return exitOutput
		}
	}
	if solveErr != nil {
		logger.Print(solveErr)
	}

	return code
}

// exitStatus maps a solve error onto the documented exit codes.
func exitStatus(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return exitInterrupted
	case errors.Is(err, simplex.ErrUnbounded), errors.Is(err, simplex.ErrIterationLimit):
		return exitSolve
	default:
		return exitUsage
	}
}
