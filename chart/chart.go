// SPDX-License-Identifier: MIT

// Package chart draws solver diagnostics with gonum/plot.
package chart

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlp/simplex"
)

// Default image size used by the CLI.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// ErrNoResult is returned when there is nothing to plot.
var ErrNoResult = errors.New("chart: nil result")

// ObjectiveTrajectory plots the objective value against the pivot number:
// point 0 is the initial tableau, point k the value after pivot k.
func ObjectiveTrajectory(res *simplex.Result, title string) (*plot.Plot, error) {
	if res == nil {
		return nil, ErrNoResult
	}

	traj := res.Trajectory()
	pts := make(plotter.XYs, len(traj))
	for k, z := range traj {
		pts[k].X = float64(k)
		pts[k].Y = z
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "pivot"
	p.Y.Label.Text = "objective"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}
	p.Add(line, points)
	p.Legend.Add(res.Status.String(), line, points)
	p.Legend.Top = false

	return p, nil
}

// SaveObjectiveTrajectory renders ObjectiveTrajectory to path. The format
// follows the file extension (.png, .svg, .pdf, ...).
func SaveObjectiveTrajectory(res *simplex.Result, title, path string, width, height vg.Length) error {
	p, err := ObjectiveTrajectory(res, title)
	if err != nil {
		return err
	}
	if err = p.Save(width, height, path); err != nil {
		return fmt.Errorf("chart: save %s: %w", path, err)
	}

	return nil
}
