// SPDX-License-Identifier: MIT
// Package simplex_test contains shared fixtures for the simplex tests.
//
// Purpose:
//   • Provide the worked problems used across builder/selector/reducer/driver tests.
//   • Keep all data finite and well-formed unless a test is about bad input.

package simplex_test

import (
	"testing"

	"github.com/katalvlaran/lvlp/matrix"
	"github.com/stretchr/testify/require"
)

// lp bundles one problem in the solver's input form.
type lp struct {
	obj    []float64
	constr [][]float64
	req    []float64
}

// Worked problem 1: production mix, optimum 2,545,000 at (0, 130/3, 7).
var production = lp{
	obj: []float64{20_000, 45_000, 85_000},
	constr: [][]float64{
		{10, 15, 10},
		{13, 5, 5},
		{20, 5, 10},
		{0, 0, 1},
	},
	req: []float64{720, 680, 550, 7},
}

// Worked problem 2: two variables, optimum 282 at (36, 6).
var twoVar = lp{
	obj:    []float64{7, 5},
	constr: [][]float64{{2, 3}, {3, 2}},
	req:    []float64{90, 120},
}

// Beale's example: Dantzig's rule with first-row tie-breaking cycles with period 6.
var beale = lp{
	obj: []float64{0.75, -150, 0.02, -6},
	constr: [][]float64{
		{0.25, -60, -0.04, 9},
		{0.5, -90, -0.02, 3},
		{0, 0, 1, 0},
	},
	req: []float64{0, 0, 1},
}

// MustDense lifts rows into a *matrix.Dense or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads a tableau entry or fails the test.
func MustAt(t testing.TB, tab interface {
	At(i, j int) (float64, error)
}, i, j int) float64 {
	t.Helper()
	v, err := tab.At(i, j)
	require.NoError(t, err)

	return v
}
