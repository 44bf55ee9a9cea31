// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDense_Shape covers valid and invalid shapes.
func TestNewDense_Shape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"1x1", 1, 1, nil},
		{"3x5", 3, 5, nil},
		{"zero rows", 0, 3, matrix.ErrInvalidDimensions},
		{"zero cols", 3, 0, matrix.ErrInvalidDimensions},
		{"negative", -1, 2, matrix.ErrInvalidDimensions},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			m.Do(func(_, _ int, v float64) bool {
				require.Zero(t, v)
				return true
			})
		})
	}
}

// TestDense_AtSetBounds checks that accessors never panic on bad indices.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err = m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At%v", ij)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange, "Set%v", ij)
	}
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "alias stays matchable")
	require.Contains(t, err.Error(), "Dense.At(0,3)")
}

// TestDense_NaNPolicy checks the finite-value guard and its opt-out.
func TestDense_NaNPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDenseWithOptions(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))

	// the policy travels with Clone
	c := loose.Clone()
	require.NoError(t, c.Set(0, 0, math.NaN()))
}

// TestDense_RowCloneIndependence: Row and Clone return independent copies.
func TestDense_RowCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = 99
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	v, _ = m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_String renders rows with %g formatting.
func TestDense_String(t *testing.T) {
	m := mustRows(t, [][]float64{{1, -2.5}, {0, 1e7}})
	require.Equal(t, "[1, -2.5]\n[0, 1e+07]\n", m.String())
}

// TestDense_DoApply covers visitor order, early exit and the Apply guard.
func TestDense_DoApply(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{10, 20}, {30, 40}}, got)

	err = m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.NaN()
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// mustRows builds a Dense from literals or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}
