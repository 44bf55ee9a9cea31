// SPDX-License-Identifier: MIT

package simplex_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlp/matrix"
	"github.com/katalvlaran/lvlp/simplex"
	"github.com/stretchr/testify/require"
)

// TestNewTableau_Layout checks every entry of the production tableau.
func TestNewTableau_Layout(t *testing.T) {
	tab, err := simplex.NewTableau(production.obj, MustDense(t, production.constr), production.req)
	require.NoError(t, err)

	want := [][]float64{
		{1, -20000, -45000, -85000, 0, 0, 0, 0, 0},
		{0, 10, 15, 10, 1, 0, 0, 0, 720},
		{0, 13, 5, 5, 0, 1, 0, 0, 680},
		{0, 20, 5, 10, 0, 0, 1, 0, 550},
		{0, 0, 0, 1, 0, 0, 0, 1, 7},
	}
	require.Equal(t, 5, tab.Rows())
	require.Equal(t, 9, tab.Cols())
	got, err := matrix.ToRows(tab.Matrix())
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.Equal(t, 0.0, tab.Objective())
	require.Equal(t, []int{0, 4, 5, 6, 7}, tab.Basis())
}

// TestNewTableau_ShapeAndSlackIdentity checks the shape invariant and the
// identity slack block for several problem sizes.
func TestNewTableau_ShapeAndSlackIdentity(t *testing.T) {
	t.Parallel()

	sizes := []struct{ m, n int }{{1, 1}, {2, 3}, {4, 3}, {3, 5}, {6, 2}}
	for _, sz := range sizes {
		rows := make([][]float64, sz.m)
		for i := range rows {
			rows[i] = make([]float64, sz.n)
			for j := range rows[i] {
				rows[i][j] = float64(i+j) + 0.5
			}
		}
		obj := make([]float64, sz.n)
		req := make([]float64, sz.m)
		for j := range obj {
			obj[j] = float64(j + 1)
		}
		for i := range req {
			req[i] = float64(10 * (i + 1))
		}

		tab, err := simplex.NewTableau(obj, MustDense(t, rows), req)
		require.NoError(t, err)
		require.Equal(t, sz.m+1, tab.Rows(), "rows for %dx%d", sz.m, sz.n)
		require.Equal(t, sz.m+sz.n+2, tab.Cols(), "cols for %dx%d", sz.m, sz.n)
		require.Equal(t, sz.m, tab.NumConstraints())
		require.Equal(t, sz.n, tab.NumVars())

		for i := 1; i <= sz.m; i++ {
			for k := 0; k < sz.m; k++ {
				want := 0.0
				if k == i-1 {
					want = 1
				}
				require.Equal(t, want, MustAt(t, tab, i, tab.SlackColumn(k)),
					"slack block (%d,%d) for %dx%d", i, k, sz.m, sz.n)
			}
		}
		require.NoError(t, tab.CheckBasis(simplex.DefaultEpsilon))
	}
}

// TestNewTableau_Errors covers the input contract.
func TestNewTableau_Errors(t *testing.T) {
	t.Parallel()

	nanDense, err := matrix.NewDenseWithOptions(1, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, nanDense.Set(0, 1, math.NaN()))

	threeRows := MustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	tests := []struct {
		name   string
		obj    []float64
		constr matrix.Matrix
		req    []float64
		want   error
	}{
		{"requirements shorter than rows", []float64{1, 1}, threeRows, []float64{1, 2}, simplex.ErrInvalidDimensions},
		{"requirements longer than rows", []float64{1, 1}, threeRows, []float64{1, 2, 3, 4}, simplex.ErrInvalidDimensions},
		{"objective shorter than cols", []float64{1}, threeRows, []float64{1, 2, 3}, simplex.ErrInvalidDimensions},
		{"nil objective", nil, threeRows, []float64{1, 2, 3}, simplex.ErrInvalidDimensions},
		{"nil constraints", []float64{1, 1}, nil, []float64{1}, simplex.ErrInvalidDimensions},
		{"typed nil constraints", []float64{1, 1}, (*matrix.Dense)(nil), []float64{1}, simplex.ErrInvalidDimensions},
		{"NaN constraint", []float64{1, 1}, nanDense, []float64{1}, simplex.ErrNonFinite},
		{"Inf objective", []float64{math.Inf(1), 1}, threeRows, []float64{1, 2, 3}, simplex.ErrNonFinite},
		{"NaN requirement", []float64{1, 1}, threeRows, []float64{1, math.NaN(), 3}, simplex.ErrNonFinite},
		{"negative requirement", []float64{1, 1}, threeRows, []float64{1, -2, 3}, simplex.ErrNegativeRequirement},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tab, err := simplex.NewTableau(tc.obj, tc.constr, tc.req)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, tab)
		})
	}
}

// TestTableau_ReadOnlyViews ensures Matrix and Clone do not alias the tableau.
func TestTableau_ReadOnlyViews(t *testing.T) {
	tab, err := simplex.NewTableau(twoVar.obj, MustDense(t, twoVar.constr), twoVar.req)
	require.NoError(t, err)

	m := tab.Matrix()
	require.NoError(t, m.Set(1, 1, 99))
	require.Equal(t, 2.0, MustAt(t, tab, 1, 1))

	c := tab.Clone()
	require.NoError(t, simplex.Reduce(c, simplex.Pivot{Column: 1, Row: 2}))
	require.Equal(t, -7.0, MustAt(t, tab, 0, 1), "original untouched by Reduce on clone")
	require.Equal(t, []int{0, 3, 4}, tab.Basis())
	require.Equal(t, []int{0, 3, 1}, c.Basis())

	b := tab.Basis()
	b[1] = 42
	require.Equal(t, []int{0, 3, 4}, tab.Basis())

	_, err = tab.At(3, 0)
	require.ErrorIs(t, err, simplex.ErrInvalidDimensions)
	_, err = tab.At(0, -1)
	require.ErrorIs(t, err, simplex.ErrInvalidDimensions)
}

// TestTableau_String renders the initial tableau of the two-variable problem.
func TestTableau_String(t *testing.T) {
	tab, err := simplex.NewTableau(twoVar.obj, MustDense(t, twoVar.constr), twoVar.req)
	require.NoError(t, err)

	want := "[1, -7, -5, 0, 0, 0]\n" +
		"[0, 2, 3, 1, 0, 90]\n" +
		"[0, 3, 2, 0, 1, 120]\n"
	require.Equal(t, want, tab.String())
}
