// SPDX-License-Identifier: MIT

package simplex_test

import (
	"testing"

	"github.com/katalvlaran/lvlp/simplex"
	"github.com/stretchr/testify/require"
)

// TestNextPivot covers the entering/leaving rules on fresh tableaux.
func TestNextPivot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    lp
		want simplex.Step
	}{
		{
			name: "production: most negative column, tightest row",
			p:    production,
			want: simplex.Step{Kind: simplex.KindPivot, Pivot: simplex.Pivot{Column: 3, Row: 4}},
		},
		{
			name: "two variables: ratio 40 beats 45",
			p:    twoVar,
			want: simplex.Step{Kind: simplex.KindPivot, Pivot: simplex.Pivot{Column: 1, Row: 2}},
		},
		{
			name: "entering tie goes to the first column, leaving tie to the first row",
			p:    lp{obj: []float64{5, 5}, constr: [][]float64{{1, 1}, {1, 1}}, req: []float64{4, 4}},
			want: simplex.Step{Kind: simplex.KindPivot, Pivot: simplex.Pivot{Column: 1, Row: 1}},
		},
		{
			name: "zero coefficient row is not a candidate",
			p:    lp{obj: []float64{1, 1}, constr: [][]float64{{0, 1}, {2, 0}}, req: []float64{3, 8}},
			want: simplex.Step{Kind: simplex.KindPivot, Pivot: simplex.Pivot{Column: 1, Row: 2}},
		},
		{
			name: "negative coefficient with zero requirement is not a candidate",
			p:    lp{obj: []float64{1}, constr: [][]float64{{-1}, {1}}, req: []float64{0, 5}},
			want: simplex.Step{Kind: simplex.KindPivot, Pivot: simplex.Pivot{Column: 1, Row: 2}},
		},
		{
			name: "degenerate zero ratio still wins",
			p:    lp{obj: []float64{1}, constr: [][]float64{{1}, {1}}, req: []float64{3, 0}},
			want: simplex.Step{Kind: simplex.KindPivot, Pivot: simplex.Pivot{Column: 1, Row: 2}},
		},
		{
			name: "non-positive objective is optimal",
			p:    lp{obj: []float64{-1, 0}, constr: [][]float64{{1, 1}}, req: []float64{4}},
			want: simplex.Step{Kind: simplex.KindOptimal},
		},
		{
			name: "no limiting row is unbounded",
			p:    lp{obj: []float64{1}, constr: [][]float64{{-1}}, req: []float64{5}},
			want: simplex.Step{Kind: simplex.KindUnbounded, Pivot: simplex.Pivot{Column: 1}},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tab, err := simplex.NewTableau(tc.p.obj, MustDense(t, tc.p.constr), tc.p.req)
			require.NoError(t, err)

			got, err := simplex.NextPivot(tab, simplex.DefaultEpsilon)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestNextPivot_Epsilon shows the tolerance gating the entering rule.
func TestNextPivot_Epsilon(t *testing.T) {
	tab, err := simplex.NewTableau([]float64{1e-6}, MustDense(t, [][]float64{{1}}), []float64{1})
	require.NoError(t, err)

	got, err := simplex.NextPivot(tab, 1e-3)
	require.NoError(t, err)
	require.Equal(t, simplex.KindOptimal, got.Kind)

	got, err = simplex.NextPivot(tab, simplex.DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, simplex.KindPivot, got.Kind)
	require.Equal(t, simplex.Pivot{Column: 1, Row: 1}, got.Pivot)
}

// TestNextPivot_AfterReduce follows the two-variable problem to optimality.
func TestNextPivot_AfterReduce(t *testing.T) {
	tab, err := simplex.NewTableau(twoVar.obj, MustDense(t, twoVar.constr), twoVar.req)
	require.NoError(t, err)

	require.NoError(t, simplex.Reduce(tab, simplex.Pivot{Column: 1, Row: 2}))
	got, err := simplex.NextPivot(tab, simplex.DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, simplex.Step{Kind: simplex.KindPivot, Pivot: simplex.Pivot{Column: 2, Row: 1}}, got)

	require.NoError(t, simplex.Reduce(tab, got.Pivot))
	got, err = simplex.NextPivot(tab, simplex.DefaultEpsilon)
	require.NoError(t, err)
	require.Equal(t, simplex.KindOptimal, got.Kind)
}

func TestNextPivot_NilTableau(t *testing.T) {
	_, err := simplex.NextPivot(nil, simplex.DefaultEpsilon)
	require.ErrorIs(t, err, simplex.ErrNilTableau)
}

func TestStepKind_String(t *testing.T) {
	require.Equal(t, "pivot", simplex.KindPivot.String())
	require.Equal(t, "optimal", simplex.KindOptimal.String())
	require.Equal(t, "unbounded", simplex.KindUnbounded.String())
	require.Equal(t, "StepKind(9)", simplex.StepKind(9).String())
	require.Equal(t, "(3,4)", simplex.Pivot{Column: 3, Row: 4}.String())
}
