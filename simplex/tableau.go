// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlp/matrix"
)

// Tableau is the dense simplex tableau of a problem with n decision
// variables and m "≤" constraints. Layout, (m+1) × (m+n+2):
//
//	col:    0   1 .. n     n+1 .. n+m    n+m+1
//	row 0:  1   -c_1..-c_n  0 .. 0        z
//	row i:  0   a_i1..a_in  e_i (slack)   b_i
//
// Shape and column partitioning never change after NewTableau; only entry
// values mutate, and only through Reduce.
type Tableau struct {
	data           *matrix.Dense
	numVars        int
	numConstraints int
	basis          []int // basis[i] = basic column owned by row i; basis[0] = 0
}

// NewTableau builds the initial augmented tableau.
//
// Contract:
//   - len(obj) == constr.Cols() == n > 0; len(req) == constr.Rows() == m > 0.
//   - All inputs finite; every requirement ≥ 0 (all-slack basis is feasible).
//
// After NewTableau the slack block (rows 1..m, columns n+1..n+m) is exactly
// the identity and the slack variables form the basis.
//
// Errors: ErrInvalidDimensions, ErrNonFinite, ErrNegativeRequirement.
// Complexity: O(m·(n+m)).
func NewTableau(obj []float64, constr matrix.Matrix, req []float64) (*Tableau, error) {
	// Stage 1: shape.
	if err := matrix.ValidateNotNil(constr); err != nil {
		return nil, fmt.Errorf("NewTableau: constraints: %w", ErrInvalidDimensions)
	}
	m, n := constr.Rows(), constr.Cols()
	if m <= 0 || n <= 0 {
		return nil, fmt.Errorf("NewTableau: empty constraint matrix %dx%d: %w", m, n, ErrInvalidDimensions)
	}
	if err := matrix.ValidateVecLen(obj, n); err != nil {
		return nil, fmt.Errorf("NewTableau: %d objective coefficients for %d constraint columns: %w",
			len(obj), n, ErrInvalidDimensions)
	}
	if err := matrix.ValidateVecLen(req, m); err != nil {
		return nil, fmt.Errorf("NewTableau: %d requirements for %d constraint rows: %w",
			len(req), m, ErrInvalidDimensions)
	}

	// Stage 2: values.
	if err := matrix.ValidateFiniteVec(obj); err != nil {
		return nil, fmt.Errorf("NewTableau: objective: %w", ErrNonFinite)
	}
	if err := matrix.ValidateFiniteVec(req); err != nil {
		return nil, fmt.Errorf("NewTableau: requirements: %w", ErrNonFinite)
	}
	if err := matrix.ValidateFinite(constr); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("NewTableau: constraints: %w", ErrNonFinite)
		}
		return nil, fmt.Errorf("NewTableau: constraints: %w", err)
	}
	for i, b := range req {
		if b < 0 {
			return nil, fmt.Errorf("NewTableau: requirement %d is %g: %w", i, b, ErrNegativeRequirement)
		}
	}

	// Stage 3: populate.
	d, err := matrix.NewDense(m+1, n+m+2)
	if err != nil {
		return nil, fmt.Errorf("NewTableau: %w", ErrInvalidDimensions)
	}
	t := &Tableau{data: d, numVars: n, numConstraints: m, basis: make([]int, m+1)}
	rhs := t.rhsColumn()

	if err = d.Set(0, 0, 1); err != nil {
		return nil, t.wrap(err)
	}
	for j, c := range obj {
		if err = d.Set(0, j+1, -c); err != nil {
			return nil, t.wrap(err)
		}
	}

	var v float64
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if v, err = constr.At(i-1, j-1); err != nil {
				return nil, t.wrap(err)
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, t.wrap(err)
			}
		}
		if err = d.Set(i, n+i, 1); err != nil {
			return nil, t.wrap(err)
		}
		if err = d.Set(i, rhs, req[i-1]); err != nil {
			return nil, t.wrap(err)
		}
		t.basis[i] = n + i
	}

	return t, nil
}

// wrap maps a matrix-level failure onto the package sentinels.
func (t *Tableau) wrap(err error) error {
	if errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("tableau: %w: %w", ErrNonFinite, err)
	}

	return fmt.Errorf("tableau: %w: %w", ErrInvalidDimensions, err)
}

// Rows returns numConstraints+1.
func (t *Tableau) Rows() int { return t.data.Rows() }

// Cols returns numVars+numConstraints+2.
func (t *Tableau) Cols() int { return t.data.Cols() }

// NumVars returns the number of decision variables n.
func (t *Tableau) NumVars() int { return t.numVars }

// NumConstraints returns the number of constraints m.
func (t *Tableau) NumConstraints() int { return t.numConstraints }

// rhsColumn is the index of the requirement column.
func (t *Tableau) rhsColumn() int { return t.numVars + t.numConstraints + 1 }

// SlackColumn returns the column of constraint i's slack variable (i is 0-based).
func (t *Tableau) SlackColumn(i int) int { return t.numVars + 1 + i }

// At reads entry (i,j). Errors: ErrInvalidDimensions for out-of-range coordinates.
func (t *Tableau) At(i, j int) (float64, error) {
	v, err := t.data.At(i, j)
	if err != nil {
		return 0, t.wrap(err)
	}

	return v, nil
}

// Objective returns the running objective value (row 0, last column).
// At termination with StatusOptimal it is the optimum.
func (t *Tableau) Objective() float64 {
	v, _ := t.data.At(0, t.rhsColumn()) // in range by construction

	return v
}

// Basis returns a copy of the tracked basis: element i (i ≥ 1) is the column
// of the basic variable owned by row i. Element 0 is the normalizer column 0.
func (t *Tableau) Basis() []int {
	out := make([]int, len(t.basis))
	copy(out, t.basis)

	return out
}

// Matrix returns an independent copy of the tableau entries.
func (t *Tableau) Matrix() *matrix.Dense {
	return t.data.Clone().(*matrix.Dense)
}

// Clone returns an independent copy of the tableau, basis included.
func (t *Tableau) Clone() *Tableau {
	b := make([]int, len(t.basis))
	copy(b, t.basis)

	return &Tableau{
		data:           t.Matrix(),
		numVars:        t.numVars,
		numConstraints: t.numConstraints,
		basis:          b,
	}
}

// String renders the tableau row by row.
func (t *Tableau) String() string { return t.data.String() }

// CheckBasis verifies that every tracked basic column is a (scaled) unit
// vector: non-zero only in its owning row, within eps.
// Errors: ErrBasisCorrupted naming the first offending column.
func (t *Tableau) CheckBasis(eps float64) error {
	for i := 1; i < len(t.basis); i++ {
		row, ok, err := matrix.SingleNonZeroRow(t.data, t.basis[i], matrix.WithEpsilon(eps))
		if err != nil {
			return t.wrap(err)
		}
		if !ok || row != i {
			return fmt.Errorf("CheckBasis: column %d owned by row %d: %w", t.basis[i], i, ErrBasisCorrupted)
		}
	}

	return nil
}

// basicValue returns RHS[row]/T[row][col]: the pivot row is never rescaled,
// so the basic entry is divided out here.
func (t *Tableau) basicValue(row, col int) float64 {
	a, _ := t.data.At(row, col)
	b, _ := t.data.At(row, t.rhsColumn())
	if a == 0 || math.IsNaN(a) {
		return 0
	}

	return b / a
}
