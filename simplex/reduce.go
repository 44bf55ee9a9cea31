// SPDX-License-Identifier: MIT

package simplex

import "fmt"

// Reduce applies one Gauss–Jordan elimination step around p, in place.
//
// For every row i ≠ p.Row (the objective row included):
//
//	target   := T[i][p.Column]            (captured before row i is written)
//	T[i][j] += (T[p.Row][j] / pivot) · (-target)   for every column j
//
// The pivot row itself is left as-is and is only read during the pass; the
// entering column ends up zero everywhere except in the pivot row. The
// leaving row's basic variable is replaced by the entering column.
//
// Errors:
//   - ErrNilTableau.
//   - ErrInvalidPivot when p lies outside rows 1..m / columns 1..n+m or the
//     pivot entry is zero.
//   - ErrNonFinite when an update overflows.
//
// Complexity: O((m+1)·(n+m+2)).
func Reduce(t *Tableau, p Pivot) error {
	if t == nil {
		return ErrNilTableau
	}
	if p.Row < 1 || p.Row >= t.Rows() || p.Column < 1 || p.Column >= t.rhsColumn() {
		return fmt.Errorf("Reduce%v: %w", p, ErrInvalidPivot)
	}

	pivot, err := t.data.At(p.Row, p.Column)
	if err != nil {
		return t.wrap(err)
	}
	if pivot == 0 {
		return fmt.Errorf("Reduce%v: zero pivot entry: %w", p, ErrInvalidPivot)
	}

	var target float64
	for i := 0; i < t.Rows(); i++ {
		if i == p.Row {
			continue
		}
		// Capture the coefficient we are eliminating before the row changes.
		if target, err = t.data.At(i, p.Column); err != nil {
			return t.wrap(err)
		}
		if target == 0 {
			continue
		}
		if err = t.data.AddScaledRow(i, p.Row, -target/pivot); err != nil {
			return t.wrap(err)
		}
		// The eliminated entry is zero by construction; drop round-off residue.
		if err = t.data.Set(i, p.Column, 0); err != nil {
			return t.wrap(err)
		}
	}
	t.basis[p.Row] = p.Column

	return nil
}
