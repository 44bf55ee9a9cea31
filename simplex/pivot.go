// SPDX-License-Identifier: MIT

package simplex

import "fmt"

// NextPivot selects the next pivot of t, or reports that t is final.
//
// Entering variable (Dantzig's rule): among objective-row columns
// 1..n+m whose entry is < -eps, the most negative one; ties go to the
// first column scanned. None ⇒ KindOptimal.
//
// Leaving variable (minimum-ratio test): among constraint rows whose
// entering-column entry is > eps, the smallest RHS[i]/T[i][col]; negative
// ratios are discarded and ties go to the first row scanned.
// None ⇒ KindUnbounded with Pivot.Column set and Pivot.Row = 0.
//
// The RHS column is never an entering candidate. Rows with a zero or
// negative entering coefficient are never chosen, so Reduce never divides
// by zero.
//
// Complexity: O(n+m) for the objective scan, O(m) for the ratio test.
func NextPivot(t *Tableau, eps float64) (Step, error) {
	if t == nil {
		return Step{}, ErrNilTableau
	}

	col, err := enteringColumn(t, eps)
	if err != nil {
		return Step{}, err
	}
	if col < 0 {
		return Step{Kind: KindOptimal}, nil
	}

	row, err := leavingRow(t, col, eps)
	if err != nil {
		return Step{}, err
	}
	if row < 0 {
		return Step{Kind: KindUnbounded, Pivot: Pivot{Column: col}}, nil
	}

	return Step{Kind: KindPivot, Pivot: Pivot{Column: col, Row: row}}, nil
}

// enteringColumn returns the most negative objective-row column, or -1.
func enteringColumn(t *Tableau, eps float64) (int, error) {
	obj, err := t.data.Row(0)
	if err != nil {
		return -1, t.wrap(err)
	}

	best := -1
	for j := 1; j < t.rhsColumn(); j++ {
		if obj[j] >= -eps {
			continue
		}
		if best < 0 || obj[j] < obj[best] { // strict: first occurrence wins ties
			best = j
		}
	}

	return best, nil
}

// leavingRow runs the minimum-ratio test on column col, or returns -1.
func leavingRow(t *Tableau, col int, eps float64) (int, error) {
	if col <= 0 || col >= t.rhsColumn() {
		return -1, fmt.Errorf("leavingRow: column %d: %w", col, ErrInvalidDimensions)
	}
	entering, err := t.data.Column(col)
	if err != nil {
		return -1, t.wrap(err)
	}
	rhs, err := t.data.Column(t.rhsColumn())
	if err != nil {
		return -1, t.wrap(err)
	}

	best := -1
	var bestRatio, ratio float64
	for i := 1; i < len(entering); i++ {
		if entering[i] <= eps {
			continue // non-positive coefficient never limits the entering variable
		}
		ratio = rhs[i] / entering[i]
		if ratio < 0 {
			continue
		}
		if best < 0 || ratio < bestRatio { // strict: first occurrence wins ties
			best, bestRatio = i, ratio
		}
	}

	return best, nil
}
