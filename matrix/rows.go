// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementary row operations (Gauss–Jordan building blocks) on *Dense.
//   - Column support queries used to recognise unit (basis) columns.
//
// Determinism & Performance:
//   - Fixed loop orders (j = 0..c-1); operate on the flat buffer directly.
//   - No allocations in AddScaledRow/ScaleRow/SwapRows.
//
// AI-Hints:
//   - AddScaledRow never writes the source row; capture any coefficient you
//     need from the destination row BEFORE calling it.

package matrix

import (
	"fmt"
	"math"
)

const (
	opAddScaledRow = "AddScaledRow"
	opScaleRow     = "ScaleRow"
	opSwapRows     = "SwapRows"
	opColumn       = "Column"
	opSupport      = "SingleNonZeroRow"
)

// rowErrorf wraps a sentinel with the operation tag and the involved rows.
func rowErrorf(op string, dst, src int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, dst, src, err)
}

// AddScaledRow performs row[dst] += alpha * row[src] in place.
// MAIN DESCRIPTION:
//   - The elementary "add a multiple of one row to another" operation.
//
// Implementation:
//   - Stage 1: validate both row indices and dst != src.
//   - Stage 2: single pass j=0..c-1 over the flat buffer; src is only read.
//   - Stage 3: enforce numeric policy on every written value.
//
// Behavior highlights:
//   - The source row is read-only for the whole pass, so no aliasing between
//     the row being read and the row being written.
//   - On ErrNaNInf the destination row may be partially updated.
//
// Errors:
//   - ErrOutOfRange, ErrSameRow, ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return rowErrorf(opAddScaledRow, dst, src, ErrOutOfRange)
	}
	if dst == src {
		return rowErrorf(opAddScaledRow, dst, src, ErrSameRow)
	}
	if alpha == 0 {
		return nil // nothing to add
	}

	var (
		j       int
		dBase   = dst * m.c
		sBase   = src * m.c
		updated float64
	)
	for j = 0; j < m.c; j++ {
		updated = m.data[dBase+j] + alpha*m.data[sBase+j]
		if m.validateNaNInf && (math.IsNaN(updated) || math.IsInf(updated, 0)) {
			return rowErrorf(opAddScaledRow, dst, src, ErrNaNInf)
		}
		m.data[dBase+j] = updated
	}

	return nil
}

// ScaleRow multiplies every entry of row i by alpha in place.
// Errors: ErrOutOfRange, ErrNaNInf. Complexity: O(c).
func (m *Dense) ScaleRow(i int, alpha float64) error {
	if i < 0 || i >= m.r {
		return rowErrorf(opScaleRow, i, i, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(alpha) || math.IsInf(alpha, 0)) {
		return rowErrorf(opScaleRow, i, i, ErrNaNInf)
	}
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] *= alpha
	}

	return nil
}

// SwapRows exchanges rows a and b in place. Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) SwapRows(a, b int) error {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return rowErrorf(opSwapRows, a, b, ErrOutOfRange)
	}
	if a == b {
		return nil
	}
	aBase, bBase := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[aBase+j], m.data[bBase+j] = m.data[bBase+j], m.data[aBase+j]
	}

	return nil
}

// Column returns a copy of column j.
// Errors: ErrOutOfRange. Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.%s(%d): %w", opColumn, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SingleNonZeroRow reports whether column col of m has exactly one entry
// with |v| > eps, and returns that entry's row.
// MAIN DESCRIPTION:
//   - Structural test for "scaled unit vector" columns, e.g. basic columns
//     of a simplex tableau.
//
// Implementation:
//   - Stage 1: validate m and col.
//   - Stage 2: scan rows top to bottom; bail out on the second non-zero.
//
// Inputs:
//   - opts: WithEpsilon sets eps (default DefaultEpsilon).
//
// Returns:
//   - (row, true, nil) for a single support entry; (-1, false, nil) otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r), Space O(1).
func SingleNonZeroRow(m Matrix, col int, opts ...Option) (int, bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return -1, false, matrixErrorf(opSupport, err)
	}
	if col < 0 || col >= m.Cols() {
		return -1, false, fmt.Errorf("%s(%d): %w", opSupport, col, ErrOutOfRange)
	}
	eps := gatherOptions(opts...).eps

	found := -1
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		if d, ok := m.(*Dense); ok {
			v = d.data[i*d.c+col] // fast path: direct offset
		} else if v, err = m.At(i, col); err != nil {
			return -1, false, matrixErrorf(opSupport, err)
		}
		if math.Abs(v) <= eps {
			continue
		}
		if found >= 0 {
			return -1, false, nil // second non-zero: not a unit column
		}
		found = i
	}
	if found < 0 {
		return -1, false, nil
	}

	return found, true, nil
}
