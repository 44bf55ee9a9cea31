// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Bridge to gonum's mat package so callers holding *mat.Dense (or any
//     mat.Matrix) can feed the solver, and results can flow back into gonum
//     routines (factorizations, formatting).
//
// Determinism:
//   - Fixed i→j copy loops; no shared storage in either direction.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies a gonum mat.Matrix into a new *Dense.
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty), ErrNaNInf (non-finite entry).
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDenseWithOptions(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, src.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return m, nil
}

// ToGonum copies m into a new *mat.Dense.
// Complexity: O(r*c).
func (m *Dense) ToGonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf) // gonum is row-major as well
}
