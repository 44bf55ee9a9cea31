// Package matrix offers a small dense linear-algebra core for tableau-style
// algorithms.
//
// The matrix package provides:
//
//   - The Matrix interface (Rows/Cols/At/Set/Clone) with bounds-checked,
//     error-returning accessors: no user input can make it panic.
//   - Dense, a row-major float64 matrix with an optional NaN/Inf guard.
//   - Elementary row operations (AddScaledRow, ScaleRow, SwapRows) used by
//     Gauss–Jordan style pivoting, and SingleNonZeroRow for recognising
//     unit (basis) columns.
//   - Element-wise arithmetic (Add, Sub, Scale), AllClose and MatVec.
//   - Interop with gonum (FromGonum, (*Dense).ToGonum).
//
// All errors are package sentinels (see errors.go); match them with errors.Is.
package matrix
