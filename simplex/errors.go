// SPDX-License-Identifier: MIT

package simplex

import "errors"

// Sentinel errors returned by the simplex package.
// Every message is prefixed with "simplex: "; context is attached with
// fmt.Errorf("...: %w", ErrX) so callers match with errors.Is.
var (
	// ErrInvalidDimensions is returned before any pivoting when the objective,
	// constraint matrix and requirement vector do not fit together, when the
	// problem is empty, or when a tableau coordinate is out of range.
	ErrInvalidDimensions = errors.New("simplex: invalid dimensions")

	// ErrNonFinite is returned when an input coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("simplex: non-finite input value")

	// ErrNegativeRequirement is returned when a right-hand side is negative:
	// the all-slack starting basis would be infeasible.
	ErrNegativeRequirement = errors.New("simplex: negative requirement")

	// ErrUnbounded is returned when an entering column improves the objective
	// but no constraint row limits it.
	ErrUnbounded = errors.New("simplex: problem is unbounded")

	// ErrIterationLimit is returned when the pivot cap is reached before the
	// objective row becomes non-negative (typically cycling on degenerate ties).
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")

	// ErrInvalidPivot is returned by Reduce for a pivot that is out of range,
	// lies on the objective row or the RHS column, or has a zero entry.
	ErrInvalidPivot = errors.New("simplex: invalid pivot")

	// ErrNilTableau is returned when a nil *Tableau is passed in.
	ErrNilTableau = errors.New("simplex: nil tableau")

	// ErrBasisCorrupted is returned by CheckBasis when a tracked basic column
	// is no longer a unit vector.
	ErrBasisCorrupted = errors.New("simplex: basic column is not a unit vector")
)
