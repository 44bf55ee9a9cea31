// SPDX-License-Identifier: MIT

package problem

import "errors"

var (
	// ErrInvalidProblem is returned when a problem file cannot be decoded or
	// its fields do not fit together.
	ErrInvalidProblem = errors.New("problem: invalid problem")

	// ErrNoResult is returned when a Report is requested without a result.
	ErrNoResult = errors.New("problem: nil result")
)
