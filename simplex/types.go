// SPDX-License-Identifier: MIT

package simplex

import "fmt"

// Pivot addresses one tableau entry: the entering variable's column and
// the leaving variable's row.
type Pivot struct {
	Column int // entering column, 1..numVars+numConstraints
	Row    int // leaving row, 1..numConstraints
}

// String renders the pivot as (column,row), the order the tracer prints.
func (p Pivot) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// StepKind tags the outcome of a pivot selection.
type StepKind int

const (
	// KindPivot: Step.Pivot holds the next pivot.
	KindPivot StepKind = iota

	// KindOptimal: no objective-row entry is negative; the tableau is final.
	KindOptimal

	// KindUnbounded: Step.Pivot.Column improves the objective without limit;
	// Step.Pivot.Row is 0.
	KindUnbounded
)

// String returns a lower-case name for the kind.
func (k StepKind) String() string {
	switch k {
	case KindPivot:
		return "pivot"
	case KindOptimal:
		return "optimal"
	case KindUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is the tagged result of NextPivot. Optimal and Unbounded are never
// conflated: only KindOptimal means the tableau is final.
type Step struct {
	Kind  StepKind
	Pivot Pivot
}

// Iteration records one accepted pivot.
type Iteration struct {
	Number    int     // 1-based pivot count
	Pivot     Pivot   // coordinates used
	Objective float64 // objective value (row 0, last column) after the pivot
}

// Status is the terminal state of a solve.
type Status int

const (
	// StatusRunning: the solve has not reached a terminal state. A Result only
	// carries it when an internal error interrupted the loop.
	StatusRunning Status = iota

	// StatusOptimal: the final tableau is optimal.
	StatusOptimal

	// StatusUnbounded: an entering column had no limiting row.
	StatusUnbounded

	// StatusIterationLimit: the pivot cap was hit.
	StatusIterationLimit

	// StatusCancelled: the context was cancelled between pivots.
	StatusCancelled
)

// String returns a lower-case name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	case StatusIterationLimit:
		return "iteration-limit"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
