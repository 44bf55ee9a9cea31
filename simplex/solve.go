// SPDX-License-Identifier: MIT

package simplex

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlp/matrix"
)

// Solve maximizes objᵀx subject to constr·x ≤ req, x ≥ 0.
// It is SolveContext with context.Background().
func Solve(obj []float64, constr matrix.Matrix, req []float64, opts ...Option) (*Result, error) {
	return SolveContext(context.Background(), obj, constr, req, opts...)
}

// SolveContext runs the primal simplex method on a dense tableau.
//
// Steps:
//  1. Build the initial tableau (NewTableau); dimension and value errors
//     are returned before any pivoting.
//  2. Loop: check ctx, select the next pivot (NextPivot), stop on
//     KindOptimal / KindUnbounded, otherwise Reduce and record the iteration.
//  3. The pivot count is capped (WithMaxIterations, default
//     DefaultIterationFactor·(n+m)) since Dantzig's rule can cycle on
//     degenerate ties.
//
// Returns:
//   - (*Result, nil) with StatusOptimal when the objective row has no
//     negative entry left; Result.Objective is the optimum.
//   - (*Result, ErrUnbounded), (*Result, ErrIterationLimit) or
//     (*Result, ctx.Err()) with the last tableau reached.
//   - (nil, err) for invalid input.
//
// Complexity: O(k·(m+1)·(n+m+2)) for k pivots.
func SolveContext(
	ctx context.Context,
	obj []float64,
	constr matrix.Matrix,
	req []float64,
	opts ...Option,
) (*Result, error) {
	o := gatherOptions(opts...)

	// 1) Build.
	t, err := NewTableau(obj, constr, req)
	if err != nil {
		return nil, err
	}
	limit := o.iterationLimit(t.NumVars(), t.NumConstraints())
	res := &Result{Tableau: t, initialObjective: t.Objective()}
	if o.trace != nil {
		fmt.Fprintf(o.trace, "Init table\n%s", t)
	}

	// 2) Pivot until a terminal step.
	var step Step
	for {
		if err = ctx.Err(); err != nil {
			res.Status = StatusCancelled
			res.Objective = t.Objective()
			return res, err
		}

		if step, err = NextPivot(t, o.eps); err != nil {
			return res, err
		}
		switch step.Kind {
		case KindOptimal:
			res.Status = StatusOptimal
			res.Objective = t.Objective()
			return res, nil
		case KindUnbounded:
			res.Status = StatusUnbounded
			res.Objective = t.Objective()
			res.Unbounded = step.Pivot.Column
			if o.trace != nil {
				fmt.Fprintf(o.trace, "Unbounded in column %d\n", step.Pivot.Column)
			}
			return res, fmt.Errorf("column %d: %w", step.Pivot.Column, ErrUnbounded)
		}

		// 3) Cap.
		if res.Iterations >= limit {
			res.Status = StatusIterationLimit
			res.Objective = t.Objective()
			return res, fmt.Errorf("after %d pivots: %w", res.Iterations, ErrIterationLimit)
		}

		if err = Reduce(t, step.Pivot); err != nil {
			return res, err
		}
		res.Iterations++
		it := Iteration{Number: res.Iterations, Pivot: step.Pivot, Objective: t.Objective()}
		res.History = append(res.History, it)
		if o.trace != nil {
			fmt.Fprintf(o.trace, "Pivot %v\nTable\n%s", step.Pivot, t)
		}
		if o.onPivot != nil {
			o.onPivot(it)
		}
	}
}
