// Package simplex solves linear programs in the form
//
//	maximize   cᵀx
//	subject to A·x ≤ b,  x ≥ 0,  b ≥ 0
//
// with the primal simplex method on a dense tableau.
//
// 🚀 How it works:
//
//  1. NewTableau lays out [objective row; constraints | slack identity | b].
//     The slack variables form a feasible starting basis, so no Phase I is needed.
//  2. NextPivot picks the entering column (most negative objective entry,
//     Dantzig's rule) and the leaving row (minimum ratio test).
//  3. Reduce performs the Gauss–Jordan step around that pivot.
//  4. Solve repeats 2–3 until the objective row has no negative entry.
//
// ✨ Key features:
//   - tagged pivot outcome: optimal and unbounded are distinct (ErrUnbounded)
//   - pivot cap against cycling on degenerate ties (ErrIterationLimit)
//   - context cancellation between pivots (SolveContext)
//   - per-pivot history, hook and verbose tableau tracing
//   - solution extraction from the final tableau (Result.Solution, Result.Slacks)
//
// ⚙️ Usage:
//
//	A, _ := matrix.NewFromRows([][]float64{{2, 3}, {3, 2}})
//	res, err := simplex.Solve([]float64{7, 5}, A, []float64{90, 120})
//	if err != nil {
//	    // ErrInvalidDimensions, ErrUnbounded, ErrIterationLimit, ...
//	}
//	fmt.Println(res.Objective)  // 282
//	fmt.Println(res.Solution()) // [36 6]
//
// The pivot row is never rescaled: basic columns are unit vectors up to a
// per-row factor, which Result.Solution divides out.
//
// Not supported: ≥ or = constraints, free variables, Big-M / two-phase
// starts, anti-cycling rules (Bland).
package simplex
