// Package lvlp is a small, dependency-light linear programming toolkit built
// around the primal simplex method on a dense tableau.
//
// 🚀 What is lvlp?
//
//	A pure-Go solver for problems of the form
//
//		maximize   cᵀx
//		subject to A·x ≤ b,  x ≥ 0,  b ≥ 0
//
//	together with the pieces needed to use it from files and the shell.
//
// ✨ Why choose lvlp?
//
//   - Transparent – every pivot is observable (history, hook, verbose tableau dump)
//   - Honest outcomes – optimal, unbounded and iteration-limit are distinct results
//   - Safe – bounds-checked matrix accessors, sentinel errors, no panics on user input
//   - Interoperable – gonum/mat in and out, YAML/JSON problem files, gonum/plot charts
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/   — Dense row-major matrix, row operations, validators, gonum bridge
//	simplex/  — tableau builder, pivot selector, row reducer and driver
//	problem/  — YAML/JSON problem files, validation, reports
//	chart/    — objective trajectory plots
//	cmd/lvlp  — command-line front end
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{2, 3}, {3, 2}})
//	res, err := simplex.Solve([]float64{7, 5}, A, []float64{90, 120})
//	// res.Objective == 282, res.Solution() == [36 6]
//
// Playground programs live in examples/.
package lvlp
