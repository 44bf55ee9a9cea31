// Package problem loads linear programs from YAML (or JSON) files, solves
// them with package simplex and renders the outcome.
//
// A problem file:
//
//	name: production mix
//	variables: [chairs, tables, desks]
//	objective: [20000, 45000, 85000]      # maximize
//	constraints:                           # one row per "≤" constraint
//	  - [10, 15, 10]
//	  - [13, 5, 5]
//	  - [20, 5, 10]
//	  - [0, 0, 1]
//	requirements: [720, 680, 550, 7]      # right-hand sides, ≥ 0
//
// Unknown keys are rejected so typos do not silently drop data.
package problem
