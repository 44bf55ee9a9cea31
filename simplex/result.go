// SPDX-License-Identifier: MIT

package simplex

// Result is the outcome of Solve.
//
// Tableau is the final tableau, owned by the caller; the solver never
// touches it again. On ErrUnbounded / ErrIterationLimit / cancellation the
// Result still describes the last tableau reached, with Status telling why
// the loop stopped.
type Result struct {
	Tableau    *Tableau
	Status     Status
	Objective  float64     // row 0, last column of Tableau
	Iterations int         // accepted pivots
	History    []Iteration // one entry per accepted pivot
	Unbounded  int         // entering column that proved unboundedness, 0 otherwise

	initialObjective float64
}

// Solution returns the value of every decision variable x_1..x_n.
// Basic variables read RHS/entry from their owning row; non-basic ones are 0.
func (r *Result) Solution() []float64 {
	return r.values(1, r.Tableau.NumVars())
}

// Slacks returns the value of every slack variable s_1..s_m, i.e. the unused
// capacity of each constraint.
func (r *Result) Slacks() []float64 {
	return r.values(r.Tableau.SlackColumn(0), r.Tableau.NumConstraints())
}

// values collects basic-variable values for columns first..first+count-1.
func (r *Result) values(first, count int) []float64 {
	out := make([]float64, count)
	t := r.Tableau
	for row := 1; row < len(t.basis); row++ {
		col := t.basis[row]
		if col >= first && col < first+count {
			out[col-first] = t.basicValue(row, col)
		}
	}

	return out
}

// Basis returns the tracked basis of the final tableau; see Tableau.Basis.
func (r *Result) Basis() []int { return r.Tableau.Basis() }

// Trajectory returns the objective value before the first pivot followed by
// the value after each pivot: len == Iterations+1.
func (r *Result) Trajectory() []float64 {
	out := make([]float64, 0, len(r.History)+1)
	out = append(out, r.initialObjective)
	for _, it := range r.History {
		out = append(out, it.Objective)
	}

	return out
}
