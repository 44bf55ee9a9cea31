// SPDX-License-Identifier: MIT

package problem

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lvlp/matrix"
	"github.com/katalvlaran/lvlp/simplex"
)

// Assignment is the value of one named variable.
type Assignment struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Usage is how much of one constraint the solution consumes.
type Usage struct {
	Name  string  `json:"name"`
	Used  float64 `json:"used"`  // row of A times x
	Limit float64 `json:"limit"` // requirement
}

// Report summarizes a solve for printing or serialization.
type Report struct {
	Name       string       `json:"name,omitempty"`
	Status     string       `json:"status"`
	Objective  float64      `json:"objective"`
	Iterations int          `json:"iterations"`
	Variables  []Assignment `json:"variables"`
	Slacks     []Assignment `json:"slacks"`
	Usage      []Usage      `json:"usage"`
	Unbounded  string       `json:"unbounded,omitempty"` // column that proved unboundedness
	Trajectory []float64    `json:"trajectory"`
}

// NewReport builds the Report of res, naming variables after p.
// On a non-optimal Status the values describe the last tableau reached.
func NewReport(p *Problem, res *simplex.Result) (*Report, error) {
	if res == nil || res.Tableau == nil {
		return nil, ErrNoResult
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	r := &Report{
		Name:       p.Name,
		Status:     res.Status.String(),
		Objective:  res.Objective,
		Iterations: res.Iterations,
		Trajectory: res.Trajectory(),
	}
	for j, v := range res.Solution() {
		r.Variables = append(r.Variables, Assignment{Name: p.VariableName(j), Value: v})
	}
	for i, v := range res.Slacks() {
		r.Slacks = append(r.Slacks, Assignment{Name: fmt.Sprintf("s%d", i+1), Value: v})
	}
	A, err := matrix.NewFromRows(p.Constraints)
	if err != nil {
		return nil, fmt.Errorf("NewReport: %w", err)
	}
	used, err := matrix.MatVec(A, res.Solution())
	if err != nil {
		return nil, fmt.Errorf("NewReport: %w", err)
	}
	for i, u := range used {
		r.Usage = append(r.Usage, Usage{Name: fmt.Sprintf("c%d", i+1), Used: u, Limit: p.Requirements[i]})
	}
	if res.Unbounded > 0 {
		r.Unbounded = p.ColumnName(res.Unbounded)
	}

	return r, nil
}

// WriteJSON writes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteText writes r as an aligned, human-readable listing.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if r.Name != "" {
		fmt.Fprintf(tw, "problem:\t%s\n", r.Name)
	}
	fmt.Fprintf(tw, "status:\t%s\n", r.Status)
	fmt.Fprintf(tw, "objective:\t%g\n", r.Objective)
	fmt.Fprintf(tw, "pivots:\t%d\n", r.Iterations)
	if r.Unbounded != "" {
		fmt.Fprintf(tw, "unbounded in:\t%s\n", r.Unbounded)
	}
	for _, a := range r.Variables {
		fmt.Fprintf(tw, "  %s\t= %g\n", a.Name, a.Value)
	}
	for i, u := range r.Usage {
		fmt.Fprintf(tw, "  %s\t= %g of %g", u.Name, u.Used, u.Limit)
		if i < len(r.Slacks) {
			fmt.Fprintf(tw, " (%s = %g)", r.Slacks[i].Name, r.Slacks[i].Value)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
