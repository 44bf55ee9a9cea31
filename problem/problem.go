// SPDX-License-Identifier: MIT

package problem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlp/matrix"
	"github.com/katalvlaran/lvlp/simplex"
)

// Problem is a linear program in the solver's canonical form:
// maximize Objective·x subject to Constraints·x ≤ Requirements, x ≥ 0.
type Problem struct {
	Name         string      `yaml:"name,omitempty" json:"name,omitempty"`
	Variables    []string    `yaml:"variables,omitempty" json:"variables,omitempty"`
	Objective    []float64   `yaml:"objective" json:"objective"`
	Constraints  [][]float64 `yaml:"constraints" json:"constraints"`
	Requirements []float64   `yaml:"requirements" json:"requirements"`
}

// Load decodes one problem document from r and validates it.
// JSON input is accepted as well, being a subset of YAML.
func Load(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Load: empty document: %w", ErrInvalidProblem)
		}
		return nil, fmt.Errorf("Load: %w: %w", ErrInvalidProblem, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Validate checks that the fields fit together: a non-empty objective, one
// requirement per constraint row, rectangular rows as wide as the objective,
// and, when given, one distinct non-empty name per variable.
// Numeric checks (finite values, non-negative requirements) are left to
// simplex.NewTableau.
func (p *Problem) Validate() error {
	n := len(p.Objective)
	if n == 0 {
		return fmt.Errorf("Validate: no objective coefficients: %w", ErrInvalidProblem)
	}
	if len(p.Constraints) == 0 {
		return fmt.Errorf("Validate: no constraints: %w", ErrInvalidProblem)
	}
	if len(p.Requirements) != len(p.Constraints) {
		return fmt.Errorf("Validate: %d requirements for %d constraints: %w",
			len(p.Requirements), len(p.Constraints), ErrInvalidProblem)
	}
	for i, row := range p.Constraints {
		if len(row) != n {
			return fmt.Errorf("Validate: constraint %d has %d coefficients, want %d: %w",
				i+1, len(row), n, ErrInvalidProblem)
		}
	}

	if len(p.Variables) == 0 {
		return nil
	}
	if len(p.Variables) != n {
		return fmt.Errorf("Validate: %d variable names for %d variables: %w",
			len(p.Variables), n, ErrInvalidProblem)
	}
	seen := make(map[string]struct{}, n)
	for j, name := range p.Variables {
		if name == "" {
			return fmt.Errorf("Validate: variable %d has an empty name: %w", j+1, ErrInvalidProblem)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("Validate: duplicate variable name %q: %w", name, ErrInvalidProblem)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// VariableName returns the name of decision variable j (0-based), falling
// back to x1, x2, ... when the file does not name them.
func (p *Problem) VariableName(j int) string {
	if j >= 0 && j < len(p.Variables) {
		return p.Variables[j]
	}

	return fmt.Sprintf("x%d", j+1)
}

// ColumnName names tableau column col: decision variables by VariableName,
// slack variables as s1, s2, ...
func (p *Problem) ColumnName(col int) string {
	n := len(p.Objective)
	if col >= 1 && col <= n {
		return p.VariableName(col - 1)
	}

	return fmt.Sprintf("s%d", col-n)
}

// Solve is SolveContext with context.Background().
func (p *Problem) Solve(opts ...simplex.Option) (*simplex.Result, error) {
	return p.SolveContext(context.Background(), opts...)
}

// SolveContext validates p, lifts the constraints into a dense matrix and
// runs simplex.SolveContext. Errors from the solver are returned unchanged
// together with its partial Result.
func (p *Problem) SolveContext(ctx context.Context, opts ...simplex.Option) (*simplex.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	A, err := matrix.NewFromRows(p.Constraints)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("Solve: constraints: %w", simplex.ErrNonFinite)
		}
		return nil, fmt.Errorf("Solve: %w: %w", ErrInvalidProblem, err)
	}

	return simplex.SolveContext(ctx, p.Objective, A, p.Requirements, opts...)
}
