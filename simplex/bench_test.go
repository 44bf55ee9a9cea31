// SPDX-License-Identifier: MIT

package simplex_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlp/simplex"
)

// BenchmarkSolve measures full solves on random bounded problems of growing size.
func BenchmarkSolve(b *testing.B) {
	for _, size := range []int{5, 20, 50} {
		rng := rand.New(rand.NewSource(int64(size))) // deterministic seed for reproducibility
		p := randomLP(rng, size, size, 0)
		A := MustDense(b, p.constr)

		b.Run(fmt.Sprintf("m=n=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := simplex.Solve(p.obj, A, p.req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkReduce isolates one Gauss–Jordan step on a 50×50 problem.
func BenchmarkReduce(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	p := randomLP(rng, 50, 50, 0)
	base, err := simplex.NewTableau(p.obj, MustDense(b, p.constr), p.req)
	if err != nil {
		b.Fatal(err)
	}
	step, err := simplex.NextPivot(base, simplex.DefaultEpsilon)
	if err != nil || step.Kind != simplex.KindPivot {
		b.Fatalf("unexpected first step %v: %v", step.Kind, err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := base.Clone()
		b.StartTimer()
		if err = simplex.Reduce(t, step.Pivot); err != nil {
			b.Fatal(err)
		}
	}
}
