// Copyright 2026 The chull Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package hull implements the convex-hull core of spec.md sec. 4: the
// redundancy eliminator, the dimension specializations, the Fourier-Motzkin
// Minkowski-sum path, the independent-bounds/facet-wrapping path, and the
// top-level dispatcher that picks between them.
package hull

import (
	"github.com/go-polyhedra/chull/pkg/lp"
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
	"github.com/go-polyhedra/chull/pkg/tableau"
)

// ReduceSingle implements spec.md sec. 4.1: it returns a polyhedron equal to
// p as a point set, flagged NoRedundant|NoImplicit, with every redundant
// inequality dropped and every implicit equality promoted.
func ReduceSingle(p polytope.Polyhedron) (polytope.Polyhedron, error) {
	d := p.Dim()

	eqs, consistent := reduceEqualities(p.Equalities(), d)
	if !consistent {
		return p.MarkEmpty(), nil
	}

	ineqs := p.Inequalities()
	if len(ineqs) <= 1 {
		return p.WithEqualities(eqs).WithInequalities(ineqs).
			WithFlags(polytope.NoRedundant | polytope.NoImplicit), nil
	}

	prob := lp.Problem{Dim: d, Equalities: eqs, Inequalities: ineqs}

	feas := lp.Solve(prob, rat.NewForm(d))
	if feas.Verdict == lp.Error {
		return polytope.Polyhedron{}, feas.Err
	}

	if feas.Verdict == lp.Empty {
		return p.MarkEmpty(), nil
	}

	tb := tableau.FromPolyhedron(d, eqs, ineqs)

	implicit, err := tb.DetectEqualities()
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	redundant, err := tb.DetectRedundant()
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	promoted := append([]rat.Form{}, eqs...)
	kept := make([]rat.Form, 0, len(ineqs))

	for i, c := range ineqs {
		switch {
		case implicit[i]:
			promoted = append(promoted, c)
		case redundant[i]:
			continue
		default:
			kept = append(kept, c)
		}
	}

	promoted, consistent = reduceEqualities(promoted, d)
	if !consistent {
		return p.MarkEmpty(), nil
	}

	result := polytope.NewPolyhedron(d, promoted, kept).
		WithFlags(polytope.NoRedundant | polytope.NoImplicit)

	return result, nil
}

// reduceEqualities row-reduces eqs to an independent set via Gauss-Jordan
// elimination restricted to the coefficient columns (spec.md sec. 4.1 step
// a's "canonicalise by Gaussian elimination on equalities"). ok is false iff
// the system is inconsistent (a row reduces to 0 = nonzero).
func reduceEqualities(eqs []rat.Form, d uint) (out []rat.Form, ok bool) {
	n := len(eqs)
	if n == 0 {
		return nil, true
	}

	rows := make([][]rat.Rat, n)

	for i, f := range eqs {
		rows[i] = append([]rat.Rat(nil), []rat.Rat(f)...)
	}

	rank := 0

	for col := uint(1); col <= d && rank < n; col++ {
		pivotRow := -1

		for r := rank; r < n; r++ {
			if !rows[r][col].IsZero() {
				pivotRow = r

				break
			}
		}

		if pivotRow < 0 {
			continue
		}

		rows[rank], rows[pivotRow] = rows[pivotRow], rows[rank]

		inv := rat.One().Div(rows[rank][col])
		for j := range rows[rank] {
			rows[rank][j] = rows[rank][j].Mul(inv)
		}

		for r := 0; r < n; r++ {
			if r == rank {
				continue
			}

			factor := rows[r][col]
			if factor.IsZero() {
				continue
			}

			for j := range rows[r] {
				rows[r][j] = rows[r][j].Sub(rows[rank][j].Mul(factor))
			}
		}

		rank++
	}

	for r := rank; r < n; r++ {
		allZero := true

		for i := uint(1); i <= d; i++ {
			if !rows[r][i].IsZero() {
				allZero = false

				break
			}
		}

		if allZero && !rows[r][0].IsZero() {
			return nil, false
		}
	}

	out = make([]rat.Form, rank)
	for i := 0; i < rank; i++ {
		out[i] = rat.Form(rows[i])
	}

	return out, true
}
