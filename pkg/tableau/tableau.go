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

// Package tableau is the low-level simplex tableau that spec.md sec. 6 lists
// as a distinct external contract from the LP oracle (pkg/lp),
// used only for the redundancy and implicit-equality detection of spec.md
// sec. 4.1: tab_from_polyhedron, detect_equalities, detect_redundant.
//
// Unlike isl's isl_tab.c -- which maintains its own incremental pivoting
// state separate from isl_lp.c for performance -- this implementation
// narrows pkg/lp's general two-phase simplex to exactly the two queries
// spec.md sec. 4.1 needs, rather than duplicating the pivoting machinery: a
// Tableau is a thin, purpose-built façade that issues one or two pkg/lp
// calls per row. The distinction that matters for the spec's component
// boundary is the API (only equality/redundancy detection, no general
// objective), not a second independent simplex engine.
package tableau

import (
	"github.com/go-polyhedra/chull/pkg/lp"
	"github.com/go-polyhedra/chull/pkg/rat"
)

// Tableau wraps a polyhedron for redundancy/equality queries.
type Tableau struct {
	dim          uint
	equalities   []rat.Form
	inequalities []rat.Form
}

// FromPolyhedron builds a Tableau from a polyhedron's equality/inequality
// sequences, the tab_from_polyhedron contract of spec.md sec. 6.
func FromPolyhedron(dim uint, equalities, inequalities []rat.Form) Tableau {
	return Tableau{dim: dim, equalities: equalities, inequalities: inequalities}
}

// DetectEqualities reports, for the inequality at index i, whether it is
// implicitly an equality on the polyhedron: its minimum and its maximum are
// both zero (spec.md sec. 4.1 step d). Returns an error only on an LP
// failure.
func (tb Tableau) DetectEqualities() ([]bool, error) {
	implicit := make([]bool, len(tb.inequalities))

	for i, c := range tb.inequalities {
		// lp.Solve's objective ignores its constant term, so it reports
		// min/max of c's linear part alone; c(x) = c0 + linear(x), so
		// min(c(x)) = minRes.Optimum + c0 and, since maxRes minimises
		// -linear(x), max(c(x)) = c0 - maxRes.Optimum.
		c0 := c.Const()

		minRes := lp.Solve(tb.problem(), c)
		if minRes.Verdict == lp.Error {
			return nil, minRes.Err
		}

		if minRes.Verdict == lp.Empty {
			// Caller is responsible for noticing the polyhedron is
			// empty; report no implicit equalities here.
			return implicit, nil
		}

		if minRes.Verdict == lp.Unbounded || !minRes.Optimum.Add(c0).IsZero() {
			continue
		}

		maxRes := lp.Solve(tb.problem(), c.Neg())
		if maxRes.Verdict == lp.Error {
			return nil, maxRes.Err
		}

		if maxRes.Verdict == lp.Optimal && maxRes.Optimum.Equal(c0) {
			implicit[i] = true
		}
	}

	return implicit, nil
}

// DetectRedundant reports, for the inequality at index i, whether it is
// redundant with respect to the polyhedron's other constraints (spec.md
// sec. 4.1 step e): minimising <c,.> over every inequality except c gives a
// minimum >= -c0. Implements the cheap axis pre-screen of spec.md sec. 4.1
// before falling back to an LP call.
func (tb Tableau) DetectRedundant() ([]bool, error) {
	redundant := make([]bool, len(tb.inequalities))

	for i, c := range tb.inequalities {
		if !tb.mayBeRedundant(i, c) {
			continue
		}

		without := tb.withoutInequality(i)

		res := lp.Solve(without, c)
		if res.Verdict == lp.Error {
			return nil, res.Err
		}

		if res.Verdict == lp.Unbounded {
			continue
		}

		if res.Verdict == lp.Empty {
			// The ambient polyhedron minus c is already empty; every
			// remaining inequality, including c, is vacuously
			// satisfied once the caller notices emptiness.
			redundant[i] = true

			continue
		}

		if res.Optimum.Cmp(c.Const().Neg()) >= 0 {
			redundant[i] = true
		}
	}

	return redundant, nil
}

// mayBeRedundant implements the axis pre-screen: if c has a nonzero
// coefficient on some axis where no other inequality shares its sign, c
// cannot be redundant.
func (tb Tableau) mayBeRedundant(idx int, c rat.Form) bool {
	for axis := uint(1); axis <= tb.dim; axis++ {
		coeff := c.Coeff(axis)
		if coeff.IsZero() {
			continue
		}

		sign := coeff.Sign()
		found := false

		for j, other := range tb.inequalities {
			if j == idx {
				continue
			}

			if other.Coeff(axis).Sign() == sign {
				found = true

				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

func (tb Tableau) problem() lp.Problem {
	return lp.Problem{Dim: tb.dim, Equalities: tb.equalities, Inequalities: tb.inequalities}
}

func (tb Tableau) withoutInequality(idx int) lp.Problem {
	ineqs := make([]rat.Form, 0, len(tb.inequalities)-1)

	for j, f := range tb.inequalities {
		if j != idx {
			ineqs = append(ineqs, f)
		}
	}

	return lp.Problem{Dim: tb.dim, Equalities: tb.equalities, Inequalities: ineqs}
}
