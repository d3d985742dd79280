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
package lp

import (
	"errors"

	"github.com/go-polyhedra/chull/pkg/rat"
)

var errUnreachablePhaseOneUnbounded = errors.New("lp: phase I auxiliary objective reported unbounded, which cannot happen")

// standardForm is Ay=b, y>=0, built from a Problem by splitting each free
// variable x_i into x_i+ - x_i- and turning each inequality into an equality
// with a nonnegative slack. Columns are ordered [x_1+, x_1-, ..., x_d+, x_d-,
// s_1, ..., s_k] where k = len(Inequalities).
type standardForm struct {
	dim      uint
	numIneq  uint
	m        uint // rows = equalities + inequalities
	n        uint // columns = 2*dim + numIneq
	A        [][]rat.Rat
	b        []rat.Rat
}

func toStandardForm(p Problem) standardForm {
	d := p.Dim
	k := uint(len(p.Inequalities))
	m := uint(len(p.Equalities)) + k
	n := 2*d + k

	sf := standardForm{dim: d, numIneq: k, m: m, n: n}
	sf.A = make([][]rat.Rat, m)
	sf.b = make([]rat.Rat, m)

	row := uint(0)

	for _, eq := range p.Equalities {
		sf.A[row] = formToRow(eq, d, n, -1)
		sf.b[row] = eq.Const().Neg()
		row++
	}

	for j, ineq := range p.Inequalities {
		sf.A[row] = formToRow(ineq, d, n, j)
		sf.b[row] = ineq.Const().Neg()
		row++
	}

	return sf
}

// formToRow lays out a form's coefficients over the standard-form columns.
// slackIdx >= 0 places a -1 slack coefficient at column 2*d+slackIdx
// (ignored when slackIdx < 0, i.e. for an equality row).
func formToRow(f rat.Form, d, n uint, slackIdx int) []rat.Rat {
	row := make([]rat.Rat, n)
	for j := range row {
		row[j] = rat.Zero()
	}

	for i := uint(1); i <= d; i++ {
		c := f.Coeff(i)
		if c.IsZero() {
			continue
		}

		row[2*(i-1)] = c
		row[2*(i-1)+1] = c.Neg()
	}

	if slackIdx >= 0 {
		row[2*d+uint(slackIdx)] = rat.FromInt64(-1)
	}

	return row
}

// standardObjective lays out objective's linear coefficients (ignoring its
// constant term) over the standard-form columns.
func standardObjective(sf standardForm, objective rat.Form) []rat.Rat {
	c := make([]rat.Rat, sf.n)
	for j := range c {
		c[j] = rat.Zero()
	}

	for i := uint(1); i <= sf.dim; i++ {
		coeff := objective.Coeff(i)
		if coeff.IsZero() {
			continue
		}

		c[2*(i-1)] = coeff
		c[2*(i-1)+1] = coeff.Neg()
	}

	return c
}

// phaseOne finds a feasible basis for sf by minimising the sum of one
// artificial variable per row, appended after sf's own n columns. It
// returns the basis (row -> column among sf's n real columns when possible)
// and a tableau whose first sf.n columns already encode that basis, ready
// for phaseTwo.
func phaseOne(sf standardForm) ([]uint, *simplexTableau, Verdict) {
	m, n := sf.m, sf.n
	total := n + m // + one artificial per row

	t := newTableau(m, total)

	for i := uint(0); i < m; i++ {
		b := sf.b[i]

		sign := rat.One()
		if b.Sign() < 0 {
			sign = rat.FromInt64(-1)
		}

		for j := uint(0); j < n; j++ {
			t.rows[i][j] = sf.A[i][j].Mul(sign)
		}

		t.rows[i][n+i] = rat.One()
		t.rows[i][total] = b.Mul(sign)
		t.basis[i] = n + i
	}

	cost := make([]rat.Rat, total)
	for j := uint(0); j < total; j++ {
		if j >= n {
			cost[j] = rat.One()
		} else {
			cost[j] = rat.Zero()
		}
	}

	t.setObjective(cost)

	unbounded := t.run(nil)
	if unbounded {
		// The Phase I auxiliary problem (minimising a sum of
		// nonnegative artificials) is bounded below by zero, so it can
		// never be unbounded; treat this as an internal error.
		return nil, &simplexTableau{err: errUnreachablePhaseOneUnbounded}, Error
	}

	if t.objectiveValue().Sign() > 0 {
		return nil, t, Empty
	}

	// Drive any artificial still in the basis (at value zero, a
	// degenerate row) out by pivoting in any real column with a nonzero
	// entry in that row, if one exists.
	for i := uint(0); i < m; i++ {
		if t.basis[i] < n {
			continue
		}

		for j := uint(0); j < n; j++ {
			if !t.rows[i][j].IsZero() {
				t.pivot(i, j)

				break
			}
		}
	}

	basis := make([]uint, m)
	copy(basis, t.basis)

	return basis, t, Optimal
}

// phaseTwo optimises objective (already laid out over sf's n real columns)
// from the feasible basis phaseOne found. The tableau retains its
// artificial columns, which simply never re-enter because Phase I already
// drove their reduced costs non-negative and Bland's rule never needs to
// consider them once optimal -- we defensively forbid them anyway.
func phaseTwo(t *simplexTableau, _ []uint, objective []rat.Rat) (optimum rat.Rat, unbounded bool) {
	n := t.n - (t.m) // real columns = total - m artificials
	full := make([]rat.Rat, t.n)

	for j := uint(0); j < t.n; j++ {
		if j < n {
			full[j] = objective[j]
		} else {
			full[j] = rat.Zero()
		}
	}

	t.setObjective(full)

	unbounded = t.run(func(col uint) bool { return col < n })

	return t.objectiveValue(), unbounded
}
