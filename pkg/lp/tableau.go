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

import "github.com/go-polyhedra/chull/pkg/rat"

// simplexTableau is a dense (m+1) x (n+1) tableau in the usual textbook
// layout: rows 0..m-1 are the constraint rows A*y=b pivoted so that each
// basic column is a unit vector, row m is the reduced-cost row (entry [m][j]
// is the reduced cost of column j; entry [m][n] is the negation of the
// current objective value), and column n is the right-hand side.
type simplexTableau struct {
	m, n  uint
	rows  [][]rat.Rat // length n+1 each, rows 0..m-1
	obj   []rat.Rat   // length n+1
	basis []uint      // basis[i] = column basic in row i
	err   error
}

func newTableau(m, n uint) *simplexTableau {
	rows := make([][]rat.Rat, m)
	for i := range rows {
		rows[i] = make([]rat.Rat, n+1)
		for j := range rows[i] {
			rows[i][j] = rat.Zero()
		}
	}

	obj := make([]rat.Rat, n+1)
	for j := range obj {
		obj[j] = rat.Zero()
	}

	return &simplexTableau{m: m, n: n, rows: rows, obj: obj, basis: make([]uint, m)}
}

// pivot performs a Gauss-Jordan pivot on (row, col): scales row so the pivot
// entry is 1, then eliminates column col from every other row and the
// objective row.
func (t *simplexTableau) pivot(row, col uint) {
	pv := t.rows[row][col]
	inv := rat.One().Div(pv)

	for j := uint(0); j <= t.n; j++ {
		t.rows[row][j] = t.rows[row][j].Mul(inv)
	}

	for i := uint(0); i < t.m; i++ {
		if i == row {
			continue
		}

		factor := t.rows[i][col]
		if factor.IsZero() {
			continue
		}

		for j := uint(0); j <= t.n; j++ {
			t.rows[i][j] = t.rows[i][j].Sub(t.rows[row][j].Mul(factor))
		}
	}

	factor := t.obj[col]
	if !factor.IsZero() {
		for j := uint(0); j <= t.n; j++ {
			t.obj[j] = t.obj[j].Sub(t.rows[row][j].Mul(factor))
		}
	}

	t.basis[row] = col
}

// setObjective installs a fresh cost vector c (length n) and recomputes the
// reduced-cost row against the tableau's current basis.
func (t *simplexTableau) setObjective(c []rat.Rat) {
	for j := uint(0); j < t.n; j++ {
		t.obj[j] = c[j]
	}

	t.obj[t.n] = rat.Zero()

	for i := uint(0); i < t.m; i++ {
		basisCol := t.basis[i]

		cb := c[basisCol]
		if cb.IsZero() {
			continue
		}

		for j := uint(0); j <= t.n; j++ {
			t.obj[j] = t.obj[j].Sub(t.rows[i][j].Mul(cb))
		}
	}
}

// blandEnteringColumn returns the lowest-index column with a negative
// reduced cost, or ok=false if the current basis is optimal.
func (t *simplexTableau) blandEnteringColumn(allowed func(uint) bool) (uint, bool) {
	for j := uint(0); j < t.n; j++ {
		if allowed != nil && !allowed(j) {
			continue
		}

		if t.obj[j].Sign() < 0 {
			return j, true
		}
	}

	return 0, false
}

// blandLeavingRow performs the minimum-ratio test on column col, breaking
// ties by the lowest basic-variable index (Bland's rule), and reports
// whether the column is unbounded (no positive entry).
func (t *simplexTableau) blandLeavingRow(col uint) (uint, bool) {
	best := -1

	var bestRatio rat.Rat

	for i := uint(0); i < t.m; i++ {
		entry := t.rows[i][col]
		if entry.Sign() <= 0 {
			continue
		}

		ratio := t.rows[i][t.n].Div(entry)

		if best == -1 {
			best = int(i)
			bestRatio = ratio

			continue
		}

		cmp := ratio.Cmp(bestRatio)

		switch {
		case cmp < 0:
			best = int(i)
			bestRatio = ratio
		case cmp == 0 && t.basis[i] < t.basis[uint(best)]:
			best = int(i)
		}
	}

	if best == -1 {
		return 0, false
	}

	return uint(best), true
}

// run iterates Bland's rule to optimality or unboundedness. allowed
// restricts which columns may enter (used by Phase II to forbid artificial
// columns from re-entering once driven out, which is not required for
// correctness here but matches the textbook presentation).
func (t *simplexTableau) run(allowed func(uint) bool) (unbounded bool) {
	const maxIterations = 1 << 20

	for iter := 0; iter < maxIterations; iter++ {
		col, ok := t.blandEnteringColumn(allowed)
		if !ok {
			return false
		}

		row, ok := t.blandLeavingRow(col)
		if !ok {
			return true
		}

		t.pivot(row, col)
	}

	return false
}

// objectiveValue returns the current objective value -obj[n].
func (t *simplexTableau) objectiveValue() rat.Rat {
	return t.obj[t.n].Neg()
}
