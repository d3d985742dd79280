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
package matrix

import (
	"github.com/go-polyhedra/chull/pkg/lp"
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
)

// RecessionCone decides spec.md sec. 4.11 step 5's "recession cone
// non-trivial" branch: s is bounded iff every member's recession cone is
// {0}. A convex polyhedron's recession cone is {0} iff every coordinate's
// minimum and maximum over it is finite, since any nonzero recession
// direction has some nonzero coordinate whose minimisation or
// maximisation along that direction is unbounded; checking all 2d axis
// LPs per member therefore decides it without a dedicated cone-vertex
// enumeration, mirroring isl_tab_is_bounded's per-row tests in
// original_source/isl_convex_hull.c rather than an explicit
// recession-cone construction.
//
// The returned Matrix's rows are the unit axis directions found unbounded
// in at least one member -- a witness set showing the union's combined
// cone is non-trivial (it need not generate that cone), useful for inspection and
// logging -- and bounded is true iff no axis LP was unbounded in any
// member, i.e. the witness set (and hence the matrix) is empty. An error
// is returned only if one of the underlying LPs fails.
func RecessionCone(s polytope.Union) (Matrix, bool, error) {
	d := s.Dim()

	if d == 0 {
		return New(0, 0), true, nil
	}

	unboundedNeg := make([]bool, d+1) // x_axis unbounded toward -infinity
	unboundedPos := make([]bool, d+1) // x_axis unbounded toward +infinity

	for _, m := range s.NonEmptyMembers() {
		prob := lp.Problem{Dim: d, Equalities: m.Equalities(), Inequalities: m.Inequalities()}

		for axis := uint(1); axis <= d; axis++ {
			if !unboundedNeg[axis] {
				res := lp.Solve(prob, recessionAxisForm(d, axis, 1))
				if res.Verdict == lp.Error {
					return Matrix{}, false, res.Err
				}

				if res.Verdict == lp.Unbounded {
					unboundedNeg[axis] = true
				}
			}

			if !unboundedPos[axis] {
				res := lp.Solve(prob, recessionAxisForm(d, axis, -1))
				if res.Verdict == lp.Error {
					return Matrix{}, false, res.Err
				}

				if res.Verdict == lp.Unbounded {
					unboundedPos[axis] = true
				}
			}
		}
	}

	var rows [][]rat.Rat

	for axis := uint(1); axis <= d; axis++ {
		if unboundedNeg[axis] {
			rows = append(rows, recessionAxisRow(d, axis, -1))
		}

		if unboundedPos[axis] {
			rows = append(rows, recessionAxisRow(d, axis, 1))
		}
	}

	if len(rows) == 0 {
		return New(0, d), true, nil
	}

	return FromRows(rows...), false, nil
}

func recessionAxisForm(d, axis uint, coeff int64) rat.Form {
	f := rat.NewForm(d)
	f[axis] = rat.FromInt64(coeff)

	return f
}

func recessionAxisRow(d, axis uint, coeff int64) []rat.Rat {
	row := make([]rat.Rat, d)
	for i := range row {
		row[i] = rat.Zero()
	}

	row[axis-1] = rat.FromInt64(coeff)

	return row
}
