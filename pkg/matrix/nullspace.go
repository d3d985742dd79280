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

import "github.com/go-polyhedra/chull/pkg/rat"

// NullSpace returns a basis of {v in Q^cols : m*v = 0} via Gauss-Jordan
// elimination. Used by pkg/affine to turn a spanning set of direction
// vectors of an affine subspace into the orthogonal equalities describing
// that subspace.
func NullSpace(m Matrix) [][]rat.Rat {
	work := m.clone()
	usedCol := make(map[uint]bool)
	pivotOf := make([]int, m.rows)

	for i := range pivotOf {
		pivotOf[i] = -1
	}

	rank := uint(0)

	for row := uint(0); row < m.rows; row++ {
		col, found := findPivotFrom(work, row, 0, usedCol)
		if !found {
			continue
		}

		usedCol[col] = true
		pivotOf[row] = int(col)
		rank++

		inv := rat.One().Div(work.data[row][col])
		scaleRow(work.data[row], inv)

		for other := uint(0); other < m.rows; other++ {
			if other == row {
				continue
			}

			factor := work.data[other][col]
			if factor.IsZero() {
				continue
			}

			subtractScaled(work.data[other], work.data[row], factor)
		}
	}

	free := make([]uint, 0, m.cols-rank)

	for col := uint(0); col < m.cols; col++ {
		if !usedCol[col] {
			free = append(free, col)
		}
	}

	basis := make([][]rat.Rat, 0, len(free))

	for _, f := range free {
		v := make([]rat.Rat, m.cols)
		for i := range v {
			v[i] = rat.Zero()
		}

		v[f] = rat.One()

		for row := uint(0); row < m.rows; row++ {
			p := pivotOf[row]
			if p < 0 {
				continue
			}

			v[p] = work.data[row][f].Neg()
		}

		basis = append(basis, v)
	}

	return basis
}
