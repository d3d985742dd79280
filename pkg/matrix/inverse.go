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

// Inverse computes the two-sided inverse of a square matrix via Gauss-Jordan
// elimination on the augmented matrix [m|I], reusing the same pivoting
// helpers as RightInverse and NullSpace. ok is false iff m is singular.
//
// pkg/hull/wrap.go uses this to build the change of basis that sends a
// facet normal to x1 and a ridge normal to x2 (spec.md sec. 4.8): unlike
// RightInverse, which eliminates a set of equalities down to a smaller
// free-variable space, wrapFacet needs a full-rank square change of basis
// with no dimension drop, so it calls Inverse directly rather than treating
// the basis rows as equalities to eliminate.
func Inverse(m Matrix) (Matrix, bool) {
	if m.rows != m.cols {
		return Matrix{}, false
	}

	n := m.rows
	work := m.clone()
	inv := Identity(n)

	for col := uint(0); col < n; col++ {
		pivot := -1

		for r := col; r < n; r++ {
			if !work.data[r][col].IsZero() {
				pivot = int(r)

				break
			}
		}

		if pivot < 0 {
			return Matrix{}, false
		}

		if uint(pivot) != col {
			work.data[col], work.data[uint(pivot)] = work.data[uint(pivot)], work.data[col]
			inv.data[col], inv.data[uint(pivot)] = inv.data[uint(pivot)], inv.data[col]
		}

		pivotInv := rat.One().Div(work.data[col][col])
		scaleRow(work.data[col], pivotInv)
		scaleRow(inv.data[col], pivotInv)

		for other := uint(0); other < n; other++ {
			if other == col {
				continue
			}

			factor := work.data[other][col]
			if factor.IsZero() {
				continue
			}

			subtractScaled(work.data[other], work.data[col], factor)
			subtractScaled(inv.data[other], inv.data[col], factor)
		}
	}

	return inv, true
}
