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

// RightInverse eliminates a set of linearly independent equalities (k rows,
// each of length 1+d, the usual [c0,c1,...,cd] linear-form encoding) from a
// d-dimensional ambient space, producing:
//
//   - u: a (1+d) x (1+f) matrix (f = d-k) such that for any point y in the
//     reduced f-dimensional space, x = u.ApplyRow(1,y...) is a point of the
//     original d-dimensional space satisfying every input equality. u is the
//     "forward" map from reduced to original coordinates.
//   - q: a (1+f) x (1+d) matrix, the coordinate projection onto the retained
//     ("free") variables, satisfying q.ApplyRow(u.ApplyRow(v)) == v for all v.
//     q is "its inverse" in the sense of spec.md sec. 4.7/4.9: not a two-sided
//     inverse of u, but the projection that recovers reduced coordinates from
//     a point already known to lie in the solution set of the equalities.
//   - freeVars: the 1-indexed original variable numbers kept as the reduced
//     space's coordinates, in order.
//
// A linear form g(x) over the original space pulls back to the reduced space
// as g(u.ApplyRow(y)), i.e. Preimage([g], u); a form h(y) computed in the
// reduced space pushes forward to the original space as h(q.ApplyRow(x)),
// i.e. Preimage([h], q). This pair is what initial_facet_constraint
// (spec.md sec. 4.7) and compute_facet (spec.md sec. 4.9) use to move
// between the ambient space and the space of one fewer dimension obtained by
// slicing on a hyperplane.
//
// ok is false iff the input equalities are not linearly independent.
func RightInverse(equalities Matrix, d uint) (u, q Matrix, freeVars []uint, ok bool) {
	k := equalities.rows
	if k > d {
		return Matrix{}, Matrix{}, nil, false
	}

	// Row-reduce [equalities] to RREF, choosing pivots among columns 1..d
	// (column 0 is the constant term and is never a pivot).
	work := equalities.clone()
	pivotOf := make([]uint, k) // pivotOf[row] = pivot column

	usedCol := make(map[uint]bool)

	for row := uint(0); row < k; row++ {
		col, found := findPivotFrom(work, row, 1, usedCol)
		if !found {
			return Matrix{}, Matrix{}, nil, false
		}

		usedCol[col] = true
		pivotOf[row] = col

		inv := rat.One().Div(work.data[row][col])
		scaleRow(work.data[row], inv)

		for other := uint(0); other < k; other++ {
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

	free := make([]uint, 0, d-k)

	for col := uint(1); col <= d; col++ {
		if !usedCol[col] {
			free = append(free, col)
		}
	}

	f := uint(len(free))
	freeIndex := make(map[uint]uint, f) // original var -> reduced index (1-based)

	for i, v := range free {
		freeIndex[v] = uint(i) + 1
	}

	// u: row 0 is the constant row (x0 = 1 regardless of y).
	u = New(d+1, f+1)
	u.data[0][0] = rat.One()

	// Free variable rows: x_v = y_{freeIndex[v]}.
	for _, v := range free {
		u.data[v][freeIndex[v]] = rat.One()
	}

	// Pivot variable rows: from the RREF row "c0 + x_p + sum_{v free} c_v x_v = 0"
	// we get x_p = -c0 - sum_{v free} c_v y_{freeIndex[v]}.
	for row := uint(0); row < k; row++ {
		p := pivotOf[row]
		u.data[p][0] = work.data[row][0].Neg()

		for _, v := range free {
			c := work.data[row][v]
			if !c.IsZero() {
				u.data[p][freeIndex[v]] = c.Neg()
			}
		}
	}

	// q: projection onto the free coordinates.
	q = New(f+1, d+1)
	q.data[0][0] = rat.One()

	for _, v := range free {
		q.data[freeIndex[v]][v] = rat.One()
	}

	return u, q, free, true
}

func findPivotFrom(m Matrix, row, fromCol uint, used map[uint]bool) (uint, bool) {
	for col := fromCol; col < m.cols; col++ {
		if used[col] {
			continue
		}

		if !m.data[row][col].IsZero() {
			return col, true
		}
	}

	return 0, false
}

func scaleRow(row []rat.Rat, k rat.Rat) {
	for i := range row {
		row[i] = row[i].Mul(k)
	}
}

// subtractScaled computes dst -= k*src, element-wise.
func subtractScaled(dst, src []rat.Rat, k rat.Rat) {
	for i := range dst {
		dst[i] = dst[i].Sub(src[i].Mul(k))
	}
}

// Preimage substitutes the linear change of variables x_old = m * x_new
// (m has shape len(old-coords) x len(new-coords)) through a set of forms
// given as row vectors over the old coordinates, producing the equivalent
// forms over the new coordinates: for a form f, f(x_old) = f(m*x_new) =
// (f*m)(x_new). This is the "preimage" operation referenced by spec.md sec.
// 6's matrix kit contract.
func Preimage(forms [][]rat.Rat, m Matrix) [][]rat.Rat {
	out := make([][]rat.Rat, len(forms))

	for i, f := range forms {
		if uint(len(f)) != m.rows {
			panic("matrix: preimage dimension mismatch")
		}

		row := make([]rat.Rat, m.cols)

		for j := uint(0); j < m.cols; j++ {
			acc := rat.Zero()

			for k := uint(0); k < m.rows; k++ {
				acc = acc.Add(f[k].Mul(m.data[k][j]))
			}

			row[j] = acc
		}

		out[i] = row
	}

	return out
}

// PreimageOne is Preimage for a single form.
func PreimageOne(f []rat.Rat, m Matrix) []rat.Rat {
	return Preimage([][]rat.Rat{f}, m)[0]
}
