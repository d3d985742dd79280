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
package hull

import (
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
)

// pairwiseFMHull implements spec.md sec. 4.4: the convex hull of p1 and p2
// as the Minkowski sum of their homogeneous cones, computed by building a
// combined polyhedron over (z, y1, y2) and projecting out y1 and y2 by
// Fourier-Motzkin elimination.
//
// Vectors during elimination are homogeneous (no separate constant column):
// column 0 of a block stands for the original form's constant term, playing
// the role of the homogenising coordinate t. Column layout over the combined
// space of width 3*(d+1): z occupies [0,d], y1 occupies [d+1,2d+1], y2
// occupies [2d+2,3d+2].
func pairwiseFMHull(d uint, p1, p2 polytope.Polyhedron) (polytope.Polyhedron, error) {
	width := 3 * (d + 1)
	y1Start := d + 1
	y2Start := 2 * (d + 1) // = 2d+2

	eqs := make([][]rat.Rat, 0)
	ineqs := make([][]rat.Rat, 0)

	for _, e := range p1.Equalities() {
		eqs = append(eqs, placeBlock(e, y1Start, width))
	}

	for _, e := range p2.Equalities() {
		eqs = append(eqs, placeBlock(e, y2Start, width))
	}

	for _, c := range p1.Inequalities() {
		ineqs = append(ineqs, placeBlock(c, y1Start, width))
	}

	for _, c := range p2.Inequalities() {
		ineqs = append(ineqs, placeBlock(c, y2Start, width))
	}

	ineqs = append(ineqs, unitVec(width, y1Start, 1))
	ineqs = append(ineqs, unitVec(width, y2Start, 1))

	for k := uint(0); k <= d; k++ {
		v := zeroVec(width)
		v[k] = rat.One()
		v[y1Start+k] = rat.FromInt64(-1)
		v[y2Start+k] = rat.FromInt64(-1)
		eqs = append(eqs, v)
	}

	for idx := y1Start; idx <= y1Start+d; idx++ {
		eqs, ineqs = eliminateVariable(eqs, ineqs, idx)
	}

	for idx := y2Start; idx <= y2Start+d; idx++ {
		eqs, ineqs = eliminateVariable(eqs, ineqs, idx)
	}

	p := polytope.NewPolyhedron(d, toForms(eqs, d), toForms(ineqs, d))

	return ReduceSingle(p)
}

// eliminateVariable projects out column idx from eqs/ineqs. It prefers
// substituting through an equality that mentions idx (cheap, exact, and
// keeps the system small); only when no such equality exists does it fall
// back to classical pairwise Fourier-Motzkin elimination over the
// inequalities, which is what spec.md sec. 4.4 calls for.
func eliminateVariable(eqs, ineqs [][]rat.Rat, idx uint) (newEqs, newIneqs [][]rat.Rat) {
	pivot := -1

	for i, e := range eqs {
		if !e[idx].IsZero() {
			pivot = i

			break
		}
	}

	if pivot >= 0 {
		normalized := scaleVec(eqs[pivot], rat.One().Div(eqs[pivot][idx]))

		newEqs = make([][]rat.Rat, 0, len(eqs)-1)

		for i, e := range eqs {
			if i == pivot {
				continue
			}

			newEqs = append(newEqs, subtractScaledVec(e, normalized, e[idx]))
		}

		newIneqs = make([][]rat.Rat, 0, len(ineqs))

		for _, c := range ineqs {
			newIneqs = append(newIneqs, subtractScaledVec(c, normalized, c[idx]))
		}

		return newEqs, newIneqs
	}

	var zero, pos, neg [][]rat.Rat

	for _, c := range ineqs {
		switch c[idx].Sign() {
		case 0:
			zero = append(zero, c)
		case 1:
			pos = append(pos, c)
		default:
			neg = append(neg, c)
		}
	}

	newIneqs = append(newIneqs, zero...)

	for _, p := range pos {
		pn := scaleVec(p, rat.One().Div(p[idx]))

		for _, n := range neg {
			nn := scaleVec(n, rat.One().Div(n[idx].Neg()))
			newIneqs = append(newIneqs, addVec(pn, nn))
		}
	}

	return eqs, newIneqs
}

func placeBlock(f rat.Form, start, width uint) []rat.Rat {
	v := zeroVec(width)

	for i := uint(0); i <= f.Dim(); i++ {
		v[start+i] = f[i]
	}

	return v
}

func unitVec(width, idx uint, c int64) []rat.Rat {
	v := zeroVec(width)
	v[idx] = rat.FromInt64(c)

	return v
}

func zeroVec(n uint) []rat.Rat {
	v := make([]rat.Rat, n)
	for i := range v {
		v[i] = rat.Zero()
	}

	return v
}

func scaleVec(v []rat.Rat, k rat.Rat) []rat.Rat {
	out := make([]rat.Rat, len(v))
	for i, c := range v {
		out[i] = c.Mul(k)
	}

	return out
}

func addVec(a, b []rat.Rat) []rat.Rat {
	out := make([]rat.Rat, len(a))
	for i := range a {
		out[i] = a[i].Add(b[i])
	}

	return out
}

func subtractScaledVec(v, pivot []rat.Rat, factor rat.Rat) []rat.Rat {
	if factor.IsZero() {
		out := make([]rat.Rat, len(v))
		copy(out, v)

		return out
	}

	out := make([]rat.Rat, len(v))
	for i := range v {
		out[i] = v[i].Sub(pivot[i].Mul(factor))
	}

	return out
}

// toForms reinterprets the z-block (columns [0,d]) of each elimination
// result row as a dimension-d form: column 0 stood for the homogenising
// coordinate t_z, so fixing t_z = 1 -- the dehomogenisation spec.md sec. 4.4
// requires -- is simply reading column 0 as the form's constant term. Rows
// whose z-block is entirely zero are trivially satisfied and dropped.
func toForms(rows [][]rat.Rat, d uint) []rat.Form {
	out := make([]rat.Form, 0, len(rows))

	for _, v := range rows {
		f := make(rat.Form, d+1)
		copy(f, v[:d+1])

		if !f.IsZero() {
			out = append(out, f)
		}
	}

	return out
}
