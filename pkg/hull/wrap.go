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
	"errors"

	"github.com/go-polyhedra/chull/pkg/lp"
	"github.com/go-polyhedra/chull/pkg/matrix"
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
	"github.com/sirupsen/logrus"
)

var errDegenerateRidge = errors.New("hull: facet and ridge normals are not linearly independent")

// wrapFacet implements spec.md sec. 4.8: rotates facet f about ridge r until
// it touches the union again, returning the adjacent facet. If the rotation
// LP is unbounded, f does not rotate across this ridge and is returned
// unchanged (the facet is unbounded in that direction but still bounded on
// the union, per spec.md sec. 4.8's "keep F" branch).
func wrapFacet(s polytope.Union, f, r rat.Form) (rat.Form, error) {
	d := s.Dim()

	basis, err := completeBasis(f, r, d)
	if err != nil {
		return nil, err
	}

	homog := make([]rat.Rat, d+1)
	homog[0] = rat.One()

	for i := uint(1); i <= d; i++ {
		homog[i] = rat.Zero()
	}

	t := matrix.FromRows(append([][]rat.Rat{homog}, rowsOf(basis)...)...)

	m, ok := matrix.Inverse(t)
	if !ok {
		return nil, errDegenerateRidge
	}

	members := s.NonEmptyMembers()

	// Column 0 is the LP's constant term; member blocks start at column 1.
	width := uint(1)
	blockStart := make([]uint, len(members))

	for i := range members {
		blockStart[i] = width
		width += 1 + d
	}

	eqs := make([][]rat.Rat, 0)
	ineqs := make([][]rat.Rat, 0)

	for i, mem := range members {
		start := blockStart[i]

		for _, e := range mem.Equalities() {
			y := matrix.PreimageOne([]rat.Rat(e), m)
			eqs = append(eqs, homogenizeBlock(y, start, width))
		}

		for _, c := range mem.Inequalities() {
			y := matrix.PreimageOne([]rat.Rat(c), m)
			ineqs = append(ineqs, homogenizeBlock(y, start, width))
		}

		// a_i >= 0
		av := zeroVec(width)
		av[start] = rat.One()
		ineqs = append(ineqs, av)
	}

	// sum_i y_{i,1} = 1
	sumY1 := zeroVec(width)
	for i := range members {
		sumY1[blockStart[i]+1] = rat.One()
	}

	sumY1[0] = rat.FromInt64(-1)
	eqs = append(eqs, sumY1)

	// objective: minimise sum_i y_{i,2}
	obj := zeroVec(width)
	for i := range members {
		obj[blockStart[i]+2] = rat.One()
	}

	prob := lp.Problem{Dim: width - 1, Equalities: toForms(eqs, width-1), Inequalities: toForms(ineqs, width-1)}

	res := lp.Solve(prob, rat.Form(obj))

	switch res.Verdict {
	case lp.Unbounded:
		logrus.WithField("facet", f.String()).Debug("wrapFacet: rotation unbounded, keeping facet")

		return f.Clone(), nil
	case lp.Error:
		return nil, res.Err
	case lp.Empty:
		return nil, errors.New("hull: wrapping polyhedron unexpectedly empty")
	}

	n := rat.FromBigInt(res.Optimum.Num())
	den := rat.FromBigInt(res.Optimum.Den())

	return r.Scale(den).Sub(f.Scale(n)), nil
}

// completeBasis returns d forms of dimension d whose first two rows are f
// and r: f and r extended to a full basis by greedily appending coordinate
// axes not linearly dependent on the rows chosen so far, in the style of
// independentBounds' reduced-row-echelon independence test.
func completeBasis(f, r rat.Form, d uint) ([]rat.Form, error) {
	chosen := make([][]rat.Rat, 0, d)
	pivots := make([]uint, 0, d)
	rows := make([]rat.Form, 0, d)

	addRow := func(form rat.Form) bool {
		cand := append([]rat.Rat(nil), []rat.Rat(form.Normal())...)

		reduced, ok := reduceAgainstRows(cand, chosen, pivots)
		if !ok {
			return false
		}

		chosen = append(chosen, reduced)
		pivots = append(pivots, firstNonZero(reduced))
		rows = append(rows, form.Clone())

		return true
	}

	if !addRow(f) {
		return nil, errDegenerateRidge
	}

	if !addRow(r) {
		return nil, errDegenerateRidge
	}

	for axis := uint(1); axis <= d && uint(len(rows)) < d; axis++ {
		completion := rat.NewForm(d)
		completion[axis] = rat.One()
		addRow(completion)
	}

	if uint(len(rows)) != d {
		return nil, errDegenerateRidge
	}

	return rows, nil
}

func firstNonZero(v []rat.Rat) uint {
	for j, c := range v {
		if !c.IsZero() {
			return uint(j)
		}
	}

	return uint(len(v))
}

// reduceAgainstRows reduces cand against the already-chosen rows by pivot
// position (as independentBounds does) and normalises the pivot entry to 1.
// ok is false iff cand's normal is entirely zero, meaning the form itself
// carries no directional information and cannot serve as a basis row.
func reduceAgainstRows(cand []rat.Rat, chosen [][]rat.Rat, pivots []uint) ([]rat.Rat, bool) {
	reduced := append([]rat.Rat(nil), cand...)

	for i, row := range chosen {
		p := pivots[i]
		if reduced[p].IsZero() {
			continue
		}

		factor := reduced[p]

		for j := range reduced {
			reduced[j] = reduced[j].Sub(row[j].Mul(factor))
		}
	}

	allZero := true

	for _, c := range reduced {
		if !c.IsZero() {
			allZero = false

			break
		}
	}

	if allZero {
		return reduced, false
	}

	pivot := -1

	for j, c := range reduced {
		if !c.IsZero() {
			pivot = j

			break
		}
	}

	inv := rat.One().Div(reduced[pivot])
	for j := range reduced {
		reduced[j] = reduced[j].Mul(inv)
	}

	return reduced, true
}

func rowsOf(forms []rat.Form) [][]rat.Rat {
	out := make([][]rat.Rat, len(forms))
	for i, f := range forms {
		out[i] = []rat.Rat(f)
	}

	return out
}

// homogenizeBlock places the homogeneous-cone coefficients of a transformed
// form y (length 1+d: [y0,y1,...,yd]) into a block of width starting at
// start: coefficient y0 lands on the block's dilation variable a_i, and
// y1..yd land on the block's d point variables, leaving every other
// position (other members' blocks) zero.
func homogenizeBlock(y []rat.Rat, start, width uint) []rat.Rat {
	v := zeroVec(width)
	copy(v[start:start+uint(len(y))], y)

	return v
}
