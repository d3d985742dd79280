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

// Package affine computes the affine hull of a union (spec.md sec. 6,
// component C3): the smallest affine subspace containing every point of
// every member of a polytope.Union, expressed as a minimal set of implied
// equalities.
//
// A member's own equalities only bound that member's own affine hull; the
// union's affine hull is the affine span of the union of the members'
// individual affine hulls as point sets, which in general is not simply the
// intersection of their equality sets (two members lying in parallel but
// distinct hyperplanes span a strictly larger affine subspace than either
// hyperplane alone, and may span one that matches neither member's own
// equalities). This mirrors the incremental point/direction accumulation isl
// uses for isl_*_affine_hull in original_source/isl_convex_hull.c, built
// here on top of pkg/matrix's right-inverse and null-space routines rather
// than isl's own basis-map representation.
package affine

import (
	"github.com/go-polyhedra/chull/pkg/matrix"
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
	"github.com/go-polyhedra/chull/pkg/tableau"
)

// Hull returns the equalities of the affine hull of s, and true, unless s
// has no non-empty member, in which case it returns (nil, false, nil): the
// affine hull of the empty union is undefined (spec.md sec. 4.3's 0-d/empty
// handling is the caller's responsibility, not this package's). An error is
// returned only if detecting a member's implicit equalities fails (an LP
// failure in pkg/tableau.DetectEqualities).
func Hull(s polytope.Union) ([]rat.Form, bool, error) {
	members := s.NonEmptyMembers()
	if len(members) == 0 {
		return nil, false, nil
	}

	d := s.Dim()

	basePoint, spans, err := memberFrame(members[0], d)
	if err != nil {
		return nil, false, err
	}

	for _, m := range members[1:] {
		point, dirs, err := memberFrame(m, d)
		if err != nil {
			return nil, false, err
		}

		spans = append(spans, dirs...)

		diff := make([]rat.Rat, d)
		for i := uint(0); i < d; i++ {
			diff[i] = point[i].Sub(basePoint[i])
		}

		spans = append(spans, diff)
	}

	span := spanMatrix(spans, d)
	directions := matrix.NullSpace(span)

	equalities := make([]rat.Form, 0, len(directions))

	for _, n := range directions {
		equalities = append(equalities, equalityFromNormal(n, basePoint))
	}

	return equalities, true, nil
}

// memberFrame returns a representative point of p's own affine hull and a
// spanning set of direction vectors of that affine hull, via
// matrix.RightInverse eliminating p's equalities together with any of its
// inequalities that are implicit equalities (spec.md sec. 4.1 step d: an
// opposing pair like x>=0 and x<=0 pins x=0 without either half appearing in
// p.Equalities()). Without folding those in, this would treat such a
// coordinate as free and overestimate p's affine hull, per isl's
// isl_tab_detect_implicit_equalities in
// original_source/isl_convex_hull.c, reused here via pkg/tableau rather
// than duplicated.
func memberFrame(p polytope.Polyhedron, d uint) (point []rat.Rat, dirs [][]rat.Rat, err error) {
	eqRows, err := equalityRows(p, d)
	if err != nil {
		return nil, nil, err
	}

	eqMatrix := matrix.FromRows(eqRows...)
	if len(eqRows) == 0 {
		eqMatrix = matrix.New(0, d+1)
	}

	u, _, free, ok := matrix.RightInverse(eqMatrix, d)
	if !ok {
		// Redundant (linearly dependent) equalities: fall back to a
		// conservative frame treating every variable as free, which
		// over-estimates direction span but never under-counts it; a
		// caller running this after pkg/hull.ReduceSingle will not hit
		// this path since ReduceSingle leaves independent equalities.
		u = matrix.Identity(d + 1)
		free = make([]uint, d)

		for i := range free {
			free[i] = uint(i) + 1
		}
	}

	zero := make([]rat.Rat, len(free)+1)
	zero[0] = rat.One()

	for i := 1; i < len(zero); i++ {
		zero[i] = rat.Zero()
	}

	full := u.ApplyRow(zero)
	point = full[1:]

	dirs = make([][]rat.Rat, 0, len(free))

	for j := range free {
		col := uint(j) + 1
		v := make([]rat.Rat, d)

		for row := uint(0); row < d; row++ {
			v[row] = u.At(row+1, col)
		}

		dirs = append(dirs, v)
	}

	return point, dirs, nil
}

// equalityRows returns p's own equalities together with any inequality
// tableau.DetectEqualities finds to be implicit, as plain coefficient rows
// ready for matrix.FromRows. An implicit inequality is kept only when it is
// linearly independent of the rows already collected, so an opposing pair
// such as x1>=0, -x1>=0 contributes a single row.
func equalityRows(p polytope.Polyhedron, d uint) ([][]rat.Rat, error) {
	eqs := p.Equalities()
	ineqs := p.Inequalities()

	implicit, err := tableau.FromPolyhedron(d, eqs, ineqs).DetectEqualities()
	if err != nil {
		return nil, err
	}

	rows := make([][]rat.Rat, 0, len(eqs)+len(implicit))

	for _, e := range eqs {
		rows = append(rows, []rat.Rat(e))
	}

	for i, isImplicit := range implicit {
		if !isImplicit {
			continue
		}

		cand := append(append([][]rat.Rat(nil), rows...), []rat.Rat(ineqs[i]))
		if _, _, _, ok := matrix.RightInverse(matrix.FromRows(cand...), d); ok {
			rows = append(rows, []rat.Rat(ineqs[i]))
		}
	}

	return rows, nil
}

func spanMatrix(spans [][]rat.Rat, d uint) matrix.Matrix {
	if len(spans) == 0 {
		return matrix.New(0, d)
	}

	return matrix.FromRows(spans...)
}

func equalityFromNormal(n []rat.Rat, point []rat.Rat) rat.Form {
	f := make(rat.Form, len(n)+1)

	acc := rat.Zero()
	for i, c := range n {
		f[i+1] = c
		acc = acc.Add(c.Mul(point[i]))
	}

	f[0] = acc.Neg()

	return f
}
