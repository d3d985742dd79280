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

// Package hull implements spec.md sec. 4: the convex hull of a union of
// polyhedra, by facet-wrapping (bounded case) or Fourier-Motzkin Minkowski
// sum (unbounded case), plus the cheaper SimpleHull over-approximation of
// sec. 4.10.
package hull

import (
	"errors"

	"github.com/go-polyhedra/chull/pkg/affine"
	"github.com/go-polyhedra/chull/pkg/matrix"
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
	"github.com/sirupsen/logrus"
)

// ConvexHull implements spec.md sec. 4.11: the main entry point. s may be
// empty (every member empty, or no members at all), of any dimension, and
// its members need not individually be full-dimensional.
func ConvexHull(s polytope.Union) (polytope.Polyhedron, error) {
	d := s.Dim()

	if s.IsEmpty() {
		return polytope.EmptyPolyhedron(d), nil
	}

	logrus.WithFields(logrus.Fields{"dim": d, "members": len(s.NonEmptyMembers())}).Debug("ConvexHull: starting")

	eqs, ok, err := affine.Hull(s)
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	if !ok {
		return polytope.EmptyPolyhedron(d), nil
	}

	if len(eqs) == 0 {
		return usetConvexHull(s)
	}

	u, q, _, ok := matrix.RightInverse(matrix.FromRows(rowsOf(eqs)...), d)
	if !ok {
		return polytope.Polyhedron{}, errDegenerateAffineHull
	}

	reducedDim := d - uint(len(eqs))
	reduced := pullbackUnion(s, u, reducedDim)

	sub, err := usetConvexHull(reduced)
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	if sub.IsEmpty() {
		return polytope.EmptyPolyhedron(d), nil
	}

	ineqs := pushforwardForms(sub.Inequalities(), q)
	liftedEqs := append(pushforwardForms(sub.Equalities(), q), eqs...)

	return polytope.NewPolyhedron(d, liftedEqs, ineqs), nil
}

var errDegenerateAffineHull = errors.New("hull: affine hull equalities are not independent")

// usetConvexHull implements spec.md sec. 4.11 steps 2-5: the hull of a union
// already known to be full-dimensional (affine.Hull(s) carries no
// equalities). It dispatches on dimension and member count before deciding
// between the unbounded Fourier-Motzkin path and the bounded facet-wrapping
// path, per sec. 4.11's "choose a strategy" step.
func usetConvexHull(s polytope.Union) (polytope.Polyhedron, error) {
	d := s.Dim()

	if d == 0 {
		return hull0D(s), nil
	}

	if d == 1 {
		return hull1D(s), nil
	}

	members := s.NonEmptyMembers()
	if len(members) == 0 {
		return polytope.EmptyPolyhedron(d), nil
	}

	if len(members) == 1 {
		return ReduceSingle(members[0])
	}

	_, bounded, err := matrix.RecessionCone(s)
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	if !bounded {
		logrus.Debug("usetConvexHull: union unbounded, using Fourier-Motzkin path")

		return iteratedPairwiseHull(s)
	}

	logrus.Debug("usetConvexHull: union bounded, using facet-wrapping path")

	return wrapBoundedHull(s)
}

// SimpleHull implements spec.md sec. 4.10: a cheap over-approximation of
// ConvexHull(s) that is always a superset, computed without any
// facet-wrapping or Fourier-Motzkin elimination. Its inequalities are drawn
// from every member's own equalities and inequalities (each one, and for
// equalities also its negation, since an equality bounds in both
// directions), kept only when the union is bounded in that direction, with
// the constant term tightened to the least binding value across members --
// the same per-direction tightening independentBounds uses for its
// candidate rows, reused here via unionMinimum against a larger, unfiltered
// candidate set (every bounding direction observed anywhere in s, not just
// an independent subset of them).
func SimpleHull(s polytope.Union) (polytope.Polyhedron, error) {
	d := s.Dim()

	if s.IsEmpty() {
		return polytope.EmptyPolyhedron(d), nil
	}

	members := s.NonEmptyMembers()

	seen := make(map[string]bool)
	ineqs := make([]rat.Form, 0)

	consider := func(normal []rat.Rat) error {
		key := rat.Form(append([]rat.Rat{rat.Zero()}, normal...)).String()
		if seen[key] {
			return nil
		}

		seen[key] = true

		tightest, bounded, err := unionMinimum(s, normal)
		if err != nil {
			return err
		}

		if !bounded {
			return nil
		}

		f := make(rat.Form, d+1)
		f[0] = tightest.Neg()
		copy(f[1:], normal)
		ineqs = append(ineqs, f)

		return nil
	}

	for _, m := range members {
		for _, e := range m.Equalities() {
			if err := consider([]rat.Rat(e.Normal())); err != nil {
				return polytope.Polyhedron{}, err
			}

			if err := consider([]rat.Rat(e.Normal().Neg())); err != nil {
				return polytope.Polyhedron{}, err
			}
		}

		for _, c := range m.Inequalities() {
			if err := consider([]rat.Rat(c.Normal())); err != nil {
				return polytope.Polyhedron{}, err
			}
		}
	}

	if len(ineqs) == 0 {
		return polytope.Universe(d), nil
	}

	return ReduceSingle(polytope.NewPolyhedron(d, nil, ineqs))
}
