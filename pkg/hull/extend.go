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
	"strings"

	"github.com/go-polyhedra/chull/pkg/matrix"
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
	"github.com/go-polyhedra/chull/pkg/util/collection/set"
	"github.com/sirupsen/logrus"
)

// wrapBoundedHull is `uset_convex_hull_wrap` of spec.md sec. 4.9 step 1: the
// bounded-path hull of a full-dimensional union, used both as the entry
// point of the independent-bounds/wrapping path from usetConvexHull and as
// the recursive target of computeFacet on successively lower-dimensional
// slices. Unlike usetConvexHull it never considers the unbounded (FM) path:
// a slice of a bounded union is always bounded, so recursion only ever
// needs these specializations.
func wrapBoundedHull(s polytope.Union) (polytope.Polyhedron, error) {
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

	bounds, err := independentBounds(s)
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	facet, err := initialFacetConstraint(s, bounds)
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	return extend(s, facet)
}

// extend implements spec.md sec. 4.9: breadth-first growth of the hull from
// a single seed facet. H's inequality list grows during iteration, so the
// loop re-reads its length on every pass rather than capturing it up front.
func extend(s polytope.Union, seed rat.Form) (polytope.Polyhedron, error) {
	d := s.Dim()
	h := polytope.NewPolyhedron(d, nil, []rat.Form{seed})
	seen := set.NewSortedSet[string]()

	seen.Insert(hyperplaneKey(seed))

	for i := 0; i < h.NumInequalities(); i++ {
		fi := h.Inequality(i)

		ridges, err := computeFacet(s, fi)
		if err != nil {
			return polytope.Polyhedron{}, err
		}

		if ridges.IsEmpty() {
			continue
		}

		for j := 0; j < ridges.NumInequalities(); j++ {
			rj := ridges.Inequality(j)

			candidate, err := wrapFacet(s, fi, rj)
			if err != nil {
				return polytope.Polyhedron{}, err
			}

			key := hyperplaneKey(candidate)
			if !seen.Contains(key) {
				seen.Insert(key)
				h = h.AddInequality(candidate)

				logrus.WithFields(logrus.Fields{
					"from":      fi.String(),
					"ridge":     rj.String(),
					"new_facet": candidate.String(),
				}).Debug("extend: accepted facet")
			}
		}
	}

	return ReduceSingle(h)
}

// computeFacet implements spec.md sec. 4.9 step 1: slices s by f = 0,
// changes coordinates so f becomes x1 = 0, recurses on the (d-1)-dimensional
// image, and preimages the result back up, yielding the hyperplane
// description of facet f itself -- whose own facets are f's ridges within
// the full hull.
func computeFacet(s polytope.Union, f rat.Form) (polytope.Polyhedron, error) {
	d := s.Dim()

	sliced, err := sliceUnion(s, f)
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	u, q, _, ok := matrix.RightInverse(matrix.FromRows([]rat.Rat(f)), d)
	if !ok {
		return polytope.Polyhedron{}, errors.New("hull: facet normal is degenerate")
	}

	reducedUnion := pullbackUnion(sliced, u, d-1)

	sub, err := wrapBoundedHull(reducedUnion)
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	if sub.IsEmpty() {
		return polytope.EmptyPolyhedron(d), nil
	}

	eqs := pushforwardForms(sub.Equalities(), q)
	ineqs := pushforwardForms(sub.Inequalities(), q)

	return polytope.NewPolyhedron(d, eqs, ineqs), nil
}

// hyperplaneKey canonicalizes f up to positive scaling (spec.md sec. 4.9
// step 2's "equal bit-for-bit" dedup, read as "the same hyperplane" rather
// than literal coefficient equality, since independent wrapFacet calls may
// reach the same facet through different LP denominators) into a string
// key, so that membership in the already-accepted set can be checked in
// O(log n) via set.SortedSet rather than an O(n) scan of h's inequalities.
func hyperplaneKey(f rat.Form) string {
	integral := f.IntegralForm()
	parts := make([]string, len(integral))

	for i := range integral {
		parts[i] = integral[i].String()
	}

	return strings.Join(parts, ",")
}
