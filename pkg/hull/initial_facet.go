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

	"github.com/go-polyhedra/chull/pkg/affine"
	"github.com/go-polyhedra/chull/pkg/lp"
	"github.com/go-polyhedra/chull/pkg/matrix"
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
)

var (
	errUnsoundSupportingHyperplane     = errors.New("hull: candidate hyperplane is violated somewhere on the union")
	errNonTouchingSupportingHyperplane = errors.New("hull: candidate hyperplane does not touch the union after coordinate reduction")
)

// initialFacetConstraint implements spec.md sec. 4.7: given s (already
// full-dimensional, i.e. affine.Hull(s) has no equalities) and its
// independent-bounds matrix, produces one true facet of the hull of s.
//
// The loop carries a shrinking (union, bounds) pair: at each step the
// candidate bounds[0] is tested by slicing s with it as an equality and
// checking whether the slice's own affine hull gained exactly one equality
// (candidate is already a facet) or more than one (candidate only touches a
// lower-dimensional face, so the ambient space is reduced modulo the extra
// equalities and bounds[0] is rotated toward a facet of the reduced union by
// wrapping it around a spare bound). Every reduction's "push back" matrix Q
// is recorded so the eventual facet -- found in some reduced ambient space
// -- can be lifted back to s's own coordinates.
func initialFacetConstraint(s polytope.Union, bounds []rat.Form) (rat.Form, error) {
	curUnion := s
	curBounds := append([]rat.Form(nil), bounds...)

	var qs []matrix.Matrix

	for {
		if len(curBounds) == 0 {
			return nil, errors.New("hull: exhausted bounds without finding a facet")
		}

		candidate := curBounds[0]

		sliced, err := sliceUnion(curUnion, candidate)
		if err != nil {
			return nil, err
		}

		newEqs, ok, err := affine.Hull(sliced)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, errors.New("hull: candidate bound does not touch the union")
		}

		if len(newEqs) <= 1 {
			result := candidate

			for i := len(qs) - 1; i >= 0; i-- {
				result = pushforwardForms([]rat.Form{result}, qs[i])[0]
			}

			if err := checkSupportingHyperplane(s, result); err != nil {
				return nil, err
			}

			return result, nil
		}

		if len(curBounds) < 2 {
			return nil, errors.New("hull: no spare bound left to wrap a degenerate candidate")
		}

		curDim := curUnion.Dim()

		u, q, _, ok := matrix.RightInverse(matrix.FromRows(rowsOf(newEqs)...), curDim)
		if !ok {
			return nil, errors.New("hull: newly discovered equalities are not independent")
		}

		reducedDim := curDim - uint(len(newEqs))
		reducedUnion := pullbackUnion(curUnion, u, reducedDim)
		reducedBounds := dropZeroForms(pullbackForms(curBounds, u))

		if len(reducedBounds) < 2 {
			return nil, errors.New("hull: too few bounds survived dimension reduction")
		}

		wrapped, err := wrapFacet(reducedUnion, reducedBounds[0], reducedBounds[len(reducedBounds)-1])
		if err != nil {
			return nil, err
		}

		reducedBounds[0] = wrapped
		reducedBounds = reducedBounds[:len(reducedBounds)-1]

		curUnion = reducedUnion
		curBounds = reducedBounds
		qs = append(qs, q)
	}
}

// checkSupportingHyperplane implements the assertion spec.md sec. 9's design
// note on initialFacetConstraint asks for: after result has been pushed
// forward through every dimension reduction back to s's own coordinates, it
// must still be a genuine supporting hyperplane of s, not merely a bound
// that happened to survive the coordinate changes unscathed. Sound means
// h.Eval(x) >= 0 for every x in every member; touching means some member
// actually attains h.Eval(x) == 0, i.e. h is tight somewhere on the union
// rather than a strict, non-binding bound. lp.Unbounded on any member means
// h's linear part is unbounded below there, which makes h unsound outright.
func checkSupportingHyperplane(s polytope.Union, h rat.Form) error {
	d := s.Dim()
	members := s.NonEmptyMembers()

	obj := make(rat.Form, d+1)
	copy(obj[1:], h.Normal())

	touches := false

	for _, m := range members {
		prob := lp.Problem{Dim: d, Equalities: m.Equalities(), Inequalities: m.Inequalities()}

		res := lp.Solve(prob, obj)

		switch res.Verdict {
		case lp.Error:
			return res.Err
		case lp.Empty:
			continue
		case lp.Unbounded:
			return errUnsoundSupportingHyperplane
		}

		value := res.Optimum.Add(h.Const())

		if value.Sign() < 0 {
			return errUnsoundSupportingHyperplane
		}

		if value.IsZero() {
			touches = true
		}
	}

	if !touches {
		return errNonTouchingSupportingHyperplane
	}

	return nil
}
