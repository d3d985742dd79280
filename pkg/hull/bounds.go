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
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
)

var errNotFullDimensional = errors.New("hull: union does not span d independent bounds; caller should have sliced by its affine hull first")

// independentBounds implements spec.md sec. 4.6: a maximal linearly
// independent set of bounding normals of s, as a d x (d+1) set of forms.
//
// Candidate normals are drawn, in order, from every equality and inequality
// of every member. A candidate is independent of the rows already chosen
// when reducing it against them (by pivot position, reduced-row-echelon
// style) leaves a nonzero remainder. Once independence is established, the
// union must be bounded in that direction on every member (an LP per
// member); a candidate unbounded on any member is discarded outright,
// before it is ever inserted. The candidate's constant term is then set to
// the tightest value valid across every member: c0 = -min_i(m_i), where m_i
// is the LP minimum of the normal's linear part over member i (the smallest
// per-member minimum is the binding one; every other member has a
// non-negative slack).
func independentBounds(s polytope.Union) (rows []rat.Form, err error) {
	d := s.Dim()
	members := s.NonEmptyMembers()

	chosen := make([][]rat.Rat, 0, d)
	pivots := make([]uint, 0, d)

	tryCandidate := func(normal []rat.Rat) error {
		if uint(len(chosen)) == d {
			return nil
		}

		reduced := make([]rat.Rat, d)
		copy(reduced, normal)

		for i, row := range chosen {
			p := pivots[i]
			if reduced[p].IsZero() {
				continue
			}

			factor := reduced[p]

			for j := uint(0); j < d; j++ {
				reduced[j] = reduced[j].Sub(row[j].Mul(factor))
			}
		}

		pivot := -1

		for j := uint(0); j < d; j++ {
			if !reduced[j].IsZero() {
				pivot = int(j)

				break
			}
		}

		if pivot < 0 {
			return nil // dependent
		}

		inv := rat.One().Div(reduced[uint(pivot)])
		for j := range reduced {
			reduced[j] = reduced[j].Mul(inv)
		}

		tightest, bounded, err := unionMinimum(s, reduced)
		if err != nil {
			return err
		}

		if !bounded {
			return nil // discard: not a valid bound of the union
		}

		chosen = append(chosen, reduced)
		pivots = append(pivots, uint(pivot))

		f := make(rat.Form, d+1)
		f[0] = tightest.Neg()
		copy(f[1:], reduced)
		rows = append(rows, f)

		return nil
	}

	for _, m := range members {
		for _, c := range m.Equalities() {
			if err := tryCandidate([]rat.Rat(c.Normal())); err != nil {
				return nil, err
			}
		}

		for _, c := range m.Inequalities() {
			if err := tryCandidate([]rat.Rat(c.Normal())); err != nil {
				return nil, err
			}
		}

		if uint(len(rows)) == d {
			break
		}
	}

	if uint(len(rows)) != d {
		return rows, errNotFullDimensional
	}

	return rows, nil
}

// unionMinimum computes the minimum of the linear functional normal (length
// d, no constant term) over every non-empty member of s, returning the
// tightest (smallest) of the per-member minima and whether every member is
// bounded in that direction; shared between independentBounds (sec. 4.6)
// and simpleHull (sec. 4.10), both of which need exactly this "is the union
// bounded this way, and if so by how much" query.
func unionMinimum(s polytope.Union, normal []rat.Rat) (tightest rat.Rat, bounded bool, err error) {
	d := s.Dim()
	members := s.NonEmptyMembers()

	obj := make(rat.Form, d+1)
	copy(obj[1:], normal)

	have := false

	for _, m := range members {
		prob := lp.Problem{Dim: d, Equalities: m.Equalities(), Inequalities: m.Inequalities()}

		res := lp.Solve(prob, obj)
		if res.Verdict == lp.Error {
			return rat.Rat{}, false, res.Err
		}

		if res.Verdict == lp.Unbounded {
			return rat.Rat{}, false, nil
		}

		if res.Verdict == lp.Empty {
			continue
		}

		if !have || res.Optimum.Less(tightest) {
			tightest = res.Optimum
			have = true
		}
	}

	if !have {
		return rat.Rat{}, false, nil
	}

	return tightest, true, nil
}
