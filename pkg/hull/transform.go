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
	"github.com/go-polyhedra/chull/pkg/lp"
	"github.com/go-polyhedra/chull/pkg/matrix"
	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
)

// sliceMember returns p with eq appended to its equalities, or the empty
// polyhedron of the same dimension if that makes p infeasible (spec.md sec.
// 7's "emptiness discovered mid-computation"). Inconsistency is checked
// cheaply first via Gaussian elimination (reduceEqualities, shared with
// ReduceSingle); only when the equalities alone are consistent does this
// fall back to an LP feasibility check against the inequalities too.
func sliceMember(p polytope.Polyhedron, eq rat.Form) (polytope.Polyhedron, error) {
	if p.IsEmpty() {
		return p, nil
	}

	eqs, consistent := reduceEqualities(append(p.Equalities(), eq), p.Dim())
	if !consistent {
		return p.MarkEmpty(), nil
	}

	sliced := p.WithEqualities(eqs)

	res := lp.Solve(lp.Problem{Dim: p.Dim(), Equalities: eqs, Inequalities: sliced.Inequalities()}, rat.NewForm(p.Dim()))
	if res.Verdict == lp.Error {
		return polytope.Polyhedron{}, res.Err
	}

	if res.Verdict == lp.Empty {
		return p.MarkEmpty(), nil
	}

	return sliced, nil
}

// sliceUnion slices every member of s by eq (spec.md sec. 4.7 step 1,
// sec. 4.9 step 1's "slice S by f_i = 0").
func sliceUnion(s polytope.Union, eq rat.Form) (polytope.Union, error) {
	members := s.Members()
	out := make([]polytope.Polyhedron, len(members))

	for i, m := range members {
		sliced, err := sliceMember(m, eq)
		if err != nil {
			return polytope.Union{}, err
		}

		out[i] = sliced
	}

	return polytope.NewUnion(s.Dim(), out...), nil
}

// pullbackForms re-expresses forms given over the current ambient space as
// forms over the reduced space that u (as returned by matrix.RightInverse)
// maps from, per the contract documented on matrix.RightInverse: g(x) pulls
// back to g(u.ApplyRow(y)), i.e. Preimage([g], u).
func pullbackForms(forms []rat.Form, u matrix.Matrix) []rat.Form {
	out := matrix.Preimage(rowsOf(forms), u)

	return ratRowsToForms(out)
}

// pushforwardForms re-expresses forms given over a reduced space as forms
// over the ambient space that q (as returned by matrix.RightInverse)
// projects onto: h(y) pushes forward to h(q.ApplyRow(x)), i.e.
// Preimage([h], q).
func pushforwardForms(forms []rat.Form, q matrix.Matrix) []rat.Form {
	out := matrix.Preimage(rowsOf(forms), q)

	return ratRowsToForms(out)
}

func ratRowsToForms(rows [][]rat.Rat) []rat.Form {
	out := make([]rat.Form, len(rows))
	for i, r := range rows {
		out[i] = rat.Form(r)
	}

	return out
}

// pullbackMember transforms p's equalities and inequalities through u,
// dropping any form that becomes identically zero (trivially satisfied
// once restricted to the subspace u maps into). p must not be empty.
func pullbackMember(p polytope.Polyhedron, u matrix.Matrix, reducedDim uint) polytope.Polyhedron {
	eqs := dropZeroForms(pullbackForms(p.Equalities(), u))
	ineqs := dropZeroForms(pullbackForms(p.Inequalities(), u))

	return polytope.NewPolyhedron(reducedDim, eqs, ineqs)
}

// pullbackUnion transforms every non-empty member of s through u into the
// reduced space of dimension reducedDim, preserving empty members (as the
// empty polyhedron of the new dimension).
func pullbackUnion(s polytope.Union, u matrix.Matrix, reducedDim uint) polytope.Union {
	members := s.Members()
	out := make([]polytope.Polyhedron, len(members))

	for i, m := range members {
		if m.IsEmpty() {
			out[i] = polytope.EmptyPolyhedron(reducedDim)

			continue
		}

		out[i] = pullbackMember(m, u, reducedDim)
	}

	return polytope.NewUnion(reducedDim, out...)
}

func dropZeroForms(forms []rat.Form) []rat.Form {
	out := make([]rat.Form, 0, len(forms))

	for _, f := range forms {
		if !f.IsZero() {
			out = append(out, f)
		}
	}

	return out
}
