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

// hull0D implements spec.md sec. 4.3.
func hull0D(s polytope.Union) polytope.Polyhedron {
	if s.IsEmpty() {
		return polytope.EmptyPolyhedron(0)
	}

	return polytope.Universe(0)
}

// hull1D implements spec.md sec. 4.2: the tightest lower and upper bound on
// x1 across every member, where a member lacking a bound in one direction
// kills the corresponding global bound.
func hull1D(s polytope.Union) polytope.Polyhedron {
	members := s.NonEmptyMembers()
	if len(members) == 0 {
		return polytope.EmptyPolyhedron(1)
	}

	var globalLo, globalHi *rat.Rat

	haveLo, haveHi := true, true

	for _, m := range members {
		lo, hi := memberBound1D(m)

		if lo == nil {
			haveLo = false
		} else if globalLo == nil || lo.Less(*globalLo) {
			globalLo = lo
		}

		if hi == nil {
			haveHi = false
		} else if globalHi == nil || globalHi.Less(*hi) {
			globalHi = hi
		}
	}

	ineqs := make([]rat.Form, 0, 2)

	if haveLo && globalLo != nil {
		ineqs = append(ineqs, rat.Form{globalLo.Neg(), rat.One()})
	}

	if haveHi && globalHi != nil {
		ineqs = append(ineqs, rat.Form{*globalHi, rat.FromInt64(-1)})
	}

	return polytope.NewPolyhedron(1, nil, ineqs)
}

// memberBound1D returns p's tightest lower and upper bound on x1 (nil if
// p has no bound in that direction), comparing candidate bounds exactly via
// pkg/rat.Rat rather than the cross-multiplication spec.md sec. 4.2
// describes, since rat.Rat.Cmp is already exact.
func memberBound1D(p polytope.Polyhedron) (lower, upper *rat.Rat) {
	consider := func(c rat.Form, isEquality bool) {
		c1 := c.Coeff(1)
		if c1.IsZero() {
			return
		}

		val := c.Const().Neg().Div(c1)

		if c1.Sign() > 0 || isEquality {
			if lower == nil || lower.Less(val) {
				lower = &val
			}
		}

		if c1.Sign() < 0 || isEquality {
			if upper == nil || val.Less(*upper) {
				upper = &val
			}
		}
	}

	for _, e := range p.Equalities() {
		consider(e, true)
	}

	for _, c := range p.Inequalities() {
		consider(c, false)
	}

	return lower, upper
}
