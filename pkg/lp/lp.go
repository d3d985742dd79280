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

// Package lp implements the exact-rational LP oracle that the convex hull
// core treats as an external collaborator (spec.md sec. 6): minimise a
// linear form over a polyhedron given as equalities and inequalities, and
// report one of {optimal n/d, unbounded, empty, error}.
//
// The algorithm is a two-phase primal simplex over github.com/go-polyhedra/chull/pkg/rat
// rationals, structured after the float64 two-phase simplex in
// gonum (_examples/other_examples/openshift-origin__simplex.go): a Phase I
// minimises the sum of artificial variables to find a feasible basis (or
// prove infeasibility), then Phase II optimises the caller's objective from
// that basis. Unlike the gonum version, every pivot is computed exactly and
// Bland's rule (lowest index among eligible columns/rows) is applied on
// every iteration, not just as a tie-break, since it is the only widely used
// rule with a simple exact-arithmetic cycling proof and spec.md sec. 5
// requires a fixed, documented pivot rule for reproducibility.
package lp

import (
	"fmt"

	"github.com/go-polyhedra/chull/pkg/rat"
)

// Verdict enumerates the possible outcomes of Solve.
type Verdict int

const (
	// Optimal indicates the LP has a finite optimum.
	Optimal Verdict = iota
	// Unbounded indicates the objective is unbounded below on the
	// polyhedron.
	Unbounded
	// Empty indicates the polyhedron has no feasible point.
	Empty
	// Error indicates an internal failure (e.g. a malformed problem).
	Error
)

func (v Verdict) String() string {
	switch v {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Empty:
		return "empty"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Solve call.
type Result struct {
	Verdict Verdict
	// Optimum is populated iff Verdict == Optimal: the minimal value.
	Optimum rat.Rat
	// Err is populated iff Verdict == Error.
	Err error
}

// Problem is a polyhedron in the equality/inequality encoding of spec.md
// sec. 3: Equalities[i] = 0, Inequalities[i] >= 0, over d = Dim variables.
type Problem struct {
	Dim          uint
	Equalities   []rat.Form
	Inequalities []rat.Form
}

// Solve minimises objective (its constant term is ignored, per spec.md sec.
// 6) over p. Objective must have the same dimension as p.
func Solve(p Problem, objective rat.Form) Result {
	if objective.Dim() != p.Dim {
		return Result{Verdict: Error, Err: fmt.Errorf("lp: objective dimension %d does not match problem dimension %d", objective.Dim(), p.Dim)}
	}

	if len(p.Equalities) == 0 && len(p.Inequalities) == 0 {
		// No constraints at all: the feasible region is the whole
		// space. Minimising a non-constant linear form over all of R^d
		// is always unbounded below; a constant form's minimum is its
		// (ignored) constant term, i.e. 0.
		if objective.Normal().IsZero() {
			return Result{Verdict: Optimal, Optimum: rat.Zero()}
		}

		return Result{Verdict: Unbounded}
	}

	std := toStandardForm(p)

	basis, tab, verdict := phaseOne(std)
	if verdict == Empty || verdict == Error {
		return Result{Verdict: verdict, Err: tab.err}
	}

	obj := standardObjective(std, objective)

	opt, unbounded := phaseTwo(tab, basis, obj)
	if unbounded {
		return Result{Verdict: Unbounded}
	}

	return Result{Verdict: Optimal, Optimum: opt}
}
