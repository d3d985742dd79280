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

// Package polytope holds the data model of spec.md sec. 3: polyhedra (basic
// sets) described by linear equalities/inequalities over the rationals, and
// unions (sets) of them. Values are copy-on-write: every mutating method
// returns a new Polyhedron or Union rather than mutating its receiver.
package polytope

import (
	"github.com/go-polyhedra/chull/pkg/rat"
)

// Flags records the book-keeping bits of spec.md sec. 3.
type Flags uint8

const (
	// Empty marks a polyhedron with no points; when set, the
	// equality/inequality sequences may be stale and must not be
	// inspected.
	Empty Flags = 1 << iota
	// Rational marks a polyhedron as operating over the rationals (as
	// opposed to the integers); the convex hull core always sets this.
	Rational
	// NoRedundant marks that every inequality is a facet (non-redundant).
	NoRedundant
	// NoImplicit marks that no inequality is implicitly an equality.
	NoImplicit
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Polyhedron is a basic set: ambient dimension d, a sequence of equalities
// and a sequence of inequalities, each a linear form of length 1+d.
type Polyhedron struct {
	dim          uint
	equalities   []rat.Form
	inequalities []rat.Form
	flags        Flags
}

// NewPolyhedron builds a polyhedron from its equalities and inequalities.
// Every form must have dimension d.
func NewPolyhedron(d uint, equalities, inequalities []rat.Form) Polyhedron {
	eqs := cloneForms(equalities)
	ineqs := cloneForms(inequalities)

	return Polyhedron{dim: d, equalities: eqs, inequalities: ineqs, flags: Rational}
}

// Universe returns the polyhedron with no constraints at all: all of R^d.
func Universe(d uint) Polyhedron {
	return Polyhedron{dim: d, flags: Rational | NoRedundant | NoImplicit}
}

// EmptyPolyhedron returns the empty polyhedron of dimension d.
func EmptyPolyhedron(d uint) Polyhedron {
	return Polyhedron{dim: d, flags: Rational | Empty}
}

// Dim returns the ambient dimension.
func (p Polyhedron) Dim() uint { return p.dim }

// Flags returns the current flag bits.
func (p Polyhedron) Flags() Flags { return p.flags }

// IsEmpty reports whether the Empty flag is set.
func (p Polyhedron) IsEmpty() bool { return p.flags.Has(Empty) }

// Equalities returns a copy of the equality sequence. Callers must check
// IsEmpty first: an empty polyhedron's sequences are not meaningful.
func (p Polyhedron) Equalities() []rat.Form { return cloneForms(p.equalities) }

// Inequalities returns a copy of the inequality sequence.
func (p Polyhedron) Inequalities() []rat.Form { return cloneForms(p.inequalities) }

// NumEqualities returns len(Equalities()) without copying.
func (p Polyhedron) NumEqualities() int { return len(p.equalities) }

// NumInequalities returns len(Inequalities()) without copying.
func (p Polyhedron) NumInequalities() int { return len(p.inequalities) }

// Equality returns the ith equality without copying the whole sequence.
func (p Polyhedron) Equality(i int) rat.Form { return p.equalities[i] }

// Inequality returns the ith inequality without copying the whole sequence.
func (p Polyhedron) Inequality(i int) rat.Form { return p.inequalities[i] }

// WithFlags returns a clone of p with mask bits set.
func (p Polyhedron) WithFlags(mask Flags) Polyhedron {
	n := p.clone()
	n.flags |= mask

	return n
}

// WithoutFlags returns a clone of p with mask bits cleared.
func (p Polyhedron) WithoutFlags(mask Flags) Polyhedron {
	n := p.clone()
	n.flags &^= mask

	return n
}

// MarkEmpty returns the empty polyhedron of the same dimension, per the
// "emptiness discovered mid-computation" error kind of spec.md sec. 7.
func (p Polyhedron) MarkEmpty() Polyhedron {
	return EmptyPolyhedron(p.dim)
}

// WithEqualities returns a clone of p with its equality sequence replaced.
func (p Polyhedron) WithEqualities(eqs []rat.Form) Polyhedron {
	n := p.clone()
	n.equalities = cloneForms(eqs)

	return n
}

// WithInequalities returns a clone of p with its inequality sequence
// replaced.
func (p Polyhedron) WithInequalities(ineqs []rat.Form) Polyhedron {
	n := p.clone()
	n.inequalities = cloneForms(ineqs)

	return n
}

// AddEquality returns a clone of p with eq appended.
func (p Polyhedron) AddEquality(eq rat.Form) Polyhedron {
	n := p.clone()
	n.equalities = append(cloneForms(p.equalities), eq.Clone())

	return n
}

// AddInequality returns a clone of p with ineq appended.
func (p Polyhedron) AddInequality(ineq rat.Form) Polyhedron {
	n := p.clone()
	n.inequalities = append(cloneForms(p.inequalities), ineq.Clone())

	return n
}

func (p Polyhedron) clone() Polyhedron {
	return Polyhedron{
		dim:          p.dim,
		equalities:   cloneForms(p.equalities),
		inequalities: cloneForms(p.inequalities),
		flags:        p.flags,
	}
}

func cloneForms(fs []rat.Form) []rat.Form {
	if fs == nil {
		return nil
	}

	out := make([]rat.Form, len(fs))
	for i, f := range fs {
		out[i] = f.Clone()
	}

	return out
}

// Union is a finite disjunction of polyhedra sharing ambient dimension
// (spec.md sec. 3). Order is preserved but semantically irrelevant.
type Union struct {
	dim     uint
	members []Polyhedron
}

// NewUnion builds a union from its members, which must share dimension d.
func NewUnion(d uint, members ...Polyhedron) Union {
	ms := make([]Polyhedron, len(members))
	copy(ms, members)

	return Union{dim: d, members: ms}
}

// Dim returns the ambient dimension.
func (s Union) Dim() uint { return s.dim }

// Len returns the number of members.
func (s Union) Len() int { return len(s.members) }

// Member returns the ith member.
func (s Union) Member(i int) Polyhedron { return s.members[i] }

// Members returns a copy of the member slice.
func (s Union) Members() []Polyhedron {
	out := make([]Polyhedron, len(s.members))
	copy(out, s.members)

	return out
}

// NonEmptyMembers returns the members with the Empty flag unset.
func (s Union) NonEmptyMembers() []Polyhedron {
	out := make([]Polyhedron, 0, len(s.members))

	for _, m := range s.members {
		if !m.IsEmpty() {
			out = append(out, m)
		}
	}

	return out
}

// IsEmpty reports whether every member is empty (spec.md sec. 8 scenario
// E6: a union of only empty members hulls to EMPTY).
func (s Union) IsEmpty() bool {
	for _, m := range s.members {
		if !m.IsEmpty() {
			return false
		}
	}

	return true
}

// WithMember returns a clone of s with member i replaced.
func (s Union) WithMember(i int, p Polyhedron) Union {
	out := s.Members()
	out[i] = p

	return Union{dim: s.dim, members: out}
}

// AddMember returns a clone of s with p appended.
func (s Union) AddMember(p Polyhedron) Union {
	out := append(s.Members(), p)
	return Union{dim: s.dim, members: out}
}
