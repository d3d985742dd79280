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
package sexp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
)

// ParseUnion translates the notation of SPEC_FULL.md sec. 4.15,
//
//	(set (dim 2)
//	  (basic (ge 0 1 0) (ge 0 0 1) (le -1 1 1)))
//
// into a polytope.Union: a (set (dim D) ...) list whose remaining elements
// are (basic ...) member blocks, each a sequence of (ge c0 c1 .. cd),
// (le c0 c1 .. cd) or (eq c0 c1 .. cd) constraints.
func ParseUnion(text string) (polytope.Union, error) {
	term, err := Parse(text)
	if err != nil {
		return polytope.Union{}, err
	}

	top := term.AsList()
	if top == nil || !top.MatchSymbols(1, "set") {
		return polytope.Union{}, fmt.Errorf("sexp: expected (set (dim D) ...)")
	}

	if top.Len() < 2 {
		return polytope.Union{}, fmt.Errorf("sexp: (set ...) missing (dim D)")
	}

	d, err := parseDim(top.Get(1))
	if err != nil {
		return polytope.Union{}, err
	}

	members := make([]polytope.Polyhedron, 0, top.Len()-2)

	for i := 2; i < top.Len(); i++ {
		member, err := parseBasic(top.Get(i), d)
		if err != nil {
			return polytope.Union{}, err
		}

		members = append(members, member)
	}

	return polytope.NewUnion(d, members...), nil
}

// ParsePolyhedron translates a single-member (set ...) into its one
// member, for the "reduce" command of SPEC_FULL.md sec. 4.16, which reads a
// single polyhedron rather than a union.
func ParsePolyhedron(text string) (polytope.Polyhedron, error) {
	u, err := ParseUnion(text)
	if err != nil {
		return polytope.Polyhedron{}, err
	}

	if u.Len() != 1 {
		return polytope.Polyhedron{}, fmt.Errorf("sexp: expected exactly one (basic ...) member, found %d", u.Len())
	}

	return u.Member(0), nil
}

func parseDim(term SExp) (uint, error) {
	l := term.AsList()
	if l == nil || !l.MatchSymbols(1, "dim") || l.Len() != 2 {
		return 0, fmt.Errorf("sexp: expected (dim D)")
	}

	sym := l.Get(1).AsSymbol()
	if sym == nil {
		return 0, fmt.Errorf("sexp: (dim D): D must be a number")
	}

	n, err := strconv.ParseUint(sym.Value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("sexp: (dim D): %w", err)
	}

	return uint(n), nil
}

func parseBasic(term SExp, d uint) (polytope.Polyhedron, error) {
	l := term.AsList()
	if l == nil || !l.MatchSymbols(1, "basic") {
		return polytope.Polyhedron{}, fmt.Errorf("sexp: expected (basic ...)")
	}

	eqs := make([]rat.Form, 0)
	ineqs := make([]rat.Form, 0)

	for i := 1; i < l.Len(); i++ {
		kind, form, err := parseConstraint(l.Get(i), d)
		if err != nil {
			return polytope.Polyhedron{}, err
		}

		switch kind {
		case "eq":
			eqs = append(eqs, form)
		case "ge":
			ineqs = append(ineqs, form)
		case "le":
			ineqs = append(ineqs, form.Neg())
		}
	}

	return polytope.NewPolyhedron(d, eqs, ineqs), nil
}

func parseConstraint(term SExp, d uint) (kind string, form rat.Form, err error) {
	l := term.AsList()
	if l == nil || l.Len() == 0 {
		return "", nil, fmt.Errorf("sexp: expected (ge|le|eq c0 c1 .. cd)")
	}

	head := l.Get(0).AsSymbol()
	if head == nil {
		return "", nil, fmt.Errorf("sexp: expected (ge|le|eq c0 c1 .. cd)")
	}

	switch head.Value {
	case "ge", "le", "eq":
		kind = head.Value
	default:
		return "", nil, fmt.Errorf("sexp: unknown constraint kind %q", head.Value)
	}

	if uint(l.Len()-1) != d+1 {
		return "", nil, fmt.Errorf("sexp: (%s ...) has %d coefficients, expected %d", kind, l.Len()-1, d+1)
	}

	f := make(rat.Form, d+1)

	for i := 0; i < int(d)+1; i++ {
		sym := l.Get(i + 1).AsSymbol()
		if sym == nil {
			return "", nil, fmt.Errorf("sexp: (%s ...): coefficient %d is not a number", kind, i)
		}

		c, err := parseRat(sym.Value)
		if err != nil {
			return "", nil, fmt.Errorf("sexp: (%s ...): %w", kind, err)
		}

		f[i] = c
	}

	return kind, f, nil
}

func parseRat(tok string) (rat.Rat, error) {
	if num, den, ok := strings.Cut(tok, "/"); ok {
		n, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return rat.Rat{}, fmt.Errorf("malformed numerator %q", num)
		}

		dn, err := strconv.ParseInt(den, 10, 64)
		if err != nil {
			return rat.Rat{}, fmt.Errorf("malformed denominator %q", den)
		}

		return rat.FromInt64(n).Div(rat.FromInt64(dn)), nil
	}

	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return rat.Rat{}, fmt.Errorf("malformed number %q", tok)
	}

	return rat.FromInt64(n), nil
}

// FormatUnion renders s in the notation ParseUnion accepts.
func FormatUnion(s polytope.Union) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "(set (dim %d)", s.Dim())

	for _, m := range s.Members() {
		buf.WriteString("\n  ")
		buf.WriteString(formatBasic(m))
	}

	buf.WriteString(")")

	return buf.String()
}

// FormatPolyhedron renders p as a single-member union.
func FormatPolyhedron(p polytope.Polyhedron) string {
	return fmt.Sprintf("(set (dim %d)\n  %s)", p.Dim(), formatBasic(p))
}

func formatBasic(p polytope.Polyhedron) string {
	var buf strings.Builder

	buf.WriteString("(basic")

	if p.IsEmpty() {
		buf.WriteString(" (eq 1")
		buf.WriteString(strings.Repeat(" 0", int(p.Dim())))
		buf.WriteString("))")

		return buf.String()
	}

	for i := 0; i < p.NumEqualities(); i++ {
		buf.WriteString(" (eq ")
		buf.WriteString(formatForm(p.Equality(i)))
		buf.WriteString(")")
	}

	for i := 0; i < p.NumInequalities(); i++ {
		buf.WriteString(" (ge ")
		buf.WriteString(formatForm(p.Inequality(i)))
		buf.WriteString(")")
	}

	buf.WriteString(")")

	return buf.String()
}

func formatForm(f rat.Form) string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}
