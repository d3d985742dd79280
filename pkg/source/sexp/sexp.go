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

// Package sexp implements the textual notation of SPEC_FULL.md sec. 4.15: a
// flat s-expression syntax for a polytope.Union, read by the chull CLI and
// printed back in the same notation. The data model (SExp, List, Symbol) and
// parser follow the shape of the teacher's pkg/util/source/sexp, trimmed to
// what a single flat grammar needs: no source maps, no Set/Array variants,
// since this package has only ever to round-trip its own notation rather
// than host a general-purpose constraint language.
package sexp

import (
	"fmt"
	"strings"
	"unicode"
)

// SExp is either a List of zero or more S-Expressions or a terminating
// Symbol.
type SExp interface {
	// AsList returns the receiver as a *List if it is one, else nil.
	AsList() *List
	// AsSymbol returns the receiver as a *Symbol if it is one, else nil.
	AsSymbol() *Symbol
	// String renders the S-Expression back to its textual form.
	String() string
}

// List is a parenthesised sequence of S-Expressions.
type List struct {
	Elements []SExp
}

var _ SExp = (*List)(nil)

// NewList constructs a list from its elements.
func NewList(elements ...SExp) *List { return &List{Elements: elements} }

// AsList returns l.
func (l *List) AsList() *List { return l }

// AsSymbol returns nil: a list is never a symbol.
func (l *List) AsSymbol() *Symbol { return nil }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.Elements) }

// Get returns the ith element.
func (l *List) Get(i int) SExp { return l.Elements[i] }

// MatchSymbols reports whether l has at least n elements and its first
// len(symbols) elements are symbols equal, in order, to symbols (the
// teacher's pkg/util/source/sexp.List.MatchSymbols pattern, used throughout
// this package's translator to dispatch on a list's leading keyword).
func (l *List) MatchSymbols(n int, symbols ...string) bool {
	if len(l.Elements) < n || len(symbols) > n {
		return false
	}

	for i, want := range symbols {
		sym := l.Elements[i].AsSymbol()
		if sym == nil || sym.Value != want {
			return false
		}
	}

	return true
}

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// Symbol is a terminating token: a keyword, number or identifier.
type Symbol struct {
	Value string
}

var _ SExp = (*Symbol)(nil)

// NewSymbol constructs a symbol.
func NewSymbol(value string) *Symbol { return &Symbol{Value: value} }

// AsList returns nil: a symbol is never a list.
func (s *Symbol) AsList() *List { return nil }

// AsSymbol returns s.
func (s *Symbol) AsSymbol() *Symbol { return s }

func (s *Symbol) String() string { return s.Value }

// SyntaxError reports a malformed input, with the rune offset of the
// offending token for caret-style diagnostics (pkg/cmd's printSyntaxError,
// grounded on the teacher's pkg/cmd/util.go of the same name).
type SyntaxError struct {
	Msg   string
	Start int
	End   int
}

func (e *SyntaxError) Error() string { return fmt.Sprintf("%d: %s", e.Start, e.Msg) }

// Parse reads exactly one S-Expression from text, erroring if anything but
// trailing whitespace/comments follows it.
func Parse(text string) (SExp, error) {
	p := &parser{text: []rune(text)}

	term, err := p.parseOne()
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()

	if p.index != len(p.text) {
		return nil, &SyntaxError{Msg: "unexpected trailing input", Start: p.index, End: p.index + 1}
	}

	return term, nil
}

type parser struct {
	text  []rune
	index int
}

func (p *parser) parseOne() (SExp, error) {
	p.skipWhitespace()

	if p.index >= len(p.text) {
		return nil, &SyntaxError{Msg: "unexpected end of input", Start: p.index, End: p.index + 1}
	}

	if p.text[p.index] == '(' {
		return p.parseList()
	}

	return p.parseSymbol()
}

func (p *parser) parseList() (SExp, error) {
	start := p.index
	p.index++ // consume '('

	elements := make([]SExp, 0)

	for {
		p.skipWhitespace()

		if p.index >= len(p.text) {
			return nil, &SyntaxError{Msg: "unterminated list", Start: start, End: start + 1}
		}

		if p.text[p.index] == ')' {
			p.index++

			return &List{Elements: elements}, nil
		}

		elem, err := p.parseOne()
		if err != nil {
			return nil, err
		}

		elements = append(elements, elem)
	}
}

func (p *parser) parseSymbol() (SExp, error) {
	start := p.index

	for p.index < len(p.text) && !isDelimiter(p.text[p.index]) {
		p.index++
	}

	if p.index == start {
		return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected character %q", p.text[p.index]), Start: start, End: start + 1}
	}

	return &Symbol{Value: string(p.text[start:p.index])}, nil
}

func (p *parser) skipWhitespace() {
	for p.index < len(p.text) {
		c := p.text[p.index]

		switch {
		case unicode.IsSpace(c):
			p.index++
		case c == ';':
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		default:
			return
		}
	}
}

func isDelimiter(c rune) bool {
	return unicode.IsSpace(c) || c == '(' || c == ')' || c == ';'
}
