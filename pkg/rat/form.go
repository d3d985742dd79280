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
package rat

import (
	"bytes"
	"math/big"
)

// Form is a linear form c0 + c1*x1 + ... + cd*xd represented as the ordered
// coefficients [c0,c1,...,cd]. Depending on context a Form stands either for
// an equality "= 0" or an inequality "ge 0". The dimension of a Form is
// len(Form)-1.
type Form []Rat

// NewForm allocates a zero form of dimension d (length d+1).
func NewForm(d uint) Form {
	f := make(Form, d+1)
	for i := range f {
		f[i] = Zero()
	}

	return f
}

// FromInts builds a form from integer coefficients, constant term first.
func FromInts(cs ...int64) Form {
	f := make(Form, len(cs))
	for i, c := range cs {
		f[i] = FromInt64(c)
	}

	return f
}

// Dim returns the ambient dimension of f.
func (f Form) Dim() uint { return uint(len(f)) - 1 }

// Const returns the constant term c0.
func (f Form) Const() Rat { return f[0] }

// Coeff returns the coefficient of variable i (1-indexed: x1..xd).
func (f Form) Coeff(i uint) Rat { return f[i] }

// Clone returns an independent copy of f.
func (f Form) Clone() Form {
	g := make(Form, len(f))
	copy(g, f)

	return g
}

// Eval evaluates f at the point given by env (env[i] is the value of x_{i+1}).
func (f Form) Eval(env []Rat) Rat {
	acc := f.Const()
	for i, c := range f[1:] {
		acc = acc.Add(c.Mul(env[i]))
	}

	return acc
}

// Neg returns -f.
func (f Form) Neg() Form {
	g := make(Form, len(f))
	for i, c := range f {
		g[i] = c.Neg()
	}

	return g
}

// Add returns f+o (must share dimension).
func (f Form) Add(o Form) Form {
	g := make(Form, len(f))
	for i := range f {
		g[i] = f[i].Add(o[i])
	}

	return g
}

// Sub returns f-o (must share dimension).
func (f Form) Sub(o Form) Form {
	g := make(Form, len(f))
	for i := range f {
		g[i] = f[i].Sub(o[i])
	}

	return g
}

// Scale returns f scaled by the rational k.
func (f Form) Scale(k Rat) Form {
	g := make(Form, len(f))
	for i, c := range f {
		g[i] = c.Mul(k)
	}

	return g
}

// IsZero reports whether every coefficient of f is zero.
func (f Form) IsZero() bool {
	for _, c := range f {
		if !c.IsZero() {
			return false
		}
	}

	return true
}

// Normal returns the coefficients [c1..cd] without the constant term, i.e.
// the hyperplane normal of f.
func (f Form) Normal() Form { return f[1:] }

// SameNormal reports whether f and o have linearly dependent normals with the
// same sign (i.e. one is a positive multiple of the other, ignoring the
// constant term). Used to deduplicate facets up to positive scaling.
func (f Form) SameNormal(o Form) bool {
	if len(f) != len(o) {
		return false
	}

	var scale Rat

	haveScale := false

	for i := 1; i < len(f); i++ {
		a, b := f[i], o[i]
		if a.IsZero() != b.IsZero() {
			return false
		}

		if a.IsZero() {
			continue
		}

		k := a.Div(b)
		if !haveScale {
			scale = k
			haveScale = true

			if scale.Sign() <= 0 {
				return false
			}
		} else if !k.Equal(scale) {
			return false
		}
	}

	return true
}

// IntegralForm returns an integer-coefficient form proportional to f by a
// positive scalar, by clearing denominators and dividing through by the gcd
// of the resulting numerators. Scaling a form by a positive integer does not
// change its meaning as an equality or inequality (spec.md sec. 3).
func (f Form) IntegralForm() []big.Int {
	den := big.NewInt(1)
	for _, c := range f {
		den = lcm(den, c.Den())
	}

	nums := make([]*big.Int, len(f))

	for i, c := range f {
		scaled := new(big.Int).Mul(c.Num(), new(big.Int).Quo(den, c.Den()))
		nums[i] = scaled
	}

	g := gcdAll(nums)
	if g.Cmp(big.NewInt(1)) > 0 {
		for i := range nums {
			nums[i] = new(big.Int).Quo(nums[i], g)
		}
	}

	out := make([]big.Int, len(nums))
	for i, n := range nums {
		out[i] = *n
	}

	return out
}

func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	l := new(big.Int).Quo(a, g)

	return l.Mul(l, b)
}

func gcdAll(nums []*big.Int) *big.Int {
	g := big.NewInt(0)
	for _, n := range nums {
		abs := new(big.Int).Abs(n)
		if abs.Sign() == 0 {
			continue
		}

		if g.Sign() == 0 {
			g.Set(abs)
		} else {
			g.GCD(nil, nil, g, abs)
		}
	}

	if g.Sign() == 0 {
		g.SetInt64(1)
	}

	return g
}

// String renders f using x1..xd as variable names, in the style of the
// teacher's pkg/util/poly.String.
func (f Form) String() string {
	var buf bytes.Buffer

	buf.WriteString(f.Const().String())

	for i := 1; i < len(f); i++ {
		c := f[i]
		if c.IsZero() {
			continue
		}

		buf.WriteString("+(")
		buf.WriteString(c.String())
		buf.WriteString("*x")
		fmtInt(&buf, i)
		buf.WriteString(")")
	}

	return buf.String()
}

func fmtInt(buf *bytes.Buffer, i int) {
	buf.WriteString(big.NewInt(int64(i)).String())
}
