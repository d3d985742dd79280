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

// Package rat provides an exact rational scalar and linear-form type used
// throughout the convex hull core. All comparisons and arithmetic are exact;
// there is no floating-point path anywhere in this module.
package rat

import (
	"fmt"
	"math/big"
)

// Rat is an exact rational number held as num/den in lowest terms, with den
// always strictly positive. Values are built with Zero, One, FromInt64 and
// the other constructors; the zero value Rat{} holds nil big.Ints and is not
// a usable rational.
type Rat struct {
	num *big.Int
	den *big.Int
}

// Zero is the rational 0.
func Zero() Rat { return Rat{big.NewInt(0), big.NewInt(1)} }

// One is the rational 1.
func One() Rat { return Rat{big.NewInt(1), big.NewInt(1)} }

// FromInt64 constructs a rational from an integer.
func FromInt64(n int64) Rat {
	return Rat{big.NewInt(n), big.NewInt(1)}
}

// FromBigInt constructs a rational from a big.Int numerator with denominator 1.
func FromBigInt(n *big.Int) Rat {
	return Rat{new(big.Int).Set(n), big.NewInt(1)}
}

// FromFrac constructs a rational num/den, reducing to lowest terms. Panics if
// den is zero.
func FromFrac(num, den *big.Int) Rat {
	if den.Sign() == 0 {
		panic("rat: zero denominator")
	}

	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)

	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	return reduce(n, d)
}

func reduce(n, d *big.Int) Rat {
	if n.Sign() == 0 {
		return Rat{big.NewInt(0), big.NewInt(1)}
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(big.NewInt(1)) != 0 {
		n = new(big.Int).Quo(n, g)
		d = new(big.Int).Quo(d, g)
	}

	return Rat{n, d}
}

// Num returns the numerator in lowest terms.
func (r Rat) Num() *big.Int { return new(big.Int).Set(r.num) }

// Den returns the (strictly positive) denominator in lowest terms.
func (r Rat) Den() *big.Int { return new(big.Int).Set(r.den) }

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int { return r.num.Sign() }

// IsZero reports whether r is exactly zero.
func (r Rat) IsZero() bool { return r.num.Sign() == 0 }

// Neg returns -r.
func (r Rat) Neg() Rat {
	return Rat{new(big.Int).Neg(r.num), new(big.Int).Set(r.den)}
}

// Add returns r+o.
func (r Rat) Add(o Rat) Rat {
	n := new(big.Int).Mul(r.num, o.den)
	m := new(big.Int).Mul(o.num, r.den)
	n.Add(n, m)
	d := new(big.Int).Mul(r.den, o.den)

	return reduce(n, d)
}

// Sub returns r-o.
func (r Rat) Sub(o Rat) Rat { return r.Add(o.Neg()) }

// Mul returns r*o.
func (r Rat) Mul(o Rat) Rat {
	n := new(big.Int).Mul(r.num, o.num)
	d := new(big.Int).Mul(r.den, o.den)

	return reduce(n, d)
}

// Inv returns 1/r. Panics if r is zero.
func (r Rat) Inv() Rat {
	if r.num.Sign() == 0 {
		panic("rat: division by zero")
	}

	n, d := r.den, r.num

	if d.Sign() < 0 {
		n = new(big.Int).Neg(n)
		d = new(big.Int).Neg(d)
	}

	return reduce(new(big.Int).Set(n), new(big.Int).Set(d))
}

// Div returns r/o. Panics if o is zero.
func (r Rat) Div(o Rat) Rat { return r.Mul(o.Inv()) }

// Cmp compares r and o, returning -1, 0, +1.
func (r Rat) Cmp(o Rat) int {
	lhs := new(big.Int).Mul(r.num, o.den)
	rhs := new(big.Int).Mul(o.num, r.den)

	return lhs.Cmp(rhs)
}

// Less reports whether r < o.
func (r Rat) Less(o Rat) bool { return r.Cmp(o) < 0 }

// Equal reports whether r == o.
func (r Rat) Equal(o Rat) bool { return r.Cmp(o) == 0 }

// IsInt reports whether r has denominator 1.
func (r Rat) IsInt() bool { return r.den.Cmp(big.NewInt(1)) == 0 }

// String renders r as "n" when integral, else "n/d".
func (r Rat) String() string {
	if r.IsInt() {
		return r.num.String()
	}

	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}

// Max returns the larger of a and b.
func Max(a, b Rat) Rat {
	if a.Cmp(b) >= 0 {
		return a
	}

	return b
}

// Min returns the smaller of a and b.
func Min(a, b Rat) Rat {
	if a.Cmp(b) <= 0 {
		return a
	}

	return b
}
