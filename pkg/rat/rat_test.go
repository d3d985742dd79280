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
	"math/big"
	"testing"

	"github.com/go-polyhedra/chull/pkg/util/assert"
)

func TestArithmetic(t *testing.T) {
	a := FromFrac(big.NewInt(1), big.NewInt(2))
	b := FromFrac(big.NewInt(1), big.NewInt(3))

	assert.Equal(t, "5/6", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/6", a.Mul(b).String())
	assert.Equal(t, "3/2", a.Div(b).String())
}

func TestReducesToLowestTerms(t *testing.T) {
	r := FromFrac(big.NewInt(4), big.NewInt(8))
	assert.Equal(t, "1/2", r.String())
}

func TestNegativeDenominatorNormalised(t *testing.T) {
	r := FromFrac(big.NewInt(1), big.NewInt(-2))
	assert.Equal(t, "-1/2", r.String())
	assert.Equal(t, 1, r.Den().Cmp(big.NewInt(0)))
}

func TestCmp(t *testing.T) {
	a := FromFrac(big.NewInt(2), big.NewInt(3))
	b := FromFrac(big.NewInt(3), big.NewInt(4))

	if !a.Less(b) {
		t.Fatalf("expected %v < %v", a, b)
	}

	if a.Equal(b) {
		t.Fatalf("did not expect %v == %v", a, b)
	}
}

func TestFormEvalAndIntegralForm(t *testing.T) {
	f := Form{FromFrac(big.NewInt(1), big.NewInt(2)), FromFrac(big.NewInt(1), big.NewInt(3)), One()}
	env := []Rat{FromInt64(6), FromInt64(1)}
	// 1/2 + (1/3 * 6) + (1 * 1) = 1/2 + 2 + 1 = 7/2
	assert.Equal(t, "7/2", f.Eval(env).String())

	ints := f.IntegralForm()
	// clearing denominators (lcm 6) gives [3, 2, 6], gcd 1
	assert.Equal(t, "3", ints[0].String())
	assert.Equal(t, "2", ints[1].String())
	assert.Equal(t, "6", ints[2].String())
}

func TestSameNormal(t *testing.T) {
	f := FromInts(0, 1, 2)
	g := FromInts(-5, 2, 4)
	h := FromInts(0, -1, -2)

	if !f.SameNormal(g) {
		t.Fatalf("expected %v and %v to share a normal", f, g)
	}

	if f.SameNormal(h) {
		t.Fatalf("did not expect %v and %v (opposite sign) to share a normal", f, h)
	}
}
