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
package matrix

import (
	"testing"

	"github.com/go-polyhedra/chull/pkg/rat"
	"github.com/go-polyhedra/chull/pkg/util/assert"
)

func row(cs ...int64) []rat.Rat {
	r := make([]rat.Rat, len(cs))
	for i, c := range cs {
		r[i] = rat.FromInt64(c)
	}

	return r
}

func TestProductAndApplyRow(t *testing.T) {
	m := FromRows(row(1, 2), row(3, 4))
	v := row(1, 1)

	out := m.ApplyRow(v)
	assert.Equal(t, "3", out[0].String())
	assert.Equal(t, "7", out[1].String())

	id := Identity(2)
	p := m.Product(id)
	assert.Equal(t, m.At(0, 0).String(), p.At(0, 0).String())
	assert.Equal(t, m.At(1, 1).String(), p.At(1, 1).String())
}

func TestDropRowAndCol(t *testing.T) {
	m := FromRows(row(1, 2, 3), row(4, 5, 6), row(7, 8, 9))

	noRow := m.DropRow(1)
	assert.Equal(t, uint(2), noRow.Rows())
	assert.Equal(t, "7", noRow.At(1, 0).String())

	noCol := m.DropCol(1)
	assert.Equal(t, uint(2), noCol.Cols())
	assert.Equal(t, "3", noCol.At(0, 1).String())
}

func TestCopyOnWrite(t *testing.T) {
	m := FromRows(row(1, 2))
	n := m.Set(0, 0, rat.FromInt64(99))

	assert.Equal(t, "1", m.At(0, 0).String())
	assert.Equal(t, "99", n.At(0, 0).String())
}

func TestRightInverseOfNoEqualities(t *testing.T) {
	eqs := New(0, 3)
	u, q, free, ok := RightInverse(eqs, 2)

	if !ok {
		t.Fatalf("expected success with no equalities")
	}

	assert.Equal(t, 2, len(free))

	// u should be the identity embedding: applying it to (1,5,6) gives (1,5,6).
	out := u.ApplyRow(row(1, 5, 6))
	assert.Equal(t, "5", out[1].String())
	assert.Equal(t, "6", out[2].String())

	back := q.ApplyRow(out)
	assert.Equal(t, "5", back[1].String())
	assert.Equal(t, "6", back[2].String())
}

func TestRightInverseEliminatesOneEquality(t *testing.T) {
	// x1 - 2*x2 + 3 = 0, i.e. x1 = 2*x2 - 3.
	eqs := FromRows(row(3, 1, -2))
	u, q, free, ok := RightInverse(eqs, 2)

	if !ok {
		t.Fatalf("expected linearly independent equality to succeed")
	}

	assert.Equal(t, 1, len(free))
	assert.Equal(t, uint(2), free[0])

	// y = 4 => x2 = 4, x1 = 2*4-3 = 5.
	out := u.ApplyRow(row(1, 4))
	assert.Equal(t, "5", out[1].String())
	assert.Equal(t, "4", out[2].String())

	back := q.ApplyRow(out)
	assert.Equal(t, "4", back[1].String())
}

func TestRightInverseRejectsDependentEqualities(t *testing.T) {
	eqs := FromRows(row(0, 1, 1), row(0, 2, 2))

	_, _, _, ok := RightInverse(eqs, 2)
	if ok {
		t.Fatalf("expected linearly dependent equalities to be rejected")
	}
}

func TestPreimage(t *testing.T) {
	eqs := FromRows(row(3, 1, -2))
	u, _, _, _ := RightInverse(eqs, 2)

	// g(x) = x1 + x2, pulled back through u should give 2*y-3+y = 3*y-3.
	g := row(0, 1, 1)
	pulled := PreimageOne(g, u)

	assert.Equal(t, "-3", pulled[0].String())
	assert.Equal(t, "3", pulled[1].String())
}

func TestNullSpaceOfIdentityIsTrivial(t *testing.T) {
	basis := NullSpace(Identity(3))
	assert.Equal(t, 0, len(basis))
}

func TestNullSpaceOfZeroRowsIsWholeSpace(t *testing.T) {
	basis := NullSpace(New(0, 2))
	assert.Equal(t, 2, len(basis))
}

func TestNullSpaceOfSingleEquation(t *testing.T) {
	// x - 2y = 0 has null space spanned by (2,1).
	basis := NullSpace(FromRows(row(1, -2)))
	assert.Equal(t, 1, len(basis))
	assert.Equal(t, "2", basis[0][0].String())
	assert.Equal(t, "1", basis[0][1].String())
}
