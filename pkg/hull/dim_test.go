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
	"testing"

	"github.com/go-polyhedra/chull/pkg/polytope"
	"github.com/go-polyhedra/chull/pkg/rat"
	"github.com/go-polyhedra/chull/pkg/util/assert"
)

func interval1D(lo, hi int64) polytope.Polyhedron {
	return polytope.NewPolyhedron(1, nil, []rat.Form{
		rat.FromInts(-lo, 1),
		rat.FromInts(hi, -1),
	})
}

func TestHull1DUnionOfTwoIntervals(t *testing.T) {
	u := polytope.NewUnion(1, interval1D(0, 1), interval1D(2, 3))

	h := hull1D(u)

	assert.Equal(t, 2, h.NumInequalities())
	assert.Equal(t, "0", h.Inequality(0).Eval([]rat.Rat{rat.FromInt64(0)}).String())
	assert.Equal(t, "3", h.Inequality(1).Eval([]rat.Rat{rat.FromInt64(0)}).String())
}

func TestHull1DMissingLowerBoundKillsGlobalLower(t *testing.T) {
	onlyUpper := polytope.NewPolyhedron(1, nil, []rat.Form{rat.FromInts(5, -1)})
	u := polytope.NewUnion(1, interval1D(0, 1), onlyUpper)

	h := hull1D(u)

	assert.Equal(t, 1, h.NumInequalities())
	assert.Equal(t, "5", h.Inequality(0).Eval([]rat.Rat{rat.FromInt64(0)}).String())
}

func TestHull0D(t *testing.T) {
	empty := polytope.NewUnion(0, polytope.EmptyPolyhedron(0))
	if !hull0D(empty).IsEmpty() {
		t.Fatalf("expected empty union to hull to the empty polyhedron")
	}

	nonEmpty := polytope.NewUnion(0, polytope.Universe(0))
	if hull0D(nonEmpty).IsEmpty() {
		t.Fatalf("expected non-empty union to hull to the universe")
	}
}
