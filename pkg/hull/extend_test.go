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

func TestHyperplaneKeyIgnoresPositiveScaling(t *testing.T) {
	a := rat.FromInts(0, 1, 1)
	b := rat.FromInts(0, 2, 2)

	assert.Equal(t, hyperplaneKey(a), hyperplaneKey(b))
}

func TestHyperplaneKeyDistinguishesDifferentHyperplanes(t *testing.T) {
	a := rat.FromInts(0, 1, 0)
	b := rat.FromInts(0, 0, 1)

	assert.False(t, hyperplaneKey(a) == hyperplaneKey(b))
}

func TestHyperplaneKeyDistinguishesOppositeOrientation(t *testing.T) {
	a := rat.FromInts(0, 1, 0)
	b := rat.FromInts(0, -1, 0)

	assert.False(t, hyperplaneKey(a) == hyperplaneKey(b))
}

// TestWrapBoundedHullOfOverlappingSquares exercises the full
// extend/computeFacet/wrapFacet BFS on a case simple enough to pin down the
// exact facet count: wrapBoundedHull (entered here via two overlapping 2x2
// squares forcing a real wrap) must discover exactly the facets bounding
// the rectangle [0,3]x[0,2] formed by their union's hull.
func TestWrapBoundedHullOfOverlappingSquares(t *testing.T) {
	a := box2D(0, 2, 0, 2)
	b := box2D(1, 3, 0, 2)
	s := polytope.NewUnion(2, a, b)

	h, err := wrapBoundedHull(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range [][2]int64{{0, 0}, {3, 0}, {0, 2}, {3, 2}, {1, 1}, {2, 1}} {
		assert.True(t, contains(h, pt(p[0], p[1])))
	}

	assert.False(t, contains(h, pt(4, 0)))
	assert.False(t, contains(h, pt(0, 3)))

	// This union's hull is itself a rectangle: exactly 4 facets.
	assert.Equal(t, 4, h.NumInequalities())
}
