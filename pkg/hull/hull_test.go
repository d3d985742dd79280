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

// contains reports whether env satisfies every equality/inequality of h,
// generalising fm_test.go's 1-D inRange to arbitrary dimension.
func contains(h polytope.Polyhedron, env []rat.Rat) bool {
	for _, e := range h.Equalities() {
		if !e.Eval(env).IsZero() {
			return false
		}
	}

	for _, c := range h.Inequalities() {
		if c.Eval(env).Sign() < 0 {
			return false
		}
	}

	return true
}

func pt(xs ...int64) []rat.Rat {
	env := make([]rat.Rat, len(xs))
	for i, x := range xs {
		env[i] = rat.FromInt64(x)
	}

	return env
}

// box2D returns the axis-aligned rectangle [xlo,xhi] x [ylo,yhi].
func box2D(xlo, xhi, ylo, yhi int64) polytope.Polyhedron {
	return polytope.NewPolyhedron(2, nil, []rat.Form{
		rat.FromInts(-xlo, 1, 0),
		rat.FromInts(xhi, -1, 0),
		rat.FromInts(-ylo, 0, 1),
		rat.FromInts(yhi, 0, -1),
	})
}

func point2D(x, y int64) polytope.Polyhedron {
	return polytope.NewPolyhedron(2, []rat.Form{
		rat.FromInts(-x, 1, 0),
		rat.FromInts(-y, 0, 1),
	}, nil)
}

// E1: {x=0} union {x=2} hulls to the interval 0<=x<=2.
func TestScenarioE1TwoPointsHullToInterval(t *testing.T) {
	left := polytope.NewPolyhedron(1, []rat.Form{rat.FromInts(0, 1)}, nil)
	right := polytope.NewPolyhedron(1, []rat.Form{rat.FromInts(-2, 1)}, nil)
	u := polytope.NewUnion(1, left, right)

	h, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, x := range []int64{0, 1, 2} {
		assert.True(t, contains(h, pt(x)))
	}

	assert.False(t, contains(h, pt(-1)))
	assert.False(t, contains(h, pt(3)))
}

// E2: the hull of two overlapping 2x2 squares contains both squares and
// every point of their bounding diagonal span.
func TestScenarioE2TwoSquares(t *testing.T) {
	a := box2D(0, 2, 0, 2)
	b := box2D(1, 3, 1, 3)
	u := polytope.NewUnion(2, a, b)

	h, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range [][2]int64{{0, 0}, {2, 0}, {0, 2}, {2, 2}, {1, 1}, {3, 3}, {1, 3}, {3, 1}} {
		assert.True(t, contains(h, pt(p[0], p[1])))
	}

	assert.False(t, contains(h, pt(10, 10)))
}

// E3: a triangle unioned with its point reflection through the origin
// hulls to a hexagon-like region containing both triangles and their
// convex combinations.
func TestScenarioE3TriangleAndReflection(t *testing.T) {
	tri := polytope.NewPolyhedron(2, nil, []rat.Form{
		rat.FromInts(0, 1, 0),   // x >= 0
		rat.FromInts(0, 0, 1),   // y >= 0
		rat.FromInts(2, -1, -1), // x + y <= 2
	})
	refl := polytope.NewPolyhedron(2, nil, []rat.Form{
		rat.FromInts(0, -1, 0),
		rat.FromInts(0, 0, -1),
		rat.FromInts(2, 1, 1),
	})
	u := polytope.NewUnion(2, tri, refl)

	h, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range [][2]int64{{0, 0}, {2, 0}, {0, 2}, {-2, 0}, {0, -2}, {1, 1}, {-1, -1}} {
		assert.True(t, contains(h, pt(p[0], p[1])))
	}
}

// E4: {x>=0} union {x<=0} hulls to the whole real line (the universe).
func TestScenarioE4ComplementaryHalflinesHullToUniverse(t *testing.T) {
	right := polytope.NewPolyhedron(1, nil, []rat.Form{rat.FromInts(0, 1)})
	left := polytope.NewPolyhedron(1, nil, []rat.Form{rat.FromInts(0, -1)})
	u := polytope.NewUnion(1, right, left)

	h, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, 0, h.NumInequalities())
	assert.Equal(t, 0, h.NumEqualities())
	assert.False(t, h.IsEmpty())
}

// E5: two rays along the positive axes hull to the first quadrant.
func TestScenarioE5TwoRaysHullToQuadrant(t *testing.T) {
	xAxis := polytope.NewPolyhedron(2, []rat.Form{rat.FromInts(0, 0, 1)}, []rat.Form{rat.FromInts(0, 1, 0)})
	yAxis := polytope.NewPolyhedron(2, []rat.Form{rat.FromInts(0, 1, 0)}, []rat.Form{rat.FromInts(0, 0, 1)})
	u := polytope.NewUnion(2, xAxis, yAxis)

	h, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range [][2]int64{{0, 0}, {5, 0}, {0, 5}, {3, 3}} {
		assert.True(t, contains(h, pt(p[0], p[1])))
	}

	assert.False(t, contains(h, pt(-1, 0)))
	assert.False(t, contains(h, pt(0, -1)))
}

// E6: the union of a single empty polyhedron hulls to EMPTY.
func TestScenarioE6EmptyUnionHullsToEmpty(t *testing.T) {
	u := polytope.NewUnion(2, polytope.EmptyPolyhedron(2))

	h, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.True(t, h.IsEmpty())
}

// Property: every member of the input union is contained in the hull.
func TestPropertyHullContainsEveryMember(t *testing.T) {
	a := box2D(0, 1, 0, 1)
	b := box2D(2, 3, 5, 6)
	u := polytope.NewUnion(2, a, b)

	h, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	corners := [][2]int64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {2, 5}, {3, 5}, {2, 6}, {3, 6}}
	for _, p := range corners {
		assert.True(t, contains(h, pt(p[0], p[1])))
	}
}

// Property: the hull is invariant under reordering the union's members.
func TestPropertyHullInvariantUnderMemberReorder(t *testing.T) {
	a := box2D(0, 1, 0, 1)
	b := box2D(2, 3, 0, 1)
	c := box2D(1, 2, 2, 3)

	forward, err := ConvexHull(polytope.NewUnion(2, a, b, c))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	backward, err := ConvexHull(polytope.NewUnion(2, c, b, a))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range [][2]int64{{0, 0}, {3, 1}, {1, 2}, {2, 3}, {10, 10}, {-5, -5}} {
		assert.Equal(t, contains(forward, pt(p[0], p[1])), contains(backward, pt(p[0], p[1])))
	}
}

// Property: a single already-convex polyhedron is its own hull.
func TestPropertyHullOfSingleMemberIsItself(t *testing.T) {
	a := box2D(0, 4, 0, 4)
	u := polytope.NewUnion(2, a)

	h, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range [][2]int64{{0, 0}, {4, 4}, {2, 2}} {
		assert.True(t, contains(h, pt(p[0], p[1])))
	}

	assert.False(t, contains(h, pt(5, 5)))
}

// SimpleHull must be a superset of the true convex hull.
func TestPropertySimpleHullOverapproximatesConvexHull(t *testing.T) {
	a := box2D(0, 2, 0, 2)
	b := box2D(1, 3, 1, 3)
	u := polytope.NewUnion(2, a, b)

	exact, err := ConvexHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	simple, err := SimpleHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for x := int64(-1); x <= 4; x++ {
		for y := int64(-1); y <= 4; y++ {
			if contains(exact, pt(x, y)) {
				assert.True(t, contains(simple, pt(x, y)))
			}
		}
	}
}

func TestSimpleHullOfEmptyUnionIsEmpty(t *testing.T) {
	u := polytope.NewUnion(2, polytope.EmptyPolyhedron(2))

	h, err := SimpleHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.True(t, h.IsEmpty())
}

func TestSimpleHullOfSinglePointIsThatPoint(t *testing.T) {
	u := polytope.NewUnion(2, point2D(1, 1))

	h, err := SimpleHull(u)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.True(t, contains(h, pt(1, 1)))
	assert.False(t, contains(h, pt(2, 2)))
}
