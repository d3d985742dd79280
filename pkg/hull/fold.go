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

import "github.com/go-polyhedra/chull/pkg/polytope"

// iteratedPairwiseHull implements spec.md sec. 4.5: folds pairwiseFMHull
// across every non-empty member of s. Order does not affect the result, as
// Minkowski sum is associative and commutative.
func iteratedPairwiseHull(s polytope.Union) (polytope.Polyhedron, error) {
	members := s.NonEmptyMembers()
	d := s.Dim()

	if len(members) == 0 {
		return polytope.EmptyPolyhedron(d), nil
	}

	acc := members[0]

	for _, m := range members[1:] {
		var err error

		acc, err = pairwiseFMHull(d, acc, m)
		if err != nil {
			return polytope.Polyhedron{}, err
		}
	}

	return acc, nil
}
