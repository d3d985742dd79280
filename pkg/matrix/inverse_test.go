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

func TestInverseRoundTrips(t *testing.T) {
	m := FromRows(row(1, 0, 0), row(1, 1, 0), row(0, 2, 1))

	inv, ok := Inverse(m)
	assert.True(t, ok)

	id := m.Product(inv)

	for i := uint(0); i < 3; i++ {
		for j := uint(0); j < 3; j++ {
			want := rat.Zero()
			if i == j {
				want = rat.One()
			}

			assert.True(t, id.At(i, j).Equal(want))
		}
	}
}

func TestInverseDetectsSingular(t *testing.T) {
	m := FromRows(row(1, 2), row(2, 4))

	_, ok := Inverse(m)
	assert.False(t, ok)
}

func TestInverseNonSquareRejected(t *testing.T) {
	m := FromRows(row(1, 2, 3), row(4, 5, 6))

	_, ok := Inverse(m)
	assert.False(t, ok)
}
