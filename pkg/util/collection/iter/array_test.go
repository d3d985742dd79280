// Copyright Consensys Software Inc.
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
package iter

import "testing"

func Test_ArrayIterator_Empty(t *testing.T) {
	it := NewArrayIterator[int](nil)
	if it.HasNext() {
		t.Errorf("expected no items")
	}
}

func Test_ArrayIterator_Visits_All_In_Order(t *testing.T) {
	items := []int{3, 1, 4, 1, 5}
	it := NewArrayIterator(items)

	for i, want := range items {
		if !it.HasNext() {
			t.Fatalf("expected item %d, got none", i)
		}

		if got := it.Next(); got != want {
			t.Errorf("item %d: expected %d, got %d", i, want, got)
		}
	}

	if it.HasNext() {
		t.Errorf("expected iterator to be drained")
	}
}
