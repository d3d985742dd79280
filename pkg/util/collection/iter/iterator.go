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

// Iterator abstracts the process of visiting a sequence of elements one at a
// time.
type Iterator[T any] interface {
	// HasNext checks whether or not there are any items remaining to visit.
	HasNext() bool

	// Next returns the next item, and advances the iterator.
	Next() T
}
