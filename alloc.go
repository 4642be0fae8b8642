/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package blockdeque

// Allocator is the per-element construction strategy of a Deque. Construct
// places a value into an unoccupied cell; Destroy releases whatever the
// cell holds. Every pushed element is constructed exactly once and
// destroyed exactly once, either by a pop, a truncating CopyFrom or Clear.
type Allocator[T any] interface {
	Construct(cell *T, v T)
	Destroy(cell *T)
}

// StdAllocator is the default allocator: assignment on construct, zeroing
// on destroy so released cells hold no references.
type StdAllocator[T any] struct{}

func (StdAllocator[T]) Construct(cell *T, v T) {
	*cell = v
}

func (StdAllocator[T]) Destroy(cell *T) {
	var zero T
	*cell = zero
}
