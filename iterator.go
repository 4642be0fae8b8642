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

import "fmt"

// Iterator is a cursor over the logical positions 0..Len() of a Deque. It
// holds a non-owning back-reference to the deque plus a generation
// snapshot: mutations that relocate elements or shift the front offset
// (growth, pops, front insertion, Clear) invalidate outstanding iterators,
// and dereferencing a stale one returns ErrInvalidIterator instead of
// reading relocated cells. The zero value is a null sentinel.
//
// An Iterator must not outlive its deque.
type Iterator[T any] struct {
	pos int
	d   *Deque[T]
	gen uint64
}

// Begin returns an iterator at logical position 0.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{pos: 0, d: d, gen: d.gen}
}

// End returns the past-the-end iterator, at position Len(). It is a valid
// bound for traversal but must not be dereferenced.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{pos: d.numElements, d: d, gen: d.gen}
}

func (it Iterator[T]) check() error {
	if it.d == nil {
		return fmt.Errorf("%w: nil deque", ErrInvalidIterator)
	}
	if it.gen != it.d.gen {
		return fmt.Errorf("%w: deque was modified", ErrInvalidIterator)
	}
	return nil
}

// Value returns the element the iterator points at, delegating to the
// owning deque's indexed access.
func (it Iterator[T]) Value() (T, error) {
	if err := it.check(); err != nil {
		var x T
		return x, err
	}
	return it.d.At(it.pos)
}

// Set assigns v to the element the iterator points at.
func (it Iterator[T]) Set(v T) error {
	if err := it.check(); err != nil {
		return err
	}
	return it.d.Set(it.pos, v)
}

// Pos returns the logical position of the iterator.
func (it Iterator[T]) Pos() int {
	return it.pos
}

// Next advances the iterator by one position.
func (it *Iterator[T]) Next() {
	it.pos++
}

// Prev moves the iterator back by one position.
func (it *Iterator[T]) Prev() {
	it.pos--
}

// Add moves the iterator by offset positions, which may be negative.
func (it *Iterator[T]) Add(offset int) {
	it.pos += offset
}

// Equal reports whether both iterators point at the same position of the
// same deque. Iterators of different deques always compare unequal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.d == other.d && it.pos == other.pos
}

// Diff returns the distance in logical positions from other to it. Both
// iterators must refer to the same deque.
func (it Iterator[T]) Diff(other Iterator[T]) (int, error) {
	if it.d != other.d {
		return 0, ErrDequeMismatch
	}
	return it.pos - other.pos, nil
}
