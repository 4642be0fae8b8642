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

// Deque is a double-ended queue backed by a block map: an array of
// fixed-size blocks addressed through a wrapping front offset. Insertion
// and removal at either end never shifts stored elements, and indexed
// access is O(1). Blocks are allocated the first time a cell inside them
// is used and released once they hold no live element.
//
// A Deque is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own locking.
type Deque[T any] struct {
	alloc Allocator[T]

	cellsPerBlock int
	growth        GrowthPolicy

	blocks      [][]T
	numElements int
	frontOffset int

	// gen is bumped by every mutation that relocates elements or shifts
	// the front offset; outstanding iterators snapshot it, see iterator.go.
	gen uint64
}

// New returns an empty deque. No block storage is allocated until the
// first push. A nil opts selects DefaultOptions.
func New[T any](opts *Options[T]) (*Deque[T], error) {
	if opts == nil {
		opts = DefaultOptions[T]()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Deque[T]{
		alloc:         opts.alloc,
		cellsPerBlock: opts.cellsPerBlock,
		growth:        opts.growth,
	}, nil
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.numElements
}

// IsEmpty returns whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.numElements == 0
}

// Cap returns the number of cells the current block map can hold before
// the next reallocation.
func (d *Deque[T]) Cap() int {
	return d.rawCap()
}

func (d *Deque[T]) rawCap() int {
	return len(d.blocks) * d.cellsPerBlock
}

// rawSlot maps logical index i to its position in the flat array of
// len(blocks)*cellsPerBlock cells. The live range may wrap past the end.
func (d *Deque[T]) rawSlot(i int) int {
	return (d.frontOffset + i) % d.rawCap()
}

// slot returns a pointer to the cell backing logical index i, allocating
// the owning block on first use.
func (d *Deque[T]) slot(i int) *T {
	raw := d.rawSlot(i)

	ib := raw / d.cellsPerBlock
	ic := raw % d.cellsPerBlock

	if d.blocks[ib] == nil {
		d.blocks[ib] = make([]T, d.cellsPerBlock)
		metricsBlocksAllocated.Inc()
	}
	return &d.blocks[ib][ic]
}

// Front returns the element at logical index 0.
func (d *Deque[T]) Front() (T, error) {
	if d.numElements == 0 {
		var x T
		return x, ErrEmptyDeque
	}
	return *d.slot(0), nil
}

// Back returns the element at logical index Len()-1.
func (d *Deque[T]) Back() (T, error) {
	if d.numElements == 0 {
		var x T
		return x, ErrEmptyDeque
	}
	return *d.slot(d.numElements - 1), nil
}

// At returns the element at logical index i.
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.numElements {
		var x T
		return x, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, d.numElements)
	}
	return *d.slot(i), nil
}

// Set assigns v to the element at logical index i.
func (d *Deque[T]) Set(i int, v T) error {
	if i < 0 || i >= d.numElements {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, d.numElements)
	}
	*d.slot(i) = v
	return nil
}

// PushBack appends v at the back of the deque, growing the block map if
// the deque is at capacity.
func (d *Deque[T]) PushBack(v T) {
	d.growIfFull()

	d.alloc.Construct(d.slot(d.numElements), v)
	d.numElements++
}

// PushFront inserts v at the front of the deque, growing the block map if
// the deque is at capacity. The front offset moves one cell backwards,
// wrapping past cell 0, so existing elements stay in place.
func (d *Deque[T]) PushFront(v T) {
	d.growIfFull()

	d.frontOffset = (d.frontOffset - 1 + d.rawCap()) % d.rawCap()
	d.alloc.Construct(d.slot(0), v)

	d.numElements++
	d.gen++
}

func (d *Deque[T]) growIfFull() {
	if d.numElements < d.rawCap() {
		return
	}

	newBlockCount := len(d.blocks) + 1
	if d.growth == GrowthGeometric && len(d.blocks) > 0 {
		newBlockCount = 2 * len(d.blocks)
	}

	// capacity strictly grows, so reallocate cannot fail here
	_ = d.reallocate(newBlockCount)
}

// PopFront removes and returns the element at logical index 0, destroying
// its cell through the allocator.
func (d *Deque[T]) PopFront() (T, error) {
	if d.numElements == 0 {
		var x T
		return x, ErrEmptyDeque
	}

	s := d.slot(0)
	x := *s
	d.alloc.Destroy(s)

	ib := d.rawSlot(0) / d.cellsPerBlock

	d.frontOffset = (d.frontOffset + 1) % d.rawCap()
	d.numElements--
	d.gen++

	d.releaseIfUnused(ib)

	return x, nil
}

// PopBack removes and returns the element at logical index Len()-1,
// destroying its cell through the allocator.
func (d *Deque[T]) PopBack() (T, error) {
	if d.numElements == 0 {
		var x T
		return x, ErrEmptyDeque
	}

	s := d.slot(d.numElements - 1)
	x := *s
	d.alloc.Destroy(s)

	ib := d.rawSlot(d.numElements-1) / d.cellsPerBlock

	d.numElements--
	d.gen++

	d.releaseIfUnused(ib)

	return x, nil
}

func (d *Deque[T]) releaseIfUnused(ib int) {
	if d.blocks[ib] == nil || d.blockInUse(ib) {
		return
	}

	d.blocks[ib] = nil
	metricsBlocksReleased.Inc()
}

// blockInUse reports whether any live element maps into block ib. The live
// raw range [frontOffset, frontOffset+numElements) may wrap.
func (d *Deque[T]) blockInUse(ib int) bool {
	if d.numElements == 0 {
		return false
	}

	first := d.frontOffset
	last := (d.frontOffset + d.numElements - 1) % d.rawCap()

	bFirst := ib * d.cellsPerBlock
	bLast := bFirst + d.cellsPerBlock - 1

	if first <= last {
		return bFirst <= last && bLast >= first
	}
	return bLast >= first || bFirst <= last
}

// Clear destroys every element and releases all block storage. Clearing an
// empty deque is a no-op.
func (d *Deque[T]) Clear() {
	for i := 0; i < d.numElements; i++ {
		d.alloc.Destroy(d.slot(i))
	}

	for ib := range d.blocks {
		if d.blocks[ib] != nil {
			metricsBlocksReleased.Inc()
		}
	}

	d.blocks = nil
	d.numElements = 0
	d.frontOffset = 0
	d.gen++
}

// Clone returns an independent copy of the deque. Elements are copied in
// logical order into a fresh block map, so mutating either deque never
// affects the other. The copy starts with a zero front offset.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{
		alloc:         d.alloc,
		cellsPerBlock: d.cellsPerBlock,
		growth:        d.growth,
	}

	if d.numElements > 0 {
		_ = c.reallocate(d.blocksFor(d.numElements))
	}

	for i := 0; i < d.numElements; i++ {
		c.PushBack(*d.slot(i))
	}
	return c
}

// CopyFrom makes the deque an element-for-element copy of rhs: the common
// prefix is overwritten in place, surplus source elements are appended
// through the regular growth path, and surplus destination elements are
// popped and destroyed. Len() always equals rhs.Len() afterwards.
func (d *Deque[T]) CopyFrom(rhs *Deque[T]) error {
	if rhs == nil {
		return fmt.Errorf("%w: nil source deque", ErrIllegalArguments)
	}

	if d == rhs {
		return nil
	}

	n := d.numElements
	if rhs.numElements < n {
		n = rhs.numElements
	}

	for i := 0; i < n; i++ {
		*d.slot(i) = *rhs.slot(i)
	}

	for i := n; i < rhs.numElements; i++ {
		d.PushBack(*rhs.slot(i))
	}

	for d.numElements > rhs.numElements {
		if _, err := d.PopBack(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Deque[T]) blocksFor(n int) int {
	return (n + d.cellsPerBlock - 1) / d.cellsPerBlock
}

// reallocate replaces the block map with one of newBlockCount blocks and
// re-homes every live element, in logical order, starting at raw cell 0.
// Elements wrapping past the end of the old raw array are migrated cell by
// cell through the slot translation, never with a flat block-pointer copy.
// On failure no deque state changes.
func (d *Deque[T]) reallocate(newBlockCount int) error {
	if newBlockCount <= 0 || newBlockCount*d.cellsPerBlock < d.numElements {
		return fmt.Errorf("%w: cannot fit %d elements in %d blocks of %d cells",
			ErrIllegalArguments, d.numElements, newBlockCount, d.cellsPerBlock)
	}

	newBlocks := make([][]T, newBlockCount)

	for i := 0; i < d.numElements; i++ {
		ib := i / d.cellsPerBlock

		if newBlocks[ib] == nil {
			newBlocks[ib] = make([]T, d.cellsPerBlock)
			metricsBlocksAllocated.Inc()
		}
		newBlocks[ib][i%d.cellsPerBlock] = *d.slot(i)
	}

	for ib := range d.blocks {
		if d.blocks[ib] != nil {
			metricsBlocksReleased.Inc()
		}
	}

	d.blocks = newBlocks
	d.frontOffset = 0
	d.gen++

	metricsReallocations.Inc()

	return nil
}
