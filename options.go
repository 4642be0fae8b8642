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

const DefaultCellsPerBlock = 16

type GrowthPolicy int

const (
	// GrowthGeometric doubles the block count on every reallocation,
	// giving amortized O(1) pushes.
	GrowthGeometric GrowthPolicy = iota

	// GrowthLinear adds one block per reallocation. A long run of pushes
	// pays a full migration per block, O(n^2) overall; only useful when
	// the allocation pattern itself matters more than throughput.
	GrowthLinear
)

type Options[T any] struct {
	cellsPerBlock int
	growth        GrowthPolicy
	alloc         Allocator[T]
}

func DefaultOptions[T any]() *Options[T] {
	return &Options[T]{
		cellsPerBlock: DefaultCellsPerBlock,
		growth:        GrowthGeometric,
		alloc:         StdAllocator[T]{},
	}
}

// WithCellsPerBlock sets the fixed block capacity, constant for the
// deque's lifetime.
func (opts *Options[T]) WithCellsPerBlock(cellsPerBlock int) *Options[T] {
	opts.cellsPerBlock = cellsPerBlock
	return opts
}

func (opts *Options[T]) WithGrowthPolicy(growth GrowthPolicy) *Options[T] {
	opts.growth = growth
	return opts
}

func (opts *Options[T]) WithAllocator(alloc Allocator[T]) *Options[T] {
	opts.alloc = alloc
	return opts
}

func (opts *Options[T]) Validate() error {
	if opts == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidOptions)
	}

	if opts.cellsPerBlock < 1 {
		return fmt.Errorf("%w: invalid cells per block %d", ErrInvalidOptions, opts.cellsPerBlock)
	}

	if opts.growth != GrowthGeometric && opts.growth != GrowthLinear {
		return fmt.Errorf("%w: invalid growth policy", ErrInvalidOptions)
	}

	if opts.alloc == nil {
		return fmt.Errorf("%w: nil allocator", ErrInvalidOptions)
	}

	return nil
}
