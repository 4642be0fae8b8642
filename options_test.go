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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions[int]()
	require.NoError(t, opts.Validate())

	require.Equal(t, DefaultCellsPerBlock, opts.cellsPerBlock)
	require.Equal(t, GrowthGeometric, opts.growth)
	require.NotNil(t, opts.alloc)
}

func TestInvalidOptions(t *testing.T) {
	var nilOpts *Options[int]
	require.ErrorIs(t, nilOpts.Validate(), ErrInvalidOptions)

	err := DefaultOptions[int]().WithCellsPerBlock(0).Validate()
	require.ErrorIs(t, err, ErrInvalidOptions)

	err = DefaultOptions[int]().WithCellsPerBlock(-1).Validate()
	require.ErrorIs(t, err, ErrInvalidOptions)

	err = DefaultOptions[int]().WithAllocator(nil).Validate()
	require.ErrorIs(t, err, ErrInvalidOptions)

	err = DefaultOptions[int]().WithGrowthPolicy(GrowthPolicy(7)).Validate()
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = New[int](DefaultOptions[int]().WithCellsPerBlock(0))
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestOptionsSetters(t *testing.T) {
	opts := DefaultOptions[int]().
		WithCellsPerBlock(8).
		WithGrowthPolicy(GrowthLinear).
		WithAllocator(StdAllocator[int]{})

	require.NoError(t, opts.Validate())
	require.Equal(t, 8, opts.cellsPerBlock)
	require.Equal(t, GrowthLinear, opts.growth)

	d, err := New[int](opts)
	require.NoError(t, err)
	require.Equal(t, 0, d.Len())
}
