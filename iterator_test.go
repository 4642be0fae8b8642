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

func TestIteratorTraversal(t *testing.T) {
	d, err := New[int](nil)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		d.PushBack(i)
	}

	var got []int
	for it := d.Begin(); !it.Equal(d.End()); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
	}

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestIteratorBackwardTraversal(t *testing.T) {
	d, err := New[int](nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		d.PushBack(i)
	}

	var got []int
	for it := d.End(); !it.Equal(d.Begin()); {
		it.Prev()

		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
	}

	require.Equal(t, []int{4, 3, 2, 1, 0}, got)
}

func TestIteratorArithmetic(t *testing.T) {
	d, err := New[int](nil)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		d.PushBack(i * 10)
	}

	it := d.Begin()
	it.Add(3)
	require.Equal(t, 3, it.Pos())

	v, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, 30, v)

	it.Add(-2)
	v, err = it.Value()
	require.NoError(t, err)
	require.Equal(t, 10, v)

	diff, err := d.End().Diff(d.Begin())
	require.NoError(t, err)
	require.Equal(t, d.Len(), diff)
}

func TestIteratorSet(t *testing.T) {
	d, err := New[int](nil)
	require.NoError(t, err)

	d.PushBack(1)
	d.PushBack(2)

	it := d.Begin()
	it.Next()

	require.NoError(t, it.Set(42))

	v, err := d.At(1)
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestIteratorEndIsNotDereferenceable(t *testing.T) {
	d, err := New[int](nil)
	require.NoError(t, err)

	d.PushBack(1)

	_, err = d.End().Value()
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestIteratorZeroValue(t *testing.T) {
	var it Iterator[int]

	_, err := it.Value()
	require.ErrorIs(t, err, ErrInvalidIterator)

	err = it.Set(1)
	require.ErrorIs(t, err, ErrInvalidIterator)
}

func TestIteratorInvalidation(t *testing.T) {
	d, err := New[int](nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		d.PushBack(i)
	}

	it := d.Begin()

	_, err = d.PopFront()
	require.NoError(t, err)

	_, err = it.Value()
	require.ErrorIs(t, err, ErrInvalidIterator)

	it = d.Begin()
	d.PushFront(0)

	_, err = it.Value()
	require.ErrorIs(t, err, ErrInvalidIterator)

	it = d.Begin()
	d.Clear()

	_, err = it.Value()
	require.ErrorIs(t, err, ErrInvalidIterator)
}

func TestIteratorSurvivesPushBackWithoutGrowth(t *testing.T) {
	d, err := New[int](nil)
	require.NoError(t, err)

	d.PushBack(1)

	it := d.Begin()

	// capacity is 16 cells, no reallocation happens here
	d.PushBack(2)

	v, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestIteratorInvalidatedByGrowth(t *testing.T) {
	opts := DefaultOptions[int]().WithCellsPerBlock(4)

	d, err := New[int](opts)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		d.PushBack(i)
	}

	it := d.Begin()

	d.PushBack(4) // triggers reallocation

	_, err = it.Value()
	require.ErrorIs(t, err, ErrInvalidIterator)
}

func TestIteratorsOfDifferentDeques(t *testing.T) {
	d1, err := New[int](nil)
	require.NoError(t, err)

	d2, err := New[int](nil)
	require.NoError(t, err)

	require.False(t, d1.Begin().Equal(d2.Begin()))

	_, err = d1.Begin().Diff(d2.Begin())
	require.ErrorIs(t, err, ErrDequeMismatch)
}
