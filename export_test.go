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

// White-box accessors compiled into test builds only.

func (d *Deque[T]) FrontOffset() int {
	return d.frontOffset
}

func (d *Deque[T]) BlockCount() int {
	return len(d.blocks)
}

func (d *Deque[T]) AllocatedBlocks() int {
	n := 0
	for _, b := range d.blocks {
		if b != nil {
			n++
		}
	}
	return n
}

func (d *Deque[T]) Generation() uint64 {
	return d.gen
}

func (d *Deque[T]) Reallocate(newBlockCount int) error {
	return d.reallocate(newBlockCount)
}
