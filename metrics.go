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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Only structural events are counted, never individual pushes or pops.

var metricsReallocations = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blockdeque_reallocations_total",
	Help: "Number of block-map reallocations since the process was started",
})

var metricsBlocksAllocated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blockdeque_blocks_allocated_total",
	Help: "Number of element blocks allocated since the process was started",
})

var metricsBlocksReleased = promauto.NewCounter(prometheus.CounterOpts{
	Name: "blockdeque_blocks_released_total",
	Help: "Number of element blocks released since the process was started",
})
