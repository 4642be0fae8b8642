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

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"

	"github.com/codenotary/blockdeque"
)

type result struct {
	scenario string
	ops      int
	finalLen int
	elapsed  time.Duration
}

func runScenario(name string, ops, cells int, growth blockdeque.GrowthPolicy) (*result, error) {
	opts := blockdeque.DefaultOptions[int]().
		WithCellsPerBlock(cells).
		WithGrowthPolicy(growth)

	d, err := blockdeque.New[int](opts)
	if err != nil {
		return nil, err
	}

	bar := progressbar.New(ops)

	start := time.Now()

	for i := 0; i < ops; i++ {
		switch name {
		case "fifo":
			if i%2 == 0 || d.IsEmpty() {
				d.PushBack(i)
			} else if _, err := d.PopFront(); err != nil {
				return nil, err
			}
		case "lifo":
			if i%2 == 0 || d.IsEmpty() {
				d.PushBack(i)
			} else if _, err := d.PopBack(); err != nil {
				return nil, err
			}
		case "mixed":
			switch {
			case i%4 == 0:
				d.PushBack(i)
			case i%4 == 1:
				d.PushFront(i)
			case i%4 == 2 && !d.IsEmpty():
				_, err = d.PopFront()
			case i%4 == 3 && !d.IsEmpty():
				_, err = d.PopBack()
			}
			if err != nil {
				return nil, err
			}
		case "wrap":
			// a bounded window of front insertions keeps the front offset
			// marching backwards through the raw array
			d.PushFront(i)
			if d.Len() > 4*cells {
				if _, err := d.PopBack(); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("unknown scenario %q", name)
		}

		if i%1024 == 0 {
			_ = bar.Add(1024)
		}
	}

	elapsed := time.Since(start)

	_ = bar.Finish()
	fmt.Println()

	return &result{
		scenario: name,
		ops:      ops,
		finalLen: d.Len(),
		elapsed:  elapsed,
	}, nil
}

func main() {
	var (
		ops          int
		cells        int
		linearGrowth bool
		scenarios    []string
	)

	cmd := &cobra.Command{
		Use:   "blockdeque-stress",
		Short: "Runs push/pop workloads against the block-map deque",
		RunE: func(cmd *cobra.Command, args []string) error {
			growth := blockdeque.GrowthGeometric
			if linearGrowth {
				growth = blockdeque.GrowthLinear
			}

			results := make([]*result, 0, len(scenarios))

			for _, s := range scenarios {
				color.New(color.FgGreen, color.Bold).Printf("Running %s scenario (%d ops)...\n", s, ops)

				res, err := runScenario(s, ops, cells, growth)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Scenario", "Ops", "Final Length", "Duration", "Ops/s"})

			for _, r := range results {
				table.Append([]string{
					r.scenario,
					strconv.Itoa(r.ops),
					strconv.Itoa(r.finalLen),
					r.elapsed.Round(time.Millisecond).String(),
					fmt.Sprintf("%.0f", float64(r.ops)/r.elapsed.Seconds()),
				})
			}
			table.Render()

			return nil
		},
	}

	cmd.Flags().IntVar(&ops, "ops", 1_000_000, "number of operations per scenario")
	cmd.Flags().IntVar(&cells, "cells-per-block", blockdeque.DefaultCellsPerBlock, "cells per storage block")
	cmd.Flags().BoolVar(&linearGrowth, "linear-growth", false, "grow one block at a time instead of doubling")
	cmd.Flags().StringSliceVar(&scenarios, "scenarios", []string{"fifo", "lifo", "mixed", "wrap"}, "scenarios to run")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
