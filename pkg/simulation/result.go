// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simulation

// Result is a single row of the sweep: number of streaks found in one
// sequence of SampleSize games won with given Probability.
type Result struct {
	Experiment  int
	Streaks     int
	SampleSize  int
	Probability float64
}

// ResultTable holds sweep results in insertion order (experiment, then
// sample size, then probability). Rows are never modified once added.
type ResultTable struct {
	rows []Result
}

// NewResultTable returns a table holding copies of given rows.
func NewResultTable(rows ...Result) *ResultTable {
	table := &ResultTable{rows: make([]Result, len(rows))}
	copy(table.rows, rows)
	return table
}

func newResultTableWithCapacity(capacity int) *ResultTable {
	return &ResultTable{rows: make([]Result, 0, capacity)}
}

func (t *ResultTable) add(result Result) {
	t.rows = append(t.rows, result)
}

// Len returns number of rows.
func (t *ResultTable) Len() int {
	return len(t.rows)
}

// At returns i-th row.
func (t *ResultTable) At(i int) Result {
	return t.rows[i]
}

// Rows returns a copy of all rows.
func (t *ResultTable) Rows() []Result {
	rows := make([]Result, len(t.rows))
	copy(rows, t.rows)
	return rows
}
