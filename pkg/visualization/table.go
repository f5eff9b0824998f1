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

package visualization

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// DrawTable draws one row per sample size and one column per win probability.
// Each cell holds mean number of streaks and its confidence interval.
func DrawTable(w io.Writer, summaries []Summary) error {
	probabilities := Probabilities(summaries)
	sizes := SampleSizes(summaries)

	headers := []string{"Games"}
	for _, probability := range probabilities {
		headers = append(headers, "p="+formatProbability(probability))
	}

	cells := map[summaryKey]Summary{}
	for _, summary := range summaries {
		cells[summaryKey{summary.SampleSize, summary.Probability}] = summary
	}

	output := tablewriter.NewWriter(w)
	output.SetAutoFormatHeaders(false)
	output.SetHeader(headers)
	for _, size := range sizes {
		row := []string{strconv.Itoa(size)}
		for _, probability := range probabilities {
			summary, ok := cells[summaryKey{size, probability}]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, formatCell(summary))
		}
		output.Append(row)
	}
	output.Render()
	return nil
}

func formatCell(summary Summary) string {
	return fmt.Sprintf("%.2f [%.2f, %.2f]", summary.Mean, summary.Lower, summary.Upper)
}

func formatProbability(probability float64) string {
	return strconv.FormatFloat(probability, 'f', -1, 64)
}
