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

package main

import (
	"os"

	"github.com/nervozny/kramnik-nakamura/pkg/simulation"
	"github.com/nervozny/kramnik-nakamura/pkg/utils/errutil"
	"github.com/nervozny/kramnik-nakamura/pkg/visualization"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	viewer     = kingpin.New("StreakViewer", "Simple command-line tool for viewing saved winning streaks experiment results.")
	confidence = viewer.Flag("confidence", "Confidence level of the interval [%].").Default("99").String()
	resamples  = viewer.Flag("resamples", "Number of bootstrap resamples.").Default("1000").Int()
	seed       = viewer.Flag("seed", "Seed of bootstrap resampling. 0 picks random one.").Default("0").Uint64()
	runLength  = viewer.Flag("run_length", "Length of the winning streak the results were collected for.").Default("45").Int()

	tableCmd     = viewer.Command("table", "Show summary table of results file")
	tableResults = tableCmd.Arg("results", "Results CSV file").Required().ExistingFile()

	plotCmd     = viewer.Command("plot", "Render plot of results file")
	plotResults = plotCmd.Arg("results", "Results CSV file").Required().ExistingFile()
	plotOutput  = plotCmd.Arg("output", "Output image (png, svg or pdf)").Required().String()
)

func summarize(resultsPath string) ([]visualization.Summary, int, decimal.Decimal, error) {
	level, err := decimal.NewFromString(*confidence)
	if err != nil {
		return nil, 0, decimal.Zero, errors.Wrapf(err, "invalid confidence level %q", *confidence)
	}

	file, err := os.Open(resultsPath)
	if err != nil {
		return nil, 0, decimal.Zero, errors.Wrapf(err, "cannot open %q", resultsPath)
	}
	defer file.Close()

	table, err := visualization.ReadCSV(file)
	if err != nil {
		return nil, 0, decimal.Zero, errors.Wrapf(err, "cannot read %q", resultsPath)
	}

	summaries, err := visualization.Summarize(table, visualization.SummaryConfig{
		Confidence: level,
		Resamples:  *resamples,
		Seed:       *seed,
	})
	return summaries, simulations(table), level, err
}

// simulations returns number of distinct experiments in table.
func simulations(table *simulation.ResultTable) int {
	experiments := map[int]bool{}
	for _, row := range table.Rows() {
		experiments[row.Experiment] = true
	}
	return len(experiments)
}

func showTable() error {
	summaries, _, _, err := summarize(*tableResults)
	if err != nil {
		return err
	}
	return visualization.DrawTable(os.Stdout, summaries)
}

func renderPlot() error {
	summaries, count, level, err := summarize(*plotResults)
	if err != nil {
		return err
	}
	config := visualization.DefaultPlotConfig(*plotOutput)
	config.RunLength = *runLength
	config.Simulations = count
	config.Confidence = level
	return visualization.Plot(summaries, config)
}

// Run via: go run scripts/streak_viewer/main.go
func main() {
	var err error
	switch kingpin.MustParse(viewer.Parse(os.Args[1:])) {
	// Show summary table of results.
	case tableCmd.FullCommand():
		err = showTable()

	// Render plot of results.
	case plotCmd.FullCommand():
		err = renderPlot()
	}
	errutil.Check(err)
}
