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

package experiment

import (
	"os"

	"github.com/nervozny/kramnik-nakamura/pkg/conf"
	"github.com/nervozny/kramnik-nakamura/pkg/simulation"
)

// Sweep flags. "Flag" is appended to variable name by convention.
var (
	// ExperimentsFlag is the number of repetitions of the whole sweep.
	ExperimentsFlag = conf.NewIntFlag("experiments", "Number of simulations of every sample size and win probability pair", simulation.DefaultExperiments)
	// ProbabilitiesFlag lists win probabilities; ranges like 0.85-0.97:0.04 are accepted.
	ProbabilitiesFlag = conf.NewSliceFlag("probabilities", "Probabilities of winning a single game, each in (0, 1). Accepts ranges: from-to:step", "0.85", "0.92", "0.95", "0.97")
	// SampleSizesFlag lists numbers of games; ranges like 100-1000:100 are accepted.
	SampleSizesFlag = conf.NewSliceFlag("sample_sizes", "Numbers of games played in a single simulation. Accepts ranges: from-to:step", "100-1000:100")
	// RunLengthFlag is the length of a winning streak.
	RunLengthFlag = conf.NewIntFlag("run_length", "Length of the winning streak to count", simulation.DefaultRunLength)
	// SeedFlag makes the simulation reproducible when not zero.
	SeedFlag = conf.NewIntFlag("seed", "Seed of the random generator. 0 picks a random seed which is logged.", 0)

	// ConfidenceFlag is the confidence level of the bands in percent.
	ConfidenceFlag = conf.NewStringFlag("confidence", "Confidence level of the interval drawn around the mean [%]", "99")
	// BootstrapResamplesFlag is the number of bootstrap resamples per interval.
	BootstrapResamplesFlag = conf.NewIntFlag("bootstrap_resamples", "Number of bootstrap resamples used to compute confidence interval", 1000)

	// OutputDirFlag is where experiment directories are created.
	OutputDirFlag = conf.NewStringFlag("output_dir", "Directory where experiment directory (logs, results, plot) is created", os.TempDir())
	// PlotFlag enables PNG plot.
	PlotFlag = conf.NewBoolFlag("plot", "Render plot of streaks versus games played", true)
	// CSVFlag enables saving raw results.
	CSVFlag = conf.NewBoolFlag("csv", "Save raw results as CSV", true)
)
