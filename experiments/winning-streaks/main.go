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
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/nervozny/kramnik-nakamura/pkg/conf"
	"github.com/nervozny/kramnik-nakamura/pkg/experiment"
	"github.com/nervozny/kramnik-nakamura/pkg/experiment/logger"
	"github.com/nervozny/kramnik-nakamura/pkg/simulation"
	"github.com/nervozny/kramnik-nakamura/pkg/utils/errutil"
	"github.com/nervozny/kramnik-nakamura/pkg/visualization"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/cheggaaa/pb.v1"
)

const appName = "winning-streaks"

// runSweep runs all simulations, reporting progress on bar (when given) and in debug log.
func runSweep(config simulation.Configuration, seed uint64, bar *pb.ProgressBar) (*simulation.ResultTable, error) {
	runner := simulation.NewRunner(config, simulation.NewSource(seed))
	runner.OnResult(func(result simulation.Result) {
		logrus.Debugf("Experiment %d: %d streaks in %d games with win probability %v",
			result.Experiment, result.Streaks, result.SampleSize, result.Probability)
		if bar != nil {
			bar.Increment()
		}
	})
	return runner.Run()
}

func saveResults(experimentDirectory string, table *simulation.ResultTable) error {
	resultsPath := path.Join(experimentDirectory, experiment.ResultsFilename)
	file, err := os.Create(resultsPath)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", resultsPath)
	}
	defer file.Close()

	if err := visualization.WriteCSV(file, table); err != nil {
		return errors.Wrapf(err, "cannot save results to %q", resultsPath)
	}
	logrus.Infof("Results saved to %q", resultsPath)
	return nil
}

// Check README.md for details of this experiment.
func main() {
	conf.SetAppName(appName)
	conf.SetHelp(`Winning streaks experiment simulates series of games with a fixed probability of winning a single game
and counts how many winning streaks of given length happen, for various numbers of games played.`)
	experiment.Configure()

	session, err := experiment.NewSession()
	errutil.Check(err)
	fmt.Println(session.ID)

	experimentDirectory, logFile, err := experiment.CreateExperimentDir(experiment.OutputDirFlag.Value(), conf.AppName(), session.ID)
	errutil.CheckWithContext(err, "Cannot create experiment directory")
	defer logFile.Close()
	logger.Initialize(conf.AppName(), session.ID, logFile)
	logrus.Infof("Working directory %q", experimentDirectory)

	config, err := experiment.ConfigurationFromFlags()
	errutil.CheckWithContext(err, "Invalid experiment configuration")
	confidence, err := experiment.ParseConfidence(experiment.ConfidenceFlag.Value())
	errutil.CheckWithContext(err, "Invalid confidence level")

	seed, generated := experiment.SeedFromFlags()
	// Seed flag is signed, same bits are stored to reproduce the run.
	seedFlagValue := strconv.FormatInt(int64(seed), 10)
	if generated {
		logrus.Infof("Using random seed, pass --seed=%s to reproduce this run", seedFlagValue)
	} else {
		logrus.Infof("Using seed %s", seedFlagValue)
	}
	err = experiment.SaveFlags(experimentDirectory, map[string]string{"seed": seedFlagValue})
	errutil.CheckWithContext(err, "Cannot save experiment configuration")
	logrus.Infof("Running %d simulations of %d sample sizes and %d probabilities, streak length %d",
		config.Experiments, len(config.SampleSizes), len(config.Probabilities), config.RunLength)

	var bar *pb.ProgressBar
	if conf.LogLevel() <= logrus.ErrorLevel {
		bar = pb.StartNew(config.Rows())
		bar.ShowCounters = true
		bar.ShowTimeLeft = true
	}
	table, err := runSweep(config, seed, bar)
	if bar != nil {
		bar.Finish()
	}
	errutil.CheckWithContext(err, "Simulation failed")

	if experiment.CSVFlag.Value() {
		errutil.Check(saveResults(experimentDirectory, table))
	}

	summaries, err := visualization.Summarize(table, visualization.SummaryConfig{
		Confidence: confidence,
		Resamples:  experiment.BootstrapResamplesFlag.Value(),
		Seed:       seed,
	})
	errutil.CheckWithContext(err, "Cannot summarize results")

	metadata := visualization.ExperimentMetadata{
		ExperimentID: session.ID,
		Simulations:  config.Experiments,
		RunLength:    config.RunLength,
		Seed:         seed,
		Confidence:   confidence,
	}
	fmt.Println(metadata)
	errutil.Check(visualization.DrawTable(os.Stdout, summaries))

	if experiment.PlotFlag.Value() {
		plotConfig := visualization.DefaultPlotConfig(path.Join(experimentDirectory, experiment.PlotFilename))
		plotConfig.RunLength = config.RunLength
		plotConfig.Simulations = config.Experiments
		plotConfig.Confidence = confidence
		errutil.CheckWithContext(visualization.Plot(summaries, plotConfig), "Cannot render plot")
		logrus.Infof("Plot saved to %q", plotConfig.Path)
	}
}
