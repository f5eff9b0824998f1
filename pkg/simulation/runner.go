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

import (
	"github.com/nervozny/kramnik-nakamura/pkg/streak"
	"github.com/pkg/errors"
)

// Runner sweeps over experiments, sample sizes and win probabilities.
// It does not log; use OnResult to observe progress.
type Runner struct {
	config    Configuration
	src       Source
	observers []func(Result)
}

// NewRunner constructs Runner drawing games from src.
func NewRunner(config Configuration, src Source) *Runner {
	return &Runner{
		config: config,
		src:    src,
	}
}

// OnResult registers a function called with every row right after it is added.
func (r *Runner) OnResult(observer func(Result)) {
	r.observers = append(r.observers, observer)
}

// Run validates configuration and performs the whole sweep.
// Nothing is drawn from the source if configuration is invalid.
func (r *Runner) Run() (*ResultTable, error) {
	if err := r.config.Validate(); err != nil {
		return nil, err
	}
	if r.src == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "random source is required")
	}

	table := newResultTableWithCapacity(r.config.Rows())
	for experiment := 0; experiment < r.config.Experiments; experiment++ {
		for _, sampleSize := range r.config.SampleSizes {
			for _, probability := range r.config.Probabilities {
				games := Trials(r.src, sampleSize, probability)
				streaks, err := streak.CountSequences(games, r.config.RunLength)
				if err != nil {
					return nil, errors.Wrapf(err, "experiment %d, %d games, p=%v", experiment, sampleSize, probability)
				}

				result := Result{
					Experiment:  experiment,
					Streaks:     streaks,
					SampleSize:  sampleSize,
					Probability: probability,
				}
				table.add(result)
				for _, observer := range r.observers {
					observer(result)
				}
			}
		}
	}

	return table, nil
}

// Run performs the sweep described by config using src.
func Run(config Configuration, src Source) (*ResultTable, error) {
	return NewRunner(config, src).Run()
}
