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
	"github.com/nervozny/kramnik-nakamura/pkg/utils/err_collection"
	"github.com/pkg/errors"
)

const (
	// DefaultRunLength is the streak length looked for when none is given.
	DefaultRunLength = 45
	// DefaultExperiments is the number of sweep repetitions when none is given.
	DefaultExperiments = 10
)

// ErrInvalidArgument is the cause of every configuration error.
var ErrInvalidArgument = streak.ErrInvalidArgument

// Configuration - set of parameters to control the sweep.
type Configuration struct {
	// Number of repetitions of the whole sweep.
	Experiments int
	// Win probabilities of a single game, each in (0, 1). Iterated in order.
	Probabilities []float64
	// Number of games per sequence. Iterated in order.
	SampleSizes []int
	// Length of the streak to count.
	RunLength int
}

// DefaultSampleSizes returns 100, 200, ..., 1000.
func DefaultSampleSizes() []int {
	sizes := make([]int, 0, 10)
	for n := 100; n <= 1000; n += 100 {
		sizes = append(sizes, n)
	}
	return sizes
}

// DefaultProbabilities returns the win probabilities swept by default.
func DefaultProbabilities() []float64 {
	return []float64{0.85, 0.92, 0.95, 0.97}
}

// DefaultConfiguration returns configuration used when caller does not specify any.
func DefaultConfiguration() Configuration {
	return Configuration{
		Experiments:   DefaultExperiments,
		Probabilities: DefaultProbabilities(),
		SampleSizes:   DefaultSampleSizes(),
		RunLength:     DefaultRunLength,
	}
}

// Rows returns the number of results a sweep with this configuration produces.
func (c Configuration) Rows() int {
	return c.Experiments * len(c.SampleSizes) * len(c.Probabilities)
}

// Validate reports every problem with the configuration at once.
// Returned error has ErrInvalidArgument as its cause.
func (c Configuration) Validate() error {
	var problems errcollection.ErrorCollection

	if c.Experiments <= 0 {
		problems.Addf("number of experiments must be positive, got %d", c.Experiments)
	}
	if c.RunLength <= 0 {
		problems.Addf("run length must be positive, got %d", c.RunLength)
	}
	if len(c.SampleSizes) == 0 {
		problems.Addf("at least one sample size is required")
	}
	for _, size := range c.SampleSizes {
		if size <= 0 {
			problems.Addf("sample size must be positive, got %d", size)
		}
	}
	if len(c.Probabilities) == 0 {
		problems.Addf("at least one win probability is required")
	}
	for _, p := range c.Probabilities {
		// Negated form also rejects NaN.
		if !(p > 0 && p < 1) {
			problems.Addf("win probability must be in (0, 1), got %v", p)
		}
	}

	if err := problems.GetErrIfAny(); err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}
	return nil
}
