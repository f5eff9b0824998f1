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
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/nervozny/kramnik-nakamura/pkg/simulation"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultResamples is number of bootstrap resamples per confidence interval.
const DefaultResamples = 1000

// SummaryConfig controls how confidence intervals are computed.
type SummaryConfig struct {
	// Confidence level in percent, in (0, 100).
	Confidence decimal.Decimal
	// Resamples is number of bootstrap resamples.
	Resamples int
	// Seed of resampling generator. 0 picks random one.
	Seed uint64
}

// DefaultSummaryConfig returns 99% interval from 1000 resamples.
func DefaultSummaryConfig() SummaryConfig {
	return SummaryConfig{
		Confidence: decimal.NewFromInt(99),
		Resamples:  DefaultResamples,
	}
}

// Summary aggregates all experiments of single (sample size, probability) pair.
type Summary struct {
	SampleSize  int
	Probability float64
	Samples     int
	Mean        float64
	StdDev      float64
	// Lower and Upper bound confidence interval of the mean.
	Lower float64
	Upper float64
}

type summaryKey struct {
	sampleSize  int
	probability float64
}

// Summarize groups rows by sample size and win probability and computes mean
// with percentile bootstrap confidence interval for every group.
// Summaries are ordered by sample size and then by probability.
func Summarize(table *simulation.ResultTable, config SummaryConfig) ([]Summary, error) {
	if table == nil {
		return nil, errors.Wrap(simulation.ErrInvalidArgument, "result table cannot be nil")
	}
	if !config.Confidence.IsPositive() || config.Confidence.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return nil, errors.Wrapf(simulation.ErrInvalidArgument, "confidence level must be in (0, 100), got %s", config.Confidence)
	}
	if config.Resamples <= 0 {
		return nil, errors.Wrapf(simulation.ErrInvalidArgument, "number of resamples must be positive, got %d", config.Resamples)
	}

	groups := map[summaryKey][]float64{}
	keys := []summaryKey{}
	for _, row := range table.Rows() {
		key := summaryKey{row.SampleSize, row.Probability}
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], float64(row.Streaks))
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].sampleSize != keys[j].sampleSize {
			return keys[i].sampleSize < keys[j].sampleSize
		}
		return keys[i].probability < keys[j].probability
	})

	seed := config.Seed
	if seed == 0 {
		seed = simulation.RandomSeed()
	}
	src := simulation.NewSource(seed)
	// Tail left out on each side of the interval, in percent.
	tail, _ := decimal.NewFromInt(100).Sub(config.Confidence).Div(decimal.NewFromInt(2)).Float64()

	summaries := make([]Summary, 0, len(keys))
	for _, key := range keys {
		values := groups[key]

		mean, err := stats.Mean(values)
		if err != nil {
			return nil, errors.Wrap(err, "mean computation failed")
		}
		stdev, err := stats.StandardDeviation(values)
		if err != nil {
			return nil, errors.Wrap(err, "standard deviation computation failed")
		}
		lower, upper, err := bootstrapInterval(src, values, config.Resamples, tail)
		if err != nil {
			return nil, errors.Wrapf(err, "confidence interval for %d games with probability %v failed", key.sampleSize, key.probability)
		}

		summaries = append(summaries, Summary{
			SampleSize:  key.sampleSize,
			Probability: key.probability,
			Samples:     len(values),
			Mean:        mean,
			StdDev:      stdev,
			Lower:       lower,
			Upper:       upper,
		})
	}
	return summaries, nil
}

// bootstrapInterval resamples values with replacement and returns percentiles
// of resampled means leaving tail percent on each side.
func bootstrapInterval(src simulation.Source, values []float64, resamples int, tail float64) (lower, upper float64, err error) {
	means := make(stats.Float64Data, resamples)
	resample := make(stats.Float64Data, len(values))
	for i := range means {
		for j := range resample {
			resample[j] = values[pick(src, len(values))]
		}
		means[i], err = resample.Mean()
		if err != nil {
			return 0, 0, err
		}
	}

	lower, err = stats.PercentileNearestRank(means, tail)
	if err != nil {
		return 0, 0, errors.Wrap(err, "lower percentile computation failed")
	}
	upper, err = stats.PercentileNearestRank(means, 100-tail)
	if err != nil {
		return 0, 0, errors.Wrap(err, "upper percentile computation failed")
	}
	return lower, upper, nil
}

// pick returns index in [0, n).
func pick(src simulation.Source, n int) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		return n - 1
	}
	return i
}

// Probabilities returns distinct probabilities present in summaries, ascending.
func Probabilities(summaries []Summary) []float64 {
	seen := map[float64]bool{}
	probabilities := []float64{}
	for _, summary := range summaries {
		if !seen[summary.Probability] {
			seen[summary.Probability] = true
			probabilities = append(probabilities, summary.Probability)
		}
	}
	sort.Float64s(probabilities)
	return probabilities
}

// SampleSizes returns distinct sample sizes present in summaries, ascending.
func SampleSizes(summaries []Summary) []int {
	seen := map[int]bool{}
	sizes := []int{}
	for _, summary := range summaries {
		if !seen[summary.SampleSize] {
			seen[summary.SampleSize] = true
			sizes = append(sizes, summary.SampleSize)
		}
	}
	sort.Ints(sizes)
	return sizes
}
