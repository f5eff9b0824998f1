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
	"strings"

	"github.com/nervozny/kramnik-nakamura/pkg/simulation"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	rangeDelimiter = "-"
	stepDelimiter  = ":"
)

// isRange tells whether raw looks like from-to:step.
func isRange(raw string) bool {
	return strings.Contains(raw, rangeDelimiter)
}

// parseRange expands inclusive from-to:step range. Step defaults to 1.
// Values are stepped in decimal arithmetic.
func parseRange(raw string) ([]decimal.Decimal, error) {
	bounds, rawStep := raw, "1"
	if i := strings.Index(raw, stepDelimiter); i >= 0 {
		bounds, rawStep = raw[:i], raw[i+1:]
	}

	boundaries := strings.SplitN(bounds, rangeDelimiter, 2)
	from, err := decimal.NewFromString(strings.TrimSpace(boundaries[0]))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid beginning of range %q", raw)
	}
	to, err := decimal.NewFromString(strings.TrimSpace(boundaries[1]))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid end of range %q", raw)
	}
	step, err := decimal.NewFromString(strings.TrimSpace(rawStep))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid step of range %q", raw)
	}

	if !step.IsPositive() {
		return nil, errors.Errorf("step of range %q must be positive", raw)
	}
	if from.GreaterThan(to) {
		return nil, errors.Errorf("range %q is empty", raw)
	}

	values := []decimal.Decimal{}
	for value := from; value.LessThanOrEqual(to); value = value.Add(step) {
		values = append(values, value)
	}
	return values, nil
}

// parseValues turns list of single values and ranges into decimals, keeping order.
func parseValues(items []string) ([]decimal.Decimal, error) {
	values := []decimal.Decimal{}
	for _, raw := range items {
		if isRange(raw) {
			expanded, err := parseRange(raw)
			if err != nil {
				return nil, err
			}
			values = append(values, expanded...)
			continue
		}

		value, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", raw)
		}
		values = append(values, value)
	}
	return values, nil
}

// ParseProbabilities parses win probabilities given as values or ranges.
// Range checks are left to simulation.Configuration.Validate.
func ParseProbabilities(items []string) ([]float64, error) {
	values, err := parseValues(items)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse probabilities")
	}

	probabilities := make([]float64, 0, len(values))
	for _, value := range values {
		probability, _ := value.Float64()
		probabilities = append(probabilities, probability)
	}
	return probabilities, nil
}

// ParseSampleSizes parses numbers of games given as values or ranges.
func ParseSampleSizes(items []string) ([]int, error) {
	values, err := parseValues(items)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse sample sizes")
	}

	sizes := make([]int, 0, len(values))
	for _, value := range values {
		if !value.IsInteger() {
			return nil, errors.Errorf("sample size %s is not a whole number", value)
		}
		sizes = append(sizes, int(value.IntPart()))
	}
	return sizes, nil
}

// ParseConfidence parses confidence level in percent, e.g. "99" or "99.9".
func ParseConfidence(raw string) (decimal.Decimal, error) {
	confidence, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid confidence level %q", raw)
	}
	if !confidence.IsPositive() || confidence.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return decimal.Zero, errors.Errorf("confidence level must be in (0, 100), got %s", confidence)
	}
	return confidence, nil
}

// ConfigurationFromFlags builds sweep configuration from command line flags and environment.
func ConfigurationFromFlags() (simulation.Configuration, error) {
	probabilities, err := ParseProbabilities(ProbabilitiesFlag.Value())
	if err != nil {
		return simulation.Configuration{}, err
	}
	sampleSizes, err := ParseSampleSizes(SampleSizesFlag.Value())
	if err != nil {
		return simulation.Configuration{}, err
	}

	config := simulation.Configuration{
		Experiments:   ExperimentsFlag.Value(),
		Probabilities: probabilities,
		SampleSizes:   sampleSizes,
		RunLength:     RunLengthFlag.Value(),
	}
	return config, config.Validate()
}

// SeedFromFlags returns seed given by the user or a random one.
// The second value tells whether the seed was generated.
func SeedFromFlags() (seed uint64, generated bool) {
	if SeedFlag.Value() != 0 {
		return uint64(SeedFlag.Value()), false
	}
	return simulation.RandomSeed(), true
}
