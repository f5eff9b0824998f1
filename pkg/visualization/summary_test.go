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
	"testing"

	"github.com/nervozny/kramnik-nakamura/pkg/simulation"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func testTable() *simulation.ResultTable {
	return simulation.NewResultTable(
		simulation.Result{Experiment: 0, Streaks: 2, SampleSize: 200, Probability: 0.9},
		simulation.Result{Experiment: 0, Streaks: 1, SampleSize: 100, Probability: 0.9},
		simulation.Result{Experiment: 0, Streaks: 0, SampleSize: 100, Probability: 0.5},
		simulation.Result{Experiment: 1, Streaks: 4, SampleSize: 200, Probability: 0.9},
		simulation.Result{Experiment: 1, Streaks: 3, SampleSize: 100, Probability: 0.9},
		simulation.Result{Experiment: 1, Streaks: 0, SampleSize: 100, Probability: 0.5},
	)
}

func TestSummarize(t *testing.T) {
	Convey("When summarizing result table", t, func() {
		config := DefaultSummaryConfig()
		config.Seed = 7

		summaries, err := Summarize(testTable(), config)
		So(err, ShouldBeNil)

		Convey("There is one summary per sample size and probability, ordered", func() {
			So(summaries, ShouldHaveLength, 3)
			So(summaries[0].SampleSize, ShouldEqual, 100)
			So(summaries[0].Probability, ShouldEqual, 0.5)
			So(summaries[1].SampleSize, ShouldEqual, 100)
			So(summaries[1].Probability, ShouldEqual, 0.9)
			So(summaries[2].SampleSize, ShouldEqual, 200)
		})

		Convey("Mean and standard deviation are computed per group", func() {
			So(summaries[1].Samples, ShouldEqual, 2)
			So(summaries[1].Mean, ShouldEqual, 2.0)
			So(summaries[1].StdDev, ShouldEqual, 1.0)
			So(summaries[2].Mean, ShouldEqual, 3.0)
		})

		Convey("Interval contains mean and stays within observed values", func() {
			for _, summary := range summaries {
				So(summary.Lower, ShouldBeLessThanOrEqualTo, summary.Mean)
				So(summary.Upper, ShouldBeGreaterThanOrEqualTo, summary.Mean)
			}
			So(summaries[1].Lower, ShouldBeGreaterThanOrEqualTo, 1.0)
			So(summaries[1].Upper, ShouldBeLessThanOrEqualTo, 3.0)
		})

		Convey("Constant group has degenerate interval", func() {
			So(summaries[0].Lower, ShouldEqual, 0.0)
			So(summaries[0].Upper, ShouldEqual, 0.0)
		})

		Convey("Same seed gives same intervals", func() {
			again, err := Summarize(testTable(), config)
			So(err, ShouldBeNil)
			So(again, ShouldResemble, summaries)
		})

		Convey("Lower confidence gives narrower interval", func() {
			rows := []simulation.Result{}
			for i := 0; i < 50; i++ {
				rows = append(rows, simulation.Result{Experiment: i, Streaks: i % 7, SampleSize: 100, Probability: 0.9})
			}
			table := simulation.NewResultTable(rows...)

			wide, err := Summarize(table, config)
			So(err, ShouldBeNil)
			config.Confidence = decimal.NewFromInt(50)
			narrow, err := Summarize(table, config)
			So(err, ShouldBeNil)

			So(narrow[0].Upper-narrow[0].Lower, ShouldBeLessThan, wide[0].Upper-wide[0].Lower)
		})

		Convey("Empty table gives no summaries", func() {
			empty, err := Summarize(simulation.NewResultTable(), config)
			So(err, ShouldBeNil)
			So(empty, ShouldBeEmpty)
		})

		Convey("Invalid configuration is rejected", func() {
			for _, confidence := range []int64{0, 100, -1} {
				config.Confidence = decimal.NewFromInt(confidence)
				_, err := Summarize(testTable(), config)
				So(errors.Cause(err), ShouldEqual, simulation.ErrInvalidArgument)
			}

			config = DefaultSummaryConfig()
			config.Resamples = 0
			_, err := Summarize(testTable(), config)
			So(errors.Cause(err), ShouldEqual, simulation.ErrInvalidArgument)

			_, err = Summarize(nil, DefaultSummaryConfig())
			So(errors.Cause(err), ShouldEqual, simulation.ErrInvalidArgument)
		})
	})
}

func TestDistinctValues(t *testing.T) {
	Convey("Distinct probabilities and sample sizes are sorted", t, func() {
		summaries := []Summary{
			{SampleSize: 300, Probability: 0.97},
			{SampleSize: 100, Probability: 0.85},
			{SampleSize: 300, Probability: 0.85},
		}
		So(Probabilities(summaries), ShouldResemble, []float64{0.85, 0.97})
		So(SampleSizes(summaries), ShouldResemble, []int{100, 300})
	})
}
