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
	"testing"

	"github.com/nervozny/kramnik-nakamura/pkg/conf"
	"github.com/nervozny/kramnik-nakamura/pkg/simulation"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseProbabilities(t *testing.T) {
	Convey("When parsing probabilities", t, func() {
		Convey("Single values are kept in order", func() {
			probabilities, err := ParseProbabilities([]string{"0.97", "0.85"})
			So(err, ShouldBeNil)
			So(probabilities, ShouldResemble, []float64{0.97, 0.85})
		})

		Convey("Range is inclusive and does not drift", func() {
			probabilities, err := ParseProbabilities([]string{"0.85-0.97:0.04"})
			So(err, ShouldBeNil)
			So(probabilities, ShouldResemble, []float64{0.85, 0.89, 0.93, 0.97})

			probabilities, err = ParseProbabilities([]string{"0.1-0.2:0.01"})
			So(err, ShouldBeNil)
			So(probabilities, ShouldHaveLength, 11)
			So(probabilities[10], ShouldEqual, 0.2)
		})

		Convey("Values and ranges can be mixed", func() {
			probabilities, err := ParseProbabilities([]string{"0.5", "0.9-0.95:0.05"})
			So(err, ShouldBeNil)
			So(probabilities, ShouldResemble, []float64{0.5, 0.9, 0.95})
		})

		Convey("Garbage is rejected", func() {
			_, err := ParseProbabilities([]string{"high"})
			So(err, ShouldNotBeNil)
		})

		Convey("Range with non positive step is rejected", func() {
			_, err := ParseProbabilities([]string{"0.1-0.2:0"})
			So(err, ShouldNotBeNil)
		})

		Convey("Reversed range is rejected", func() {
			_, err := ParseProbabilities([]string{"0.9-0.1:0.1"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseSampleSizes(t *testing.T) {
	Convey("When parsing sample sizes", t, func() {
		Convey("Default range gives ten sizes", func() {
			sizes, err := ParseSampleSizes([]string{"100-1000:100"})
			So(err, ShouldBeNil)
			So(sizes, ShouldResemble, simulation.DefaultSampleSizes())
		})

		Convey("Range without step uses step of one", func() {
			sizes, err := ParseSampleSizes([]string{"3-5"})
			So(err, ShouldBeNil)
			So(sizes, ShouldResemble, []int{3, 4, 5})
		})

		Convey("Range which does not hit its end stops before it", func() {
			sizes, err := ParseSampleSizes([]string{"10-35:10"})
			So(err, ShouldBeNil)
			So(sizes, ShouldResemble, []int{10, 20, 30})
		})

		Convey("Fractions are rejected", func() {
			_, err := ParseSampleSizes([]string{"10.5"})
			So(err, ShouldNotBeNil)
		})

		Convey("Negative values are rejected", func() {
			// Leading minus is read as range delimiter.
			_, err := ParseSampleSizes([]string{"-10"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseConfidence(t *testing.T) {
	Convey("When parsing confidence level", t, func() {
		Convey("Percentages in (0, 100) are accepted", func() {
			confidence, err := ParseConfidence("99")
			So(err, ShouldBeNil)
			So(confidence.Equal(decimal.NewFromInt(99)), ShouldBeTrue)

			confidence, err = ParseConfidence(" 99.9 ")
			So(err, ShouldBeNil)
			So(confidence.String(), ShouldEqual, "99.9")
		})

		Convey("Bounds and garbage are rejected", func() {
			for _, raw := range []string{"0", "100", "-5", "150", "ninety"} {
				_, err := ParseConfidence(raw)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestConfigurationFromFlags(t *testing.T) {
	Convey("When building configuration from flags", t, func() {
		unset := func() {
			for _, name := range []string{"EXPERIMENTS", "PROBABILITIES", "SAMPLE_SIZES", "RUN_LENGTH", "SEED"} {
				os.Unsetenv("STREAKS_" + name)
			}
		}
		unset()
		defer unset()

		Convey("Defaults give default configuration", func() {
			So(conf.ParseEnv(), ShouldBeNil)
			config, err := ConfigurationFromFlags()
			So(err, ShouldBeNil)
			So(config, ShouldResemble, simulation.DefaultConfiguration())
		})

		Convey("Environment overrides defaults", func() {
			os.Setenv("STREAKS_EXPERIMENTS", "3")
			os.Setenv("STREAKS_PROBABILITIES", "0.5,0.6")
			os.Setenv("STREAKS_SAMPLE_SIZES", "10,20-40:10")
			os.Setenv("STREAKS_RUN_LENGTH", "4")
			So(conf.ParseEnv(), ShouldBeNil)

			config, err := ConfigurationFromFlags()
			So(err, ShouldBeNil)
			So(config.Experiments, ShouldEqual, 3)
			So(config.Probabilities, ShouldResemble, []float64{0.5, 0.6})
			So(config.SampleSizes, ShouldResemble, []int{10, 20, 30, 40})
			So(config.RunLength, ShouldEqual, 4)
		})

		Convey("Invalid values are reported as invalid argument", func() {
			os.Setenv("STREAKS_PROBABILITIES", "1.5")
			So(conf.ParseEnv(), ShouldBeNil)

			_, err := ConfigurationFromFlags()
			So(err, ShouldNotBeNil)
			So(errors.Cause(err), ShouldEqual, simulation.ErrInvalidArgument)
		})

		Convey("Seed given by user is kept", func() {
			os.Setenv("STREAKS_SEED", "42")
			So(conf.ParseEnv(), ShouldBeNil)

			seed, generated := SeedFromFlags()
			So(seed, ShouldEqual, uint64(42))
			So(generated, ShouldBeFalse)
		})

		Convey("Zero seed gets replaced by random one", func() {
			So(conf.ParseEnv(), ShouldBeNil)

			seed, generated := SeedFromFlags()
			So(seed, ShouldNotEqual, uint64(0))
			So(generated, ShouldBeTrue)
		})
	})
}
