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
	"fmt"
	"os"

	"github.com/nervozny/kramnik-nakamura/pkg/conf"
	"github.com/nervozny/kramnik-nakamura/pkg/utils/errutil"
	"github.com/sirupsen/logrus"
)

// ExUsage is exit code for command line usage errors (see sysexits.h).
const ExUsage = 64

var (
	// DumpConfigFlag name includes dash to excluded it from dumping.
	dumpConfigFlag = conf.NewBoolFlag("config-dump", "Dump configuration as environment script.", false)

	// DumpConfigExperimentIDFlag name includes dash to excluded it from dumping.
	dumpConfigExperimentIDFlag = conf.NewStringFlag("config-dump-experiment-id", "Dump configuration of previous experiment with given ID.", "")
)

// Configure handles configuration parsing, generation and restoration based on config-* flags.
// Note: exits if configuration generation was requested or flags are malformed.
func Configure() {
	err := conf.ParseFlags()
	if err != nil {
		logrus.Errorf("Cannot parse flags: %q", err.Error())
		os.Exit(ExUsage)
	}
	logrus.SetLevel(conf.LogLevel())

	if dumpConfigFlag.Value() {
		fmt.Println(conf.DumpConfig())
		os.Exit(0)
	}

	if previousExperimentID := dumpConfigExperimentIDFlag.Value(); previousExperimentID != "" {
		flags, err := LoadFlags(ExperimentDirectory(previousExperimentID))
		errutil.CheckWithContextf(err, "Cannot restore configuration of experiment %q", previousExperimentID)
		fmt.Println(conf.DumpConfigMap(flags))
		os.Exit(0)
	}
}
