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
	"path"

	"github.com/pkg/errors"
)

const (
	// MasterLogFilename is name of the log file kept in experiment directory.
	MasterLogFilename = "master.log"
	// ResultsFilename is name of the raw results file.
	ResultsFilename = "results.csv"
	// PlotFilename is name of the rendered plot.
	PlotFilename = "streaks.png"
)

// CreateExperimentDir creates <baseDir>/<appName>/<id> and opens master log inside.
// Caller is responsible for closing returned log file.
func CreateExperimentDir(baseDir, appName, id string) (experimentDirectory string, logFile *os.File, err error) {
	if id == "" {
		return "", nil, errors.New("experiment ID cannot be empty")
	}

	experimentDirectory = path.Join(baseDir, appName, id)
	err = os.MkdirAll(experimentDirectory, 0777)
	if err != nil {
		return "", nil, errors.Wrapf(err, "cannot create experiment directory %q", experimentDirectory)
	}

	masterLogFilename := path.Join(experimentDirectory, MasterLogFilename)
	logFile, err = os.OpenFile(masterLogFilename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return "", nil, errors.Wrapf(err, "could not open log file %q", masterLogFilename)
	}

	return experimentDirectory, logFile, nil
}
