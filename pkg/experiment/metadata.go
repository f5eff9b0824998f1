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
	"strings"

	"github.com/nervozny/kramnik-nakamura/pkg/conf"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FlagsFilename is name of the file with flags of an experiment run.
// It has format of conf config file, so it can be passed back with --config_file.
const FlagsFilename = "flags.yaml"

// SaveFlags stores current values of flags in experiment directory.
// Values in overrides replace current ones, e.g. with seed picked at random.
func SaveFlags(experimentDirectory string, overrides map[string]string) error {
	flags := map[string]string{}
	for name, value := range conf.GetFlags() {
		// Flags with dash are actions and empty values are defaults of conf itself.
		if strings.Contains(name, "-") || value == "" {
			continue
		}
		flags[name] = value
	}
	for name, value := range overrides {
		flags[name] = value
	}

	data, err := yaml.Marshal(flags)
	if err != nil {
		return errors.Wrap(err, "cannot serialize flags")
	}

	flagsPath := path.Join(experimentDirectory, FlagsFilename)
	if err := os.WriteFile(flagsPath, data, 0644); err != nil {
		return errors.Wrapf(err, "cannot write flags to %q", flagsPath)
	}
	return nil
}

// LoadFlags reads flags stored by SaveFlags.
func LoadFlags(experimentDirectory string) (map[string]string, error) {
	flagsPath := path.Join(experimentDirectory, FlagsFilename)
	data, err := os.ReadFile(flagsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read flags of experiment from %q", flagsPath)
	}

	flags := map[string]string{}
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return nil, errors.Wrapf(err, "cannot parse flags in %q", flagsPath)
	}
	return flags, nil
}

// ExperimentDirectory returns directory of experiment with given ID created by current application.
func ExperimentDirectory(id string) string {
	return path.Join(OutputDirFlag.Value(), conf.AppName(), id)
}
