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

package conf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "STREAKS"

var (
	app = kingpin.New("streaks", "No help available")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error", // Default Error log level.
	)
	configFileFlag = NewStringFlag(
		"config_file",
		"YAML file with flag values. Command line and environment take precedence over it.",
		"",
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parse both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	return errors.Wrap(parse(os.Args[1:]), "could not parse command line flags")
}

// ParseEnv parse the environment (and config file given there) for arguments.
func ParseEnv() error {
	return errors.Wrap(parse([]string{}), "could not parse environment flags")
}

func parse(args []string) error {
	if err := loadConfigFile(args); err != nil {
		return err
	}

	// Cumulative flags would otherwise keep values from previous parse.
	for _, name := range flagOrder {
		definedFlags[name].reset()
	}

	if _, err := app.Parse(args); err != nil {
		return err
	}
	isEnvParsed = true
	return nil
}

// DumpConfig dumps environment based configuration with current values of flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values overwritten by given flagMap.
// Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export are values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, name := range flagOrder {
		// Flags with dash are actions (e.g. config-dump) and have no place in configuration.
		if strings.Contains(name, "-") {
			continue
		}
		flag := definedFlags[name]

		fmt.Fprintf(buffer, "\n# %s\n", flag.help())
		if flag.defaultString() != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", flag.defaultString())
		}

		// Override current values with provided from flagMap.
		value := flag.valueString()
		if mapValue, ok := flagMap[name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s=%v\n", flag.envName(), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, name := range flagOrder {
		flagsMap[name] = definedFlags[name].valueString()
	}
	return flagsMap
}
