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
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// configFileFromArgs finds config file given on command line without applying any flag.
// Environment is used when command line does not mention it.
func configFileFromArgs(args []string) string {
	context, err := app.ParseContext(args)
	if err == nil {
		for _, element := range context.Elements {
			clause, ok := element.Clause.(*kingpin.FlagClause)
			if ok && clause == configFileFlag.FlagClause && element.Value != nil {
				return *element.Value
			}
		}
	}
	return os.Getenv(configFileFlag.envName())
}

func loadConfigFile(args []string) error {
	path := configFileFromArgs(args)
	if path == "" {
		return nil
	}
	return LoadFile(path)
}

// LoadFile reads YAML mapping of flag names to values and exports every value
// as environment variable of that flag, unless the variable is already set.
// Lists are joined with comma so they can fill slice flags.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read config file %q", path)
	}

	values := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return errors.Wrapf(err, "cannot parse config file %q", path)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		flag, ok := definedFlags[name]
		if !ok {
			return errors.Errorf("unknown option %q in config file %q", name, path)
		}
		if _, isSet := os.LookupEnv(flag.envName()); isSet {
			continue
		}
		if err := os.Setenv(flag.envName(), fileValue(values[name])); err != nil {
			return errors.Wrapf(err, "cannot export option %q", name)
		}
	}
	return nil
}

func fileValue(value interface{}) string {
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Sprint(value)
	}
	items := make([]string, 0, len(list))
	for _, item := range list {
		items = append(items, fmt.Sprint(item))
	}
	return strings.Join(items, stringListDelimiter)
}
