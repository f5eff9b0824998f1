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
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

const stringListDelimiter = ","

// StringListVar is a custom kingpin parser which resolves flag's parameters which consists of
// string slice delimited by `stringListDelimiter`.
// For flag defined like this:
// `flag = StringList(kingpin.Flag("flag_name", "help").Short("f"))`
//
// When user would specify options: `-f=A,B -f=" C"` our `flag` variable would be a slice with
// A, B, C items. Surrounding whitespace and empty items are dropped.
type StringListVar []string

// Set parses the input string and appends it to the slice. Implements kingpin.Value.
func (s *StringListVar) Set(value string) error {
	for _, item := range strings.Split(value, stringListDelimiter) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		*s = append(*s, item)
	}
	return nil
}

// String returns string value from StringListVar. Implements kingpin.Value.
func (s *StringListVar) String() string {
	return strings.Join(*s, stringListDelimiter)
}

// IsCumulative implements optional interface (kingpin.repeatableFlag) for flags that can be repeated.
func (s *StringListVar) IsCumulative() bool {
	return true
}

// StringList is a helper for defining kingpin flags.
func StringList(s kingpin.Settings) (target *[]string) {
	target = new([]string)
	s.SetValue((*StringListVar)(target))
	return
}
