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
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag should have method for creating `envName` from its name and `clear` method
// for clearing corresponding environment variable from env.
type flagType interface {
	envName() string
	clear()
	reset()
	help() string
	defaultString() string
	valueString() string
}

// definedFlags is a package variable which stores all the defined flags. It helps to find
// duplicates when defining flag with the same name.
var definedFlags = map[string]flagType{}

// flagOrder keeps registration order, which logically groups flags in dumps.
var flagOrder []string

func register(name string, flag flagType) {
	definedFlags[name] = flag
	flagOrder = append(flagOrder, name)
	isEnvParsed = false
}

// cliAndEnvFlag represents option's definition from CLI and Environment variable.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValues ...string) *cliAndEnvFlag {
	if definedFlags[flagName] != nil {
		panic(fmt.Sprintf("flag %q was already defined", flagName))
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())

	for _, defaultValue := range defaultValues {
		if defaultValue == "" {
			continue
		}
		c.Default(defaultValue)
	}

	return c
}

// envName returns name converted to environment variable name.
// In order to create environment variable name from flag we need to make it uppercase
// and add prefix. For instance: "run_length" will be "STREAKS_RUN_LENGTH".
func (f *cliAndEnvFlag) envName() string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(f.Model().Name))
}

// clear unset the corresponded environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

func (f *cliAndEnvFlag) reset() {}

func (f *cliAndEnvFlag) help() string {
	return f.Model().Help
}

func (f *cliAndEnvFlag) defaultString() string {
	return strings.Join(f.Model().Default, ",")
}

// checkRedefinition returns previously defined flag of type T with the same name and default.
func checkRedefinition(flagName string, sameDefault func(flagType) bool) flagType {
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag == nil {
		return nil
	}
	if !sameDefault(duplicatedFlag) {
		panic(fmt.Sprintf("flag %q was redefined with different type or default value", flagName))
	}
	return duplicatedFlag
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	if flag := checkRedefinition(flagName, func(f flagType) bool {
		s, ok := f.(*StringFlag)
		return ok && s.defaultValue == defaultValue
	}); flag != nil {
		return flag.(*StringFlag)
	}

	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.String()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

func (s StringFlag) valueString() string {
	return s.Value()
}

// IntFlag represents flag with int value.
type IntFlag struct {
	*cliAndEnvFlag
	defaultValue int
	value        *int
}

// NewIntFlag is a constructor of IntFlag struct.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	if flag := checkRedefinition(flagName, func(f flagType) bool {
		i, ok := f.(*IntFlag)
		return ok && i.defaultValue == defaultValue
	}); flag != nil {
		return flag.(*IntFlag)
	}

	flagDef := &IntFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.Itoa(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Int()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (i IntFlag) Value() int {
	if !isEnvParsed {
		return i.defaultValue
	}

	return *i.value
}

func (i IntFlag) valueString() string {
	return strconv.Itoa(i.Value())
}

// SliceFlag represents flag with slice value.
// Values can be given many times or delimited by comma.
type SliceFlag struct {
	*cliAndEnvFlag
	defaultValue []string
	value        *[]string
}

// NewSliceFlag is a constructor of SliceFlag struct.
func NewSliceFlag(flagName string, description string, elemsInDefaultSlice ...string) *SliceFlag {
	if flag := checkRedefinition(flagName, func(f flagType) bool {
		s, ok := f.(*SliceFlag)
		return ok && strings.Join(s.defaultValue, stringListDelimiter) == strings.Join(elemsInDefaultSlice, stringListDelimiter)
	}); flag != nil {
		return flag.(*SliceFlag)
	}

	flagDef := &SliceFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strings.Join(elemsInDefaultSlice, stringListDelimiter)),
		defaultValue:  elemsInDefaultSlice,
	}
	flagDef.value = StringList(flagDef)
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s SliceFlag) Value() []string {
	if !isEnvParsed {
		return append([]string{}, s.defaultValue...)
	}

	return append([]string{}, (*s.value)...)
}

func (s SliceFlag) reset() {
	*s.value = (*s.value)[:0]
}

func (s SliceFlag) valueString() string {
	return strings.Join(s.Value(), stringListDelimiter)
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	if flag := checkRedefinition(flagName, func(f flagType) bool {
		b, ok := f.(*BoolFlag)
		return ok && b.defaultValue == defaultValue
	}); flag != nil {
		return flag.(*BoolFlag)
	}

	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strconv.FormatBool(defaultValue)),
		defaultValue:  defaultValue,
	}
	flagDef.value = flagDef.Bool()
	register(flagName, flagDef)
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}

	return *b.value
}

func (b BoolFlag) valueString() string {
	return strconv.FormatBool(b.Value())
}
