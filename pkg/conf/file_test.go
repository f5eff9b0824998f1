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
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeConfigFile(dir, content string) string {
	path := filepath.Join(dir, "config.yaml")
	So(os.WriteFile(path, []byte(content), 0644), ShouldBeNil)
	return path
}

func TestConfigFile(t *testing.T) {
	fileStringFlag := NewStringFlag("custom_file_string_arg", "help", "default")
	fileSliceFlag := NewSliceFlag("custom_file_slice_arg", "help", "X")
	fileIntFlag := NewIntFlag("custom_file_int_arg", "help", 1)

	Convey("While using config file", t, func() {
		clearEnv()
		fileStringFlag.clear()
		fileSliceFlag.clear()
		fileIntFlag.clear()
		defer func() {
			clearEnv()
			fileStringFlag.clear()
			fileSliceFlag.clear()
			fileIntFlag.clear()
		}()

		dir, err := os.MkdirTemp("", "conf")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		Convey("Values from file should be used when given by environment", func() {
			path := writeConfigFile(dir, "custom_file_string_arg: fromFile\ncustom_file_slice_arg: [0.85, 0.97]\ncustom_file_int_arg: 7\n")
			os.Setenv(configFileFlag.envName(), path)

			So(ParseEnv(), ShouldBeNil)
			So(fileStringFlag.Value(), ShouldEqual, "fromFile")
			So(fileSliceFlag.Value(), ShouldResemble, []string{"0.85", "0.97"})
			So(fileIntFlag.Value(), ShouldEqual, 7)
		})

		Convey("Environment should take precedence over file", func() {
			path := writeConfigFile(dir, "custom_file_string_arg: fromFile\n")
			os.Setenv(configFileFlag.envName(), path)
			os.Setenv(fileStringFlag.envName(), "fromEnv")

			So(ParseEnv(), ShouldBeNil)
			So(fileStringFlag.Value(), ShouldEqual, "fromEnv")
		})

		Convey("Command line should point to the file and take precedence over it", func() {
			path := writeConfigFile(dir, "custom_file_string_arg: fromFile\ncustom_file_int_arg: 7\n")

			So(parse([]string{"--config_file", path, "--custom_file_int_arg=9"}), ShouldBeNil)
			So(fileStringFlag.Value(), ShouldEqual, "fromFile")
			So(fileIntFlag.Value(), ShouldEqual, 9)
		})

		Convey("Unknown option in file should fail", func() {
			path := writeConfigFile(dir, "no_such_option: 1\n")
			So(LoadFile(path), ShouldNotBeNil)
		})

		Convey("Missing file should fail", func() {
			So(LoadFile(filepath.Join(dir, "missing.yaml")), ShouldNotBeNil)
		})

		Convey("Malformed file should fail", func() {
			path := writeConfigFile(dir, "custom_file_string_arg: [unclosed\n")
			So(LoadFile(path), ShouldNotBeNil)
		})
	})
}
