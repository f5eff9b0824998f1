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

package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestInitialize(t *testing.T) {
	Convey("When logger is initialized with log file", t, func() {
		defer logrus.SetOutput(logrus.StandardLogger().Out)
		buffer := &bytes.Buffer{}
		Initialize("winning-streaks", "some-id", buffer)

		Convey("Start of experiment is written to log file", func() {
			So(buffer.String(), ShouldContainSubstring, "Starting Experiment winning-streaks with uid some-id")
		})

		Convey("Following entries also reach log file", func() {
			logrus.Info("next entry")
			So(buffer.String(), ShouldContainSubstring, "next entry")
		})
	})
}
