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

// Package errutil terminates binaries on unrecoverable errors.
package errutil

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Check logs the error and exits if it is not nil.
func Check(err error) {
	CheckWithContext(err, "fatal error")
}

// CheckWithContext logs the error prefixed with context and exits if it is not nil.
// The stack trace recorded by github.com/pkg/errors is only printed on debug level.
func CheckWithContext(err error, context string) {
	if err == nil {
		return
	}
	logrus.Debugf("%s: %+v", context, err)
	logrus.Fatalf("%s: %v", context, err)
}

// CheckWithContextf is CheckWithContext with a formatted context.
func CheckWithContextf(err error, format string, args ...interface{}) {
	if err == nil {
		return
	}
	CheckWithContext(err, fmt.Sprintf(format, args...))
}
