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

/*
Package conf wraps kingpin to provide:
- flags which can be given on command line or as environment variables with STREAKS_ prefix,
- YAML config file which fills flags not given on command line or in environment,
- configuration dump as environment script (with flags in registration order),
- new types of flags e.g. SliceFlag,
- predefined flag for logging level (logrus integration).

Precedence of values: command line, environment, config file, default.
*/
package conf
