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
Package simulation estimates how often winning streaks appear.

For every experiment, every sample size and every win probability it draws a
sequence of independent games, counts streaks of the configured length and
records one Result. The resulting ResultTable is what the visualization
package consumes.

Randomness comes from a Source. NewSource gives reproducible streams:

	table, err := simulation.Run(simulation.DefaultConfiguration(), simulation.NewSource(42))
*/
package simulation
