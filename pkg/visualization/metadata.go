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

package visualization

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ExperimentMetadata encodes the metadata which is related to an experiment run.
type ExperimentMetadata struct {
	ExperimentID string
	Simulations  int
	RunLength    int
	Seed         uint64
	Confidence   decimal.Decimal
}

// String returns a printable banner with all experiment metadata.
func (metadata ExperimentMetadata) String() string {
	lines := []string{
		"Experiment id: " + metadata.ExperimentID,
		fmt.Sprintf("Number of Simulations Conducted: %d", metadata.Simulations),
		fmt.Sprintf("Winning streak length: %d", metadata.RunLength),
		fmt.Sprintf("Seed: %d", metadata.Seed),
		"Confidence level: " + metadata.Confidence.String(),
	}
	return strings.Join(lines, "\n")
}
