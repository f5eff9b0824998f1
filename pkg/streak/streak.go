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

package streak

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is the cause of every error returned for bad input.
// Use errors.Cause(err) == ErrInvalidArgument to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

// CountSequences returns the number of non-overlapping windows of runLength
// consecutive wins in sequence, scanning left to right.
// The sequence is not modified.
func CountSequences(sequence []int, runLength int) (int, error) {
	if runLength <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "run length must be positive, got %d", runLength)
	}

	count := 0
	consecutive := 0
	for _, game := range sequence {
		if game != 1 {
			consecutive = 0
			continue
		}

		consecutive++
		if consecutive == runLength {
			// Matched window is consumed: the next streak starts from scratch.
			count++
			consecutive = 0
		}
	}

	return count, nil
}

// Longest returns the length of the longest run of wins in sequence.
func Longest(sequence []int) int {
	longest, current := 0, 0
	for _, game := range sequence {
		if game != 1 {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}
