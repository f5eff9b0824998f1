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

package simulation

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"
)

// Source provides uniformly distributed numbers in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source. Equal seeds give equal streams.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed returns a seed suitable for NewSource when no seed was requested.
// It is never zero, so it can be told apart from "not set" in configuration.
func RandomSeed() uint64 {
	var buf [8]byte
	seed := uint64(time.Now().UnixNano())
	if _, err := cryptorand.Read(buf[:]); err == nil {
		seed = binary.LittleEndian.Uint64(buf[:])
	}
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Trials draws n independent games, each won (1) with probability p.
func Trials(src Source, n int, p float64) []int {
	games := make([]int, n)
	for i := range games {
		if src.Float64() < p {
			games[i] = 1
		}
	}
	return games
}
