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
Package streak counts winning streaks in a sequence of game results.

A sequence holds one element per game: 1 for a win and anything else for a
loss. A streak of length N is a window of N consecutive wins. Streaks are
counted greedily from the left and a counted window is consumed, so a run of
2*N wins is two streaks and a run of N+k wins (0 < k < N) is one.
*/
package streak
