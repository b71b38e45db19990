// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine implements Myers' O(ND) diff algorithm and its linear-space
// divide-and-conquer refinement.
//
// Unlike a comparator that returns a flat per-element delete/insert bitmap, this package returns
// the diff as an ordered list of [Snake]s: contiguous runs of deletion, insertion, and matching
// elements. A Snake is the unit both the linear comparator ([Compare]) and the greedy comparator
// ([CompareGreedy]) produce.
//
// # Vocabulary
//
// We use s and t for the horizontal and vertical coordinates in the edit graph and k for
// diagonals, k = s - t. A D-path is a path with exactly D non-diagonal (insert/delete) edges. The
// "furthest reaching" D-path on diagonal k is the one whose endpoint has the greatest s (and
// therefore t) of all D-paths ending on k.
//
// The V vector ([V]) stores, for the current d, the s-coordinate of the furthest reaching point on
// every relevant diagonal. It is addressed by a signed diagonal index with a fixed offset (delta)
// so that the same dense buffer serves both a forward search (delta=0) and a backward search
// (delta = sourceSize - destSize), see vector.go.
//
// The linear comparator ([Compare]) finds a middle snake with a bidirectional search ([Middle]),
// splits the rectangle into the part before and after the snake, and recurses into both halves,
// reusing the same pair of V buffers across recursion levels (see Myers, "An O(ND) difference
// algorithm and its variations", Algorithmica 1, 251-266 (1986)).
//
// The greedy comparator ([CompareGreedy]) runs a single one-directional search ([Forward] or
// [Reverse]) to completion while recording a V-snapshot at every d, then reconstructs the snake
// list by walking the snapshots backward (or forward) from the terminal point.
package engine
