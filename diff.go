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

// Package diff provides functions to efficiently compare two slices similar to the Unix diff
// command line tool used to compare files.
//
// The comparison functions in this package always find an optimal diff: the minimum number of
// element deletions and insertions needed to turn x into y. [Compare] and [CompareFunc] use a
// linear-space divide-and-conquer algorithm (O(N) space, O(ND) time, N = len(x) + len(y), D the
// number of differences). [Greedy] and [GreedyFunc] use a simpler non-recursive algorithm that
// retains a full trace of the search (O(D^2) space) instead of recursing.
//
// The result of both is a [Results] value: an ordered list of [Snake]s, each describing a run of
// deletions or insertions next to a run of matching elements (edges first for a forward snake,
// matches first for a reverse snake, read left to right). Sibling packages build on top of
// Results: [hollow.dev/diff/transcript] renders a unified-diff-style text transcript,
// [hollow.dev/diff/patch] applies a Results value to reconstruct y from x, and internal/hunks
// groups a Results value into context-bounded hunks for the transcript to use.
package diff

import (
	"hollow.dev/diff/internal/config"
	"hollow.dev/diff/internal/engine"
)

// Snake is a single contiguous edit-graph segment: an optional deletion or insertion edge followed
// by a run of matching elements. It is the unit [Results] lists in left-to-right order.
type Snake = engine.Snake

// Results is the outcome of a comparison: the ordered snake list covering the whole comparison,
// plus whichever V-snapshot arrays the comparator that produced it collects (forward-search
// snapshots, reverse-search snapshots, or, for [Compare]/[CompareFunc], both).
type Results = engine.Results

// Compare compares the contents of x and y and returns the edits necessary to transform x into y,
// as an ordered list of snakes.
func Compare[T comparable](x, y []T, opts ...Option) (Results, error) {
	return CompareFunc(x, y, func(a, b T) bool { return a == b }, opts...)
}

// CompareFunc is like [Compare] but uses eq to compare elements.
func CompareFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) (Results, error) {
	config.FromOptions(opts, config.Context) // validate before running the (more expensive) compare
	return engine.Compare(x, y, eq)
}

// Greedy compares the contents of x and y like [Compare], but uses the greedy comparator
// (internal/engine.CompareGreedy) instead of the linear-space divide-and-conquer one.
func Greedy[T comparable](x, y []T, opts ...Option) (Results, error) {
	return GreedyFunc(x, y, func(a, b T) bool { return a == b }, opts...)
}

// GreedyFunc is like [Greedy] but uses eq to compare elements.
func GreedyFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) (Results, error) {
	config.FromOptions(opts, config.Context)
	return engine.CompareGreedy(x, y, eq)
}
