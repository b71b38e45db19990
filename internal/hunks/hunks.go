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

// Package hunks groups the snake list of a [hollow.dev/diff.Results] into hunks: runs of edits
// bounded by a configurable window of matching context, merging adjacent hunks whose context
// windows overlap. It is the shared grouping step behind both
// [hollow.dev/diff/transcript] and any other renderer built on top of [hollow.dev/diff.Results].
package hunks

import (
	"hollow.dev/diff"
	"hollow.dev/diff/internal/config"
)

// Kind describes a single element-level edit.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Match Kind = iota
	Delete
	Insert
)

// Edit describes a single edit of a diff.
//
//   - For Match, X and Y are set to their respective elements.
//   - For Delete, X is set to the element of x that's missing in y; Y is the zero value.
//   - For Insert, Y is set to the element of y that's missing in x; X is the zero value.
type Edit[T any] struct {
	Kind Kind
	X, Y T
}

// Hunk describes a run of consecutive edits, together with the matching context around them.
type Hunk[T any] struct {
	S0, S1 int // start/end position in x
	T0, T1 int // start/end position in y
	Edits  []Edit[T]
}

// Hunks compares x and y and groups the result into hunks. opts may include [diff.Context] (the
// size of the matching context window, default 3) and [diff.Greedy] (use the greedy comparator
// instead of the default linear one); both are honored here.
func Hunks[T comparable](x, y []T, opts ...diff.Option) ([]Hunk[T], error) {
	return HunksFunc(x, y, func(a, b T) bool { return a == b }, opts...)
}

// HunksFunc is like [Hunks] but uses eq to compare elements.
func HunksFunc[T any](x, y []T, eq func(a, b T) bool, opts ...diff.Option) ([]Hunk[T], error) {
	cfg := config.FromOptions(opts, config.Context|config.Greedy)

	var results diff.Results
	var err error
	if cfg.Greedy {
		results, err = diff.GreedyFunc(x, y, eq)
	} else {
		results, err = diff.CompareFunc(x, y, eq)
	}
	if err != nil {
		return nil, err
	}
	return build(x, y, results.Snakes, cfg.Context), nil
}

// build walks the snake list left to right, turning it into a sequence of Hunks with a context
// window of ctx matching elements kept before and after each run of edits, merging hunks whose
// context windows overlap, the same grouping loop as a flat per-element flag array would need but
// driven over a snake list instead.
func build[T any](x, y []T, snakes []diff.Snake, ctx int) []Hunk[T] {
	var hunks []Hunk[T]
	var cur []Edit[T]
	s0, t0 := -1, -1
	run := 0

	startHunk := func(s, t int) {
		s0, t0 = max(0, s-ctx), max(0, t-ctx)
		s1, t1 := s0, t0
		if len(hunks) > 0 && hunks[len(hunks)-1].S1 >= s0 {
			prev := hunks[len(hunks)-1]
			s0, t0 = prev.S0, prev.T0
			s1, t1 = prev.S1, prev.T1
			cur = prev.Edits
			hunks = hunks[:len(hunks)-1]
		}
		for u, v := s1, t1; u < s && v < t; u, v = u+1, v+1 {
			cur = append(cur, Edit[T]{Kind: Match, X: x[u], Y: y[v]})
		}
	}
	finishHunk := func(s, t int) {
		hunks = append(hunks, Hunk[T]{S0: s0, S1: s, T0: t0, T1: t, Edits: cur})
		cur = nil
		s0, t0 = -1, -1
	}

	s, t := 0, 0
	edge := func(sn diff.Snake) {
		run = 0
		if s0 < 0 {
			startHunk(s, t)
		}
		for i := 0; i < sn.Deleted; i++ {
			cur = append(cur, Edit[T]{Kind: Delete, X: x[s]})
			s++
		}
		for i := 0; i < sn.Inserted; i++ {
			cur = append(cur, Edit[T]{Kind: Insert, Y: y[t]})
			t++
		}
	}
	diagonal := func(sn diff.Snake) {
		for i := 0; i < sn.DiagonalLength; i++ {
			if s0 >= 0 && run >= ctx {
				finishHunk(s, t)
			}
			if s0 >= 0 {
				cur = append(cur, Edit[T]{Kind: Match, X: x[s], Y: y[t]})
			}
			s++
			t++
			run++
		}
	}

	for _, sn := range snakes {
		// A forward snake is edge-then-diagonal in increasing (s, t) order; a reverse snake was
		// found walking backward, so within it the diagonal run comes first when read in
		// increasing order, followed by the edge.
		if sn.IsForward {
			if sn.Deleted > 0 || sn.Inserted > 0 {
				edge(sn)
			}
			diagonal(sn)
		} else {
			diagonal(sn)
			if sn.Deleted > 0 || sn.Inserted > 0 {
				edge(sn)
			}
		}
	}
	if s0 >= 0 {
		finishHunk(s, t)
	}
	return hunks
}
