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

// Package patch reconstructs the destination slice of a comparison from both inputs and the
// resulting [hollow.dev/diff.Results].
//
// Unlike the unix patch(1) tool, this is a small, dependency-free, in-process reconstruction: the
// snake list already records exactly which runs of elements were inserted, deleted, or matched, so
// no textual patch format needs to be parsed or shelled out to an external process. The snake
// list's Inserted/Deleted counts alone don't carry the inserted values themselves, which is why
// Apply needs y in addition to x and results.
package patch

import diff "hollow.dev/diff"

// Apply reconstructs y from x and results, where results is the outcome of comparing x against y
// (e.g. via [hollow.dev/diff.Compare]). It walks the snake list left to right, and for each snake
// appends the inserted elements of y (if any) followed by the run of matching elements, or, for a
// reverse-direction snake, the run of matching elements followed by the inserted elements of y (if
// any) — mirroring the snake's own edge/diagonal layout in increasing coordinate order.
//
// Apply(x, y, results) reproduces y exactly whenever results came from comparing x against y; this
// is the round-trip law every comparator in this module is expected to satisfy.
func Apply[T any](x, y []T, results diff.Results) []T {
	var out []T
	for _, s := range results.Snakes {
		if s.IsForward {
			if s.Inserted > 0 {
				out = append(out, y[s.YStart:s.YMid()]...)
			}
			out = append(out, x[s.XMid():s.XEnd()]...)
		} else {
			out = append(out, x[s.XEnd():s.XMid()]...)
			if s.Inserted > 0 {
				out = append(out, y[s.YMid():s.YStart]...)
			}
		}
	}
	return out
}
