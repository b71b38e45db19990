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

package engine

// Results is the output of a comparator: the ordered list of snakes covering the whole edit
// graph from (0, 0) to (N, M), together with whichever V-snapshot arrays the comparator that
// produced it collects. [Compare] populates both ForwardVs and ReverseVs (taken at the top level
// of its recursion); [CompareGreedy] populates only the one corresponding to the direction it
// searched in.
type Results struct {
	Snakes    []Snake
	ForwardVs []V
	ReverseVs []V
}

// NewResults builds a Results with both snapshot arrays set, as produced by the linear comparator.
func NewResults(snakes []Snake, forwardVs, reverseVs []V) Results {
	return Results{Snakes: snakes, ForwardVs: forwardVs, ReverseVs: reverseVs}
}

// NewPartialResults builds a Results with only one snapshot array set, as produced by the greedy
// comparator, which only ever searches in a single direction.
func NewPartialResults(snakes []Snake, forward bool, vs []V) Results {
	if forward {
		return Results{Snakes: snakes, ForwardVs: vs}
	}
	return Results{Snakes: snakes, ReverseVs: vs}
}
