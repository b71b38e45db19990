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

package hunks_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	diff "hollow.dev/diff"
	"hollow.dev/diff/internal/hunks"
)

func TestHunks(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		opts []diff.Option
		want []hunks.Hunk[string]
	}{
		{
			name: "identical",
			x:    []string{"foo", "bar", "baz"},
			y:    []string{"foo", "bar", "baz"},
			want: nil,
		},
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "x-empty",
			x:    nil,
			y:    []string{"foo", "bar", "baz"},
			want: []hunks.Hunk[string]{
				{
					S0: 0,
					T0: 0,
					S1: 0,
					T1: 3,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Insert, Y: "foo"},
						{Kind: hunks.Insert, Y: "bar"},
						{Kind: hunks.Insert, Y: "baz"},
					},
				},
			},
		},
		{
			name: "y-empty",
			x:    []string{"foo", "bar", "baz"},
			y:    nil,
			want: []hunks.Hunk[string]{
				{
					S0: 0,
					T0: 0,
					S1: 3,
					T1: 0,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Delete, X: "foo"},
						{Kind: hunks.Delete, X: "bar"},
						{Kind: hunks.Delete, X: "baz"},
					},
				},
			},
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: []hunks.Hunk[string]{
				{
					S0: 0,
					S1: 2,
					T0: 0,
					T1: 2,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Match, X: "foo", Y: "foo"},
						{Kind: hunks.Delete, X: "bar"},
						{Kind: hunks.Insert, Y: "baz"},
					},
				},
			},
		},
		{
			name: "same-suffix",
			x:    []string{"foo", "bar"},
			y:    []string{"loo", "bar"},
			want: []hunks.Hunk[string]{
				{
					S0: 0,
					S1: 2,
					T0: 0,
					T1: 2,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Delete, X: "foo"},
						{Kind: hunks.Insert, Y: "loo"},
						{Kind: hunks.Match, X: "bar", Y: "bar"},
					},
				},
			},
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []hunks.Hunk[string]{
				{
					S0: 0,
					T0: 0,
					S1: 7,
					T1: 6,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Delete, X: "A"},
						{Kind: hunks.Insert, Y: "C"},
						{Kind: hunks.Match, X: "B", Y: "B"},
						{Kind: hunks.Delete, X: "C"},
						{Kind: hunks.Match, X: "A", Y: "A"},
						{Kind: hunks.Match, X: "B", Y: "B"},
						{Kind: hunks.Delete, X: "B"},
						{Kind: hunks.Match, X: "A", Y: "A"},
						{Kind: hunks.Insert, Y: "C"},
					},
				},
			},
		},
		{
			name: "ABCABBA_to_CBABAC_no_context",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			opts: []diff.Option{diff.Context(0)},
			want: []hunks.Hunk[string]{
				{
					S0: 0,
					T0: 0,
					S1: 1,
					T1: 1,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Delete, X: "A"},
						{Kind: hunks.Insert, Y: "C"},
					},
				},
				{
					S0: 2,
					T0: 2,
					S1: 3,
					T1: 2,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Delete, X: "C"},
					},
				},
				{
					S0: 5,
					T0: 4,
					S1: 6,
					T1: 4,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Delete, X: "B"},
					},
				},
				{
					S0: 7,
					T0: 5,
					S1: 7,
					T1: 6,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Insert, Y: "C"},
					},
				},
			},
		},
		{
			name: "two-hunks",
			x: []string{
				"this paragraph",
				"is not",
				"changed and",
				"barely long",
				"enough to",
				"create a",
				"new hunk",
				"",
				"this paragraph",
				"is going to be",
				"removed",
			},
			y: []string{
				"this is a new paragraph",
				"that is inserted at the top",
				"",
				"this paragraph",
				"is not",
				"changed and",
				"barely long",
				"enough to",
				"create a",
				"new hunk",
			},
			want: []hunks.Hunk[string]{
				{
					S0: 0,
					S1: 3,
					T0: 0,
					T1: 6,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Insert, Y: "this is a new paragraph"},
						{Kind: hunks.Insert, Y: "that is inserted at the top"},
						{Kind: hunks.Insert, Y: ""},
						{Kind: hunks.Match, X: "this paragraph", Y: "this paragraph"},
						{Kind: hunks.Match, X: "is not", Y: "is not"},
						{Kind: hunks.Match, X: "changed and", Y: "changed and"},
					},
				},
				{
					S0: 4,
					S1: 11,
					T0: 7,
					T1: 10,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Match, X: "enough to", Y: "enough to"},
						{Kind: hunks.Match, X: "create a", Y: "create a"},
						{Kind: hunks.Match, X: "new hunk", Y: "new hunk"},
						{Kind: hunks.Delete, X: ""},
						{Kind: hunks.Delete, X: "this paragraph"},
						{Kind: hunks.Delete, X: "is going to be"},
						{Kind: hunks.Delete, X: "removed"},
					},
				},
			},
		},
		{
			name: "overlapping-consecutive-hunks-are-merged",
			x: []string{
				"this paragraph",
				"stays but is",
				"not long enough",
				"to create a",
				"new hunk",
				"",
				"this paragraph",
				"is going to be",
				"removed",
			},
			y: []string{
				"this is a new paragraph",
				"that is inserted at the top",
				"",
				"this paragraph",
				"stays but is",
				"not long enough",
				"to create a",
				"new hunk",
			},
			want: []hunks.Hunk[string]{
				{
					S0: 0,
					S1: 9,
					T0: 0,
					T1: 8,
					Edits: []hunks.Edit[string]{
						{Kind: hunks.Insert, Y: "this is a new paragraph"},
						{Kind: hunks.Insert, Y: "that is inserted at the top"},
						{Kind: hunks.Insert, Y: ""},
						{Kind: hunks.Match, X: "this paragraph", Y: "this paragraph"},
						{Kind: hunks.Match, X: "stays but is", Y: "stays but is"},
						{Kind: hunks.Match, X: "not long enough", Y: "not long enough"},
						{Kind: hunks.Match, X: "to create a", Y: "to create a"},
						{Kind: hunks.Match, X: "new hunk", Y: "new hunk"},
						{Kind: hunks.Delete, X: ""},
						{Kind: hunks.Delete, X: "this paragraph"},
						{Kind: hunks.Delete, X: "is going to be"},
						{Kind: hunks.Delete, X: "removed"},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hunks.Hunks(tt.x, tt.y, tt.opts...)
			if err != nil {
				t.Fatalf("Hunks(...) returned error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) diff (-want, +got):\n%s", diff)
			}
		})
	}
}

// editCounts returns the number of Delete and Insert edits across all hunks, which must agree
// between comparators even when tie-breaking leads them to different (but equally optimal) edit
// orderings.
func editCounts[T any](hs []hunks.Hunk[T]) (deletes, inserts int) {
	for _, h := range hs {
		for _, e := range h.Edits {
			switch e.Kind {
			case hunks.Delete:
				deletes++
			case hunks.Insert:
				inserts++
			}
		}
	}
	return deletes, inserts
}

func TestHunksGreedyAgreesWithLinearOnEditCount(t *testing.T) {
	x := strings.Split("ABCABBA", "")
	y := strings.Split("CBABAC", "")

	linear, err := hunks.Hunks(x, y, diff.Context(0))
	if err != nil {
		t.Fatalf("Hunks(...) returned error: %v", err)
	}
	greedy, err := hunks.Hunks(x, y, diff.Context(0), diff.Greedy())
	if err != nil {
		t.Fatalf("Hunks(..., diff.Greedy()) returned error: %v", err)
	}
	ld, li := editCounts(linear)
	gd, gi := editCounts(greedy)
	if ld != gd || li != gi {
		t.Errorf("edit counts disagree: linear = (%d deletes, %d inserts), greedy = (%d deletes, %d inserts)", ld, li, gd, gi)
	}
}
