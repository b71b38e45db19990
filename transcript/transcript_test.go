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

package transcript_test

import (
	"strings"
	"testing"

	diff "hollow.dev/diff"
	"hollow.dev/diff/transcript"
)

func TestLinesEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		x, y []string
		opts []diff.Option
		want string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name: "identical",
			x:    []string{"first line"},
			y:    []string{"first line"},
			want: "",
		},
		{
			name: "x-empty",
			y:    []string{"one-line"},
			want: "@@ -1,0 +1,1 @@\n+one-line\n",
		},
		{
			name: "y-empty",
			x:    []string{"one-line"},
			want: "@@ -1,1 +1,0 @@\n-one-line\n",
		},
		{
			name: "same-prefix",
			x:    []string{"foo", "bar"},
			y:    []string{"foo", "baz"},
			want: "@@ -1,2 +1,2 @@\n foo\n-bar\n+baz\n",
		},
		{
			name: "no-context",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			opts: []diff.Option{diff.Context(0)},
			want: "@@ -1,2 +1,0 @@\n-A\n-B\n" +
				"@@ -4,0 +2,1 @@\n+B\n" +
				"@@ -6,1 +5,0 @@\n-B\n" +
				"@@ -8,0 +6,1 @@\n+C\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transcript.Lines(tt.x, tt.y, tt.opts...)
			if got != tt.want {
				t.Errorf("Lines(...) is different:\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestLinesRejectsGreedy(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Lines(..., diff.Greedy()) did not panic")
		}
	}()
	transcript.Lines([]string{"a"}, []string{"b"}, diff.Greedy())
}
