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

// Package transcript renders the result of comparing two slices of lines as a unified-diff-style
// text transcript.
package transcript

import (
	"fmt"
	"strings"

	diff "hollow.dev/diff"
	"hollow.dev/diff/internal/config"
	"hollow.dev/diff/internal/hunks"
)

const (
	prefixMatch  = " "
	prefixDelete = "-"
	prefixInsert = "+"
)

// Lines compares x and y line by line and returns the changes necessary to convert one into the
// other in unified format.
//
// The only supported option is [hollow.dev/diff.Context]; [hollow.dev/diff.Greedy] is rejected
// because a rendered transcript never needs to expose which comparator produced it.
//
// Important: the output is not guaranteed to be stable and may change between releases. Don't rely
// on the exact formatting.
func Lines(x, y []string, opts ...diff.Option) string {
	config.FromOptions(opts, config.Context) // panics on diff.Greedy, which hunks.HunksFunc itself allows

	hs, err := hunks.HunksFunc(x, y, func(a, b string) bool { return a == b }, opts...)
	if err != nil {
		// Lines only ever forwards diff.Context, which internal/engine never returns an error for.
		panic(fmt.Sprintf("transcript: unexpected comparison error: %v", err))
	}
	if len(hs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, h := range hs {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.S0+1, h.S1-h.S0, h.T0+1, h.T1-h.T0)
		for _, e := range h.Edits {
			switch e.Kind {
			case hunks.Delete:
				b.WriteString(prefixDelete)
				b.WriteString(e.X)
			case hunks.Insert:
				b.WriteString(prefixInsert)
				b.WriteString(e.Y)
			default:
				b.WriteString(prefixMatch)
				b.WriteString(e.X)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
