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

package diff

import "hollow.dev/diff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Context sets the number of matches to include as a prefix and postfix for hunks built by
// internal/hunks and the transcript package. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Greedy selects the greedy comparator (O(D^2) space, never recurses) instead of the default
// linear-space divide-and-conquer comparator (O(N) space). Both always compute an optimal diff;
// Greedy trades memory for a simpler, non-recursive implementation and is mainly useful when
// cross-checking diffs or working with inputs too small for the difference to matter.
func Greedy() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Greedy = true
		return config.Greedy
	}
}
