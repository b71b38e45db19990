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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// diff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of matches to include as a prefix and postfix for hunks returned by
	// packages that group edits into hunks (internal/hunks, transcript).
	Context int

	// If set, internal/hunks uses the greedy comparator (internal/engine.CompareGreedy) instead of
	// the linear-space comparator (internal/engine.Compare); packages that don't allow the flag
	// panic on it. The greedy comparator
	// retains a V-snapshot at every d-step and reconstructs the snake list from them instead of
	// recursing.
	Greedy bool
}

// Default is the default configuration.
var Default = Config{
	Context: 3,
	Greedy:  false,
}

// Flag describes a single config entry. This is used to detect if options are being set that the
// calling package doesn't support.
type Flag int

const (
	Context Flag = 1 << iota
	Greedy
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options, panicking if any option sets a flag
// outside of allowed.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "diff.Context"
	case Greedy:
		return "diff.Greedy"
	default:
		panic("never reached")
	}
}
