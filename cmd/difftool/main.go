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

// difftool prints a unified-diff-style transcript comparing two text files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	diff "hollow.dev/diff"
	"hollow.dev/diff/transcript"
)

func main() {
	context := flag.Int("context", 3, "number of matching lines to show around each hunk")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] old new\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1), *context); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(oldFile, newFile string, context int) error {
	old, err := os.ReadFile(oldFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", oldFile, err)
	}
	new, err := os.ReadFile(newFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", newFile, err)
	}

	out := transcript.Lines(splitLines(string(old)), splitLines(string(new)), diff.Context(context))
	fmt.Printf("--- %s\n+++ %s\n", oldFile, newFile)
	fmt.Print(out)
	return nil
}

// splitLines splits s into lines with their terminating newlines stripped (transcript.Lines adds
// its own), dropping the trailing empty element Split produces when s ends in a newline so a
// trailing blank line isn't reported as a spurious extra line.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
