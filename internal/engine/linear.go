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

// Compare runs the linear-space divide-and-conquer comparator (see Myers, section 4b) over
// source and dest and returns the resulting snake list in left-to-right order, together with the
// V-snapshot arrays collected at the top level of the recursion.
func Compare[T any](source, dest []T, eq func(a, b T) bool) (Results, error) {
	N, M := len(source), len(dest)
	maxSize := (N+M)/2 + 1

	vForward := NewV(N, M, maxSize, true)
	vReverse := NewV(N, M, maxSize, false)

	var snakes []Snake
	var forwardVs, reverseVs []V
	if err := compareRect(0, &snakes, &forwardVs, &reverseVs, source, 0, N, dest, 0, M, vForward, vReverse, eq); err != nil {
		return Results{}, err
	}
	return NewResults(snakes, forwardVs, reverseVs), nil
}

// appendSnake adds candidate to the end of the ordered snake list, folding it into the current
// tail via [Snake.Append] when the two are mergeable instead of growing the list.
func appendSnake(snakes *[]Snake, candidate Snake) {
	if n := len(*snakes); n > 0 {
		tail := &(*snakes)[n-1]
		if tail.Append(candidate) {
			return
		}
	}
	*snakes = append(*snakes, candidate)
}

// compareRect implements the recursive step of the linear comparator over the sub-rectangle
// [a0, a0+N) x [b0, b0+M) of source and dest. forwardVs/reverseVs are only non-nil at depth 0;
// every deeper call passes nil so that only the top-level split's snapshots are retained.
func compareRect[T any](depth int, snakes *[]Snake, forwardVs, reverseVs *[]V, source []T, a0, N int, dest []T, b0, M int, vForward, vReverse *V, eq func(a, b T) bool) error {
	switch {
	case N > 0 && M == 0:
		appendSnake(snakes, Snake{XStart: a0, YStart: b0, Deleted: N, IsForward: true})
		return nil
	case M > 0 && N == 0:
		appendSnake(snakes, Snake{XStart: a0, YStart: b0, Inserted: M, IsForward: true})
		return nil
	case N <= 0 || M <= 0:
		return nil
	}

	pair, err := Middle(source, a0, N, dest, b0, M, vForward, vReverse, forwardVs, reverseVs, eq)
	if err != nil {
		return err
	}
	if depth == 0 {
		if pair.Forward != nil {
			pair.Forward.IsMiddle = true
		}
		if pair.Reverse != nil {
			pair.Reverse.IsMiddle = true
		}
	}

	if pair.D > 1 {
		var x, y int
		if pair.Forward != nil {
			x, y = pair.Forward.XStart, pair.Forward.YStart
		} else {
			x, y = pair.Reverse.XEnd(), pair.Reverse.YEnd()
		}
		if err := compareRect(depth+1, snakes, nil, nil, source, a0, x-a0, dest, b0, y-b0, vForward, vReverse, eq); err != nil {
			return err
		}

		if pair.Forward != nil {
			appendSnake(snakes, *pair.Forward)
		}
		if pair.Reverse != nil {
			appendSnake(snakes, *pair.Reverse)
		}

		var u, w int
		if pair.Reverse != nil {
			u, w = pair.Reverse.XStart, pair.Reverse.YStart
		} else {
			u, w = pair.Forward.XEnd(), pair.Forward.YEnd()
		}
		return compareRect(depth+1, snakes, nil, nil, source, u, a0+N-u, dest, w, b0+M-w, vForward, vReverse, eq)
	}

	// pair.D is 0 or 1: the middle search degenerated to a single snake possibly preceded or
	// followed by a plain diagonal run that the bidirectional search doesn't itself report.
	if pair.Forward != nil {
		if pair.Forward.XStart > a0 {
			xGap, yGap := pair.Forward.XStart-a0, pair.Forward.YStart-b0
			if xGap != yGap {
				return &TraceMismatchError{
					D:         pair.D,
					K:         pair.Forward.XStart - pair.Forward.YStart,
					ExpectedX: a0 + xGap, ExpectedY: b0 + xGap,
					ActualX: a0 + xGap, ActualY: b0 + yGap,
					Reason: "D0/D1 forward/reverse split",
				}
			}
			appendSnake(snakes, Snake{XStart: a0, YStart: b0, DiagonalLength: xGap, IsForward: true})
		}
		appendSnake(snakes, *pair.Forward)
	}
	if pair.Reverse != nil {
		appendSnake(snakes, *pair.Reverse)
		if pair.Reverse.XStart < a0+N {
			xGap, yGap := a0+N-pair.Reverse.XStart, b0+M-pair.Reverse.YStart
			if xGap != yGap {
				return &TraceMismatchError{
					D:         pair.D,
					K:         pair.Reverse.XStart - pair.Reverse.YStart,
					ExpectedX: a0 + N - xGap, ExpectedY: b0 + M - xGap,
					ActualX: a0 + N - xGap, ActualY: b0 + M - yGap,
					Reason: "D0/D1 forward/reverse split",
				}
			}
			appendSnake(snakes, Snake{XStart: pair.Reverse.XStart, YStart: pair.Reverse.YStart, DiagonalLength: xGap, IsForward: true})
		}
	}
	return nil
}
