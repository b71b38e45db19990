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

// Snake is a single contiguous edit-graph segment: an optional run of insert or delete edges (a
// single edge as found by the search, several once [Snake.Append] has merged pure-edge fragments
// or for a rectangle with one empty side), followed by a (possibly zero-length) run of diagonal
// match edges. For a reverse snake, XStart/YStart is the high corner and the edges sit nearest it.
//
// Snake holds only integer coordinates, not the compared elements, so unlike the generic search
// functions that produce it ([Calculate], [Forward], [Reverse], [Middle]), Snake itself needs no
// type parameter.
type Snake struct {
	XStart, YStart int  // start point, in absolute source/dest coordinates
	Deleted        int  // number of deletion edges next to the start point
	Inserted       int  // number of insertion edges next to the start point
	DiagonalLength int  // number of trailing match edges
	IsForward      bool // whether this snake was produced by a forward-direction search
	IsMiddle       bool // whether this snake was returned as the middle snake of the top-level split
	D              int  // the path length at which this snake was found
}

// XMid and YMid are the coordinates right after the leading edge, before the diagonal run.
func (s Snake) XMid() int {
	if s.IsForward {
		return s.XStart + s.Deleted
	}
	return s.XStart - s.Deleted
}

func (s Snake) YMid() int {
	if s.IsForward {
		return s.YStart + s.Inserted
	}
	return s.YStart - s.Inserted
}

// XEnd and YEnd are the coordinates after the trailing diagonal run.
func (s Snake) XEnd() int {
	if s.IsForward {
		return s.XStart + s.Deleted + s.DiagonalLength
	}
	return s.XStart - s.Deleted - s.DiagonalLength
}

func (s Snake) YEnd() int {
	if s.IsForward {
		return s.YStart + s.Inserted + s.DiagonalLength
	}
	return s.YStart - s.Inserted - s.DiagonalLength
}

// NewBare returns a Snake with only its direction recorded; it carries no coordinates yet.
func NewBare(isForward bool) Snake {
	return Snake{IsForward: isForward}
}

// NewAxisSnake builds a Snake consisting of exactly one insert (down) or delete edge followed by
// diagonalLength match edges, normalized like [NewSnake].
func NewAxisSnake(a0, N, b0, M int, isForward bool, xStart, yStart int, down bool, diagonalLength int) Snake {
	deleted, inserted := 0, 0
	if down {
		inserted = 1
	} else {
		deleted = 1
	}
	return NewSnake(a0, N, b0, M, isForward, xStart, yStart, deleted, inserted, diagonalLength)
}

// NewSnake builds a Snake directly from its fields and normalizes it with [Snake.removeStubs].
func NewSnake(a0, N, b0, M int, isForward bool, xStart, yStart, deleted, inserted, diagonalLength int) Snake {
	s := Snake{
		XStart:         xStart,
		YStart:         yStart,
		Deleted:        deleted,
		Inserted:       inserted,
		DiagonalLength: diagonalLength,
		IsForward:      isForward,
	}
	s.removeStubs(a0, N, b0, M)
	return s
}

// removeStubs cancels a spurious single-insertion step that the initial V stub can introduce at
// the very edge of the rectangle: a forward snake that "inserts" from (a0, b0-1), or a reverse
// snake that "inserts" from (a0+N, b0+M+1), isn't a real edit, it's an artifact of the seed value
// planted by [V.InitStub]. Folding it away turns it back into a pure diagonal run.
func (s *Snake) removeStubs(a0, N, b0, M int) {
	if s.Inserted == 1 && s.IsForward && s.XStart == a0 && s.YStart == b0-1 {
		s.YStart++
		s.Inserted = 0
	}
	if s.Inserted == 1 && !s.IsForward && s.XStart == a0+N && s.YStart == b0+M+1 {
		s.YStart--
		s.Inserted = 0
	}
}

// Append tries to merge other into s, under the assumption that other is s's immediate successor
// in left-to-right order (for both forward and reverse snakes). It
// only succeeds if both snakes were found by searches in the same direction, both are pure edges
// (a single run of deletes or inserts with no diagonal run of their own, both of the same kind),
// and the start of one lines up exactly with the end of the other. Folding together a pair that
// each carry their own diagonal run would reorder the matches relative to the edges once rendered,
// so that case is deliberately left unmerged. On success, the edge counts are summed into s and
// Append returns true; s's start point is widened to cover both snakes. On failure s is left
// unmodified and Append returns false, meaning the caller should keep other as a separate list
// entry.
func (s *Snake) Append(other Snake) bool {
	if s.IsForward != other.IsForward {
		return false
	}
	sDeleting, sInserting := s.Deleted > 0, s.Inserted > 0
	if sDeleting == sInserting {
		// s is either a pure diagonal run or a malformed mixed snake; neither combines.
		return false
	}
	oDeleting, oInserting := other.Deleted > 0, other.Inserted > 0
	if sDeleting != oDeleting || sInserting != oInserting {
		return false
	}
	if s.DiagonalLength != 0 || other.DiagonalLength != 0 {
		// Combining the edge counts while leaving both diagonal runs in place would reorder the
		// matches relative to the edges: safe merging is restricted to pure-edge fragments, the
		// shape recursion boundaries actually produce.
		return false
	}
	if s.IsForward {
		if s.XEnd() != other.XStart || s.YEnd() != other.YStart {
			return false
		}
		if other.XStart < s.XStart {
			s.XStart = other.XStart
		}
		if other.YStart < s.YStart {
			s.YStart = other.YStart
		}
	} else {
		if other.XEnd() != s.XStart || other.YEnd() != s.YStart {
			return false
		}
		if other.XStart > s.XStart {
			s.XStart = other.XStart
		}
		if other.YStart > s.YStart {
			s.YStart = other.YStart
		}
	}
	s.Deleted += other.Deleted
	s.Inserted += other.Inserted
	s.DiagonalLength += other.DiagonalLength
	return true
}

// Calculate advances the search on diagonal k at path length d by one step, using the
// furthest-reaching points already recorded in v for the neighboring diagonals, walks the
// resulting diagonal run as far as source and dest agree (restricted to the [a0,a0+N) x
// [b0,b0+M) sub-rectangle), records the new furthest-reaching point for k back into v, and
// returns the resulting Snake.
//
// v.IsForward() selects between the forward step (choosing between V[k-1] and V[k+1], walking the
// diagonal run with increasing coordinates) and the reverse step (choosing between V[k-1] and
// V[k+1] with the opposite tie-break, walking the diagonal run with decreasing coordinates).
func Calculate[T any](v *V, k, d int, source []T, a0, N int, dest []T, b0, M int, eq func(a, b T) bool) Snake {
	if v.IsForward() {
		return calculateForward(v, k, d, source, a0, N, dest, b0, M, eq)
	}
	return calculateReverse(v, k, d, source, a0, N, dest, b0, M, eq)
}

func calculateForward[T any](v *V, k, d int, source []T, a0, N int, dest []T, b0, M int, eq func(a, b T) bool) Snake {
	down := k == -d || (k != d && v.Get(k-1) < v.Get(k+1))

	var xStart int
	if down {
		xStart = v.Get(k + 1)
	} else {
		xStart = v.Get(k - 1)
	}
	pk := k - 1
	if down {
		pk = k + 1
	}
	yStart := xStart - pk

	xEnd := xStart + 1
	if down {
		xEnd = xStart
	}
	yEnd := xEnd - k

	diagonalLength := 0
	for xEnd < N && yEnd < M && eq(source[a0+xEnd], dest[b0+yEnd]) {
		xEnd++
		yEnd++
		diagonalLength++
	}
	v.Set(k, xEnd)

	deleted, inserted := 0, 0
	if down {
		inserted = 1
	} else {
		deleted = 1
	}
	return NewSnake(a0, N, b0, M, true, a0+xStart, b0+yStart, deleted, inserted, diagonalLength)
}

func calculateReverse[T any](v *V, k, d int, source []T, a0, N int, dest []T, b0, M int, eq func(a, b T) bool) Snake {
	delta := v.Delta()
	up := k == d+delta || (k != -d+delta && v.Get(k-1) < v.Get(k+1))

	var xStart int
	if up {
		xStart = v.Get(k - 1)
	} else {
		xStart = v.Get(k + 1)
	}
	pk := k + 1
	if up {
		pk = k - 1
	}
	yStart := xStart - pk

	xEnd := xStart - 1
	if up {
		xEnd = xStart
	}
	yEnd := xEnd - k

	diagonalLength := 0
	for xEnd > 0 && yEnd > 0 && eq(source[a0+xEnd-1], dest[b0+yEnd-1]) {
		xEnd--
		yEnd--
		diagonalLength++
	}
	v.Set(k, xEnd)

	deleted, inserted := 0, 0
	if up {
		inserted = 1
	} else {
		deleted = 1
	}
	return NewSnake(a0, N, b0, M, false, a0+xStart, b0+yStart, deleted, inserted, diagonalLength)
}
