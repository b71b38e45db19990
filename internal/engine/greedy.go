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

// CompareGreedy runs the non-linear-space comparator: a single forward search driven to
// completion while retaining a full V-snapshot at every d (instead of discarding V and recursing,
// as [Compare] does), then reconstructs the snake list by walking the snapshots backward from
// (N, M) to (0, 0).
//
// CompareGreedy uses O(D^2) space for the snapshots themselves (D snapshots of increasing width)
// in exchange for never recursing, which makes it straightforward to
// reason about but unsuitable for very large D. It exists primarily as a cross-check for
// [Compare]: both comparators must always agree on the total number of edits they report.
func CompareGreedy[T any](source, dest []T, eq func(a, b T) bool) (Results, error) {
	N, M := len(source), len(dest)
	maxSize := N + M
	if maxSize < 1 {
		maxSize = 1
	}

	v := NewV(N, M, maxSize, true)
	v.InitStub(N, M)

	var vs []V
	found := false
	for d := 0; d <= maxSize && !found; d++ {
		_, done, err := Forward(source, N, dest, M, v, d, eq)
		if err != nil {
			return Results{}, err
		}
		if cp, cpErr := v.CreateCopy(d, true, 0); cpErr == nil {
			vs = append(vs, *cp)
		}
		found = done
	}
	if !found {
		return Results{}, &SearchExhaustedError{MaxSize: maxSize}
	}

	snakes, err := solveForward(vs, N, M, source, dest, eq)
	if err != nil {
		return Results{}, err
	}
	return NewPartialResults(snakes, true, vs), nil
}

// CompareGreedyReverse is the mirror image of [CompareGreedy]: it drives a [Reverse] search to
// completion and reconstructs the snake list by walking the snapshots forward from (0, 0) to
// (N, M). It produces the same total edit count as [CompareGreedy] and [Compare], and is used to
// cross-check those comparators against a second, independent trace reconstruction.
func CompareGreedyReverse[T any](source, dest []T, eq func(a, b T) bool) (Results, error) {
	N, M := len(source), len(dest)
	maxSize := N + M
	if maxSize < 1 {
		maxSize = 1
	}

	v := NewV(N, M, maxSize, false)
	v.InitStub(N, M)

	var vs []V
	found := false
	for d := 0; d <= maxSize && !found; d++ {
		_, done, err := Reverse(source, N, dest, M, v, d, eq)
		if err != nil {
			return Results{}, err
		}
		if cp, cpErr := v.CreateCopy(d, false, v.Delta()); cpErr == nil {
			vs = append(vs, *cp)
		}
		found = done
	}
	if !found {
		return Results{}, &SearchExhaustedError{MaxSize: maxSize}
	}

	snakes, err := solveReverse(vs, N, M, source, dest, eq)
	if err != nil {
		return Results{}, err
	}
	return NewPartialResults(snakes, false, vs), nil
}

// prependSnake adds candidate to the front of the ordered snake list, folding it into the current
// head via [Snake.Append] when the two are mergeable instead of growing the list. It's the mirror
// image of appendSnake, used where reconstruction walks backward and builds the list front-first.
func prependSnake(snakes []Snake, candidate Snake) []Snake {
	if len(snakes) > 0 {
		head := candidate
		if head.Append(snakes[0]) {
			snakes[0] = head
			return snakes
		}
	}
	return append([]Snake{candidate}, snakes...)
}

// solveForward reconstructs the snake list from a forward-search V-snapshot array by walking
// backward from (N, M): at each d, the diagonal k = px - py identifies the snake that must have
// produced the current point (px, py), which is then prepended (with combine-append) to the
// growing list and p is advanced to that snake's start point.
func solveForward[T any](vs []V, N, M int, source, dest []T, eq func(a, b T) bool) ([]Snake, error) {
	var snakes []Snake
	px, py := N, M
	for d := len(vs) - 1; d >= 0 && !(px == 0 && py == 0); d-- {
		v := vs[d]
		k := px - py
		xEnd, yEnd := v.Get(k), v.Get(k)-k
		if xEnd != px || yEnd != py {
			return nil, &TraceMismatchError{D: d, K: k, ExpectedX: px, ExpectedY: py, ActualX: xEnd, ActualY: yEnd, Reason: "forward snapshot endpoint mismatch"}
		}
		snake := Calculate(&v, k, d, source, 0, N, dest, 0, M, eq)
		if snake.XEnd() != px || snake.YEnd() != py {
			return nil, &TraceMismatchError{D: d, K: k, ExpectedX: px, ExpectedY: py, ActualX: snake.XEnd(), ActualY: snake.YEnd(), Reason: "reconstructed snake endpoint mismatch"}
		}
		snakes = prependSnake(snakes, snake)
		px, py = snake.XStart, snake.YStart
	}
	return snakes, nil
}

// solveReverse is the mirror image of solveForward: it walks forward from (0, 0) to (N, M),
// appending each reconstructed snake (with combine-append) to the tail of the growing list in
// order.
func solveReverse[T any](vs []V, N, M int, source, dest []T, eq func(a, b T) bool) ([]Snake, error) {
	var snakes []Snake
	px, py := 0, 0
	for d := len(vs) - 1; d >= 0 && !(px == N && py == M); d-- {
		v := vs[d]
		k := px - py
		xEnd, yEnd := v.Get(k), v.Get(k)-k
		if xEnd != px || yEnd != py {
			return nil, &TraceMismatchError{D: d, K: k, ExpectedX: px, ExpectedY: py, ActualX: xEnd, ActualY: yEnd, Reason: "reverse snapshot endpoint mismatch"}
		}
		snake := Calculate(&v, k, d, source, 0, N, dest, 0, M, eq)
		if snake.XEnd() != px || snake.YEnd() != py {
			return nil, &TraceMismatchError{D: d, K: k, ExpectedX: px, ExpectedY: py, ActualX: snake.XEnd(), ActualY: snake.YEnd(), Reason: "reconstructed snake endpoint mismatch"}
		}
		appendSnake(&snakes, snake)
		px, py = snake.XStart, snake.YStart
	}
	return snakes, nil
}
