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

// Forward runs a single forward d-step across every diagonal k in [-d, d], mutating v in place.
// If the step that reaches (N, M) occurs at this d, Forward returns that snake with done=true. A
// caller driving the full search (such as [CompareGreedy]) calls Forward in a loop with
// increasing d, starting at d=0, until done is true.
func Forward[T any](source []T, N int, dest []T, M int, v *V, d int, eq func(a, b T) bool) (snake Snake, done bool, err error) {
	for k := -d; k <= d; k += 2 {
		s := Calculate(v, k, d, source, 0, N, dest, 0, M, eq)
		if v.Get(k) >= N && v.Y(k) >= M {
			return s, true, nil
		}
	}
	return Snake{}, false, nil
}

// Reverse is the backward counterpart of [Forward]: it runs a single reverse d-step across every
// diagonal k in [delta-d, delta+d] (delta = N-M), and returns done=true once a step reaches the
// origin (0, 0).
func Reverse[T any](source []T, N int, dest []T, M int, v *V, d int, eq func(a, b T) bool) (snake Snake, done bool, err error) {
	delta := v.Delta()
	for k := -d + delta; k <= d+delta; k += 2 {
		s := Calculate(v, k, d, source, 0, N, dest, 0, M, eq)
		if v.Get(k) <= 0 && v.Y(k) <= 0 {
			return s, true, nil
		}
	}
	return Snake{}, false, nil
}

// Middle runs a bidirectional search over the sub-rectangle [a0, a0+N) x [b0, b0+M) of source and
// dest, alternating a forward d-step (advancing vForward) with a reverse d-step (advancing
// vReverse) for increasing d, until the two searches overlap on some diagonal. vForward and
// vReverse are reinitialized via [V.InitStub] for this sub-rectangle before the search starts, so
// the same pair of vectors can be reused across recursive calls at different rectangles (see
// [Compare]).
//
// If forwardVs or reverseVs is non-nil, a snapshot of the corresponding vector (via
// [V.CreateCopy]) is appended to it after every pass, including the pass that detects the
// overlap; this is how the top-level call of the linear comparator retains the V-snapshot arrays
// exposed on [Results].
//
// Middle returns a [SnakePair] recording the total path length 2d (found during a reverse pass)
// or 2d-1 (found during a forward pass) and whichever single snake triggered the detection.
func Middle[T any](source []T, a0, N int, dest []T, b0, M int, vForward, vReverse *V, forwardVs, reverseVs *[]V, eq func(a, b T) bool) (SnakePair, error) {
	vForward.InitStub(N, M)
	vReverse.InitStub(N, M)

	delta := N - M
	deltaIsEven := delta%2 == 0

	maxSize := (N + M + 1) / 2

	snapshotForward := func(d int) {
		if forwardVs == nil {
			return
		}
		if cp, err := vForward.CreateCopy(d, true, 0); err == nil {
			*forwardVs = append(*forwardVs, *cp)
		}
	}
	snapshotReverse := func(d int) {
		if reverseVs == nil {
			return
		}
		if cp, err := vReverse.CreateCopy(d, false, delta); err == nil {
			*reverseVs = append(*reverseVs, *cp)
		}
	}

	for d := 0; d <= maxSize; d++ {
		for k := -d; k <= d; k += 2 {
			snake := Calculate(vForward, k, d, source, a0, N, dest, b0, M, eq)
			if !deltaIsEven && delta-(d-1) <= k && k <= delta+(d-1) && vForward.Get(k) >= vReverse.Get(k) {
				snake.D = 2*d - 1
				snapshotForward(d)
				return SnakePair{D: snake.D, Forward: &snake}, nil
			}
		}
		snapshotForward(d)

		for k := -d + delta; k <= d+delta; k += 2 {
			snake := Calculate(vReverse, k, d, source, a0, N, dest, b0, M, eq)
			if deltaIsEven && -d <= k && k <= d && vReverse.Get(k) <= vForward.Get(k) {
				snake.D = 2 * d
				snapshotReverse(d)
				return SnakePair{D: snake.D, Reverse: &snake}, nil
			}
		}
		snapshotReverse(d)
	}
	return SnakePair{}, &SearchExhaustedError{MaxSize: maxSize}
}
