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

import "fmt"

// BoundsError is the panic value raised when a diagonal k falls outside a V vector's allocated
// range. This is always a programming error in the search driving the vector, never a consequence
// of caller input, so it is raised by panic rather than returned.
type BoundsError struct {
	K, Delta, MaxSize int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("engine: diagonal k=%d out of bounds (delta=%d, maxSize=%d)", e.K, e.Delta, e.MaxSize)
}

// SnapshotOverCapacityError is returned by [V.CreateCopy] when the requested d exceeds the
// vector's maxSize. It is recoverable: callers taking opportunistic snapshots across a d-loop
// simply skip the snapshot for that d.
type SnapshotOverCapacityError struct {
	D, MaxSize int
}

func (e *SnapshotOverCapacityError) Error() string {
	return fmt.Sprintf("engine: snapshot for d=%d exceeds maxSize=%d", e.D, e.MaxSize)
}

// SearchExhaustedError is returned when a search ([Middle], or the d-loop of [CompareGreedy] or
// [CompareGreedyReverse]) iterates through its full d range without finding a termination or
// overlap. For well-formed inputs this
// should not happen; it signals that the maxSize bound passed to the search was too small.
type SearchExhaustedError struct {
	MaxSize int
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("engine: search exhausted without finding a path (maxSize=%d)", e.MaxSize)
}

// TraceMismatchError is returned by the greedy comparator when a V-snapshot walked during trace
// reconstruction doesn't agree with the point reconstruction expects it to have recorded, and by
// the linear comparator's D0/D1 split when a forward or reverse snake's boundary gap against the
// rectangle edge isn't a clean diagonal.
type TraceMismatchError struct {
	D, K                 int
	ExpectedX, ExpectedY int
	ActualX, ActualY     int
	Reason               string
}

func (e *TraceMismatchError) Error() string {
	return fmt.Sprintf("engine: trace mismatch at d=%d k=%d: %s (expected (%d,%d), got (%d,%d))",
		e.D, e.K, e.Reason, e.ExpectedX, e.ExpectedY, e.ActualX, e.ActualY)
}
