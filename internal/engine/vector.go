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

// V holds the furthest-reaching s-coordinate for every diagonal k relevant to the current d, for
// either a forward or a backward (reverse) search.
//
// k is addressed through a fixed delta offset: a forward vector has delta=0, a reverse vector has
// delta = sourceSize - destSize. This lets [V.Get] and [V.Set] use the same translation regardless
// of direction, mirroring how the forward and reverse searches of the bidirectional algorithm share
// a single coordinate system (see Myers, section 3).
type V struct {
	isForward  bool
	sourceSize int
	destSize   int
	maxSize    int
	delta      int
	data       []int
}

// NewV allocates a V vector sized to hold diagonals k in [-maxSize, maxSize] (translated by delta).
func NewV(sourceSize, destSize, maxSize int, isForward bool) *V {
	v := &V{
		isForward:  isForward,
		sourceSize: sourceSize,
		destSize:   destSize,
		maxSize:    maxSize,
	}
	if !isForward {
		v.delta = sourceSize - destSize
	}
	v.data = make([]int, 2*maxSize+1)
	return v
}

func (v *V) index(k int) int {
	return k - v.delta + v.maxSize
}

// IsForward reports whether v addresses a forward search.
func (v *V) IsForward() bool { return v.isForward }

// Delta returns the diagonal offset of v.
func (v *V) Delta() int { return v.delta }

// MaxSize returns the number of d-steps v was allocated to hold.
func (v *V) MaxSize() int { return v.maxSize }

// Get returns the furthest-reaching s-coordinate stored for diagonal k.
//
// Get panics if k is out of the range v was allocated for; this indicates a programming error in
// the search driving v, not a condition callers can recover from.
func (v *V) Get(k int) int {
	i := v.index(k)
	if i < 0 || i >= len(v.data) {
		panic(&BoundsError{K: k, Delta: v.delta, MaxSize: v.maxSize})
	}
	return v.data[i]
}

// Set stores value as the furthest-reaching s-coordinate for diagonal k.
func (v *V) Set(k, value int) {
	i := v.index(k)
	if i < 0 || i >= len(v.data) {
		panic(&BoundsError{K: k, Delta: v.delta, MaxSize: v.maxSize})
	}
	v.data[i] = value
}

// Y returns the t-coordinate implied by the stored s-coordinate on diagonal k.
func (v *V) Y(k int) int {
	return v.Get(k) - k
}

// InitStub resets v to address a sub-rectangle of the given size and seeds the single entry that
// every search needs before its first non-trivial d-step: a forward vector seeds V[1]=0 (so that
// d=0, k=0 reads the stub and starts at the origin); a reverse vector seeds V[delta-1]=sourceSize
// (so that the symmetric d=0, k=delta step starts at the rectangle's far corner).
func (v *V) InitStub(sourceSize, destSize int) {
	v.sourceSize = sourceSize
	v.destSize = destSize
	if v.isForward {
		v.delta = 0
		v.Set(1, 0)
	} else {
		v.delta = sourceSize - destSize
		v.Set(v.delta-1, sourceSize)
	}
}

// CreateCopy returns a trimmed snapshot of v sized for the given d, so that many snapshots taken
// across a d-loop can be retained cheaply (each one only as wide as it needs to be, 2*max(d,1)+1
// entries) instead of retaining the full-width buffer at every step.
//
// isForward and deltaSize describe the direction and, for reverse snapshots, the delta of the
// caller's search; deltaSize must be 0 when isForward is true. CreateCopy returns a
// [*SnapshotOverCapacityError] if d exceeds v's maxSize.
func (v *V) CreateCopy(d int, isForward bool, deltaSize int) (*V, error) {
	if isForward && deltaSize != 0 {
		panic("engine: CreateCopy: deltaSize must be 0 for a forward snapshot")
	}
	dPrime := d
	if dPrime < 1 {
		dPrime = 1
	}
	if dPrime > v.maxSize {
		return nil, &SnapshotOverCapacityError{D: d, MaxSize: v.maxSize}
	}
	cp := &V{
		isForward:  isForward,
		sourceSize: v.sourceSize,
		destSize:   v.destSize,
		maxSize:    dPrime,
	}
	if !isForward {
		cp.delta = deltaSize
	}
	length := 2*dPrime + 1
	startPos := (v.maxSize - deltaSize) - (dPrime - cp.delta)
	cp.data = make([]int, length)
	copy(cp.data, v.data[startPos:startPos+length])
	return cp, nil
}
