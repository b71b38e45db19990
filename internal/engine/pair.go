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

// SnakePair is the result of a middle-snake search ([Middle]): the path length D at which a
// forward and a reverse search first overlapped, together with whichever one of the two snakes
// (the forward snake, if the overlap was found during a forward step, or the reverse snake
// otherwise) triggered the detection. Exactly one of Forward or Reverse is non-nil.
type SnakePair struct {
	D       int
	Forward *Snake
	Reverse *Snake
}
