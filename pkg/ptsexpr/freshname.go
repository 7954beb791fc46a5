// Copyright 2026 The PTS Verify Authors.
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

package ptsexpr

// alphabet is the cycling order used by GenerateFreeVarGTE: lowercase
// letters first (the common case), then uppercase. Surface variables are a
// single printable letter, so the name space is kept to single letters
// rather than widened to multi-character names — see DESIGN.md for the
// reasoning.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateFreeVarGTE implements the fresh-name policy: the smallest name
// greater than or equal to v, in alphabet order, that is not in avoid.
// Cycling past the end of the alphabet back to its start is permitted; it
// panics if every one of the 52 single-letter names is in avoid. No rule
// limits the size of a context or the reuse of a name, so nothing upstream
// keeps an avoid-set below that bound.
func GenerateFreeVarGTE(avoid VarSet, v Var) Var {
	start := indexOf(v)
	if start < 0 {
		// Not in the known alphabet (shouldn't happen for valid surface
		// names); fall back to scanning from the beginning.
		start = 0
	}
	for i := 0; i < len(alphabet); i++ {
		candidate := Var(alphabet[(start+i)%len(alphabet)])
		if !avoid.Contains(candidate) {
			return candidate
		}
	}
	panic("ptsexpr: fresh-name alphabet exhausted, avoid-set covers every single-letter name")
}

func indexOf(v Var) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == byte(v) {
			return i
		}
	}
	return -1
}
