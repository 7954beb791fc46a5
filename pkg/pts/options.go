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

package pts

// Options controls whether appl's and abst's extra premises (A′ ≡ A, B ≡
// B′) are enforced at all, and, when enforced, that they are checked up to
// α-equivalence rather than literal structural equality (which would reject
// two Π-types that differ only in a bound variable's name, even though they
// are the same type). See DESIGN.md for the full reasoning.
type Options struct {
	// StrictApplTypes enforces, in appl, that the argument's type is
	// α-equivalent to the Π's declared domain. Default true.
	StrictApplTypes bool
	// StrictAbstBodies enforces, in abst, that the derived body type is
	// α-equivalent to the Π's declared body. Default true.
	StrictAbstBodies bool
}

// DefaultOptions returns the strict (fully PTS-faithful) configuration.
func DefaultOptions() Options {
	return Options{StrictApplTypes: true, StrictAbstBodies: true}
}
