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

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// mismatchedCtxErr reports "J1 and J2 do not share the same Γ" together with
// a structural diff of the two context paths: the bare id mismatch tells
// you rule application failed, the diff tells you why, without the caller
// re-deriving both contexts by hand.
func mismatchedCtxErr(rule string, store *Store, ctx1, ctx2 int) error {
	p1, p2 := store.ContextPath(ctx1), store.ContextPath(ctx2)
	diff := cmp.Diff(p1, p2, cmp.Comparer(func(a, b Binding) bool {
		return a.Var == b.Var && a.Type.String() == b.Type.String()
	}))
	return premiseErr(rule, fmt.Sprintf("J1 and J2 do not share the same Γ (-J1 +J2):\n%s", diff))
}
