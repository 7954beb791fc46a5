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

import "github.com/ptslang/ptsverify/pkg/ptsexpr"

// Judgement is the immutable 4-tuple Δ ⊢ Γ ▷ M : N. Defs and Ctx are ids into
// a Store's two in-trees rather than cloned lists, which is what lets
// weak/form/appl/etc. compare "same Δ" or "same Γ" as one integer comparison
// instead of a deep structural comparison on every rule application.
type Judgement struct {
	Defs int
	Ctx  int
	M    ptsexpr.Expr
	N    ptsexpr.Expr
}
