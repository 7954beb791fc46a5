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

// Binding is one node's payload in the context in-tree: a single x:A
// entry pushed by var or weak.
type Binding struct {
	Var  ptsexpr.Var
	Type ptsexpr.Expr
}

// InTreeKey gives two bindings with the same parent and the same (var, type)
// pair the same node id, which is what makes context-id equality a plain
// integer comparison.
func (b Binding) InTreeKey() string {
	return b.Var.String() + ":" + b.Type.String()
}
