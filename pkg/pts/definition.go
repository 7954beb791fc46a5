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
	"strconv"

	"github.com/ptslang/ptsverify/pkg/ptsexpr"
)

// Definition is one node's payload in the definition in-tree: a named entry
// of Δ. Body is nil for a primitive definition declared by defpr.
type Definition struct {
	Context int
	Name    string
	Body    ptsexpr.Expr
	Type    ptsexpr.Expr
}

// InTreeKey hash-conses two definitions only when every field matches,
// including the declaring context id, so a genuinely distinct definition
// never collapses onto an earlier one just because it shares a name.
func (d Definition) InTreeKey() string {
	body := "\x00primitive"
	if d.Body != nil {
		body = d.Body.String()
	}
	return d.Name + "\x00" + body + "\x00" + d.Type.String() + "\x00" + strconv.Itoa(d.Context)
}
