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

package verifier

import errors "gopkg.in/src-d/go-errors.v1"

// Error kinds that belong to the line-oriented driver rather than to an
// individual rule (pkg/pts already defines
// PremiseMismatch/UndefinedReference/DuplicateDefinition; those propagate
// through Step unchanged). Each embeds the offending line number so callers
// never have to reconstruct "which line failed" from context.
var (
	// ErrParse is returned when a line cannot be tokenized into a line
	// number, mnemonic, and the operand count its mnemonic requires.
	ErrParse = errors.NewKind("line %d: parse error: %s")

	// ErrLineNumberMismatch is returned when the declared line number does
	// not equal the verifier's current judgement count.
	ErrLineNumberMismatch = errors.NewKind("declared line number %d does not match judgement count %d")

	// ErrUnknownInstruction is returned when the mnemonic is not one of the
	// twelve known rules.
	ErrUnknownInstruction = errors.NewKind("line %d: unknown instruction %q")
)
