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

import errors "gopkg.in/src-d/go-errors.v1"

// Error kinds the derivation engine can return. Each is a go-errors.v1 Kind
// so callers can distinguish failure categories with Kind.Is rather than
// string matching.
var (
	// ErrPremiseMismatch is returned when a rule's premise fails to hold;
	// the formatted message names the rule and the failing premise.
	ErrPremiseMismatch = errors.NewKind("%s: %s")

	// ErrUndefinedReference is returned when an operand names a judgement
	// index or definition that does not exist.
	ErrUndefinedReference = errors.NewKind("%s: %s")

	// ErrDuplicateDefinition is returned when def/defpr is given a name
	// already present in the current definition chain.
	ErrDuplicateDefinition = errors.NewKind("definition %q is already declared")
)
