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

import "github.com/ptslang/ptsverify/pkg/intree"

// Store owns the two in-trees a derivation shares across every judgement:
// one for typing contexts, one for definition chains. A Store is never
// copied; judgements only ever record ids into it.
type Store struct {
	Contexts *intree.InTree[Binding]
	Defs     *intree.InTree[Definition]
}

// NewStore returns an empty Store; id 0 in both trees denotes the empty
// context / empty definition chain.
func NewStore() *Store {
	return &Store{
		Contexts: intree.New[Binding](),
		Defs:     intree.New[Definition](),
	}
}

// ContextPath returns Γ's bindings in declaration order, outermost first.
func (s *Store) ContextPath(ctx int) []Binding {
	return s.Contexts.Path(ctx)
}

// DefsPath returns Δ's definitions in declaration order, the order `inst`'s
// integer operand d indexes into.
func (s *Store) DefsPath(defs int) []Definition {
	return s.Defs.Path(defs)
}

// FindDefinition looks up a named definition anywhere on defs' chain,
// root-ward from defs.
func (s *Store) FindDefinition(defs int, name string) (Definition, bool) {
	return s.Defs.Resolve(defs, func(d Definition) bool { return d.Name == name })
}
