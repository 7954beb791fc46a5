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

// Package intree implements a prefix-shared, hash-consed append-only tree:
// the structure used to store both typing contexts and definition chains so
// that "same Γ" or "same Δ" collapses to a single integer comparison instead
// of a deep structural compare.
//
// It is a Go generic type so pkg/pts can share one implementation between
// contexts (payload (Var, Expr)) and definition chains (payload
// Definition).
package intree

// Key is whatever a payload type must supply so two nodes with the same
// parent and the same key collapse to the same id. Go generics have no
// structural-equality constraint strong enough for arbitrary payloads
// containing interfaces (ptsexpr.Expr), so payloads instead provide their
// own canonical string key.
type Key interface {
	InTreeKey() string
}

// entry is one hash-consed node: its id is implicit (index into entries),
// parent is 0 for a root child, len is the distance to the root (depth;
// the root's direct children have len 1).
type entry[T Key] struct {
	parent int
	len    int
	value  T
}

// InTree is the append-only, hash-consed tree. The zero value is not ready
// to use; call New.
type InTree[T Key] struct {
	lookup  map[int]map[string]int // parent id -> canonical key -> node id
	entries []*entry[T]            // entries[0] is unused (id 0 is the empty root)
}

// New returns an empty InTree. Id 0 always denotes the root (empty context
// or empty definition chain).
func New[T Key]() *InTree[T] {
	return &InTree[T]{
		lookup:  map[int]map[string]int{},
		entries: []*entry[T]{nil},
	}
}

// Create inserts a node with the given parent and payload, returning its
// id. Calling Create twice with an equal (parent, payload) pair returns the
// same id.
func (t *InTree[T]) Create(parent int, value T) int {
	byKey := t.lookup[parent]
	if byKey == nil {
		byKey = map[string]int{}
		t.lookup[parent] = byKey
	}
	key := value.InTreeKey()
	if id, ok := byKey[key]; ok {
		return id
	}
	depth := 1
	if parent != 0 {
		depth = t.entries[parent].len + 1
	}
	id := len(t.entries)
	t.entries = append(t.entries, &entry[T]{parent: parent, len: depth, value: value})
	byKey[key] = id
	return id
}

// Depth returns the distance from id to the root: 0 for the root itself.
func (t *InTree[T]) Depth(id int) int {
	if id == 0 {
		return 0
	}
	return t.entries[id].len
}

// Get returns the payload stored at id and whether id names a real node
// (false for the root, id 0).
func (t *InTree[T]) Get(id int) (T, bool) {
	if id == 0 || id >= len(t.entries) {
		var zero T
		return zero, false
	}
	return t.entries[id].value, true
}

// Parent returns the parent id of id, or 0 if id is the root.
func (t *InTree[T]) Parent(id int) int {
	if id == 0 || id >= len(t.entries) {
		return 0
	}
	return t.entries[id].parent
}

// Traverse returns the id of the ancestor of id at position nthInPath,
// counted 1-indexed from the root along the path to id. It returns 0, false
// if nthInPath is out of range.
func (t *InTree[T]) Traverse(id int, nthInPath int) (int, bool) {
	current := id
	for current != 0 {
		d := t.entries[current].len
		if d == nthInPath {
			return current, true
		}
		if d < nthInPath {
			return 0, false
		}
		current = t.entries[current].parent
	}
	return 0, false
}

// Resolve walks from id root-ward (inclusive) and returns the payload of
// the first node whose value satisfies where, or the zero value and false
// if the root is reached without a match.
func (t *InTree[T]) Resolve(id int, where func(T) bool) (T, bool) {
	current := id
	for current != 0 {
		e := t.entries[current]
		if where(e.value) {
			return e.value, true
		}
		current = e.parent
	}
	var zero T
	return zero, false
}

// Path returns the chain of payloads from the root (exclusive) down to id
// (inclusive), in root-to-leaf order — used by the pretty-printer to render
// a context or definition chain top to bottom.
func (t *InTree[T]) Path(id int) []T {
	if id == 0 {
		return nil
	}
	depth := t.entries[id].len
	out := make([]T, depth)
	current := id
	for current != 0 {
		e := t.entries[current]
		out[e.len-1] = e.value
		current = e.parent
	}
	return out
}
