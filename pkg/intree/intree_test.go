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

package intree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// item is a minimal Key implementation for exercising InTree in isolation,
// without depending on pkg/pts's Binding/Definition payloads.
type item string

func (i item) InTreeKey() string { return string(i) }

func TestCreateHashConsing(t *testing.T) {
	tr := New[item]()
	a := tr.Create(0, "a")
	again := tr.Create(0, "a")
	if a != again {
		t.Errorf("Create(0, %q) twice gave ids %d and %d, want equal", "a", a, again)
	}
	b := tr.Create(0, "b")
	if a == b {
		t.Errorf("Create(0, %q) and Create(0, %q) collided on id %d", "a", "b", a)
	}
	aChild := tr.Create(a, "a")
	if aChild == a {
		t.Error("a child with the same payload as its parent must not collapse onto the parent")
	}
}

func TestGetParentDepth(t *testing.T) {
	tr := New[item]()
	a := tr.Create(0, "a")
	b := tr.Create(a, "b")
	c := tr.Create(b, "c")

	if v, ok := tr.Get(c); !ok || v != "c" {
		t.Errorf("Get(c) = (%v, %v), want (c, true)", v, ok)
	}
	if _, ok := tr.Get(0); ok {
		t.Error("Get(0) reported the root as present")
	}
	if got := tr.Parent(c); got != b {
		t.Errorf("Parent(c) = %d, want %d", got, b)
	}
	if got := tr.Depth(c); got != 3 {
		t.Errorf("Depth(c) = %d, want 3", got)
	}
	if got := tr.Depth(0); got != 0 {
		t.Errorf("Depth(root) = %d, want 0", got)
	}
}

func TestPath(t *testing.T) {
	tr := New[item]()
	a := tr.Create(0, "a")
	b := tr.Create(a, "b")
	c := tr.Create(b, "c")

	if diff := cmp.Diff([]item{"a", "b", "c"}, tr.Path(c)); diff != "" {
		t.Errorf("Path(c) mismatch (-want +got):\n%s", diff)
	}
	if got := tr.Path(0); got != nil {
		t.Errorf("Path(root) = %v, want nil", got)
	}
}

func TestTraverse(t *testing.T) {
	tr := New[item]()
	a := tr.Create(0, "a")
	b := tr.Create(a, "b")
	c := tr.Create(b, "c")

	tests := []struct {
		nth    int
		want   int
		wantOk bool
	}{
		{1, a, true},
		{2, b, true},
		{3, c, true},
		{4, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		got, ok := tr.Traverse(c, tt.nth)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("Traverse(c, %d) = (%d, %v), want (%d, %v)", tt.nth, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestResolve(t *testing.T) {
	tr := New[item]()
	a := tr.Create(0, "a")
	b := tr.Create(a, "b")
	c := tr.Create(b, "c")

	got, ok := tr.Resolve(c, func(v item) bool { return v == "a" })
	if !ok || got != "a" {
		t.Errorf("Resolve(c, ==a) = (%v, %v), want (a, true)", got, ok)
	}
	if _, ok := tr.Resolve(c, func(v item) bool { return v == "z" }); ok {
		t.Error("Resolve found a payload that was never created")
	}
}
