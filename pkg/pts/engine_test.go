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
	"testing"

	"github.com/ptslang/ptsverify/pkg/ptsexpr"
)

// TestMinimalDerivation builds a minimal nine-step derivation via
// sort/var/weak/form, ending in A:*, B:* ⊢ Π a:A.B : *.
func TestMinimalDerivation(t *testing.T) {
	e := NewEngine(DefaultOptions())
	book := make([]Judgement, 0, 10)
	push := func(j Judgement, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("step %d: %v", len(book), err)
		}
		book = append(book, j)
	}

	push(e.Sort())                              // 0
	push(e.Var(book[0], 'A'))                    // 1
	push(e.Weak(book[0], book[0], 'A'))          // 2
	push(e.Var(book[2], 'B'))                    // 3
	push(e.Weak(book[2], book[2], 'B'))          // 4
	push(e.Weak(book[1], book[2], 'B'))          // 5
	push(e.Var(book[5], 'a'))                    // 6
	push(e.Weak(book[4], book[5], 'a'))          // 7
	push(e.Weak(book[3], book[5], 'a'))          // 8
	push(e.Form(book[5], book[8]))               // 9

	got := book[9]
	if !ptsexpr.IsSort(got.N) {
		t.Fatalf("judgement 9's type = %v, want a sort", got.N)
	}
	if s := got.N.(*ptsexpr.Sort); s.Kind != ptsexpr.Star {
		t.Errorf("judgement 9's type = %v, want *", got.N)
	}
	// form closes over the innermost binding a:A, leaving Γ = A:*, B:*.
	pi, ok := got.M.(*ptsexpr.Pi)
	if !ok {
		t.Fatalf("judgement 9's term = %v, want a Π-abstraction", got.M)
	}
	if pi.Bound != 'a' {
		t.Errorf("binder = %v, want a", pi.Bound)
	}
	if !ptsexpr.Equal(pi.Domain, ptsexpr.NewVar('A')) || !ptsexpr.Equal(pi.Body, ptsexpr.NewVar('B')) {
		t.Errorf("judgement 9's term = %v, want ?a:(A).(B)", got.M)
	}
	if n := len(e.Store.ContextPath(got.Ctx)); n != 2 {
		t.Errorf("judgement 9's context has %d bindings, want 2", n)
	}
}

func TestVarRequiresSortedType(t *testing.T) {
	e := NewEngine(DefaultOptions())
	sort, _ := e.Sort()
	// N is an ordinary variable, not a sort, so var must refuse this
	// judgement: A's own type has to be * or @ before x:A can be pushed.
	bogus := Judgement{Defs: sort.Defs, Ctx: sort.Ctx, M: ptsexpr.NewVar('z'), N: ptsexpr.NewVar('q')}
	if _, err := e.Var(bogus, 'x'); err == nil {
		t.Error("Var over a non-sort-typed judgement succeeded, want PremiseMismatch")
	}
}

func TestDuplicateDefinition(t *testing.T) {
	e := NewEngine(DefaultOptions())
	sort, _ := e.Sort()

	d1, err := e.Def(sort, sort, "id")
	if err != nil {
		t.Fatalf("first def: %v", err)
	}
	// d1.Defs now names the Δ chain "id" was added to; build a second
	// Δ⊢Γ▷M:N judgement sharing that same chain to attempt the redeclaration.
	sameChain := Judgement{Defs: d1.Defs, Ctx: sort.Ctx, M: sort.M, N: sort.N}
	if _, err := e.Def(sameChain, sameChain, "id"); err == nil {
		t.Error("second def with the same name succeeded, want DuplicateDefinition")
	} else if !ErrDuplicateDefinition.Is(err) {
		t.Errorf("second def error = %v, want ErrDuplicateDefinition", err)
	}
}

// TestDefAndInstRoundTrip declares a primitive "id" definition over a single
// parameter x:* and instantiates it, checking the resulting type is the
// definition's declared type with the witness substituted in.
func TestDefAndInstRoundTrip(t *testing.T) {
	e := NewEngine(DefaultOptions())
	sort, _ := e.Sort()              // ∅⊢∅▷*:@
	x, err := e.Var(sort, 'x')       // ∅⊢x:*▷x:*
	if err != nil {
		t.Fatalf("var: %v", err)
	}

	withDef, err := e.DefPrim(sort, x, "id")
	if err != nil {
		t.Fatalf("defpr: %v", err)
	}

	// Build a judgement of the shape Δ⊢∅▷A:* to serve as the witness U=A.
	a, err := e.Var(sort, 'A')
	if err != nil {
		t.Fatalf("var A: %v", err)
	}
	witness := Judgement{Defs: withDef.Defs, Ctx: sort.Ctx, M: a.M, N: a.N}
	instJ := Judgement{Defs: withDef.Defs, Ctx: sort.Ctx, M: sort.M, N: sort.N}

	result, err := e.Inst(instJ, []Judgement{witness}, 0)
	if err != nil {
		t.Fatalf("inst: %v", err)
	}
	call, ok := result.M.(*ptsexpr.DefCall)
	if !ok || call.Name != "id" {
		t.Fatalf("inst result term = %v, want a call to id", result.M)
	}
	// id's declared type is its own parameter x, so instantiating with A
	// substitutes x:=A into that declared type, giving exactly A.
	if !ptsexpr.Equal(result.N, ptsexpr.NewVar('A')) {
		t.Errorf("inst result type = %v, want A", result.N)
	}
}

func TestInstUndefinedIndex(t *testing.T) {
	e := NewEngine(DefaultOptions())
	sort, _ := e.Sort()
	if _, err := e.Inst(sort, nil, 0); err == nil {
		t.Error("inst against an empty Δ succeeded, want UndefinedReference")
	} else if !ErrUndefinedReference.Is(err) {
		t.Errorf("error = %v, want ErrUndefinedReference", err)
	}
}

func TestSpProjection(t *testing.T) {
	e := NewEngine(DefaultOptions())
	sort, _ := e.Sort()
	withA, err := e.Var(sort, 'A')
	if err != nil {
		t.Fatalf("var: %v", err)
	}
	proj, err := e.Sp(withA, 0)
	if err != nil {
		t.Fatalf("sp: %v", err)
	}
	v, ok := proj.M.(*ptsexpr.Variable)
	if !ok || v.Name != 'A' {
		t.Errorf("sp(0) term = %v, want variable A", proj.M)
	}
}
