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

// Package pts implements the derivation engine: one function per PTS
// inference rule, each validating its premises against a shared Store of
// hash-consed contexts and definition chains and producing the conclusion
// Judgement. The Store backs every premise comparison like "same Γ" with an
// integer compare rather than a deep structural one.
//
// Rule functions take and return Judgement values, never indices — line
// numbering and index resolution belong to pkg/verifier.
package pts

import (
	"fmt"

	"github.com/ptslang/ptsverify/pkg/debruijn"
	"github.com/ptslang/ptsverify/pkg/ptsexpr"
)

// Engine drives the twelve inference rules against one Store.
type Engine struct {
	Store   *Store
	Options Options
}

// NewEngine returns an Engine over a fresh, empty Store.
func NewEngine(opts Options) *Engine {
	return &Engine{Store: NewStore(), Options: opts}
}

func premiseErr(rule, detail string) error {
	return ErrPremiseMismatch.New(rule, detail)
}

func undefinedErr(rule, detail string) error {
	return ErrUndefinedReference.New(rule, detail)
}

// Sort implements the sort rule: ∅ ⊢ ∅ ▷ * : @, with no premises.
func (e *Engine) Sort() (Judgement, error) {
	return Judgement{
		Defs: 0,
		Ctx:  0,
		M:    ptsexpr.NewSort(ptsexpr.Star),
		N:    ptsexpr.NewSort(ptsexpr.Box),
	}, nil
}

// Var implements var(J, x): Δ ⊢ Γ ▷ A:s (s a sort) gives Δ ⊢ Γ,x:A ▷ x:A.
func (e *Engine) Var(j Judgement, x ptsexpr.Var) (Judgement, error) {
	if !ptsexpr.IsSort(j.N) {
		return Judgement{}, premiseErr("var", "J's type is not a sort")
	}
	ctx := e.Store.Contexts.Create(j.Ctx, Binding{Var: x, Type: j.M})
	return Judgement{Defs: j.Defs, Ctx: ctx, M: ptsexpr.NewVar(x), N: j.M}, nil
}

// Weak implements weak(J1, J2, x): from Δ⊢Γ▷M:N and Δ⊢Γ▷A:s, produces
// Δ⊢Γ,x:A▷M:N.
func (e *Engine) Weak(j1, j2 Judgement, x ptsexpr.Var) (Judgement, error) {
	if j1.Defs != j2.Defs {
		return Judgement{}, premiseErr("weak", "J1 and J2 do not share the same Δ")
	}
	if j1.Ctx != j2.Ctx {
		return Judgement{}, mismatchedCtxErr("weak", e.Store, j1.Ctx, j2.Ctx)
	}
	if !ptsexpr.IsSort(j2.N) {
		return Judgement{}, premiseErr("weak", "J2's type is not a sort")
	}
	ctx := e.Store.Contexts.Create(j1.Ctx, Binding{Var: x, Type: j2.M})
	return Judgement{Defs: j1.Defs, Ctx: ctx, M: j1.M, N: j1.N}, nil
}

// Form implements form(J1, J2): from Δ⊢Γ▷A:s1 and Δ⊢Γ,x:A▷B:s2 (both sorts),
// produces Δ⊢Γ▷Πx:A.B:s2.
func (e *Engine) Form(j1, j2 Judgement) (Judgement, error) {
	if j1.Defs != j2.Defs {
		return Judgement{}, premiseErr("form", "J1 and J2 do not share the same Δ")
	}
	if !ptsexpr.IsSort(j1.N) {
		return Judgement{}, premiseErr("form", "J1's type is not a sort")
	}
	if !ptsexpr.IsSort(j2.N) {
		return Judgement{}, premiseErr("form", "J2's type is not a sort")
	}
	binding, ok := e.Store.Contexts.Get(j2.Ctx)
	if !ok {
		return Judgement{}, premiseErr("form", "J2's context is empty, expected Γ,x:A")
	}
	if e.Store.Contexts.Parent(j2.Ctx) != j1.Ctx {
		return Judgement{}, premiseErr("form", "J2's context is not J1's context extended by one binding")
	}
	if !debruijn.Equal(binding.Type, j1.M) {
		return Judgement{}, premiseErr("form", "the extended binding's type does not match J1's term")
	}
	return Judgement{
		Defs: j1.Defs,
		Ctx:  j1.Ctx,
		M:    ptsexpr.NewPi(binding.Var, j1.M, j2.M),
		N:    j2.N,
	}, nil
}

// Appl implements appl(J1, J2): from Δ⊢Γ▷M:Πx:A.B and Δ⊢Γ▷N:A′, produces
// Δ⊢Γ▷M N : B[x:=N].
func (e *Engine) Appl(j1, j2 Judgement) (Judgement, error) {
	if j1.Defs != j2.Defs {
		return Judgement{}, premiseErr("appl", "J1 and J2 do not share the same Δ")
	}
	if j1.Ctx != j2.Ctx {
		return Judgement{}, mismatchedCtxErr("appl", e.Store, j1.Ctx, j2.Ctx)
	}
	pi, ok := j1.N.(*ptsexpr.Pi)
	if !ok {
		return Judgement{}, premiseErr("appl", "J1's type is not a Π-abstraction")
	}
	if e.Options.StrictApplTypes && !debruijn.Equal(pi.Domain, j2.N) {
		return Judgement{}, premiseErr("appl", "J2's type does not match the Π's domain")
	}
	return Judgement{
		Defs: j1.Defs,
		Ctx:  j1.Ctx,
		M:    ptsexpr.NewApp(j1.M, j2.M),
		N:    debruijn.AlphaSubstitute(pi.Body, pi.Bound, j2.M),
	}, nil
}

// Abst implements abst(J1, J2): from Δ⊢Γ,x:A▷M:B and Δ⊢Γ▷Πx:A.B′:s (s a
// sort), produces Δ⊢Γ▷λx:A.M : Πx:A.B.
func (e *Engine) Abst(j1, j2 Judgement) (Judgement, error) {
	if j1.Defs != j2.Defs {
		return Judgement{}, premiseErr("abst", "J1 and J2 do not share the same Δ")
	}
	binding, ok := e.Store.Contexts.Get(j1.Ctx)
	if !ok {
		return Judgement{}, premiseErr("abst", "J1's context is empty, expected Γ,x:A")
	}
	if e.Store.Contexts.Parent(j1.Ctx) != j2.Ctx {
		return Judgement{}, premiseErr("abst", "J1's context is not J2's context extended by one binding")
	}
	pi, ok := j2.M.(*ptsexpr.Pi)
	if !ok {
		return Judgement{}, premiseErr("abst", "J2's term is not a Π-abstraction")
	}
	if !ptsexpr.IsSort(j2.N) {
		return Judgement{}, premiseErr("abst", "J2's type is not a sort")
	}
	if binding.Var != pi.Bound {
		return Judgement{}, premiseErr("abst", "J1's binder does not match the Π's binder")
	}
	if !debruijn.Equal(binding.Type, pi.Domain) {
		return Judgement{}, premiseErr("abst", "J1's binder type does not match the Π's domain")
	}
	if e.Options.StrictAbstBodies && !debruijn.Equal(j1.N, pi.Body) {
		return Judgement{}, premiseErr("abst", "J1's body type does not match the Π's body")
	}
	return Judgement{
		Defs: j1.Defs,
		Ctx:  j2.Ctx,
		M:    ptsexpr.NewLambda(binding.Var, binding.Type, j1.M),
		N:    ptsexpr.NewPi(binding.Var, pi.Domain, j1.N),
	}, nil
}

// Conv implements conv(J1, J2): from Δ⊢Γ▷A:B1 and Δ⊢Γ▷B2:s (s a sort),
// produces Δ⊢Γ▷A:B2. This checker performs no β-reduction, so no relation
// between B1 and B2 is required beyond B2 itself being well-sorted.
func (e *Engine) Conv(j1, j2 Judgement) (Judgement, error) {
	if j1.Defs != j2.Defs {
		return Judgement{}, premiseErr("conv", "J1 and J2 do not share the same Δ")
	}
	if j1.Ctx != j2.Ctx {
		return Judgement{}, mismatchedCtxErr("conv", e.Store, j1.Ctx, j2.Ctx)
	}
	if !ptsexpr.IsSort(j2.N) {
		return Judgement{}, premiseErr("conv", "J2's type is not a sort")
	}
	return Judgement{Defs: j1.Defs, Ctx: j1.Ctx, M: j1.M, N: j2.M}, nil
}

// Def implements def(J1, J2, name): from Δ⊢Γ▷K:L and Δ⊢Γ′▷M:N, with name
// undeclared in Δ, produces Δ,name(Γ′):=M:N ⊢ Γ▷K:L.
func (e *Engine) Def(j1, j2 Judgement, name string) (Judgement, error) {
	if j1.Defs != j2.Defs {
		return Judgement{}, premiseErr("def", "J1 and J2 do not share the same Δ")
	}
	if _, ok := e.Store.FindDefinition(j1.Defs, name); ok {
		return Judgement{}, ErrDuplicateDefinition.New(name)
	}
	defs := e.Store.Defs.Create(j1.Defs, Definition{Context: j2.Ctx, Name: name, Body: j2.M, Type: j2.N})
	return Judgement{Defs: defs, Ctx: j1.Ctx, M: j1.M, N: j1.N}, nil
}

// DefPrim implements defpr(J1, J2, name): as Def, but J2 itself has the
// shape Δ⊢Γ′▷N:s (s a sort); the new definition is primitive, with N as its
// declared type and no body.
func (e *Engine) DefPrim(j1, j2 Judgement, name string) (Judgement, error) {
	if j1.Defs != j2.Defs {
		return Judgement{}, premiseErr("defpr", "J1 and J2 do not share the same Δ")
	}
	if !ptsexpr.IsSort(j2.N) {
		return Judgement{}, premiseErr("defpr", "J2's type is not a sort")
	}
	if _, ok := e.Store.FindDefinition(j1.Defs, name); ok {
		return Judgement{}, ErrDuplicateDefinition.New(name)
	}
	defs := e.Store.Defs.Create(j1.Defs, Definition{Context: j2.Ctx, Name: name, Body: nil, Type: j2.M})
	return Judgement{Defs: defs, Ctx: j1.Ctx, M: j1.M, N: j1.N}, nil
}

// Inst implements inst(J, [E1...Ek], d): J must be Δ⊢Γ▷*:@; d selects, by
// position in Δ's declaration order, a definition whose context has depth k;
// each Ei supplies one witness Ui for the definition's i-th declared
// parameter. Produces Δ⊢Γ▷name[U1...Uk] : N[x1:=U1,...,xk:=Uk].
//
// Each Ei's type is checked against the i-th parameter's declared type with
// the earlier witnesses already substituted in, so a later parameter's type
// can depend on an earlier one's witness. See DESIGN.md.
func (e *Engine) Inst(j Judgement, args []Judgement, d int) (Judgement, error) {
	if !ptsexpr.IsSort(j.M) || j.M.(*ptsexpr.Sort).Kind != ptsexpr.Star {
		return Judgement{}, premiseErr("inst", "J's term is not *")
	}
	if !ptsexpr.IsSort(j.N) || j.N.(*ptsexpr.Sort).Kind != ptsexpr.Box {
		return Judgement{}, premiseErr("inst", "J's type is not @")
	}
	path := e.Store.DefsPath(j.Defs)
	if d < 0 || d >= len(path) {
		return Judgement{}, undefinedErr("inst", fmt.Sprintf("no definition at position %d in Δ", d))
	}
	def := path[d]
	params := e.Store.ContextPath(def.Context)
	if len(params) != len(args) {
		return Judgement{}, premiseErr("inst", fmt.Sprintf("definition %q declares %d parameters, got %d arguments", def.Name, len(params), len(args)))
	}
	values := make([]ptsexpr.Expr, len(args))
	n := def.Type
	for i, arg := range args {
		if arg.Defs != j.Defs {
			return Judgement{}, premiseErr("inst", fmt.Sprintf("argument %d does not share Δ with J", i))
		}
		if arg.Ctx != j.Ctx {
			return Judgement{}, premiseErr("inst", fmt.Sprintf("argument %d does not share Γ with J", i))
		}
		expected := params[i].Type
		for p := 0; p < i; p++ {
			expected = debruijn.AlphaSubstitute(expected, params[p].Var, values[p])
		}
		if !debruijn.Equal(expected, arg.N) {
			return Judgement{}, premiseErr("inst", fmt.Sprintf("argument %d's type does not match parameter %q's declared type", i, params[i].Var))
		}
		values[i] = arg.M
		n = debruijn.AlphaSubstitute(n, params[i].Var, arg.M)
	}
	return Judgement{
		Defs: j.Defs,
		Ctx:  j.Ctx,
		M:    ptsexpr.NewDefCall(def.Name, values),
		N:    n,
	}, nil
}

// Cp implements cp(J): a plain duplicate of J at a new index. The copy
// happens at the verifier layer (pushing the same Judgement value again);
// this method exists so the dispatch table in pkg/verifier can treat cp like
// every other rule.
func (e *Engine) Cp(j Judgement) (Judgement, error) {
	return j, nil
}

// Sp implements sp(J, k): projects the k-th binding of Γ (0-indexed,
// outermost first), producing Δ⊢Γ▷x_k : A_k.
func (e *Engine) Sp(j Judgement, k int) (Judgement, error) {
	path := e.Store.ContextPath(j.Ctx)
	if k < 0 || k >= len(path) {
		return Judgement{}, undefinedErr("sp", fmt.Sprintf("no binding at position %d in Γ", k))
	}
	b := path[k]
	return Judgement{Defs: j.Defs, Ctx: j.Ctx, M: ptsexpr.NewVar(b.Var), N: b.Type}, nil
}
