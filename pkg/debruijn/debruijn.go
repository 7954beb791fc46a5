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

// Package debruijn computes the α-key (de Bruijn normal form) of a PTS
// expression and performs capture-avoiding substitution through that same
// walk: a cons-list binding stack is threaded through the walk, and a single
// optional (name, replacement) substitution rides alongside it so that
// AlphaSubstitute and DeBruijn share one implementation.
package debruijn

import (
	"fmt"

	"github.com/ptslang/ptsverify/pkg/ptsexpr"
)

// Expr is the de Bruijn form of a ptsexpr.Expr: every occurrence of a
// variable is tagged Bound or Free, and binder names are retained only for
// pretty-printing/read-back, never consulted by Equal.
type Expr interface {
	isDebruijn()
}

// Bound is an occurrence of the i-th enclosing binder, counted from 1,
// innermost first. Rename is the (possibly freshened) surface name of that
// binder, carried only so the form can be read back into surface syntax.
type Bound struct {
	Index  int
	Rename ptsexpr.Var
}

// Free is an occurrence of a name with no enclosing binder.
type Free struct {
	Name ptsexpr.Var
}

// Sort mirrors ptsexpr.Sort.
type Sort struct {
	Kind ptsexpr.SortKind
}

// Pi mirrors ptsexpr.Pi; Bound is the (possibly renamed) binder name, used
// only when reading the form back to surface syntax.
type Pi struct {
	Bound  ptsexpr.Var
	Domain Expr
	Body   Expr
}

// Lambda mirrors ptsexpr.Lambda.
type Lambda struct {
	Bound  ptsexpr.Var
	Domain Expr
	Body   Expr
}

// App mirrors ptsexpr.App.
type App struct {
	Fun Expr
	Arg Expr
}

// DefCall mirrors ptsexpr.DefCall.
type DefCall struct {
	Name string
	Args []Expr
}

func (*Bound) isDebruijn()   {}
func (*Free) isDebruijn()    {}
func (*Sort) isDebruijn()    {}
func (*Pi) isDebruijn()      {}
func (*Lambda) isDebruijn()  {}
func (*App) isDebruijn()     {}
func (*DefCall) isDebruijn() {}

// binding is one entry of the cons-list binding stack: original is the
// surface name of the binder as written, rename is the possibly-freshened
// name substituted in to avoid capture.
type binding struct {
	original ptsexpr.Var
	rename   ptsexpr.Var
}

// substitution is the optional (name, replacement) pair seeded by
// AlphaSubstitute; it is nil for a plain DeBruijn call.
type substitution struct {
	name ptsexpr.Var
	expr ptsexpr.Expr
}

type bindings struct {
	stack []binding
	sub   *substitution
}

func (b *bindings) with(original, rename ptsexpr.Var) *bindings {
	next := make([]binding, len(b.stack), len(b.stack)+1)
	copy(next, b.stack)
	next = append(next, binding{original: original, rename: rename})
	return &bindings{stack: next, sub: b.sub}
}

func (b *bindings) substitutionFreeVars() ptsexpr.VarSet {
	if b.sub == nil {
		return ptsexpr.VarSet{}
	}
	return ptsexpr.FreeVars(b.sub.expr)
}

type indexResult int

const (
	resultFree indexResult = iota
	resultIndex
	resultSubstitution
)

func (b *bindings) index(search ptsexpr.Var) (indexResult, int, ptsexpr.Var, ptsexpr.Expr) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].original == search {
			return resultIndex, len(b.stack) - i, b.stack[i].rename, nil
		}
	}
	if b.sub != nil && b.sub.name == search {
		return resultSubstitution, 0, 0, b.sub.expr
	}
	return resultFree, 0, 0, nil
}

func (b *bindings) bindingOrSubstitution(search ptsexpr.Var) Expr {
	switch kind, index, rename, replacement := b.index(search); kind {
	case resultIndex:
		return &Bound{Index: index, Rename: rename}
	case resultSubstitution:
		return walk(replacement, &bindings{})
	default:
		return &Free{Name: search}
	}
}

// DeBruijn produces the α-key of e: the de Bruijn normal form used for
// equality checks.
func DeBruijn(e ptsexpr.Expr) Expr {
	return walk(e, &bindings{})
}

// AlphaSubstitute performs the capture-avoiding substitution e[x := u] and
// returns it read back as an ordinary expression. Binders are renamed
// before being entered whenever their surface name would otherwise capture
// a free variable of u or of the body.
func AlphaSubstitute(e ptsexpr.Expr, x ptsexpr.Var, u ptsexpr.Expr) ptsexpr.Expr {
	b := &bindings{sub: &substitution{name: x, expr: u}}
	return ToExpr(walk(e, b))
}

func walk(e ptsexpr.Expr, b *bindings) Expr {
	switch x := e.(type) {
	case *ptsexpr.Variable:
		return b.bindingOrSubstitution(x.Name)
	case *ptsexpr.Sort:
		return &Sort{Kind: x.Kind}
	case *ptsexpr.Pi:
		rename := freshen(b, x.Bound, x.Body)
		return &Pi{
			Bound:  rename,
			Domain: walk(x.Domain, b),
			Body:   walk(x.Body, b.with(x.Bound, rename)),
		}
	case *ptsexpr.Lambda:
		rename := freshen(b, x.Bound, x.Body)
		return &Lambda{
			Bound:  rename,
			Domain: walk(x.Domain, b),
			Body:   walk(x.Body, b.with(x.Bound, rename)),
		}
	case *ptsexpr.App:
		return &App{Fun: walk(x.Fun, b), Arg: walk(x.Arg, b)}
	case *ptsexpr.DefCall:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = walk(a, b)
		}
		return &DefCall{Name: x.Name, Args: args}
	default:
		panic(fmt.Sprintf("debruijn: unknown expr variant %T", e))
	}
}

// freshen picks the binder's rename: var itself unless it would be
// captured, in which case GenerateFreeVarGTE finds a replacement. The
// renames of enclosing binders referenced from body are avoided too, so an
// outer binder that was itself renamed is never captured on read-back.
func freshen(b *bindings, bound ptsexpr.Var, body ptsexpr.Expr) ptsexpr.Var {
	bodyFV := ptsexpr.FreeVars(body)
	avoid := b.substitutionFreeVars().Union(bodyFV)
	for _, s := range b.stack {
		if bodyFV.Contains(s.original) {
			avoid.Add(s.rename)
		}
	}
	return ptsexpr.GenerateFreeVarGTE(avoid, bound)
}

// ToExpr reads a de Bruijn form back into an ordinary surface expression,
// using each node's Rename field (for Bound) or Name field (for Free) as
// its surface name.
func ToExpr(e Expr) ptsexpr.Expr {
	switch x := e.(type) {
	case *Bound:
		return ptsexpr.NewVar(x.Rename)
	case *Free:
		return ptsexpr.NewVar(x.Name)
	case *Sort:
		return ptsexpr.NewSort(x.Kind)
	case *Pi:
		return ptsexpr.NewPi(x.Bound, ToExpr(x.Domain), ToExpr(x.Body))
	case *Lambda:
		return ptsexpr.NewLambda(x.Bound, ToExpr(x.Domain), ToExpr(x.Body))
	case *App:
		return ptsexpr.NewApp(ToExpr(x.Fun), ToExpr(x.Arg))
	case *DefCall:
		args := make([]ptsexpr.Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = ToExpr(a)
		}
		return ptsexpr.NewDefCall(x.Name, args)
	default:
		panic(fmt.Sprintf("debruijn: unknown debruijn variant %T", e))
	}
}

// Equal reports whether a and b are α-equivalent: their de Bruijn forms are
// structurally identical, ignoring binder-name fields but comparing
// bound-index integers and free-variable names.
func Equal(a, b ptsexpr.Expr) bool {
	return equalForms(DeBruijn(a), DeBruijn(b))
}

func equalForms(a, b Expr) bool {
	switch x := a.(type) {
	case *Bound:
		y, ok := b.(*Bound)
		return ok && x.Index == y.Index
	case *Free:
		y, ok := b.(*Free)
		return ok && x.Name == y.Name
	case *Sort:
		y, ok := b.(*Sort)
		return ok && x.Kind == y.Kind
	case *Pi:
		y, ok := b.(*Pi)
		return ok && equalForms(x.Domain, y.Domain) && equalForms(x.Body, y.Body)
	case *Lambda:
		y, ok := b.(*Lambda)
		return ok && equalForms(x.Domain, y.Domain) && equalForms(x.Body, y.Body)
	case *App:
		y, ok := b.(*App)
		return ok && equalForms(x.Fun, y.Fun) && equalForms(x.Arg, y.Arg)
	case *DefCall:
		y, ok := b.(*DefCall)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !equalForms(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
