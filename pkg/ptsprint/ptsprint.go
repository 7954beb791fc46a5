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

// Package ptsprint renders expressions and judgements with variables in
// blue, the two sorts in red, and definition names in green, using
// fatih/color. Pretty-printing lives outside the checker core; only
// cmd/ptsverify imports this package.
package ptsprint

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ptslang/ptsverify/pkg/indent"
	"github.com/ptslang/ptsverify/pkg/pts"
	"github.com/ptslang/ptsverify/pkg/ptsexpr"
)

var (
	varColor  = color.New(color.FgBlue)
	sortColor = color.New(color.FgRed)
	defColor  = color.New(color.FgGreen)
)

// Expr renders e in the surface syntax, variables blue, sorts red, and
// definition names green.
func Expr(e ptsexpr.Expr) string {
	switch x := e.(type) {
	case *ptsexpr.Variable:
		return varColor.Sprint(x.Name.String())
	case *ptsexpr.Sort:
		return sortColor.Sprint(x.Kind.String())
	case *ptsexpr.Pi:
		return fmt.Sprintf("?%s:(%s).(%s)", varColor.Sprint(x.Bound.String()), Expr(x.Domain), Expr(x.Body))
	case *ptsexpr.Lambda:
		return fmt.Sprintf("$%s:(%s).(%s)", varColor.Sprint(x.Bound.String()), Expr(x.Domain), Expr(x.Body))
	case *ptsexpr.App:
		return fmt.Sprintf("%%(%s)(%s)", Expr(x.Fun), Expr(x.Arg))
	case *ptsexpr.DefCall:
		var b strings.Builder
		b.WriteString(defColor.Sprint(x.Name))
		b.WriteByte('[')
		for i, a := range x.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('(')
			b.WriteString(Expr(a))
			b.WriteByte(')')
		}
		b.WriteByte(']')
		return b.String()
	default:
		return e.String()
	}
}

// Judgement renders j against store as Δ (see Defs), a newline, then Γ (see
// Context) followed by " ▷ M : N". Γ and Δ are shown as their resolved
// chains rather than raw ids; no "⊢" symbol is printed.
func Judgement(store *pts.Store, j pts.Judgement) string {
	return fmt.Sprintf("%s\n%s ▷ %s : %s", Defs(store, j.Defs), Context(store, j.Ctx), Expr(j.M), Expr(j.N))
}

// Context renders Γ as one "x : A" line per binding, nested one indent
// level per binding, outermost first, with no trailing newline, so the
// judgement line continues on the last binding's line ("∅" when Γ is empty).
func Context(store *pts.Store, ctx int) string {
	path := store.ContextPath(ctx)
	if len(path) == 0 {
		return "∅"
	}
	var b strings.Builder
	for i, binding := range path {
		line := fmt.Sprintf("%s : %s\n", varColor.Sprint(binding.Var.String()), Expr(binding.Type))
		b.WriteString(indent.String(strings.Repeat("  ", i), line))
	}
	return strings.TrimRight(b.String(), "\n")
}

// Defs renders Δ as one definition per line, in declaration order, a
// primitive definition marked by its missing body.
func Defs(store *pts.Store, defs int) string {
	path := store.DefsPath(defs)
	if len(path) == 0 {
		return "∅"
	}
	var b strings.Builder
	for _, d := range path {
		name := defColor.Sprint(d.Name)
		if d.Body == nil {
			fmt.Fprintf(&b, "%s primitive : %s\n", name, Expr(d.Type))
		} else {
			fmt.Fprintf(&b, "%s := %s : %s\n", name, Expr(d.Body), Expr(d.Type))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
