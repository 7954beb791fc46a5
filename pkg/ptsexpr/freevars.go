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

package ptsexpr

// VarSet is a set of free variable names.
type VarSet map[Var]struct{}

// NewVarSet builds a VarSet from the given names.
func NewVarSet(names ...Var) VarSet {
	s := make(VarSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether v is in s.
func (s VarSet) Contains(v Var) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v into s.
func (s VarSet) Add(v Var) { s[v] = struct{}{} }

// Union returns a new VarSet holding every member of s and other.
func (s VarSet) Union(other VarSet) VarSet {
	out := make(VarSet, len(s)+len(other))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range other {
		out[v] = struct{}{}
	}
	return out
}

// FreeVars returns the set of names occurring free in e. The body of a Π or
// λ has its own bound name removed after union with the body's free set,
// then that result is unioned with the domain's free set. A definition
// invocation's free variables are the union over all of its arguments.
func FreeVars(e Expr) VarSet {
	switch x := e.(type) {
	case *Variable:
		return NewVarSet(x.Name)
	case *Sort:
		return VarSet{}
	case *Pi:
		return freeVarsBinder(x.Bound, x.Domain, x.Body)
	case *Lambda:
		return freeVarsBinder(x.Bound, x.Domain, x.Body)
	case *App:
		return FreeVars(x.Fun).Union(FreeVars(x.Arg))
	case *DefCall:
		fv := VarSet{}
		for _, a := range x.Args {
			fv = fv.Union(FreeVars(a))
		}
		return fv
	default:
		return VarSet{}
	}
}

func freeVarsBinder(bound Var, domain, body Expr) VarSet {
	bodyFV := make(VarSet, len(FreeVars(body)))
	for v := range FreeVars(body) {
		if v != bound {
			bodyFV[v] = struct{}{}
		}
	}
	return bodyFV.Union(FreeVars(domain))
}
