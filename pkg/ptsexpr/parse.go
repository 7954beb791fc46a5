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

import "fmt"

// Parse reads one expression from the surface syntax and confirms every
// byte of s was consumed. It is the ambient surface parser the core
// derivation engine treats as an external collaborator: neither pkg/pts nor
// pkg/verifier calls it, since instruction operands are judgement indices,
// single letters and definition names. It exists here because a runnable repo needs a way to
// read the expression mini-language at all, e.g. for building testdata and
// for any future surface-text entry point.
func Parse(s string) (Expr, error) {
	p := &parser{input: []byte(s)}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected trailing input at byte %d: %q", p.pos, p.input[p.pos:])
	}
	return e, nil
}

// parser is a minimal recursive-descent reader over a byte slice. Every
// subterm of the grammar is parenthesized, so no operator precedence table
// is needed; the state is just a cursor, the same shape as the original
// take_expr(&mut &[char]) cursor.
type parser struct {
	input []byte
	pos   int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *parser) takeOne() (byte, error) {
	c, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of input")
	}
	p.pos++
	return c, nil
}

func (p *parser) takeExact(want byte) error {
	c, ok := p.peek()
	if !ok {
		return fmt.Errorf("unexpected end of input, expected %q", want)
	}
	if c != want {
		return fmt.Errorf("expected %q at byte %d, got %q", want, p.pos, c)
	}
	p.pos++
	return nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (p *parser) takeVar() (Var, error) {
	c, err := p.takeOne()
	if err != nil {
		return 0, err
	}
	if !isLetter(c) {
		return 0, fmt.Errorf("expected variable at byte %d, got %q", p.pos-1, c)
	}
	return Var(c), nil
}

func (p *parser) binder(construct func(Var, Expr, Expr) Expr) (Expr, error) {
	x, err := p.takeVar()
	if err != nil {
		return nil, err
	}
	if err := p.takeExact(':'); err != nil {
		return nil, err
	}
	if err := p.takeExact('('); err != nil {
		return nil, err
	}
	m, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.takeExact(')'); err != nil {
		return nil, err
	}
	if err := p.takeExact('.'); err != nil {
		return nil, err
	}
	if err := p.takeExact('('); err != nil {
		return nil, err
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.takeExact(')'); err != nil {
		return nil, err
	}
	return construct(x, m, n), nil
}

func (p *parser) application() (Expr, error) {
	if err := p.takeExact('('); err != nil {
		return nil, err
	}
	m, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.takeExact(')'); err != nil {
		return nil, err
	}
	if err := p.takeExact('('); err != nil {
		return nil, err
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.takeExact(')'); err != nil {
		return nil, err
	}
	return NewApp(m, n), nil
}

func (p *parser) defCall(name string) (Expr, error) {
	if err := p.takeExact('['); err != nil {
		return nil, err
	}
	var args []Expr
	if p.takeExact('(') == nil {
		m, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.takeExact(')'); err != nil {
			return nil, err
		}
		args = append(args, m)
		for p.takeExact(',') == nil {
			if err := p.takeExact('('); err != nil {
				return nil, err
			}
			m, err := p.expr()
			if err != nil {
				return nil, err
			}
			if err := p.takeExact(')'); err != nil {
				return nil, err
			}
			args = append(args, m)
		}
	}
	if err := p.takeExact(']'); err != nil {
		return nil, err
	}
	return NewDefCall(name, args), nil
}

// expr parses one expr per the surface grammar. A run of one letter is a
// variable; a run of two or more letters is a definition name, which must
// be followed by "[...]".
func (p *parser) expr() (Expr, error) {
	start := p.pos
	i := start
	for i < len(p.input) && isLetter(p.input[i]) {
		i++
	}
	switch n := i - start; {
	case n == 1:
		p.pos = i
		return NewVar(Var(p.input[start])), nil
	case n > 1:
		name := string(p.input[start:i])
		p.pos = i
		return p.defCall(name)
	}

	c, err := p.takeOne()
	if err != nil {
		return nil, err
	}
	switch c {
	case '*':
		return NewSort(Star), nil
	case '@':
		return NewSort(Box), nil
	case '%':
		return p.application()
	case '$':
		return p.binder(func(x Var, m, n Expr) Expr { return NewLambda(x, m, n) })
	case '?':
		return p.binder(func(x Var, m, n Expr) Expr { return NewPi(x, m, n) })
	default:
		return nil, fmt.Errorf("unexpected byte %q at position %d", c, p.pos-1)
	}
}
