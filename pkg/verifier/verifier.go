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

// Package verifier implements the line-oriented driver: it tokenizes one
// instruction per line, dispatches to the matching pkg/pts rule, and
// enforces that the declared line number equals the verifier's current
// judgement count before ever touching the rule engine.
package verifier

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ptslang/ptsverify/pkg/pts"
)

// Verifier drives one derivation script against a single pts.Engine. It
// owns the append-only judgement vector: no Step or Run ever rewrites an
// earlier entry.
type Verifier struct {
	Engine *pts.Engine
	Book   []pts.Judgement
}

// New returns a Verifier over a fresh engine configured with opts.
func New(opts pts.Options) *Verifier {
	return &Verifier{Engine: pts.NewEngine(opts)}
}

// Len reports the number of judgements constructed so far — the value every
// line's declared line number must equal before Step dispatches it.
func (v *Verifier) Len() int {
	return len(v.Book)
}

// judgement resolves an operand naming a judgement index, reporting
// UndefinedReference (not a panic) when it is out of range — every rule
// operand that names a "J" goes through this one path.
func (v *Verifier) judgement(op string, lineNo int, idx int) (pts.Judgement, error) {
	if idx < 0 || idx >= len(v.Book) {
		return pts.Judgement{}, pts.ErrUndefinedReference.New(op, fmt.Sprintf("no judgement at index %d (have %d)", idx, len(v.Book)))
	}
	return v.Book[idx], nil
}

// Step parses and applies exactly one non-sentinel line, pushing the new
// judgement at the next index on success. On any error the judgement
// vector is left unchanged at its prior length.
func (v *Verifier) Step(raw string) error {
	instr, err := tokenize(raw)
	if err != nil {
		return err
	}
	if instr.line != len(v.Book) {
		return ErrLineNumberMismatch.New(instr.line, len(v.Book))
	}
	j, err := v.dispatch(instr)
	if err != nil {
		return err
	}
	v.Book = append(v.Book, j)
	return nil
}

func (v *Verifier) dispatch(instr instruction) (pts.Judgement, error) {
	handler, ok := handlers[instr.op]
	if !ok {
		return pts.Judgement{}, ErrUnknownInstruction.New(instr.line, instr.op)
	}
	return handler(v, instr)
}

// handlerFunc applies one instruction's operands against the engine,
// resolving judgement-index operands through v.judgement first.
type handlerFunc func(v *Verifier, instr instruction) (pts.Judgement, error)

var handlers = map[string]handlerFunc{
	"sort": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 0); err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Sort()
	},
	"var": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 2); err != nil {
			return pts.Judgement{}, err
		}
		j, err := operandJudgement(v, "var", instr, 0)
		if err != nil {
			return pts.Judgement{}, err
		}
		x, err := parseVar("var", instr.line, instr.operands[1])
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Var(j, x)
	},
	"weak": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 3); err != nil {
			return pts.Judgement{}, err
		}
		j1, err := operandJudgement(v, "weak", instr, 0)
		if err != nil {
			return pts.Judgement{}, err
		}
		j2, err := operandJudgement(v, "weak", instr, 1)
		if err != nil {
			return pts.Judgement{}, err
		}
		x, err := parseVar("weak", instr.line, instr.operands[2])
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Weak(j1, j2, x)
	},
	"form": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 2); err != nil {
			return pts.Judgement{}, err
		}
		j1, j2, err := twoJudgements(v, "form", instr)
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Form(j1, j2)
	},
	"appl": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 2); err != nil {
			return pts.Judgement{}, err
		}
		j1, j2, err := twoJudgements(v, "appl", instr)
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Appl(j1, j2)
	},
	"abst": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 2); err != nil {
			return pts.Judgement{}, err
		}
		j1, j2, err := twoJudgements(v, "abst", instr)
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Abst(j1, j2)
	},
	"conv": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 2); err != nil {
			return pts.Judgement{}, err
		}
		j1, j2, err := twoJudgements(v, "conv", instr)
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Conv(j1, j2)
	},
	"def": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 3); err != nil {
			return pts.Judgement{}, err
		}
		j1, j2, err := twoJudgements(v, "def", instr)
		if err != nil {
			return pts.Judgement{}, err
		}
		name, err := parseName("def", instr.line, instr.operands[2])
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Def(j1, j2, name)
	},
	"defpr": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 3); err != nil {
			return pts.Judgement{}, err
		}
		j1, j2, err := twoJudgements(v, "defpr", instr)
		if err != nil {
			return pts.Judgement{}, err
		}
		name, err := parseName("defpr", instr.line, instr.operands[2])
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.DefPrim(j1, j2, name)
	},
	"cp": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 1); err != nil {
			return pts.Judgement{}, err
		}
		j, err := operandJudgement(v, "cp", instr, 0)
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Cp(j)
	},
	"sp": func(v *Verifier, instr instruction) (pts.Judgement, error) {
		if err := arity(instr, 2); err != nil {
			return pts.Judgement{}, err
		}
		j, err := operandJudgement(v, "sp", instr, 0)
		if err != nil {
			return pts.Judgement{}, err
		}
		k, err := parseIndex("sp", instr.line, instr.operands[1])
		if err != nil {
			return pts.Judgement{}, err
		}
		return v.Engine.Sp(j, k)
	},
	"inst": instInst,
}

// instInst handles "inst J k J1 J2 ... Jk d": J is the *:@ judgement, k is
// the declared argument count, J1..Jk are the witness judgements in
// declaration order, and d is the definition's position in Δ. Unlike every
// other mnemonic, inst's own arity depends on one of its operands (k), so
// it is parsed separately rather than through the fixed-arity table.
func instInst(v *Verifier, instr instruction) (pts.Judgement, error) {
	if len(instr.operands) < 3 {
		return pts.Judgement{}, ErrParse.New(instr.line, "inst: expected at least \"J k d\"")
	}
	j, err := operandJudgement(v, "inst", instr, 0)
	if err != nil {
		return pts.Judgement{}, err
	}
	k, err := parseIndex("inst", instr.line, instr.operands[1])
	if err != nil {
		return pts.Judgement{}, err
	}
	if len(instr.operands) != k+3 {
		return pts.Judgement{}, ErrParse.New(instr.line, fmt.Sprintf("inst: declared %d arguments but found %d operands", k, len(instr.operands)-3))
	}
	args := make([]pts.Judgement, k)
	for i := 0; i < k; i++ {
		args[i], err = operandJudgement(v, "inst", instr, 2+i)
		if err != nil {
			return pts.Judgement{}, err
		}
	}
	d, err := parseIndex("inst", instr.line, instr.operands[2+k])
	if err != nil {
		return pts.Judgement{}, err
	}
	return v.Engine.Inst(j, args, d)
}

func arity(instr instruction, n int) error {
	if len(instr.operands) != n {
		return ErrParse.New(instr.line, fmt.Sprintf("%s: expected %d operands, got %d", instr.op, n, len(instr.operands)))
	}
	return nil
}

func operandJudgement(v *Verifier, op string, instr instruction, pos int) (pts.Judgement, error) {
	idx, err := parseIndex(op, instr.line, instr.operands[pos])
	if err != nil {
		return pts.Judgement{}, err
	}
	return v.judgement(op, instr.line, idx)
}

// twoJudgements resolves operands 0 and 1 as judgement indices. It performs
// no arity check of its own: def and defpr carry a trailing name operand, so
// each handler validates its full operand count before calling in.
func twoJudgements(v *Verifier, op string, instr instruction) (pts.Judgement, pts.Judgement, error) {
	j1, err := operandJudgement(v, op, instr, 0)
	if err != nil {
		return pts.Judgement{}, pts.Judgement{}, err
	}
	j2, err := operandJudgement(v, op, instr, 1)
	if err != nil {
		return pts.Judgement{}, pts.Judgement{}, err
	}
	return j1, j2, nil
}

// Run reads lines from r and Steps each one in turn, stopping at the first
// error or at the "-1" sentinel line. It returns that first Step error
// unchanged, or nil on a clean sentinel-terminated script. The error is not
// wrapped with the failing line's text: the driver's own kinds carry a line
// number, while pkg/pts's kinds name only the rule and the failing premise.
func (v *Verifier) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if isSentinel(line) {
			return nil
		}
		if err := v.Step(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
