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

package verifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ptslang/ptsverify/pkg/ptsexpr"
)

// instruction is one tokenized line: its declared line number, its mnemonic,
// and the raw operand fields that follow, in declaration order.
type instruction struct {
	line     int
	op       string
	operands []string
}

// tokenize splits one non-sentinel line into an instruction. Fields are
// separated by exactly one space; a line with fewer than two fields, or
// whose first field is not a decimal integer, is a ParseError.
func tokenize(raw string) (instruction, error) {
	fields := strings.Split(strings.TrimRight(raw, "\r\n"), " ")
	if len(fields) < 2 {
		return instruction{}, ErrParse.New(-1, fmt.Sprintf("expected \"<lineno> <op> ...\", got %q", raw))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return instruction{}, ErrParse.New(-1, fmt.Sprintf("line number %q is not an integer", fields[0]))
	}
	return instruction{line: n, op: fields[1], operands: fields[2:]}, nil
}

// isSentinel reports whether raw is the "-1" line that terminates input:
// exactly the two bytes "-1", nothing else on the line.
func isSentinel(raw string) bool {
	return raw == "-1"
}

func parseIndex(op string, lineNo int, field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0, ErrParse.New(lineNo, fmt.Sprintf("%s: operand %q is not a non-negative integer", op, field))
	}
	return n, nil
}

func parseVar(op string, lineNo int, field string) (ptsexpr.Var, error) {
	if len(field) != 1 || !ptsexpr.Var(field[0]).IsLetter() {
		return 0, ErrParse.New(lineNo, fmt.Sprintf("%s: operand %q is not a single letter", op, field))
	}
	return ptsexpr.Var(field[0]), nil
}

func parseName(op string, lineNo int, field string) (string, error) {
	if len(field) < 2 {
		return "", ErrParse.New(lineNo, fmt.Sprintf("%s: definition name %q must have at least two letters", op, field))
	}
	for i := 0; i < len(field); i++ {
		if !ptsexpr.Var(field[i]).IsLetter() {
			return "", ErrParse.New(lineNo, fmt.Sprintf("%s: definition name %q contains a non-letter", op, field))
		}
	}
	return field, nil
}
