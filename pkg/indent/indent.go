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

// Package indent prefixes every line of a block of text with a fixed
// string. pkg/ptsprint uses String to render a resolved Γ chain one
// binding per line, each nested one indent level deeper than its parent
// (pkg/pts.Store.ContextPath walks outermost-first, which is exactly the
// order one call per binding needs). Δ chains are printed without it.
//
// The retrieval pack carried this package's test file but not its
// implementation, so this is a clean-room rewrite matching the behavior
// indent_test.go documents: prefix is written at the start of every line,
// including the line following each '\n', and an empty input produces an
// empty output regardless of prefix.
package indent

import (
	"bytes"
	"io"
)

// String prefixes every line of in with prefix.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes prefixes every line of in with prefix.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return nil
	}
	var out bytes.Buffer
	start := 0
	for i, c := range in {
		if c == '\n' {
			out.Write(prefix)
			out.Write(in[start : i+1])
			start = i + 1
		}
	}
	if start < len(in) {
		out.Write(prefix)
		out.Write(in[start:])
	}
	return out.Bytes()
}

// Writer wraps an io.Writer, inserting prefix at the start of every line
// written to it, including a line split across multiple Write calls.
type Writer struct {
	w           io.Writer
	prefix      []byte
	atLineStart bool
}

// NewWriter returns a Writer that prefixes every line written through it
// with prefix before forwarding to w.
func NewWriter(w io.Writer, prefix string) *Writer {
	return &Writer{w: w, prefix: []byte(prefix), atLineStart: true}
}

// Write implements io.Writer. The returned count is always the number of
// bytes of p accounted for, never counting the injected prefix bytes.
func (iw *Writer) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		nl := bytes.IndexByte(p, '\n')
		lineLen := len(p)
		hasNL := nl >= 0
		if hasNL {
			lineLen = nl + 1
		}
		line := p[:lineLen]

		out := line
		prefixLen := 0
		if iw.atLineStart && len(iw.prefix) > 0 {
			prefixLen = len(iw.prefix)
			out = append(append([]byte{}, iw.prefix...), line...)
		}

		n, err := iw.w.Write(out)
		consumed := n - prefixLen
		if consumed < 0 {
			consumed = 0
		}
		if consumed > lineLen {
			consumed = lineLen
		}
		total += consumed
		if err != nil {
			return total, err
		}
		if consumed < lineLen {
			return total, nil
		}

		iw.atLineStart = hasNL
		p = p[lineLen:]
	}
	return total, nil
}
