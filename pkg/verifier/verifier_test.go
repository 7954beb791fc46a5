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
	"os"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/openconfig/gnmi/errdiff"
	"github.com/stretchr/testify/require"

	"github.com/ptslang/ptsverify/pkg/pts"
	"github.com/ptslang/ptsverify/pkg/ptsexpr"
)

func runScript(t *testing.T, path string) (*Verifier, error) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	v := New(pts.DefaultOptions())
	return v, v.Run(f)
}

// TestMinimalDerivationScript reproduces the minimal nine-step derivation
// through the line-oriented driver rather than direct Engine calls,
// exercising tokenize/dispatch/line-numbering together.
func TestMinimalDerivationScript(t *testing.T) {
	v, err := runScript(t, "testdata/minimal_derivation.ptsc")
	require.NoError(t, err)
	require.Len(t, v.Book, 10)

	// Judgement 9 closes over the innermost binding only; Γ keeps A and B,
	// and the term is Π a:A.B of sort *.
	got := v.Book[9]
	want := "?a:(A).(B)"
	if diff := pretty.Compare(got.M.String(), want); diff != "" {
		t.Errorf("judgement 9's term, diff(-got,+want):\n%s", diff)
	}
	require.True(t, ptsexpr.IsSort(got.N))
	require.Len(t, v.Engine.Store.ContextPath(got.Ctx), 2)
}

// TestWrongLineNumberScript checks that a declared line number which does
// not match the judgement count aborts the script and leaves the book at
// its prior length.
func TestWrongLineNumberScript(t *testing.T) {
	v, err := runScript(t, "testdata/wrong_line_number.ptsc")
	require.Error(t, err)
	if diff := errdiff.Substring(err, "declared line number 7 does not match judgement count 3"); diff != "" {
		t.Errorf("unexpected error: %s", diff)
	}
	require.Len(t, v.Book, 3, "a malformed line must leave the book unchanged")
}

// TestDuplicateDefinitionScript checks that redeclaring a name already
// present in Δ is rejected.
func TestDuplicateDefinitionScript(t *testing.T) {
	v, err := runScript(t, "testdata/duplicate_definition.ptsc")
	require.Error(t, err)
	if diff := errdiff.Substring(err, `"id" is already declared`); diff != "" {
		t.Errorf("unexpected error: %s", diff)
	}
	require.True(t, pts.ErrDuplicateDefinition.Is(err))
	require.Len(t, v.Book, 2)
}

// TestDefInstRoundtripScript exercises def/defpr/inst end to end: a
// zero-parameter primitive "unit", a one-parameter primitive "id" over it,
// and an instantiation of "id" whose result type is the witness
// substituted into id's own declared (parameter) type.
func TestDefInstRoundtripScript(t *testing.T) {
	v, err := runScript(t, "testdata/def_inst_roundtrip.ptsc")
	require.NoError(t, err)
	require.Len(t, v.Book, 6)

	got := v.Book[5]
	call, ok := got.M.(*ptsexpr.DefCall)
	require.True(t, ok, "judgement 5's term should be a definition call, got %v", got.M)
	require.Equal(t, "id", call.Name)
	require.Len(t, call.Args, 1)

	wantType := "unit[]"
	if diff := pretty.Compare(got.N.String(), wantType); diff != "" {
		t.Errorf("judgement 5's type, diff(-got,+want):\n%s", diff)
	}
}

// TestIdentityApplicationScript derives the polymorphic identity
// λA:*.λa:A.a, applies it to a fresh type variable B, and converts the
// result type to the freshly-formed Π a:B.B — covering abst, appl, conv,
// and cp through the driver in one script.
func TestIdentityApplicationScript(t *testing.T) {
	v, err := runScript(t, "testdata/identity_application.ptsc")
	require.NoError(t, err)
	require.Len(t, v.Book, 15)

	// cp duplicates judgement 7 verbatim at index 8.
	require.Equal(t, v.Book[7], v.Book[8])

	got := v.Book[14]
	if diff := pretty.Compare(got.M.String(), "%($A:(*).($a:(A).(a)))(B)"); diff != "" {
		t.Errorf("judgement 14's term, diff(-got,+want):\n%s", diff)
	}
	if diff := pretty.Compare(got.N.String(), "?a:(B).(B)"); diff != "" {
		t.Errorf("judgement 14's type, diff(-got,+want):\n%s", diff)
	}
}

func TestUnknownInstruction(t *testing.T) {
	v := New(pts.DefaultOptions())
	err := v.Step("0 bogus")
	require.Error(t, err)
	require.True(t, ErrUnknownInstruction.Is(err))
	require.Empty(t, v.Book)
}

func TestParseErrorLeavesBookUnchanged(t *testing.T) {
	v := New(pts.DefaultOptions())
	require.NoError(t, v.Step("0 sort"))
	err := v.Step("1 var 0")
	require.Error(t, err)
	require.True(t, ErrParse.Is(err))
	require.Len(t, v.Book, 1)
}

func TestSentinelStopsRun(t *testing.T) {
	v := New(pts.DefaultOptions())
	f, err := os.Open("testdata/minimal_derivation.ptsc")
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, v.Run(f))
	require.Len(t, v.Book, 10)
}
