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

// Program ptsverify reads a derivation script from a file or standard
// input, checks each line against the PTS inference rules, and prints the
// final judgement.
//
// Usage: ptsverify [--permissive-appl] [--permissive-abst] [--quiet] [FILE]
//
// If FILE is given, the script is read from it; otherwise from standard
// input. Verification stops at the first malformed line or unmet premise,
// or at a "-1" sentinel line, whichever comes first.
//
// THIS PROGRAM IS STILL JUST A DEVELOPMENT TOOL.
package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"

	"github.com/ptslang/ptsverify/pkg/pts"
	"github.com/ptslang/ptsverify/pkg/ptsprint"
	"github.com/ptslang/ptsverify/pkg/verifier"
)

var stop = os.Exit

func exitIfError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop(1)
	}
}

func main() {
	var permissiveAppl, permissiveAbst, quiet, help bool

	getopt.BoolVarLong(&permissiveAppl, "permissive-appl", 0, "do not enforce that appl's argument type matches the Π's domain")
	getopt.BoolVarLong(&permissiveAbst, "permissive-abst", 0, "do not enforce that abst's derived body type matches the Π's body")
	getopt.BoolVarLong(&quiet, "quiet", 'q', "print only the final judgement, not one line per step")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE]")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		stop(0)
	}

	opts := pts.DefaultOptions()
	opts.StrictApplTypes = !permissiveAppl
	opts.StrictAbstBodies = !permissiveAbst

	args := getopt.Args()
	input := os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		exitIfError(err)
		defer f.Close()
		input = f
	}

	v := verifier.New(opts)
	exitIfError(runVerbose(v, input, quiet))

	if len(v.Book) == 0 {
		fmt.Fprintln(os.Stderr, "no judgements constructed")
		stop(1)
	}
	fmt.Println(ptsprint.Judgement(v.Engine.Store, v.Book[len(v.Book)-1]))
}
