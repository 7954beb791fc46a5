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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ptslang/ptsverify/pkg/verifier"
)

// runVerbose drives v one line at a time, echoing progress to stderr
// ("verifying `line`... ok") unless quiet is set. It stops at the first
// Step error or at the "-1" sentinel, matching verifier.Verifier.Run's own
// contract.
func runVerbose(v *verifier.Verifier, r io.Reader, quiet bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "-1" {
			return nil
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "verifying `%s`... ", line)
		}
		if err := v.Step(line); err != nil {
			if !quiet {
				fmt.Fprintln(os.Stderr, "failed")
			}
			return err
		}
		if !quiet {
			fmt.Fprintln(os.Stderr, "ok")
		}
	}
	return scanner.Err()
}
