// Copyright 2025 bitbuf Authors
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

package bitbuf

import "fmt"

// Contract checks are active only under the bitbufassert build tag
// (debugAsserts is a constant, so default builds carry no trace of them):
//
//	go test -tags bitbufassert ./...
//
// Violations are caller bugs and panic; there is no recoverable error
// path anywhere in this package.

// assertAmount checks the 1..8 precondition shared by PushBits and
// PopBits.
func assertAmount(amount int) {
	if debugAsserts && (amount < 1 || amount > 8) {
		panic(fmt.Sprintf("bitbuf: bit amount %d out of range [1,8]", amount))
	}
}

// assertConserved checks that a push or pop neither duplicated nor lost
// set bits. Callers gate the call (and the ones counting feeding it) on
// debugAsserts.
func assertConserved(got, want int) {
	if got != want {
		panic(fmt.Sprintf("bitbuf: set-bit count not conserved: got %d, want %d", got, want))
	}
}
