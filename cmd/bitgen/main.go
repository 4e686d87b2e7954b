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

// Command bitgen generates the per-width scalar helpers used by the
// bitbuf package. Each supported fixed width gets a case arm in an
// exhaustive type switch; bitgen keeps the ten arms mechanical and
// consistent instead of hand-maintained.
//
// Usage:
//
//	bitgen -output z_ops.go
//
// Or via go:generate from the consuming package:
//
//	//go:generate go run ../cmd/bitgen -output z_ops.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "z_ops.go", "Output file name")
	packageOut = flag.String("pkg", "bitbuf", "Output package name")
)

func main() {
	flag.Parse()

	src, err := Generate(*packageOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bitgen: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "bitgen: %v\n", err)
		os.Exit(1)
	}
}
