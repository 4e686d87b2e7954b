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

//go:generate go run ../cmd/bitgen -output z_ops.go

// This file holds the hand-written glue for the per-width scalar helpers
// in z_ops.go. The generated helpers dispatch on the concrete width with a
// type switch; signed widths are reinterpreted as their unsigned
// counterpart before right-shifting so the shift is always logical.

// lowMask8 returns a byte with the low amount bits set, for amount in
// 1..8. Out-of-range amounts produce a zero mask rather than a shift
// panic; the range itself is checked by assertAmount.
func lowMask8(amount int) uint8 {
	return uint8(0xFF) >> uint(8-amount)
}
