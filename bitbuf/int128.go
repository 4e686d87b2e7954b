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

import "math/bits"

// Uint128 is an unsigned 128-bit integer. Hi holds the most significant
// 64 bits.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement representation.
// Hi holds the most significant 64 bits, including the sign bit.
type Int128 struct {
	Hi int64
	Lo uint64
}

func int128AsUint(v Int128) Uint128 {
	return Uint128{Hi: uint64(v.Hi), Lo: v.Lo}
}

func uint128AsInt(v Uint128) Int128 {
	return Int128{Hi: int64(v.Hi), Lo: v.Lo}
}

// shiftLeft128 shifts v left by n bits. Bits shifted past bit 127 are
// discarded; n may be any value, counts of 128 or more yield zero.
func shiftLeft128(v Uint128, n uint) Uint128 {
	switch {
	case n == 0:
		return v
	case n < 64:
		return Uint128{Hi: v.Hi<<n | v.Lo>>(64-n), Lo: v.Lo << n}
	case n < 128:
		return Uint128{Hi: v.Lo << (n - 64)}
	default:
		return Uint128{}
	}
}

// shiftRight128 shifts v right by n bits, filling vacated high bits with
// zero. Counts of 128 or more yield zero.
func shiftRight128(v Uint128, n uint) Uint128 {
	switch {
	case n == 0:
		return v
	case n < 64:
		return Uint128{Hi: v.Hi >> n, Lo: v.Lo>>n | v.Hi<<(64-n)}
	case n < 128:
		return Uint128{Lo: v.Hi >> (n - 64)}
	default:
		return Uint128{}
	}
}

func onesCount128(v Uint128) int {
	return bits.OnesCount64(v.Hi) + bits.OnesCount64(v.Lo)
}
