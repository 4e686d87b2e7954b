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

// Package bitbuf provides fixed-width bit accumulators, the primitive
// underneath bit-packed codecs and variable-width integer encodings.
//
// A PushBuffer accumulates groups of 1 to 8 bits into a single fixed-width
// integer, the most recent group occupying the low-order bits:
//
//	b := bitbuf.NewPushBuffer[uint16]()
//	b.PushBits(4, 0b1010)
//	b.PushBits(4, 0b0011)
//	raw := b.IntoBytes() // 0x00A3
//
// A PopBuffer removes groups of 1 to 8 bits from the low-order end of a
// raw value, zero-extending each group to a byte:
//
//	p := bitbuf.NewPopBuffer[uint8](0b1101_0110)
//	lo := p.PopBits(3) // 0b0000_0110
//	hi := p.PopBits(5) // 0b0001_1010
//
// Buffers exist for every fixed width from 8 to 128 bits, signed and
// unsigned. The 128-bit widths use the package's Uint128 and Int128 types.
// Remaining bits in a signed-width buffer never sign-extend: pops always
// shift logically.
//
// Buffers are not safe for concurrent use; callers needing parallel bit
// packing should use one buffer per goroutine and merge results afterwards.
package bitbuf

// SignedBits is the set of signed fixed-width integers a buffer can wrap.
type SignedBits interface {
	int8 | int16 | int32 | int64 | Int128
}

// UnsignedBits is the set of unsigned fixed-width integers a buffer can wrap.
type UnsignedBits interface {
	uint8 | uint16 | uint32 | uint64 | Uint128
}

// Bits is the closed set of fixed-width integer types a buffer can wrap.
// The union terms are exact types rather than underlying-type
// approximations, so defined types from other packages cannot instantiate
// a buffer.
type Bits interface {
	SignedBits | UnsignedBits
}

// BitPusher is the push capability: accept 1 to 8 bits at a time and
// accumulate them toward the high-order end. Only PushBuffer implements
// it; the unexported method keeps the implementation set closed.
type BitPusher interface {
	PushBits(amount int, bits uint8)
	sealed()
}

// BitPopper is the pop capability: remove 1 to 8 bits at a time from the
// low-order end. Only PopBuffer implements it.
type BitPopper interface {
	PopBits(amount int) uint8
	sealed()
}

var (
	_ BitPusher = (*PushBuffer[uint8])(nil)
	_ BitPopper = (*PopBuffer[uint8])(nil)
)
