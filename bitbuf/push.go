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

// PushBuffer accumulates groups of bits into a single fixed-width integer.
// Earlier groups move toward the high-order end as later groups arrive;
// once more than the width has been pushed, the oldest bits fall off the
// top. The zero value is an empty buffer.
type PushBuffer[T Bits] struct {
	bytes T
}

// NewPushBuffer returns an empty push buffer of width T.
func NewPushBuffer[T Bits]() PushBuffer[T] {
	return PushBuffer[T]{}
}

// PushBits shifts the accumulated value left by amount and ORs the low
// amount bits of bits into the vacated positions. amount must be between
// 1 and 8; only the low amount bits of bits are used, higher bits are
// ignored. The precondition is checked only under the bitbufassert build
// tag.
func (b *PushBuffer[T]) PushBits(amount int, bits uint8) {
	assertAmount(amount)
	masked := bits & lowMask8(amount)
	var orig int
	if debugAsserts {
		orig = onesCount(b.bytes)
	}
	b.bytes = orByte(shiftLeft(b.bytes, uint(amount)), masked)
	if debugAsserts {
		// Only exact when the shift discarded no set bits.
		assertConserved(onesCount(masked)+orig, onesCount(b.bytes))
	}
}

// IntoBytes returns the raw accumulated value. It is the terminal
// operation on a push buffer; the buffer must not be pushed to afterwards.
func (b PushBuffer[T]) IntoBytes() T {
	return b.bytes
}

func (*PushBuffer[T]) sealed() {}
