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

// PopBuffer removes groups of bits from a fixed-width integer, low-order
// end first. The buffer does not track how many valid bits remain; the
// caller does.
type PopBuffer[T Bits] struct {
	bytes T
}

// NewPopBuffer wraps the raw value bytes in a pop buffer.
func NewPopBuffer[T Bits](bytes T) PopBuffer[T] {
	return PopBuffer[T]{bytes: bytes}
}

// PopBits returns the low amount bits of the buffer zero-extended to a
// byte, then shifts the remaining value right by amount. The shift is
// always logical: vacated high bits read zero even for signed widths, and
// a shift by the full width leaves the buffer at zero. amount must be
// between 1 and 8; the precondition is checked only under the
// bitbufassert build tag.
func (b *PopBuffer[T]) PopBits(amount int) uint8 {
	assertAmount(amount)
	var orig int
	if debugAsserts {
		orig = onesCount(b.bytes)
	}
	res := lowByte(b.bytes) & lowMask8(amount)
	b.bytes = shiftRightLogical(b.bytes, uint(amount))
	if debugAsserts {
		assertConserved(onesCount(res)+onesCount(b.bytes), orig)
	}
	return res
}

func (*PopBuffer[T]) sealed() {}
