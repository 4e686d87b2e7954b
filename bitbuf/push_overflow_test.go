// Overflow pushes discard set bits, which the conservation check flags on
// purpose; these tests cover the default (unchecked) behavior only.

//go:build !bitbufassert

package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushBitsOverflowDiscardsOldest(t *testing.T) {
	// 12 bits into an 8-bit buffer: only the most recent 8 survive.
	b := NewPushBuffer[uint8]()
	b.PushBits(4, 0b1111)
	b.PushBits(4, 0b0101)
	b.PushBits(4, 0b0011)
	require.Equal(t, uint8(0b0101_0011), b.IntoBytes())

	// Signed widths discard the same way.
	s := NewPushBuffer[int16]()
	for i := 0; i < 5; i++ {
		s.PushBits(8, 0xFF)
	}
	require.Equal(t, int16(-1), s.IntoBytes())
}

func TestPushBitsOverflowEqualsSuffixOnly(t *testing.T) {
	// After overflow the result equals pushing only the most recent
	// width-many bits.
	long := NewPushBuffer[uint16]()
	for _, group := range []uint8{0xDE, 0xAD, 0xBE, 0xEF} {
		long.PushBits(8, group)
	}
	short := NewPushBuffer[uint16]()
	short.PushBits(8, 0xBE)
	short.PushBits(8, 0xEF)
	require.Equal(t, short.IntoBytes(), long.IntoBytes())
}
