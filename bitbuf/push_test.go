package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPushBitsAccumulate(t *testing.T) {
	b := NewPushBuffer[uint16]()
	b.PushBits(4, 0b1010)
	require.Equal(t, uint16(0b0000_0000_0000_1010), b.bytes)
	b.PushBits(4, 0b0011)
	require.Equal(t, uint16(0b0000_0000_1010_0011), b.bytes)
	require.Equal(t, uint16(0x00A3), b.IntoBytes())
}

func testPushTwoNibbles[T Bits](t *testing.T, want T) {
	t.Helper()
	b := NewPushBuffer[T]()
	b.PushBits(4, 0b1010)
	b.PushBits(4, 0b0011)
	require.Equal(t, want, b.IntoBytes())
}

func TestPushBitsAllWidths(t *testing.T) {
	t.Run("uint8", func(t *testing.T) { testPushTwoNibbles(t, uint8(0xA3)) })
	t.Run("uint16", func(t *testing.T) { testPushTwoNibbles(t, uint16(0xA3)) })
	t.Run("uint32", func(t *testing.T) { testPushTwoNibbles(t, uint32(0xA3)) })
	t.Run("uint64", func(t *testing.T) { testPushTwoNibbles(t, uint64(0xA3)) })
	t.Run("uint128", func(t *testing.T) { testPushTwoNibbles(t, Uint128{Lo: 0xA3}) })
	t.Run("int8", func(t *testing.T) { testPushTwoNibbles(t, int8(-93)) }) // 0xA3 as two's complement
	t.Run("int16", func(t *testing.T) { testPushTwoNibbles(t, int16(0xA3)) })
	t.Run("int32", func(t *testing.T) { testPushTwoNibbles(t, int32(0xA3)) })
	t.Run("int64", func(t *testing.T) { testPushTwoNibbles(t, int64(0xA3)) })
	t.Run("int128", func(t *testing.T) { testPushTwoNibbles(t, Int128{Lo: 0xA3}) })
}

func TestPushBitsMasksHighBits(t *testing.T) {
	a := NewPushBuffer[uint32]()
	b := NewPushBuffer[uint32]()
	a.PushBits(3, 0b11111_010)
	b.PushBits(3, 0b00000_010)
	require.Equal(t, b.IntoBytes(), a.IntoBytes())
	require.Equal(t, uint32(0b010), a.bytes)
}

func TestPushBitsUint128CrossesWordBoundary(t *testing.T) {
	b := NewPushBuffer[Uint128]()
	for i := 0; i < 16; i++ {
		b.PushBits(8, uint8(i+1))
	}
	want := Uint128{Hi: 0x0102030405060708, Lo: 0x090A0B0C0D0E0F10}
	require.Equal(t, want, b.IntoBytes())
}

func TestPushBitsSingleBits(t *testing.T) {
	b := NewPushBuffer[uint8]()
	for _, bit := range []uint8{1, 0, 1, 1, 0, 1, 0, 0} {
		b.PushBits(1, bit)
	}
	require.Equal(t, uint8(0b1011_0100), b.IntoBytes())
}

// Benchmarks

func BenchmarkPushBits_U64(b *testing.B) {
	buf := NewPushBuffer[uint64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBits(8, 0xA5)
	}
	_ = buf.IntoBytes()
}

func BenchmarkPushBits_I64(b *testing.B) {
	buf := NewPushBuffer[int64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBits(8, 0xA5)
	}
	_ = buf.IntoBytes()
}

func BenchmarkPushBits_U128(b *testing.B) {
	buf := NewPushBuffer[Uint128]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBits(8, 0xA5)
	}
	_ = buf.IntoBytes()
}
