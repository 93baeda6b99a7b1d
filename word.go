package bitreg

import (
	"math"
	"math/bits"

	"lukechampine.com/uint128"
)

// Word is the capability set a register's backing integer must provide.
//
// The set of implementations is closed: U8, U16, U32, U64 and U128. Bit and
// Has are only defined for i < Width(); Register checks the index before
// calling them, so implementations never see an oversized shift.
type Word[T any] interface {
	comparable

	// Width returns the number of bits in the word.
	Width() uint
	// Max returns the word with every bit set.
	Max() T
	// Bit returns the word with only bit i set.
	Bit(i uint) T
	// Or returns the bitwise union of the receiver and v.
	Or(v T) T
	// AndNot returns the receiver with every bit of v cleared.
	AndNot(v T) T
	// Has reports whether bit i is set.
	Has(i uint) bool
	// OnesCount returns the number of set bits.
	OnesCount() int
}

// U8 is an 8-bit register word.
type U8 uint8

func (U8) Width() uint       { return 8 }
func (U8) Max() U8           { return math.MaxUint8 }
func (U8) Bit(i uint) U8     { return U8(1) << i }
func (w U8) Or(v U8) U8      { return w | v }
func (w U8) AndNot(v U8) U8  { return w &^ v }
func (w U8) Has(i uint) bool { return w&(U8(1)<<i) != 0 }
func (w U8) OnesCount() int  { return bits.OnesCount8(uint8(w)) }

// U16 is a 16-bit register word.
type U16 uint16

func (U16) Width() uint        { return 16 }
func (U16) Max() U16           { return math.MaxUint16 }
func (U16) Bit(i uint) U16     { return U16(1) << i }
func (w U16) Or(v U16) U16     { return w | v }
func (w U16) AndNot(v U16) U16 { return w &^ v }
func (w U16) Has(i uint) bool  { return w&(U16(1)<<i) != 0 }
func (w U16) OnesCount() int   { return bits.OnesCount16(uint16(w)) }

// U32 is a 32-bit register word.
type U32 uint32

func (U32) Width() uint        { return 32 }
func (U32) Max() U32           { return math.MaxUint32 }
func (U32) Bit(i uint) U32     { return U32(1) << i }
func (w U32) Or(v U32) U32     { return w | v }
func (w U32) AndNot(v U32) U32 { return w &^ v }
func (w U32) Has(i uint) bool  { return w&(U32(1)<<i) != 0 }
func (w U32) OnesCount() int   { return bits.OnesCount32(uint32(w)) }

// U64 is a 64-bit register word.
type U64 uint64

func (U64) Width() uint        { return 64 }
func (U64) Max() U64           { return math.MaxUint64 }
func (U64) Bit(i uint) U64     { return U64(1) << i }
func (w U64) Or(v U64) U64     { return w | v }
func (w U64) AndNot(v U64) U64 { return w &^ v }
func (w U64) Has(i uint) bool  { return w&(U64(1)<<i) != 0 }
func (w U64) OnesCount() int   { return bits.OnesCount64(uint64(w)) }

// U128 is a 128-bit register word backed by uint128.Uint128.
type U128 uint128.Uint128

func (U128) Width() uint { return 128 }
func (U128) Max() U128   { return U128(uint128.Max) }

func (U128) Bit(i uint) U128 {
	return U128(uint128.From64(1).Lsh(i))
}

func (w U128) Or(v U128) U128 {
	return U128(uint128.Uint128(w).Or(uint128.Uint128(v)))
}

func (w U128) AndNot(v U128) U128 {
	inv := uint128.Uint128{Lo: ^v.Lo, Hi: ^v.Hi}
	return U128(uint128.Uint128(w).And(inv))
}

func (w U128) Has(i uint) bool {
	return !uint128.Uint128(w).And(uint128.From64(1).Lsh(i)).IsZero()
}

func (w U128) OnesCount() int {
	return bits.OnesCount64(w.Lo) + bits.OnesCount64(w.Hi)
}

// Uint128 returns w as a uint128.Uint128.
func (w U128) Uint128() uint128.Uint128 { return uint128.Uint128(w) }

// String formats w in base 10.
func (w U128) String() string { return uint128.Uint128(w).String() }
