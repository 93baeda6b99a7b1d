package cmd

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitreg"
)

// session erases the word type so a register width can be picked from a flag.
type session interface {
	SetBits(bits []uint) []bool
	ClearBits(bits []uint) []bool
	AreBitsOn(bits []uint) []bool
	SetAllFlags()
	AllBits() []bool
	InMemorySize() uint
	Count() int
	OnBits() *roaring.Bitmap
	String() string
	ValueString() string
}

type registerSession[T bitreg.Word[T]] struct {
	*bitreg.Register[T]
}

func (s registerSession[T]) ValueString() string {
	return fmt.Sprint(s.Value())
}

// newSession expects a width already checked by bitreg.ParseWidth.
func newSession(width uint, opts ...bitreg.Option) session {
	switch width {
	case 8:
		return registerSession[bitreg.U8]{bitreg.New[bitreg.U8](opts...)}
	case 16:
		return registerSession[bitreg.U16]{bitreg.New[bitreg.U16](opts...)}
	case 32:
		return registerSession[bitreg.U32]{bitreg.New[bitreg.U32](opts...)}
	case 64:
		return registerSession[bitreg.U64]{bitreg.New[bitreg.U64](opts...)}
	default:
		return registerSession[bitreg.U128]{bitreg.New[bitreg.U128](opts...)}
	}
}
