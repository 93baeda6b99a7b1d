// Package bitreg provides fixed-width flag registers for Go.
//
// A Register packs up to 128 named bits into a single unsigned word and
// offers bit-level set, clear and query operations together with a per-bit
// activity record.
//
// # Quick Start
//
//	reg := bitreg.New[bitreg.U8]()
//	reg.SetBits([]uint{1, 2, 3, 5})
//	reg.IsBitOn(3)   // true
//	reg.Value()      // 46 (0b00101110)
//	reg.SetBit(10)   // false: an 8-bit register has no bit 10
//
// # Widths
//
// The width is chosen at compile time through the word type:
//
//	U8   8 bits     uint8
//	U16  16 bits    uint16
//	U32  32 bits    uint32
//	U64  64 bits    uint64
//	U128 128 bits   uint128.Uint128 (lukechampine.com/uint128)
//
// # Out-of-Range Indices
//
// Indices at or beyond the width are never a fault. Queries report false and
// mutations are ignored and return false. Use Register.Validate when an
// explicit error is needed.
//
// # Activity Record
//
// The activity record remembers the last outcome seen for each bit:
//
//	SetBit / SetBits       entry = true
//	ClearBit / ClearBits   entry = false
//	AreBitsOn              entry = true for every queried bit that is on
//	ClearAllBits           unchanged
//	SetAllFlags            unchanged
//
// Whole-register resets do not rewrite the record, so it can disagree with
// the value until the affected bits are set, cleared or queried again.
//
// # Concurrency
//
// Register is meant for a single owner. Synced wraps one behind a mutex for
// shared use.
//
// # Observability
//
//	reg := bitreg.New[bitreg.U32](
//	    bitreg.WithLogger(bitreg.NewTextLogger(slog.LevelDebug)),
//	    bitreg.WithMetricsCollector(&bitreg.BasicMetricsCollector{}),
//	)
package bitreg
