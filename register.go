package bitreg

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Register is a fixed-width flag register backed by a single word of type T.
//
// Besides the packed value it keeps an activity record with one entry per
// bit. A successful SetBit or a query hit in AreBitsOn marks the entry true,
// a successful ClearBit marks it false. ClearAllBits and SetAllFlags only
// rewrite the value, so after them the activity record keeps its previous
// entries. The value is always the source of truth for whether a bit is on.
//
// Indices at or beyond the width are never an error: queries report false
// and mutations leave the register unchanged.
//
// A Register is not safe for concurrent use; see Synced.
type Register[T Word[T]] struct {
	value    T
	activity []bool
	width    uint

	logger  *Logger
	metrics MetricsCollector
}

// New returns a register with every bit and every activity entry cleared.
func New[T Word[T]](opts ...Option) *Register[T] {
	o := applyOptions(opts)

	var zero T
	width := zero.Width()

	return &Register[T]{
		value:    zero,
		activity: make([]bool, width),
		width:    width,
		logger:   o.logger,
		metrics:  o.metricsCollector,
	}
}

func (r *Register[T]) inRange(bit uint) bool {
	return bit < r.width
}

// test reports whether bit is on without recording anything.
func (r *Register[T]) test(bit uint) bool {
	return r.inRange(bit) && r.value.Has(bit)
}

// IsBitOn reports whether bit is set. Out-of-range indices report false.
func (r *Register[T]) IsBitOn(bit uint) bool {
	on := r.test(bit)
	r.metrics.RecordQuery(on)
	return on
}

// AreBitsOn marks the activity entry of every index in bits that is currently
// on and returns the resulting activity record.
//
// Entries for indices that are off, or not listed, keep their previous state;
// the record accumulates across calls.
func (r *Register[T]) AreBitsOn(bits []uint) []bool {
	for _, bit := range bits {
		if r.IsBitOn(bit) {
			r.activity[bit] = true
		}
	}
	return r.AllBits()
}

// SetBit turns bit on and reports whether the index was in range.
func (r *Register[T]) SetBit(bit uint) bool {
	if !r.inRange(bit) {
		r.logger.LogRejected("set", bit, r.width)
		r.metrics.RecordSet(false)
		return false
	}
	r.value = r.value.Or(r.value.Bit(bit))
	r.activity[bit] = true
	r.metrics.RecordSet(true)
	return true
}

// SetBits calls SetBit for every index and returns the activity record.
// Out-of-range indices are skipped.
func (r *Register[T]) SetBits(bits []uint) []bool {
	for _, bit := range bits {
		r.SetBit(bit)
	}
	return r.AllBits()
}

// ClearBit turns bit off and reports whether the index was in range.
func (r *Register[T]) ClearBit(bit uint) bool {
	if !r.inRange(bit) {
		r.logger.LogRejected("clear", bit, r.width)
		r.metrics.RecordClear(false)
		return false
	}
	r.value = r.value.AndNot(r.value.Bit(bit))
	r.activity[bit] = false
	r.metrics.RecordClear(true)
	return true
}

// ClearBits calls ClearBit for every index and returns the activity record.
// Out-of-range indices are skipped.
func (r *Register[T]) ClearBits(bits []uint) []bool {
	for _, bit := range bits {
		r.ClearBit(bit)
	}
	return r.AllBits()
}

// ClearAllBits sets the value to zero. The activity record is left as is.
func (r *Register[T]) ClearAllBits() {
	var zero T
	r.value = zero
	r.logger.LogBulk("clear_all", r.width)
	r.metrics.RecordReset()
}

// SetAllFlags sets every bit of the value. The activity record is left as is.
func (r *Register[T]) SetAllFlags() {
	r.value = r.value.Max()
	r.logger.LogBulk("set_all", r.width)
	r.metrics.RecordReset()
}

// Value returns the packed bit pattern.
func (r *Register[T]) Value() T {
	return r.value
}

// AllBits returns a copy of the activity record, indexed by bit.
func (r *Register[T]) AllBits() []bool {
	out := make([]bool, len(r.activity))
	copy(out, r.activity)
	return out
}

// InMemorySize returns the register width in bits.
func (r *Register[T]) InMemorySize() uint {
	return r.width
}

// Validate returns an *ErrIndexOutOfRange if bit is not addressable.
func (r *Register[T]) Validate(bit uint) error {
	if !r.inRange(bit) {
		return &ErrIndexOutOfRange{Index: bit, Width: r.width}
	}
	return nil
}

// Count returns the number of bits that are on.
func (r *Register[T]) Count() int {
	return r.value.OnesCount()
}

// OnBits returns the indices of all bits that are on.
func (r *Register[T]) OnBits() *roaring.Bitmap {
	bm := roaring.New()
	for i := uint(0); i < r.width; i++ {
		if r.value.Has(i) {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// String formats the value in binary, most significant bit first, padded to
// the register width.
func (r *Register[T]) String() string {
	var sb strings.Builder
	sb.Grow(int(r.width))
	for i := r.width; i > 0; i-- {
		if r.value.Has(i - 1) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// GoString implements fmt.GoStringer.
func (r *Register[T]) GoString() string {
	return fmt.Sprintf("bitreg.Register[%d]{0b%s}", r.width, r.String())
}
