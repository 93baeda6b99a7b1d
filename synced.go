package bitreg

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Synced is a Register guarded by a mutex. Every method has the semantics of
// the Register method of the same name and observes or updates the value and
// the activity record as one step.
type Synced[T Word[T]] struct {
	mu  sync.Mutex
	reg *Register[T]
}

// NewSynced returns a zeroed register that is safe for concurrent use.
func NewSynced[T Word[T]](opts ...Option) *Synced[T] {
	return &Synced[T]{reg: New[T](opts...)}
}

func (s *Synced[T]) IsBitOn(bit uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.IsBitOn(bit)
}

func (s *Synced[T]) AreBitsOn(bits []uint) []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.AreBitsOn(bits)
}

func (s *Synced[T]) SetBit(bit uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.SetBit(bit)
}

func (s *Synced[T]) SetBits(bits []uint) []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.SetBits(bits)
}

func (s *Synced[T]) ClearBit(bit uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.ClearBit(bit)
}

func (s *Synced[T]) ClearBits(bits []uint) []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.ClearBits(bits)
}

func (s *Synced[T]) ClearAllBits() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.ClearAllBits()
}

func (s *Synced[T]) SetAllFlags() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.SetAllFlags()
}

func (s *Synced[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Value()
}

func (s *Synced[T]) AllBits() []bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.AllBits()
}

// InMemorySize is fixed at construction and needs no lock.
func (s *Synced[T]) InMemorySize() uint {
	return s.reg.InMemorySize()
}

func (s *Synced[T]) Validate(bit uint) error {
	return s.reg.Validate(bit)
}

func (s *Synced[T]) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.Count()
}

func (s *Synced[T]) OnBits() *roaring.Bitmap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.OnBits()
}

func (s *Synced[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.String()
}

// Do runs fn with exclusive access to the underlying register, for
// sequences of operations that must not interleave with other callers.
// fn must not retain reg.
func (s *Synced[T]) Do(fn func(reg *Register[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.reg)
}
