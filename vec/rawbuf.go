package vec

import (
	"github.com/vecport/rawvec-go/mem"
	"github.com/vecport/rawvec-go/ut"
)

// RawBuf owns storage for a fixed number of element slots. It tracks
// capacity only; which slots hold live values is the caller's concern.
type RawBuf[T any] struct {
	slots []T
}

// NewRawBuf returns a buffer with capacity 0 and no allocation.
func NewRawBuf[T any]() RawBuf[T] {
	return RawBuf[T]{}
}

// RawBufWithCapacity allocates storage for exactly n slots.
func RawBufWithCapacity[T any](n int) RawBuf[T] {
	return RawBuf[T]{slots: mem.AllocSlots[T](n)}
}

// Cap returns the number of slots backed by the allocation.
func (b *RawBuf[T]) Cap() int {
	return len(b.slots)
}

// Grow doubles the capacity, starting at 1 when there is no allocation
// yet. Only the first used slots are carried over; the block may
// relocate. Storage and capacity change in a single assignment, so the
// two never disagree.
func (b *RawBuf[T]) Grow(used int) {
	if b.slots == nil {
		b.slots = mem.AllocSlots[T](1)
		return
	}
	b.slots = mem.GrowSlots(b.slots, used, len(b.slots)*2)
}

// ref returns a pointer to slot i.
func (b *RawBuf[T]) ref(i int) *T {
	ut.A(i >= 0 && i < len(b.slots), "slot index within capacity")
	return &b.slots[i]
}

// write stores v into slot i.
func (b *RawBuf[T]) write(i int, v T) {
	*b.ref(i) = v
}

// take moves the value out of slot i, zeroing the slot so the buffer
// keeps no reference to the value.
func (b *RawBuf[T]) take(i int) T {
	p := b.ref(i)
	v := *p
	var zero T
	*p = zero
	return v
}

// Free releases the allocation and returns the buffer to its zero
// state. Safe to call on a buffer with no allocation.
func (b *RawBuf[T]) Free() {
	mem.FreeSlots(b.slots)
	b.slots = nil
}
