package mem

import (
	"math"
	"unsafe"

	"github.com/vecport/rawvec-go/ut"
)

// Typed element storage comes from make, never from reinterpreted byte
// blocks: a byte block carries no pointer map, so the collector would
// not see pointers stored into it. The slot helpers therefore parallel
// the byte allocator and share its accounting.

// SlotSize reports the size of one element slot in bytes.
func SlotSize[T any]() int {
	var x T
	return int(unsafe.Sizeof(x))
}

// slotBytes computes n*sizeof(T), treating overflow as fatal.
func slotBytes[T any](n int) int {
	size := SlotSize[T]()
	if size > 0 && n > math.MaxInt/size {
		allocFatal("slot byte size overflows", n)
	}
	return n * size
}

// AllocSlots reserves storage for exactly n elements of type T.
func AllocSlots[T any](n int) []T {
	if n < 0 {
		allocFatal("negative slot count", n)
	}
	if n == 0 {
		return nil
	}
	bytes := slotBytes[T](n)
	slots := make([]T, n)
	TotalAllocated += bytes
	return slots
}

// GrowSlots reallocates old to newCap slots, copying the first used
// elements. The returned block may be relocated; the old block is
// released from the accounting.
func GrowSlots[T any](old []T, used, newCap int) []T {
	ut.A(used <= len(old), "used <= len(old)")
	ut.A(newCap >= used, "newCap >= used")
	slots := AllocSlots[T](newCap)
	copy(slots, old[:used])
	FreeSlots(old)
	return slots
}

// FreeSlots releases the accounting for a slot block.
func FreeSlots[T any](s []T) {
	if s == nil {
		return
	}
	TotalAllocated -= slotBytes[T](len(s))
}

func allocFatal(what string, n int) {
	ut.DbgAssertionFailed(what, "", 0)
	ut.Log(nil, "mem: fatal: %s (n=%d)\n", what, n)
	panic("mem: " + what)
}
