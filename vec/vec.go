// Package vec implements a growable contiguous array built from two
// parts: a capacity-only RawBuf underneath, and a Vec that alone
// tracks how many slots hold live values.
//
// A Vec has no internal synchronization. Handing one off to another
// goroutine, or sharing it read-only, is exactly as safe as the element
// type allows; the structure adds no hazards of its own because the
// uninitialized region is never exposed.
package vec

// Vec is a growable array. Slots [0, Len) of its buffer hold live
// values; slots [Len, Cap) are uninitialized and are never read,
// returned, or left holding stale values.
type Vec[T any] struct {
	buf  RawBuf[T]
	used int
}

// New returns an empty vector with no allocation.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// WithCapacity returns an empty vector backed by n slots.
func WithCapacity[T any](n int) *Vec[T] {
	return &Vec[T]{buf: RawBufWithCapacity[T](n)}
}

// Push appends a value, growing storage first when every slot is live.
// Allocation exhaustion and slot-size overflow are fatal in the mem
// layer; Push has no recoverable failure.
func (v *Vec[T]) Push(val T) {
	if v.used == v.buf.Cap() {
		v.buf.Grow(v.used)
	}
	v.buf.write(v.used, val)
	v.used++
}

// Pop removes and returns the last value. The second result is false
// when the vector is empty; that is a normal outcome, not an error.
func (v *Vec[T]) Pop() (T, bool) {
	if v.used == 0 {
		var zero T
		return zero, false
	}
	v.used--
	return v.buf.take(v.used), true
}

// Get returns a pointer to the value at index, or nil when index is
// outside the live region.
func (v *Vec[T]) Get(index int) *T {
	if index < 0 || index >= v.used {
		return nil
	}
	return v.buf.ref(index)
}

// Len returns the number of live values.
func (v *Vec[T]) Len() int {
	return v.used
}

// Cap returns the number of allocated slots.
func (v *Vec[T]) Cap() int {
	return v.buf.Cap()
}

// Slice returns the live region only. The slice stays valid until the
// next mutating operation.
func (v *Vec[T]) Slice() []T {
	return v.buf.slots[:v.used]
}

// Free drains every live value and releases the buffer. The vector is
// left in the usable empty state.
func (v *Vec[T]) Free() {
	for {
		if _, ok := v.Pop(); !ok {
			break
		}
	}
	v.buf.Free()
}

// FreeWith drains like Free, passing each live value to drop exactly
// once before the buffer is released.
func (v *Vec[T]) FreeWith(drop func(T)) {
	for {
		val, ok := v.Pop()
		if !ok {
			break
		}
		drop(val)
	}
	v.buf.Free()
}
