package mem

// Allocator defines the byte-level allocation contract.
type Allocator interface {
	Alloc(size int) []byte
	AllocZero(size int) []byte
	Realloc(buf []byte, size int) []byte
	Free(buf []byte)
}

// GoAllocator delegates to the Go runtime and keeps Free as a no-op.
type GoAllocator struct{}

func (GoAllocator) Alloc(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (GoAllocator) AllocZero(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

// Realloc resizes a buffer, copying the previous contents. The result
// may be a relocated block.
func (GoAllocator) Realloc(buf []byte, size int) []byte {
	if size <= 0 {
		return nil
	}
	newBuf := make([]byte, size)
	copy(newBuf, buf)
	return newBuf
}

func (GoAllocator) Free([]byte) {}

// DefaultAllocator is the global allocator used unless overridden.
var DefaultAllocator Allocator = GoAllocator{}

// TotalAllocated tracks live bytes handed out via the package functions.
var TotalAllocated int

// VarInit resets memory accounting.
func VarInit() {
	TotalAllocated = 0
}

// Alloc reserves size bytes from the default allocator.
func Alloc(size int) []byte {
	buf := DefaultAllocator.Alloc(size)
	TotalAllocated += len(buf)
	return buf
}

// AllocZero reserves size zeroed bytes from the default allocator.
func AllocZero(size int) []byte {
	buf := DefaultAllocator.AllocZero(size)
	TotalAllocated += len(buf)
	return buf
}

// Realloc resizes a buffer through the default allocator, keeping the
// accounting balanced across the old and new blocks.
func Realloc(buf []byte, size int) []byte {
	newBuf := DefaultAllocator.Realloc(buf, size)
	TotalAllocated += len(newBuf) - len(buf)
	return newBuf
}

// Free releases a buffer to the default allocator.
func Free(buf []byte) {
	if buf == nil {
		return
	}
	TotalAllocated -= len(buf)
	DefaultAllocator.Free(buf)
}

// Dup copies data into a new allocation.
func Dup(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	buf := Alloc(len(data))
	copy(buf, data)
	return buf
}
