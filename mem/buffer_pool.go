package mem

import "sync"

// BufferPool provides fixed-size byte buffers backed by sync.Pool.
type BufferPool struct {
	size int
	pool sync.Pool
}

// NewBufferPool creates a pool for buffers of a single size.
func NewBufferPool(size int) *BufferPool {
	p := &BufferPool{size: size}
	p.pool.New = func() any {
		return make([]byte, size)
	}
	return p
}

// Get returns a buffer with length equal to the pool size.
func (p *BufferPool) Get() []byte {
	buf := p.pool.Get().([]byte)
	return buf[:p.size]
}

// Put returns a buffer to the pool if it matches the pool size.
func (p *BufferPool) Put(buf []byte) {
	if cap(buf) < p.size {
		return
	}
	p.pool.Put(buf[:p.size])
}

// Size reports the pool's fixed buffer size.
func (p *BufferPool) Size() int {
	return p.size
}

// PooledAllocator serves one fixed block size from a BufferPool and
// falls through to the Go heap for every other size.
type PooledAllocator struct {
	pool *BufferPool
	heap GoAllocator
}

// NewPooledAllocator creates an allocator that recycles blocks of the
// given size.
func NewPooledAllocator(size int) *PooledAllocator {
	return &PooledAllocator{pool: NewBufferPool(size)}
}

func (a *PooledAllocator) Alloc(size int) []byte {
	if size == a.pool.Size() {
		return a.pool.Get()
	}
	return a.heap.Alloc(size)
}

func (a *PooledAllocator) AllocZero(size int) []byte {
	buf := a.Alloc(size)
	clear(buf)
	return buf
}

func (a *PooledAllocator) Realloc(buf []byte, size int) []byte {
	if size <= 0 {
		a.Free(buf)
		return nil
	}
	newBuf := a.Alloc(size)
	copy(newBuf, buf)
	a.Free(buf)
	return newBuf
}

func (a *PooledAllocator) Free(buf []byte) {
	if cap(buf) == a.pool.Size() {
		a.pool.Put(buf[:cap(buf)])
	}
}
