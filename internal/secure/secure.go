// Package secure provides scoped handling of secret byte buffers.
// Seeds and private scalars live in a Buffer that is mlocked where the
// platform allows it and zeroed on every exit path.
package secure

import (
	"runtime"
	"sync"
)

// Buffer wraps a sensitive byte slice with mlock and explicit zeroing.
type Buffer struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// NewBuffer creates a Buffer of the given size.
// The memory is locked if the system supports it.
func NewBuffer(size int) *Buffer {
	data := make([]byte, size)

	b := &Buffer{
		data:   data,
		locked: mlock(data),
	}

	// Finalizer ensures the memory is cleared even if Destroy isn't called.
	runtime.SetFinalizer(b, func(b *Buffer) {
		b.Destroy()
	})

	return b
}

// FromSlice copies data into a new Buffer. The caller still owns (and
// should zero) the source slice.
func FromSlice(data []byte) *Buffer {
	b := NewBuffer(len(data))
	copy(b.data, data)
	return b
}

// Bytes returns the underlying byte slice.
// Returns nil if the Buffer has been destroyed.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// IsLocked returns whether the memory is mlocked.
func (b *Buffer) IsLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Len returns the length of the data, or 0 after Destroy.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Destroy zeros the memory and unlocks it. Safe to call multiple times.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}

	Zero(b.data)

	if b.locked {
		munlock(b.data)
		b.locked = false
	}

	b.data = nil

	runtime.SetFinalizer(b, nil)
}

// Zero overwrites a byte slice with zeros.
func Zero(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
