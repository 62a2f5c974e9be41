// Package arena manages the flat buffers exchanged with the host.
package arena

import (
	"unsafe"

	"github.com/sartorproj/goseries/series"
)

// Handle identifies one allocated buffer. The host passes handles back
// to the entry points instead of raw addresses.
type Handle uint32

// Invalid is returned by Allocate when the request cannot be satisfied.
const Invalid Handle = 0

// Arena owns every buffer the host can see. Allocate and Release are
// the only operations that change its state; kernels receive views into
// existing buffers and never allocate through it.
//
// The arena is not safe for concurrent use. The execution model is
// single-threaded host-driven calls; callers that introduce concurrency
// must synchronize externally.
type Arena struct {
	limit int // max live bytes, 0 means unlimited
	used  int
	next  Handle
	bufs  map[Handle]buffer
}

type buffer struct {
	words []float32 // backing storage, float32-aligned
	size  int       // requested size in bytes
}

// New creates an arena with no capacity limit.
func New() *Arena {
	return NewWithLimit(0)
}

// NewWithLimit creates an arena that refuses allocations once the total
// of live buffer sizes would exceed limit bytes. A limit of 0 means
// unlimited.
func NewWithLimit(limit int) *Arena {
	return &Arena{
		limit: limit,
		next:  1,
		bufs:  make(map[Handle]buffer),
	}
}

// Allocate reserves size bytes and returns a handle to the buffer.
// Returns Invalid if size is negative or the capacity limit would be
// exceeded. There is no retry; the host decides what to do on failure.
func (a *Arena) Allocate(size int) Handle {
	if size < 0 {
		return Invalid
	}
	if a.limit > 0 && a.used+size > a.limit {
		return Invalid
	}
	h := a.next
	a.next++
	a.bufs[h] = buffer{
		words: make([]float32, (size+series.ElemSize-1)/series.ElemSize),
		size:  size,
	}
	a.used += size
	return h
}

// Release returns the buffer's memory to the arena. The caller must
// track handle validity itself: releasing a handle that was never
// allocated, or releasing one twice, is a caller error and the
// resulting arena state is unspecified.
func (a *Arena) Release(h Handle) {
	b, ok := a.bufs[h]
	if !ok {
		return
	}
	a.used -= b.size
	delete(a.bufs, h)
}

// Used reports the total size in bytes of live allocations.
func (a *Arena) Used() int {
	return a.used
}

// Bytes returns the raw byte view of the buffer for the host to write
// samples into and read results from. The view aliases the same storage
// as Float32s. Returns nil for an unknown handle.
func (a *Arena) Bytes(h Handle) []byte {
	b, ok := a.bufs[h]
	if !ok {
		return nil
	}
	if b.size == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.words))), b.size)
}

// Float32s returns the buffer viewed as single-precision samples,
// truncated to the whole elements the byte size covers. Returns nil for
// an unknown handle.
func (a *Arena) Float32s(h Handle) []float32 {
	b, ok := a.bufs[h]
	if !ok {
		return nil
	}
	return b.words[:b.size/series.ElemSize]
}
