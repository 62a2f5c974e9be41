// Package arena manages the flat memory region shared with the host.
//
// The host drives every kernel call by allocating buffers here, writing
// raw sample bytes into them, invoking a kernel entry point with the
// handles, and reading the result bytes back. Kernels never allocate;
// ownership of every buffer belongs to the host from Allocate until
// Release.
//
// # Usage
//
// Allocate, view, release:
//
//	a := arena.New()
//	h := a.Allocate(5 * series.ElemSize)
//	if h == arena.Invalid {
//	    // allocation failed; the arena does not retry
//	}
//	samples := a.Float32s(h)  // same storage as a.Bytes(h)
//	copy(samples, []float32{1, 2, 3, 4, 5})
//	// ... run kernels ...
//	a.Release(h)
//
// # Failure model
//
// Allocate signals failure only through the Invalid handle. Release of
// an unknown or already-released handle is a caller error; the arena
// performs no reference counting and the caller must track handle
// validity itself.
package arena
