// Package series provides shared single-precision helpers for the kernels.
package series

// ElemSize is the size in bytes of one sample element. Every buffer
// exchanged with the host is a contiguous run of float32 values.
const ElemSize = 4

// Status reports whether a kernel run was numerically well-posed.
// Kernels never fail; degenerate input (zero variance, zero
// denominator) propagates through the output as NaN or Inf, and Status
// is the optional side channel for callers who want to detect it.
type Status int

const (
	// StatusOK means no degenerate denominator was encountered.
	StatusOK Status = iota
	// StatusDegenerate means at least one denominator was zero and the
	// output contains NaN/Inf or guarded zero values.
	StatusDegenerate
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegenerate:
		return "degenerate"
	}
	return "unknown"
}

// Mean calculates the arithmetic mean of the samples in single
// precision, accumulating in float32 the way the kernels do.
func Mean(values []float32) float32 {
	if len(values) == 0 {
		return 0
	}
	var sum float32
	for _, v := range values {
		sum += v
	}
	return sum / float32(len(values))
}
