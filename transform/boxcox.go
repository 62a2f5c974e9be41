// Package transform provides variance-stabilizing power transforms.
package transform

import (
	"math"

	"github.com/sartorproj/goseries/series"
)

// DefaultLambda is the exponent the host entry point applies. It is the
// only value used today; the parameter exists so later versions can
// expose it without changing the kernel.
const DefaultLambda float32 = 0.5

// BoxCox applies the power transform (x^lambda - 1) / lambda to every
// sample, or the natural log when lambda is zero. data and result must
// have the same length.
//
// With the default lambda of 0.5 the log branch is unreachable; it is
// kept because lambda 0 is the transform's standard limiting case and
// the natural point to make configurable.
//
// Non-positive samples produce NaN (or -Inf at zero) through the
// fractional power or the log; this propagates unguarded and is
// reported through the status.
func BoxCox(data, result []float32, lambda float32) series.Status {
	status := series.StatusOK
	for i, v := range data {
		if lambda == 0 {
			result[i] = float32(math.Log(float64(v)))
		} else {
			result[i] = float32((math.Pow(float64(v), float64(lambda)) - 1) / float64(lambda))
		}
		if v <= 0 {
			status = series.StatusDegenerate
		}
	}
	return status
}
