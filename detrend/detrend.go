// Package detrend removes an OLS-fit linear trend from a series.
package detrend

import (
	"math"

	"github.com/sartorproj/goseries/series"
)

// Linear fits value on index by ordinary least squares and writes the
// residual data[i] - (slope*i + intercept) into result. data and result
// must have the same length n; the fit uses indices 0..n-1 as the
// regressor.
//
// n < 2 or a zero index variance divides by zero; the NaN/Inf output
// propagates unguarded and the returned status is StatusDegenerate.
func Linear(data, result []float32) series.Status {
	n := len(data)

	var xMean, yMean, xyMean float32
	for i := 0; i < n; i++ {
		xMean += float32(i)
		yMean += data[i]
		xyMean += float32(i) * data[i]
	}
	xMean /= float32(n)
	yMean /= float32(n)
	xyMean /= float32(n)

	var xVar float32
	for i := 0; i < n; i++ {
		d := float32(i) - xMean
		xVar += d * d
	}
	xVar /= float32(n)

	slope := (xyMean - xMean*yMean) / xVar
	intercept := yMean - slope*xMean

	for i := 0; i < n; i++ {
		result[i] = data[i] - (slope*float32(i) + intercept)
	}

	if n < 2 || xVar == 0 || math.IsNaN(float64(slope)) {
		return series.StatusDegenerate
	}
	return series.StatusOK
}
