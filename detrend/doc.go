// Package detrend removes a linear trend from a time series.
//
// The trend is estimated by ordinary least squares of the sample value
// on its index, and the kernel writes the residual series in place of
// the caller's result buffer:
//
//	data := []float32{0, 1, 2, 3, 4}
//	result := make([]float32, len(data))
//	detrend.Linear(data, result)
//	// result is all zeros: the input is exactly linear
//
// Detrending is typically the first step before autocorrelation
// analysis or ARMA fitting, both of which assume a series without a
// deterministic trend.
//
// # Degenerate input
//
// Fewer than two samples gives a zero index variance and the slope
// divides by zero. The NaN propagates into every output element rather
// than raising an error; the returned series.Status lets callers detect
// the case without changing the numeric contract.
package detrend
