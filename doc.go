// Package goseries provides univariate time-series statistics kernels
// driven by an external host over shared flat buffers.
//
// GoSeries re-expresses a WASM-style compute module in Go: the host
// allocates buffers from a memory arena, writes single-precision
// samples into them, invokes a kernel by handle and length, and reads
// the result buffer back. Each kernel is a pure, self-contained call;
// no kernel calls another and nothing persists between calls.
//
// # Features
//
//   - Memory arena with handle-based allocate/release for host-owned buffers
//   - Linear detrending by ordinary least squares
//   - Iterative ARMA(1,1) estimation with a convergence stopping rule
//   - Fixed-parameter one-step ARMA forecasting
//   - Autocorrelation function (ACF)
//   - Partial autocorrelation (PACF) with AIC-based lag-order selection
//   - Box-Cox power transform
//
// # Quick Start
//
// Drive a kernel the way a host would:
//
//	a := arena.New()
//	data := a.Allocate(5 * series.ElemSize)
//	result := a.Allocate(5 * series.ElemSize)
//	copy(a.Float32s(data), []float32{0, 1, 2, 3, 4})
//	goseries.LinearDetrend(a, data, result, 5)
//	// a.Float32s(result) is all zeros
//	a.Release(data)
//	a.Release(result)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - arena: host-owned buffer allocation and views
//   - detrend: OLS linear detrending
//   - arma: ARMA estimation and forecasting
//   - stats: ACF and PACF with order selection
//   - transform: Box-Cox power transform
//   - series: shared single-precision helpers
//
// The root package is the host boundary: entry points take arena
// handles plus explicit lengths, write results in place, and return
// nothing. Malformed input surfaces only as NaN/Inf output, never as an
// error value, matching the host module contract; the richer
// per-kernel APIs underneath report a status for callers who want it.
//
// # Non-goals
//
// GoSeries models univariate series only. There is no seasonal or
// integrated (the I in ARIMA) support, and no input validation beyond
// what each algorithm needs to avoid division by zero.
package goseries
