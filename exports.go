package goseries

import (
	"github.com/sartorproj/goseries/arena"
	"github.com/sartorproj/goseries/arma"
	"github.com/sartorproj/goseries/detrend"
	"github.com/sartorproj/goseries/stats"
	"github.com/sartorproj/goseries/transform"
)

// The functions in this file are the host boundary: one entry point per
// kernel, taking buffer handles plus an explicit length, writing the
// result buffer in place and returning nothing. The allocate/release
// half of the boundary lives on arena.Arena.
//
// Lengths are supplied out-of-band on every call; no entry point infers
// a length from buffer contents. The host owns every buffer before,
// during, and after a call.

// LinearDetrend removes the OLS-fit linear trend from the first n
// samples of data, writing the residuals into result.
func LinearDetrend(a *arena.Arena, data, result arena.Handle, n int) {
	detrend.Linear(a.Float32s(data)[:n], a.Float32s(result)[:n])
}

// ARIMAAutoParams estimates ARMA(1,1) parameters iteratively and writes
// the one-step-ahead forecast into prediction for indices 1..n-1.
// prediction[0] is left untouched. The host contract names the entry
// point arima, but the model has no integrated term.
func ARIMAAutoParams(a *arena.Arena, data, prediction arena.Handle, n int) {
	arma.AutoForecast(a.Float32s(data)[:n], a.Float32s(prediction)[:n], arma.DefaultConfig())
}

// ARIMASetParams writes the one-step-ahead forecast with fixed
// coefficients. Unlike every other entry point, byteLen is a byte
// count: the sample count is byteLen / series.ElemSize. See
// arma.FixedForecast for the contract.
func ARIMASetParams(a *arena.Arena, data, prediction arena.Handle, byteLen int) {
	arma.FixedForecast(a.Float32s(data), a.Float32s(prediction), byteLen)
}

// ACF writes the autocorrelation of the first n samples of data into
// result, one entry per lag, with the lag-0 entry halved.
func ACF(a *arena.Arena, data, result arena.Handle, n int) {
	stats.ACF(a.Float32s(data)[:n], a.Float32s(result)[:n])
}

// PACF writes the partial autocorrelation of the first n samples of
// data into result. Lags beyond the AIC-selected order hold the values
// of the full scanning pass.
func PACF(a *arena.Arena, data, result arena.Handle, n int) {
	stats.PACF(a.Float32s(data)[:n], a.Float32s(result)[:n])
}

// BoxCoxTransform applies the power transform with the default exponent
// of 0.5 to the first n samples of data, writing into result.
func BoxCoxTransform(a *arena.Arena, data, result arena.Handle, n int) {
	transform.BoxCox(a.Float32s(data)[:n], a.Float32s(result)[:n], transform.DefaultLambda)
}
