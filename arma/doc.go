// Package arma implements ARMA(1,1) parameter estimation and one-step
// forecasting over single-precision sample buffers.
//
// Two kernels are provided. AutoForecast estimates the AR coefficient
// phi and MA coefficient theta by an iterative least-squares
// refinement with a convergence stopping rule, then forecasts one step
// ahead for every index with a lagged sample. FixedForecast skips
// estimation and forecasts with hardcoded coefficients.
//
// # Basic usage
//
// Fit and forecast with the documented defaults:
//
//	prediction := make([]float32, len(data))
//	params := arma.AutoForecast(data, prediction, arma.DefaultConfig())
//	if !params.Converged {
//	    // the 1000-round cap was hit before the 1e-6 tolerance
//	}
//	// prediction[1:] holds the one-step-ahead forecasts
//
// The hyperparameters (initial coefficients, iteration cap, tolerance)
// are a Config so later versions can expose them without changing the
// call shape; DefaultConfig holds the documented defaults.
//
// # Model form
//
// The one-step forecast is
//
//	prediction[i] = mu + phi*data[i-1] + theta*e[i]
//
// where mu is the sample mean, fixed before the fit loop, and e[i] is
// the residual recomputed from the final parameters. prediction[0] has
// no lagged sample and is never written.
//
// # Degenerate input
//
// A constant-zero series zeroes the denominator of the phi update; the
// resulting NaN propagates through the forecast rather than raising an
// error, and Params.Status reports it. The loop always terminates: the
// tolerance test or the iteration cap bounds every call.
package arma
