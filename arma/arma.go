// Package arma implements ARMA(1,1) estimation and one-step forecasting.
package arma

import (
	"math"

	"github.com/sartorproj/goseries/series"
)

// Config holds the estimator hyperparameters. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	Phi0    float32 // initial AR coefficient
	Theta0  float32 // initial MA coefficient
	MaxIter int     // iteration cap on the fit loop
	Tol     float32 // Euclidean-norm convergence tolerance
}

// DefaultConfig returns the documented starting point: phi 0.3,
// theta -0.2, a 1000-round cap, and a 1e-6 tolerance.
func DefaultConfig() Config {
	return Config{
		Phi0:    0.3,
		Theta0:  -0.2,
		MaxIter: 1000,
		Tol:     1e-6,
	}
}

// Coefficients used by FixedForecast. Estimation is skipped entirely;
// only the mean is computed from the data.
const (
	FixedPhi   float32 = 0.5
	FixedTheta float32 = 0.2
)

// Params reports the parameter set a forecast was generated with.
type Params struct {
	Phi        float32
	Theta      float32
	Mu         float32
	Iterations int  // fit rounds run; 0 when no estimation was performed
	Converged  bool // tolerance reached before the iteration cap
	Status     series.Status
}

// AutoForecast jointly estimates phi and theta by iterative
// least-squares refinement, then writes the one-step-ahead forecast
// into prediction for indices 1..n-1. prediction[0] is left untouched.
// data and prediction must have the same length.
//
// The mean is fixed to the sample mean before the loop and never
// updated. Each round recomputes the residuals from the current
// parameters, refits phi against the lagged samples, derives theta from
// the residual energy, and stops once the parameter step's Euclidean
// norm drops below cfg.Tol or cfg.MaxIter rounds have run.
//
// A constant-zero series makes the phi update divide by zero; the NaN
// propagates through the forecast unguarded and the returned status
// reports the degeneracy. The loop still terminates at the cap.
func AutoForecast(data, prediction []float32, cfg Config) Params {
	n := len(data)

	phi := cfg.Phi0
	theta := cfg.Theta0
	mu := series.Mean(data)

	status := series.StatusOK
	converged := false
	rounds := 0

	for iter := 0; iter < cfg.MaxIter; iter++ {
		rounds = iter + 1
		prevPhi := phi
		prevTheta := theta

		var sumXY, sumXSq, sumErrSq float32
		for i := 1; i < n; i++ {
			e := data[i] - mu - phi*data[i-1] - theta*(data[i-1]-mu)
			sumXY += data[i-1] * e
			sumXSq += data[i-1] * data[i-1]
			sumErrSq += e * e
		}

		if sumXSq == 0 {
			status = series.StatusDegenerate
		}
		phi = sumXY / sumXSq
		theta = (sumErrSq - phi*sumXY) / float32(n-1)

		dPhi := phi - prevPhi
		dTheta := theta - prevTheta
		if float32(math.Sqrt(float64(dPhi*dPhi+dTheta*dTheta))) < cfg.Tol {
			converged = true
			break
		}
	}

	forecast(data, prediction, phi, theta, mu)

	return Params{
		Phi:        phi,
		Theta:      theta,
		Mu:         mu,
		Iterations: rounds,
		Converged:  converged,
		Status:     status,
	}
}

// FixedForecast writes the one-step-ahead forecast using the hardcoded
// FixedPhi and FixedTheta coefficients; only the mean comes from the
// data.
//
// byteLen is a raw byte count, not a sample count: the host contract
// for this entry point passes the buffer size in bytes and the kernel
// divides by series.ElemSize to recover n. Callers holding a sample
// count must multiply before calling. The mismatch with every other
// kernel's length argument is inherited from the host contract and
// deliberately not corrected here.
func FixedForecast(data, prediction []float32, byteLen int) Params {
	n := byteLen / series.ElemSize

	phi := FixedPhi
	theta := FixedTheta
	mu := series.Mean(data[:n])

	forecast(data[:n], prediction, phi, theta, mu)

	return Params{Phi: phi, Theta: theta, Mu: mu, Status: series.StatusOK}
}

// forecast recomputes the one-step residual from the final parameters
// and emits mu + phi*data[i-1] + theta*e for i in [1, n). Index 0 has
// no lagged sample and is never written.
func forecast(data, prediction []float32, phi, theta, mu float32) {
	for i := 1; i < len(data); i++ {
		e := data[i] - mu - phi*data[i-1] - theta*(data[i-1]-mu)
		prediction[i] = mu + phi*data[i-1] + theta*e
	}
}
