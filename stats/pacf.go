package stats

import (
	"math"

	"github.com/sartorproj/goseries/series"
)

// PACFResult carries the lag-order selection alongside the coefficient
// buffer the kernel writes for the caller.
type PACFResult struct {
	SelectedLag int           // lag minimizing AIC over the full scan
	MinAIC      float32       // AIC value at SelectedLag
	AIC         []float32     // per-lag AIC trace from the first pass
	Status      series.Status // degenerate if any denominator was zero
}

// PACF calculates the partial autocorrelation function of data by
// recursive least squares and writes it into result. data and result
// must have the same length n.
//
// Two passes run over lags k = 0..n-1. The first scans every lag,
// scoring each with AIC(k) = ln(rss/n) + 2(k+1)/n and tracking the
// minimizing lag. The second recomputes the recursion up to the
// selected lag only, so result entries beyond it retain the first
// pass's values.
//
// A zero denominator yields a zero coefficient instead of dividing;
// this is the guard the white-noise case relies on, and it is reported
// through the result status.
func PACF(data, result []float32) *PACFResult {
	n := len(data)

	// Working state is heap-allocated per call; the series copy keeps
	// the kernel from reading the caller's buffer after it starts
	// writing overlapping results.
	r := make([]float32, n)
	copy(r, data)
	phi := make([]float32, n)
	aic := make([]float32, n)

	minAIC := float32(math.Inf(1))
	selected := 0
	status := series.StatusOK

	for k := 0; k < n; k++ {
		coeff, degenerate := reflection(r, phi, k)
		if degenerate {
			status = series.StatusDegenerate
		}
		phi[k] = coeff

		result[k] = phi[k]
		for j := 0; j < k; j++ {
			result[k] -= phi[j] * result[k-j-1]
		}

		// Residual sum of squares of the order-(k+1) fit over the tail.
		m := k + 1
		var rss float32
		for i := m; i < n; i++ {
			y := r[i]
			for j := 1; j <= m; j++ {
				y -= phi[j-1] * r[i-j]
			}
			rss += y * y
		}
		a := float32(math.Log(float64(rss)/float64(n))) + 2*float32(m)/float32(n)
		aic[k] = a

		if a < minAIC {
			minAIC = a
			selected = k
		}
	}

	for k := 0; k <= selected; k++ {
		coeff, _ := reflection(r, phi, k)
		phi[k] = coeff

		result[k] = phi[k]
		for j := 0; j < k; j++ {
			result[k] -= phi[j] * result[k-j-1]
		}
	}

	return &PACFResult{
		SelectedLag: selected,
		MinAIC:      minAIC,
		AIC:         aic,
		Status:      status,
	}
}

// reflection computes the order-k coefficient num/den over the tail
// i in [k, n), where y strips the contribution of the lower-order
// coefficients from r[i]. The numerator's i = k term would index one
// position before the series start and is defined to contribute zero.
// Reports den == 0, in which case the coefficient is zero.
func reflection(r, phi []float32, k int) (float32, bool) {
	n := len(r)
	var num, den float32
	for i := k; i < n; i++ {
		y := r[i]
		for j := 0; j < k; j++ {
			y -= phi[j] * r[i-j-1]
		}
		if i > k {
			num += r[i-k-1] * y
		}
		den += y * y
	}
	if den == 0 {
		return 0, true
	}
	return num / den, false
}
