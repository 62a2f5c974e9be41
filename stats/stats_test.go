package stats

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goseries/series"
)

// ar1 generates a deterministic AR(1)-like series.
func ar1(n int, phi float64) []float32 {
	values := make([]float32, n)
	for i := 1; i < n; i++ {
		noise := float32(i%10-5) / 10
		values[i] = float32(phi)*values[i-1] + noise
	}
	return values
}

func TestACFLagZeroHalved(t *testing.T) {
	data := ar1(100, 0.8)
	result := make([]float32, len(data))

	status := ACF(data, result)
	if status != series.StatusOK {
		t.Fatalf("Expected ok status, got %v", status)
	}

	// Lag 0 is variance-normalized to 1, then halved in place.
	if math.Abs(float64(result[0])-0.5) > 1e-5 {
		t.Errorf("Expected lag-0 value 0.5, got %f", result[0])
	}
}

func TestACFMatchesReference(t *testing.T) {
	data := ar1(60, 0.6)
	n := len(data)
	result := make([]float32, n)
	ACF(data, result)

	// Recompute in float64 with the same estimator: biased variance,
	// per-lag (n-k)*var normalization.
	y := make([]float64, n)
	var mean float64
	for i, v := range data {
		y[i] = float64(v)
		mean += y[i]
	}
	mean /= float64(n)
	var variance float64
	for _, v := range y {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(n)

	expected := make([]float64, n)
	for k := 0; k < n; k++ {
		var ac float64
		for j := k; j < n; j++ {
			ac += (y[j] - mean) * (y[j-k] - mean)
		}
		expected[k] = ac / (float64(n-k) * variance)
	}
	expected[0] /= 2

	got := make([]float64, n)
	for i, v := range result {
		got[i] = float64(v)
	}
	if !floats.EqualApprox(got, expected, 1e-3) {
		t.Errorf("ACF disagrees with float64 reference\ngot:      %v\nexpected: %v",
			got[:6], expected[:6])
	}
}

func TestACFDecaysForAR1(t *testing.T) {
	data := ar1(200, 0.8)
	result := make([]float32, len(data))
	ACF(data, result)

	if result[1] < 0.3 {
		t.Errorf("Expected strong lag-1 autocorrelation for AR(1), got %f", result[1])
	}
	if math.Abs(float64(result[1])) <= math.Abs(float64(result[5])) {
		t.Logf("ACF not decaying between lag 1 (%f) and lag 5 (%f)", result[1], result[5])
	}
}

func TestACFConstantSeries(t *testing.T) {
	data := []float32{3, 3, 3, 3, 3, 3}
	result := make([]float32, len(data))

	status := ACF(data, result)
	if status != series.StatusDegenerate {
		t.Errorf("Expected degenerate status for constant series, got %v", status)
	}
	for i, v := range result {
		if !math.IsNaN(float64(v)) {
			t.Errorf("Expected NaN at lag %d for zero variance, got %f", i, v)
		}
	}
}

func TestPACFZeroInput(t *testing.T) {
	// Every denominator is exactly zero; each coefficient must be
	// guarded to zero with no division fault.
	n := 16
	data := make([]float32, n)
	result := make([]float32, n)

	res := PACF(data, result)

	if res.Status != series.StatusDegenerate {
		t.Errorf("Expected degenerate status for zero input, got %v", res.Status)
	}
	for k, v := range result {
		if v != 0 {
			t.Errorf("Expected 0 coefficient at lag %d, got %f", k, v)
		}
	}
}

func TestPACFAR1(t *testing.T) {
	data := ar1(100, 0.7)
	result := make([]float32, len(data))

	res := PACF(data, result)

	// The order-1 coefficient tracks the lag-1 autocorrelation.
	if result[0] < 0.3 || result[0] > 1.1 {
		t.Errorf("Expected order-1 coefficient near 0.7 for AR(1), got %f", result[0])
	}
	t.Logf("Selected lag %d, AIC %f, coeff[0] %f", res.SelectedLag, res.MinAIC, result[0])
}

func TestPACFOrderSelection(t *testing.T) {
	data := ar1(80, 0.5)
	result := make([]float32, len(data))

	res := PACF(data, result)

	if len(res.AIC) != len(data) {
		t.Fatalf("Expected AIC trace of length %d, got %d", len(data), len(res.AIC))
	}
	if res.SelectedLag < 0 || res.SelectedLag >= len(data) {
		t.Fatalf("Selected lag %d out of range", res.SelectedLag)
	}
	if res.MinAIC != res.AIC[res.SelectedLag] {
		t.Errorf("MinAIC %f does not match AIC[%d] = %f",
			res.MinAIC, res.SelectedLag, res.AIC[res.SelectedLag])
	}
	for k, a := range res.AIC {
		if a < res.MinAIC {
			t.Errorf("AIC[%d] = %f below reported minimum %f", k, a, res.MinAIC)
		}
	}
}

func TestPACFDeterministic(t *testing.T) {
	data := ar1(50, 0.6)
	r1 := make([]float32, len(data))
	r2 := make([]float32, len(data))

	a := PACF(data, r1)
	b := PACF(data, r2)

	if a.SelectedLag != b.SelectedLag {
		t.Errorf("Selected lag differs across runs: %d vs %d", a.SelectedLag, b.SelectedLag)
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Errorf("Coefficient %d differs across runs: %f vs %f", i, r1[i], r2[i])
		}
	}
}
