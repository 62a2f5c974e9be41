// Package main demonstrates the goseries kernels the way a host drives
// them: allocate buffers, write samples, call kernels, read results.
package main

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/goseries"
	"github.com/sartorproj/goseries/arena"
	"github.com/sartorproj/goseries/arma"
	"github.com/sartorproj/goseries/series"
	"github.com/sartorproj/goseries/stats"
	"github.com/sartorproj/goseries/transform"
)

func main() {
	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("GoSeries Demonstration - host-driven time series kernels")
	fmt.Println(strings.Repeat("=", 70))

	// Synthetic series: linear trend plus an AR(1) component.
	n := 60
	values := make([]float32, n)
	var ar float32
	for i := 0; i < n; i++ {
		ar = 0.7*ar + float32(i%7-3)/3
		values[i] = 2*float32(i) + 10 + ar
	}

	summarize(values)

	a := arena.New()
	data := a.Allocate(n * series.ElemSize)
	result := a.Allocate(n * series.ElemSize)
	if data == arena.Invalid || result == arena.Invalid {
		fmt.Println("arena allocation failed")
		return
	}
	defer a.Release(data)
	defer a.Release(result)

	// The host writes raw samples into arena memory.
	copy(a.Float32s(data), values)

	section("Linear detrending")
	goseries.LinearDetrend(a, data, result, n)
	detrended := snapshot(a.Float32s(result))
	fmt.Printf("first residuals: %v\n", detrended[:6])

	// The detrended series feeds the remaining analysis; the host
	// copies it back into the data buffer between calls.
	copy(a.Float32s(data), detrended)

	section("Autocorrelation (ACF)")
	goseries.ACF(a, data, result, n)
	fmt.Printf("lags 0..5: %v  (lag 0 is halved by contract)\n",
		snapshot(a.Float32s(result))[:6])

	section("Partial autocorrelation (PACF) with AIC order selection")
	res := stats.PACF(a.Float32s(data)[:n], a.Float32s(result)[:n])
	fmt.Printf("selected lag: %d  (AIC %.4f)\n", res.SelectedLag, res.MinAIC)
	fmt.Printf("coefficients 0..5: %v\n", snapshot(a.Float32s(result))[:6])

	section("ARMA estimation and one-step forecast")
	prediction := a.Allocate(n * series.ElemSize)
	defer a.Release(prediction)
	params := arma.AutoForecast(a.Float32s(data)[:n], a.Float32s(prediction)[:n], arma.DefaultConfig())
	fmt.Printf("phi=%.4f theta=%.4f mu=%.4f iterations=%d converged=%v status=%v\n",
		params.Phi, params.Theta, params.Mu, params.Iterations, params.Converged, params.Status)
	fmt.Printf("forecasts 1..6: %v\n", snapshot(a.Float32s(prediction))[1:7])

	section("Fixed-parameter forecast (byte-count length)")
	goseries.ARIMASetParams(a, data, prediction, n*series.ElemSize)
	fmt.Printf("forecasts 1..6: %v\n", snapshot(a.Float32s(prediction))[1:7])

	section("Box-Cox transform")
	squares := []float32{1, 4, 9, 16, 25}
	sq := a.Allocate(len(squares) * series.ElemSize)
	defer a.Release(sq)
	copy(a.Float32s(sq), squares)
	out := a.Allocate(len(squares) * series.ElemSize)
	defer a.Release(out)
	transform.BoxCox(a.Float32s(sq), a.Float32s(out), transform.DefaultLambda)
	fmt.Printf("%v -> %v\n", squares, snapshot(a.Float32s(out)))

	fmt.Println()
	fmt.Printf("arena: %d bytes live before release\n", a.Used())
}

func section(title string) {
	fmt.Println()
	fmt.Println(title)
	fmt.Println(strings.Repeat("-", len(title)))
}

// summarize prints input statistics via an independent estimator.
func summarize(values []float32) {
	y := make([]float64, len(values))
	for i, v := range values {
		y[i] = float64(v)
	}
	mean, std := stat.MeanStdDev(y, nil)
	fmt.Printf("\ninput: n=%d mean=%.3f std=%.3f min=%.3f max=%.3f\n",
		len(y), mean, std, floats.Min(y), floats.Max(y))
}

func snapshot(values []float32) []float32 {
	out := make([]float32, len(values))
	copy(out, values)
	return out
}
