// Package transform provides variance-stabilizing transforms for time
// series preprocessing.
//
// The Box-Cox power transform maps each sample x to (x^lambda - 1) /
// lambda, or ln(x) in the lambda = 0 limit:
//
//	data := []float32{1, 4, 9}
//	result := make([]float32, len(data))
//	transform.BoxCox(data, result, transform.DefaultLambda)
//	// result is [0, 2, 4]
//
// Box-Cox is typically applied before detrending or ARMA fitting when
// the series' variance grows with its level. The transform assumes
// strictly positive samples; zeros and negatives propagate as -Inf/NaN
// rather than raising an error.
package transform
