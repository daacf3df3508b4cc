package db

import (
	"math"
)

/*
VectorSubtract subtracts vector b from vector a element-wise

Parameters:
a, b: []float64 - The vectors to subtract
*/

func VectorSubtract(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	result := make([]float64, len(a))
	for i := range a {
		result[i] = a[i] - b[i]
	}
	return result, nil
}

/*
VectorMagnitude computes the magnitude (L2 norm) of a vector

Parameters:
v: []float64 - The vector to compute the magnitude of
*/

func VectorMagnitude(v []float64) float64 {
	var sum float64
	for _, val := range v {
		sum += val * val
	}
	return math.Sqrt(sum)
}

/*
EuclideanDistance computes the L2 norm of a - b.

Both vectors must have the same, non-zero length.
*/

func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyVector
	}

	diff, err := VectorSubtract(a, b)
	if err != nil {
		return 0, err
	}
	return VectorMagnitude(diff), nil
}

/*
TruncatePair aligns two vectors by keeping the shared leading prefix.

Returns:
a[:n], b[:n] where n = min(len(a), len(b)). The results alias the inputs.
*/

func TruncatePair(a, b []float64) ([]float64, []float64) {
	n := min(len(a), len(b))
	return a[:n:n], b[:n:n]
}
