package errors

import (
	"math"
)

// CheckNumericalStability checks if values contain NaN or Inf
// and returns an error if numerical instability is detected.
func CheckNumericalStability(operation string, values []float64, iteration int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, iteration)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// CheckVector checks all entries of a vector for numerical instability.
// At most 10 offending values are collected for the error message.
func CheckVector(operation string, vec interface{ AtVec(int) float64 }, n, iteration int) error {
	var unstableValues []float64

	for i := 0; i < n; i++ {
		v := vec.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			unstableValues = append(unstableValues, v)
			if len(unstableValues) >= 10 {
				break
			}
		}
	}

	if len(unstableValues) > 0 {
		return NewNumericalInstabilityError(operation, unstableValues, iteration)
	}

	return nil
}
