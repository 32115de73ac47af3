package errors

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCheckNumericalStability(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"finite values", []float64{1.0, -2.5, 0.0}, false},
		{"contains NaN", []float64{1.0, math.NaN()}, true},
		{"contains +Inf", []float64{math.Inf(1)}, true},
		{"contains -Inf", []float64{0.0, math.Inf(-1)}, true},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckNumericalStability("test_op", tt.values, 0)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckNumericalStability() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckVector(t *testing.T) {
	v := mat.NewVecDense(3, []float64{1, math.NaN(), 3})
	err := CheckVector("Ridge.Fit", v, v.Len(), 100)
	if err == nil {
		t.Fatal("expected instability error for NaN entry")
	}

	var instErr *NumericalInstabilityError
	if !As(err, &instErr) {
		t.Fatal("error should be castable to *NumericalInstabilityError")
	}
	if instErr.Iteration != 100 {
		t.Errorf("Iteration = %d, want 100", instErr.Iteration)
	}

	ok := mat.NewVecDense(2, []float64{0.5, -0.5})
	if err := CheckVector("Ridge.Fit", ok, ok.Len(), 100); err != nil {
		t.Errorf("unexpected error for finite vector: %v", err)
	}
}

func TestCheckScalar(t *testing.T) {
	if err := CheckScalar("rmse", 1.5, 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckScalar("rmse", math.NaN(), 0); err == nil {
		t.Error("expected error for NaN scalar")
	}
}
