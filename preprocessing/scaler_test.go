package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler_MeanAndStd(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	r, c := scaled.Dims()
	for j := 0; j < c; j++ {
		var sum, sumSq float64
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		mean := sum / float64(r)
		for i := 0; i < r; i++ {
			diff := scaled.At(i, j) - mean
			sumSq += diff * diff
		}
		std := math.Sqrt(sumSq / float64(r))

		if math.Abs(mean) > 1e-12 {
			t.Errorf("column %d: mean = %v, want 0", j, mean)
		}
		if math.Abs(std-1) > 1e-12 {
			t.Errorf("column %d: std = %v, want 1", j, std)
		}
	}
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{5, 5, 5})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	// Zero-variance column passes through centered, without dividing by zero
	for i := 0; i < 3; i++ {
		if v := scaled.At(i, 0); v != 0 {
			t.Errorf("row %d: got %v, want 0", i, v)
		}
	}
}

func TestStandardScaler_TransformBeforeFit(t *testing.T) {
	scaler := NewStandardScaler()
	X := mat.NewDense(2, 1, []float64{1, 2})

	if _, err := scaler.Transform(X); err == nil {
		t.Error("Expected NotFittedError for transform before fit")
	}
}

func TestStandardScaler_FeatureMismatch(t *testing.T) {
	scaler := NewStandardScaler()
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	XBad := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if _, err := scaler.Transform(XBad); err == nil {
		t.Error("Expected dimension error for wrong feature count")
	}
}
