package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewDimensionError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		expected int
		got      int
		axis     int
		wantMsg  string
	}{
		{
			name:     "row mismatch",
			op:       "Ridge.Fit",
			expected: 100,
			got:      90,
			axis:     0,
			wantMsg:  "gridge: Ridge.Fit: dimension mismatch on axis 0 (rows). Expected 100, got 90",
		},
		{
			name:     "feature mismatch",
			op:       "Ridge.Predict",
			expected: 2,
			got:      3,
			axis:     1,
			wantMsg:  "gridge: Ridge.Predict: dimension mismatch on axis 1 (features). Expected 2, got 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError(tt.op, tt.expected, tt.got, tt.axis)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var dimErr *DimensionError
			if !As(err, &dimErr) {
				t.Error("Error should be castable to *DimensionError")
			}
		})
	}
}

func TestNewDegenerateFoldError(t *testing.T) {
	err := NewDegenerateFoldError(3, 5, 4, "test")

	want := "gridge: k-fold split of 3 samples into 5 folds leaves fold 4 with an empty test partition"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var foldErr *DegenerateFoldError
	if !As(err, &foldErr) {
		t.Fatal("Error should be castable to *DegenerateFoldError")
	}
	if foldErr.NSplits != 5 || foldErr.NSamples != 3 {
		t.Errorf("unexpected fields: %+v", foldErr)
	}
}

func TestNumericalInstabilityError_Message(t *testing.T) {
	// 6個以上の値は省略される
	values := []float64{1, 2, 3, 4, 5, 6, 7}
	err := NewNumericalInstabilityError("Ridge.Fit", values, 100)

	msg := err.Error()
	if !strings.Contains(msg, "Ridge.Fit") {
		t.Errorf("message should contain operation, got %q", msg)
	}
	if !strings.Contains(msg, "...") {
		t.Errorf("message should truncate long value lists, got %q", msg)
	}
}

func TestWarn_CustomHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(nil)

	warning := NewConvergenceWarning("Ridge", 100, 12.5)
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not called")
	}
	if !strings.Contains(captured.Error(), "after 100 iterations") {
		t.Errorf("unexpected warning message: %v", captured)
	}
}

func TestConvergenceWarning_Message(t *testing.T) {
	w := NewConvergenceWarning("Ridge", 100, 1e6)
	if !strings.Contains(w.Error(), "Ridge") {
		t.Errorf("warning should name the algorithm: %v", w)
	}
}
