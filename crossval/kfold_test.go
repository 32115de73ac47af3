package crossval

import (
	"testing"

	"github.com/YuminosukeSato/gridge/pkg/errors"
)

func TestKFold_CoversRangeExactlyOnce(t *testing.T) {
	cases := []struct{ n, k int }{
		{10, 2},
		{10, 3},
		{100, 10},
		{7, 7},
		{101, 10},
	}

	for _, tc := range cases {
		folds, err := NewKFold(tc.k).Split(tc.n)
		if err != nil {
			t.Fatalf("Split(n=%d, k=%d) failed: %v", tc.n, tc.k, err)
		}
		if len(folds) != tc.k {
			t.Fatalf("Split(n=%d, k=%d) returned %d folds", tc.n, tc.k, len(folds))
		}

		// Test blocks must cover [0, n) with no overlaps and no gaps
		seen := make([]int, tc.n)
		for _, fold := range folds {
			for _, idx := range fold.TestIndices {
				if idx < 0 || idx >= tc.n {
					t.Fatalf("n=%d k=%d: test index %d out of range", tc.n, tc.k, idx)
				}
				seen[idx]++
			}
		}
		for i, count := range seen {
			if count != 1 {
				t.Errorf("n=%d k=%d: index %d appears in %d test blocks, want 1", tc.n, tc.k, i, count)
			}
		}
	}
}

func TestKFold_ContiguousBlocksAndRemainder(t *testing.T) {
	// n=10, k=3: block size 3, last block absorbs the remainder (4 indices)
	folds, err := NewKFold(3).Split(10)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	wantSizes := []int{3, 3, 4}
	for f, fold := range folds {
		if len(fold.TestIndices) != wantSizes[f] {
			t.Errorf("fold %d test size = %d, want %d", f, len(fold.TestIndices), wantSizes[f])
		}
		// Contiguity: each block is an ascending run
		for i := 1; i < len(fold.TestIndices); i++ {
			if fold.TestIndices[i] != fold.TestIndices[i-1]+1 {
				t.Errorf("fold %d test indices are not contiguous: %v", f, fold.TestIndices)
				break
			}
		}
	}

	if folds[2].TestIndices[0] != 6 || folds[2].TestIndices[3] != 9 {
		t.Errorf("last fold should cover [6, 10), got %v", folds[2].TestIndices)
	}
}

func TestKFold_TrainTestDisjoint(t *testing.T) {
	folds, err := NewKFold(4).Split(17)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	for f, fold := range folds {
		inTest := make(map[int]bool, len(fold.TestIndices))
		for _, idx := range fold.TestIndices {
			inTest[idx] = true
		}
		for _, idx := range fold.TrainIndices {
			if inTest[idx] {
				t.Errorf("fold %d: index %d in both train and test", f, idx)
			}
		}
		if len(fold.TrainIndices)+len(fold.TestIndices) != 17 {
			t.Errorf("fold %d: train+test = %d, want 17",
				f, len(fold.TrainIndices)+len(fold.TestIndices))
		}
	}
}

func TestKFold_Deterministic(t *testing.T) {
	a, err := NewKFold(5).Split(23)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	b, err := NewKFold(5).Split(23)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	for f := range a {
		for i := range a[f].TestIndices {
			if a[f].TestIndices[i] != b[f].TestIndices[i] {
				t.Fatal("Split must be deterministic")
			}
		}
	}
}

func TestKFold_MoreSplitsThanSamples(t *testing.T) {
	_, err := NewKFold(5).Split(3)
	if err == nil {
		t.Fatal("Expected error when k > n")
	}

	var foldErr *errors.DegenerateFoldError
	if !errors.As(err, &foldErr) {
		t.Errorf("Expected DegenerateFoldError, got %T: %v", err, err)
	}
}

func TestKFold_TooFewSplits(t *testing.T) {
	_, err := NewKFold(1).Split(10)
	if err == nil {
		t.Fatal("Expected error for k < 2")
	}

	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("Expected ValidationError, got %T: %v", err, err)
	}
}
