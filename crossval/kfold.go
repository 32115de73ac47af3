// Package crossval provides k-fold data splitting and cross-validated
// hyperparameter selection for ridge regression.
package crossval

import (
	"github.com/YuminosukeSato/gridge/pkg/errors"
)

// Fold represents a single fold in cross-validation
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold はk-fold分割器。
// インデックス範囲 [0, n) を連続したk個のブロックに決定的に分割する。
// シャッフルは行わず、整数除算の余りは最後のブロックが吸収する。
type KFold struct {
	NSplits int
}

// NewKFold creates a new k-fold splitter
func NewKFold(nSplits int) *KFold {
	return &KFold{NSplits: nSplits}
}

// Split partitions the index range [0, n) into NSplits contiguous blocks.
// Fold f uses block f as test indices and all remaining indices as train
// indices. The partition is a pure function of (n, NSplits).
func (kf *KFold) Split(n int) ([]Fold, error) {
	if kf.NSplits < 2 {
		return nil, errors.NewValidationError("n_splits", "must be at least 2", kf.NSplits)
	}

	blockSize := n / kf.NSplits
	if blockSize < 1 {
		// k > n: at least one test block would be empty
		return nil, errors.NewDegenerateFoldError(n, kf.NSplits, kf.NSplits-1, "test")
	}

	folds := make([]Fold, kf.NSplits)
	for f := 0; f < kf.NSplits; f++ {
		start := f * blockSize
		end := start + blockSize
		if f == kf.NSplits-1 {
			end = n // last block absorbs the remainder
		}

		testIndices := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			testIndices = append(testIndices, i)
		}

		trainIndices := make([]int, 0, n-(end-start))
		for i := 0; i < start; i++ {
			trainIndices = append(trainIndices, i)
		}
		for i := end; i < n; i++ {
			trainIndices = append(trainIndices, i)
		}

		if len(trainIndices) == 0 {
			return nil, errors.NewDegenerateFoldError(n, kf.NSplits, f, "train")
		}

		folds[f] = Fold{
			TrainIndices: trainIndices,
			TestIndices:  testIndices,
		}
	}

	return folds, nil
}
