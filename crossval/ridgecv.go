package crossval

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gridge/core/model"
	"github.com/YuminosukeSato/gridge/core/parallel"
	"github.com/YuminosukeSato/gridge/linear"
	"github.com/YuminosukeSato/gridge/metrics"
	"github.com/YuminosukeSato/gridge/pkg/errors"
)

// RidgeCV はk-fold交差検証による正則化係数の選択器。
//
// 候補リストの各λについて、k個のフォールドそれぞれで残りのデータを使って
// Ridgeを学習し、保持されたフォールドでRMSEを測る。候補ごとにk個のスコアを
// 平均し、平均スコア最小の候補を選択する（同点の場合はリスト中で先に現れる
// 候補を選ぶ）。最後に選択したλで全データを再学習する。
// 学習回数は常に k×|候補| + 1 回。
type RidgeCV struct {
	model.BaseEstimator

	lambdas       []float64
	nSplits       int
	solverOptions []linear.Option

	bestIndex  int
	bestLambda float64
	weights    *mat.VecDense
	rmse       float64
	meanScores []float64
	foldScores [][]float64
}

// CVOption is a function that configures RidgeCV
type CVOption func(*RidgeCV)

// WithSolverOptions passes options through to every Ridge fit performed
// during cross-validation and the final refit.
func WithSolverOptions(options ...linear.Option) CVOption {
	return func(cv *RidgeCV) {
		cv.solverOptions = options
	}
}

// NewRidgeCV は候補リストlambdasと分割数nSplitsを持つ選択器を作成する
func NewRidgeCV(lambdas []float64, nSplits int, options ...CVOption) *RidgeCV {
	cv := &RidgeCV{
		lambdas: lambdas,
		nSplits: nSplits,
	}

	for _, opt := range options {
		opt(cv)
	}

	return cv
}

// Fit は交差検証でλを選択し、選択したλで全データを再学習する。
//
// フォールド×候補の各ペアは独立した学習・評価の単位であり、ワーカープール
// に分配される。各ワーカーはスコア表の自分のセルにのみ書き込むため、
// データ競合は発生しない。集約（列平均とarg-min）は全ワーカーの完了後に
// 逐次実行されるので、結果は入力の純粋な関数になる。
func (cv *RidgeCV) Fit(X mat.Matrix, y *mat.VecDense) error {
	rows, cols := X.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("RidgeCV.Fit", "empty data", errors.ErrEmptyData)
	}

	if y.Len() != rows {
		return errors.NewDimensionError("RidgeCV.Fit", rows, y.Len(), 0)
	}

	if len(cv.lambdas) == 0 {
		return errors.NewModelError("RidgeCV.Fit", "no candidates", errors.ErrEmptyCandidates)
	}

	for i, lambda := range cv.lambdas {
		if lambda < 0 {
			return errors.NewValidationError("lambdas", "candidates must be non-negative", cv.lambdas[i])
		}
	}

	kf := NewKFold(cv.nSplits)
	folds, err := kf.Split(rows)
	if err != nil {
		return err
	}

	// 各フォールドの訓練・テスト行列を先に作っておく。
	// 同じフォールドを全候補で再利用するため、抽出は k 回で済む。
	type foldData struct {
		XTrain *mat.Dense
		yTrain *mat.VecDense
		XTest  *mat.Dense
		yTest  *mat.VecDense
	}
	data := make([]foldData, len(folds))
	for f, fold := range folds {
		XTrain, yTrain := extractRows(X, y, fold.TrainIndices)
		XTest, yTest := extractRows(X, y, fold.TestIndices)
		data[f] = foldData{XTrain: XTrain, yTrain: yTrain, XTest: XTest, yTest: yTest}
	}

	nCandidates := len(cv.lambdas)
	scores := make([][]float64, len(folds))
	cellErrs := make([][]error, len(folds))
	for f := range scores {
		scores[f] = make([]float64, nCandidates)
		cellErrs[f] = make([]error, nCandidates)
	}

	// フォールド×候補のグリッドを並列実行する。
	// 各セルは (fold, candidate) の組だけに依存し、他セルの結果を参照しない。
	parallel.ParallelizeGrid(len(folds), nCandidates, func(f, c int) {
		cellErrs[f][c] = errors.SafeExecute("RidgeCV.fold", func() error {
			r := linear.NewRidge(cv.lambdas[c], cv.solverOptions...)
			if err := r.Fit(data[f].XTrain, data[f].yTrain); err != nil {
				return err
			}

			yPred, err := r.Predict(data[f].XTest)
			if err != nil {
				return err
			}

			rmse, err := metrics.RMSE(data[f].yTest, yPred)
			if err != nil {
				return err
			}

			scores[f][c] = rmse
			return nil
		})
	})

	// エラーの報告順を決定的にするため、セルを固定順で走査する
	for f := range cellErrs {
		for c, cellErr := range cellErrs[f] {
			if cellErr != nil {
				return errors.Wrapf(cellErr, "fold %d, lambda %g", f, cv.lambdas[c])
			}
		}
	}

	// 候補ごとの平均スコアを計算し、安定なarg-minで選択する
	meanScores := make([]float64, nCandidates)
	for c := 0; c < nCandidates; c++ {
		var sum float64
		for f := range scores {
			sum += scores[f][c]
		}
		meanScores[c] = sum / float64(len(folds))
	}

	bestIndex := 0
	for c := 1; c < nCandidates; c++ {
		// 厳密な不等号により、同点では先に現れる候補が保持される
		if meanScores[c] < meanScores[bestIndex] {
			bestIndex = c
		}
	}

	// 選択したλで全データを再学習し、学習データ自身に対するRMSEを報告する
	final := linear.NewRidge(cv.lambdas[bestIndex], cv.solverOptions...)
	if err := final.Fit(X, y); err != nil {
		return errors.Wrapf(err, "final refit with lambda %g", cv.lambdas[bestIndex])
	}

	yPred, err := final.Predict(X)
	if err != nil {
		return err
	}
	finalRMSE, err := metrics.RMSE(y, yPred)
	if err != nil {
		return err
	}

	cv.bestIndex = bestIndex
	cv.bestLambda = cv.lambdas[bestIndex]
	cv.weights = final.Weights
	cv.rmse = finalRMSE
	cv.meanScores = meanScores
	cv.foldScores = scores
	cv.SetFitted()

	return nil
}

// BestLambda は選択された正則化係数を返す
func (cv *RidgeCV) BestLambda() float64 {
	return cv.bestLambda
}

// BestIndex は選択された候補のリスト内での位置を返す
func (cv *RidgeCV) BestIndex() int {
	return cv.bestIndex
}

// Weights は全データで再学習した最終モデルの重みベクトルを返す
func (cv *RidgeCV) Weights() *mat.VecDense {
	return cv.weights
}

// RMSE は最終モデルの全データに対する学習時誤差を返す
func (cv *RidgeCV) RMSE() float64 {
	return cv.rmse
}

// MeanScores は候補ごとの平均交差検証スコア（RMSE）のコピーを返す
func (cv *RidgeCV) MeanScores() []float64 {
	out := make([]float64, len(cv.meanScores))
	copy(out, cv.meanScores)
	return out
}

// FoldScores はフォールド×候補のスコア表のコピーを返す
func (cv *RidgeCV) FoldScores() [][]float64 {
	out := make([][]float64, len(cv.foldScores))
	for f := range cv.foldScores {
		out[f] = make([]float64, len(cv.foldScores[f]))
		copy(out[f], cv.foldScores[f])
	}
	return out
}

// Export は最終モデルをシリアライズ可能な形式に変換する
func (cv *RidgeCV) Export() (*model.ModelWeights, error) {
	if !cv.IsFitted() {
		return nil, errors.NewNotFittedError("RidgeCV", "Export")
	}

	weights := make([]float64, cv.weights.Len())
	for i := range weights {
		weights[i] = cv.weights.AtVec(i)
	}

	return &model.ModelWeights{
		ModelType:    "Ridge",
		Version:      "1.0",
		Coefficients: weights,
		Lambda:       cv.bestLambda,
		RMSE:         cv.rmse,
	}, nil
}

// extractRows copies the selected rows of X and y into fresh containers.
// Indices arrive sorted from KFold.Split, so the row order is preserved.
func extractRows(X mat.Matrix, y *mat.VecDense, indices []int) (*mat.Dense, *mat.VecDense) {
	_, cols := X.Dims()

	xSub := mat.NewDense(len(indices), cols, nil)
	ySub := mat.NewVecDense(len(indices), nil)

	for i, idx := range indices {
		for j := 0; j < cols; j++ {
			xSub.Set(i, j, X.At(idx, j))
		}
		ySub.SetVec(i, y.AtVec(idx))
	}

	return xSub, ySub
}
