package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gridge/core/model"
	"github.com/YuminosukeSato/gridge/metrics"
	"github.com/YuminosukeSato/gridge/pkg/errors"
)

// ソルバーのデフォルトハイパーパラメータ。
// ステップ幅は小さなスケールのデータに合わせて経験的に調整された値であり、
// 入力のスケールによっては発散し得る。Fitは学習後に必ず重みを検査する。
const (
	// DefaultLearningRate は勾配降下のステップ幅
	DefaultLearningRate = 1e-7
	// DefaultMomentum はheavy-ball法のモーメンタム係数
	DefaultMomentum = 0.80
	// DefaultMaxIter は勾配降下の固定イテレーション回数
	DefaultMaxIter = 100
)

// Ridge はL2正則化付き線形回帰モデル。
// 目的関数 L(w) = ||y - Xw||² + λ||w||² をモーメンタム付き勾配降下法
// （heavy-ball法）で最小化する。正規方程式による閉形式解は使わない。
// 収束判定は行わず、常に固定回数だけ更新を繰り返す。
type Ridge struct {
	model.BaseEstimator

	Weights   *mat.VecDense // 学習された重みベクトル
	NFeatures int           // 特徴量の数

	lambda       float64 // 正則化係数 λ（非負）
	learningRate float64 // ステップ幅 α
	momentum     float64 // モーメンタム係数 β
	maxIter      int     // イテレーション回数
}

// NewRidge は正則化係数lambdaを持つ新しいRidgeモデルを作成する。
// ステップ幅・モーメンタム・イテレーション回数はオプションで変更できる。
func NewRidge(lambda float64, options ...Option) *Ridge {
	r := &Ridge{
		lambda:       lambda,
		learningRate: DefaultLearningRate,
		momentum:     DefaultMomentum,
		maxIter:      DefaultMaxIter,
	}

	for _, opt := range options {
		opt(r)
	}

	return r
}

// Lambda は設定されている正則化係数を返す
func (r *Ridge) Lambda() float64 {
	return r.lambda
}

// Fit はモデルを訓練データで学習させる。
//
// 更新則（w_prev, w_curr ともゼロベクトルで初期化）:
//
//	w_next = w_curr + β·(w_curr − w_prev) − α·∇L(w_curr)
//	∇L(w) = Xᵗ(Xw − y) + λw
//
// 固定回数の更新後、重みにNaN/Infが含まれる場合はNumericalInstabilityError
// を返す。勾配ノルムが初期値より増大したまま終了した場合はConvergenceWarning
// を発行する（エラーにはしない）。
func (r *Ridge) Fit(X mat.Matrix, y *mat.VecDense) error {
	rows, cols := X.Dims()

	if rows == 0 || cols == 0 {
		return errors.NewModelError("Ridge.Fit", "empty data", errors.ErrEmptyData)
	}

	if y.Len() != rows {
		return errors.NewDimensionError("Ridge.Fit", rows, y.Len(), 0)
	}

	if r.lambda < 0 {
		return errors.NewValidationError("lambda", "must be non-negative", r.lambda)
	}

	r.NFeatures = cols

	wPrev := mat.NewVecDense(cols, nil)
	wCurr := mat.NewVecDense(cols, nil)
	wNext := mat.NewVecDense(cols, nil)

	resid := mat.NewVecDense(rows, nil)
	grad := mat.NewVecDense(cols, nil)

	var initialGradNorm, finalGradNorm float64

	for iter := 0; iter < r.maxIter; iter++ {
		// ∇L(w) = Xᵗ(Xw − y) + λw
		resid.MulVec(X, wCurr)
		resid.SubVec(resid, y)
		grad.MulVec(X.T(), resid)
		grad.AddScaledVec(grad, r.lambda, wCurr)

		gradNorm := mat.Norm(grad, 2)
		if iter == 0 {
			initialGradNorm = gradNorm
		}
		finalGradNorm = gradNorm

		// heavy-ball更新
		wNext.SubVec(wCurr, wPrev)
		wNext.ScaleVec(r.momentum, wNext)
		wNext.AddVec(wNext, wCurr)
		wNext.AddScaledVec(wNext, -r.learningRate, grad)

		// バッファを使い回すためポインタをローテーションする
		wPrev, wCurr, wNext = wCurr, wNext, wPrev
	}

	if err := errors.CheckVector("Ridge.Fit", wCurr, wCurr.Len(), r.maxIter); err != nil {
		return err
	}

	if finalGradNorm > initialGradNorm {
		errors.Warn(errors.NewConvergenceWarning("Ridge", r.maxIter, finalGradNorm))
	}

	r.Weights = wCurr
	r.SetFitted()

	return nil
}

// Predict は入力データに対する予測 ŷ = X·w を返す
func (r *Ridge) Predict(X mat.Matrix) (*mat.VecDense, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "Predict")
	}

	rows, cols := X.Dims()
	if cols != r.NFeatures {
		return nil, errors.NewDimensionError("Ridge.Predict", r.NFeatures, cols, 1)
	}

	predictions := mat.NewVecDense(rows, nil)
	predictions.MulVec(X, r.Weights)

	return predictions, nil
}

// Score はテストデータに対するRMSEを計算する
func (r *Ridge) Score(X mat.Matrix, y *mat.VecDense) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Ridge", "Score")
	}

	rows, _ := X.Dims()
	if y.Len() != rows {
		return 0, errors.NewDimensionError("Ridge.Score", rows, y.Len(), 0)
	}

	yPred, err := r.Predict(X)
	if err != nil {
		return 0, err
	}

	return metrics.RMSE(y, yPred)
}

// GetWeights は学習された重み（係数）のコピーを返す
func (r *Ridge) GetWeights() []float64 {
	if r.Weights == nil {
		return nil
	}

	weights := make([]float64, r.Weights.Len())
	for i := 0; i < r.Weights.Len(); i++ {
		weights[i] = r.Weights.AtVec(i)
	}
	return weights
}

// ExportWeights は学習済みモデルをシリアライズ可能な形式に変換する
func (r *Ridge) ExportWeights(rmse float64) (*model.ModelWeights, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "ExportWeights")
	}

	return &model.ModelWeights{
		ModelType:    "Ridge",
		Version:      "1.0",
		Coefficients: r.GetWeights(),
		Lambda:       r.lambda,
		RMSE:         rmse,
		Hyperparameters: map[string]interface{}{
			"learning_rate": r.learningRate,
			"momentum":      r.momentum,
			"max_iter":      r.maxIter,
		},
	}, nil
}
