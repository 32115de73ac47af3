package model

import (
	"encoding/json"
	"fmt"
	"io"
)

// ModelWeights は学習済みモデルの重みを表す構造体（シリアライゼーション用）。
// 交差検証で選択された最終モデルの保存に使用する。
type ModelWeights struct {
	// ModelType はモデルの種類（Ridge等）
	ModelType string `json:"model_type"`

	// Version はフォーマットのバージョン（互換性チェック用）
	Version string `json:"version"`

	// Coefficients は重み係数
	Coefficients []float64 `json:"coefficients"`

	// Lambda は選択された正則化係数
	Lambda float64 `json:"lambda"`

	// RMSE は全データに対する学習時誤差
	RMSE float64 `json:"rmse"`

	// Hyperparameters はソルバーのハイパーパラメータ（学習率、モーメンタム等）
	Hyperparameters map[string]interface{} `json:"hyperparameters,omitempty"`
}

// ToJSON はModelWeightsをJSON形式にシリアライズ
func (mw *ModelWeights) ToJSON() ([]byte, error) {
	return json.MarshalIndent(mw, "", "  ")
}

// FromJSON はJSON形式からModelWeightsをデシリアライズ
func (mw *ModelWeights) FromJSON(data []byte) error {
	return json.Unmarshal(data, mw)
}

// Validate はModelWeightsの妥当性を検証
func (mw *ModelWeights) Validate() error {
	if mw.ModelType == "" {
		return fmt.Errorf("model_type is required")
	}
	if len(mw.Coefficients) == 0 {
		return fmt.Errorf("coefficients must not be empty")
	}
	if mw.Lambda < 0 {
		return fmt.Errorf("lambda must be non-negative, got %v", mw.Lambda)
	}
	return nil
}

// Save はModelWeightsをWriterに書き出す
func (mw *ModelWeights) Save(w io.Writer) error {
	if err := mw.Validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mw)
}

// LoadModelWeights はReaderからModelWeightsを読み込む
func LoadModelWeights(r io.Reader) (*ModelWeights, error) {
	var mw ModelWeights
	if err := json.NewDecoder(r).Decode(&mw); err != nil {
		return nil, fmt.Errorf("failed to decode model weights: %w", err)
	}
	if err := mw.Validate(); err != nil {
		return nil, err
	}
	return &mw, nil
}
