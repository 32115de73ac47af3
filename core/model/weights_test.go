package model

import (
	"bytes"
	"testing"
)

func TestModelWeights_SaveLoadRoundTrip(t *testing.T) {
	mw := &ModelWeights{
		ModelType:    "Ridge",
		Version:      "1.0",
		Coefficients: []float64{3.0, -2.0},
		Lambda:       0.1,
		RMSE:         0.05,
		Hyperparameters: map[string]interface{}{
			"learning_rate": 1e-7,
		},
	}

	var buf bytes.Buffer
	if err := mw.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadModelWeights(&buf)
	if err != nil {
		t.Fatalf("LoadModelWeights failed: %v", err)
	}

	if loaded.ModelType != "Ridge" || loaded.Lambda != 0.1 {
		t.Errorf("unexpected loaded weights: %+v", loaded)
	}
	if len(loaded.Coefficients) != 2 || loaded.Coefficients[1] != -2.0 {
		t.Errorf("coefficients not preserved: %v", loaded.Coefficients)
	}
}

func TestModelWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mw      ModelWeights
		wantErr bool
	}{
		{
			name:    "valid",
			mw:      ModelWeights{ModelType: "Ridge", Coefficients: []float64{1}, Lambda: 0},
			wantErr: false,
		},
		{
			name:    "missing model type",
			mw:      ModelWeights{Coefficients: []float64{1}},
			wantErr: true,
		},
		{
			name:    "empty coefficients",
			mw:      ModelWeights{ModelType: "Ridge"},
			wantErr: true,
		},
		{
			name:    "negative lambda",
			mw:      ModelWeights{ModelType: "Ridge", Coefficients: []float64{1}, Lambda: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mw.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBaseEstimator_State(t *testing.T) {
	var e BaseEstimator

	if e.IsFitted() {
		t.Error("new estimator must not be fitted")
	}

	e.SetFitted()
	if !e.IsFitted() {
		t.Error("estimator should be fitted after SetFitted")
	}

	e.Reset()
	if e.IsFitted() {
		t.Error("estimator should not be fitted after Reset")
	}
}
