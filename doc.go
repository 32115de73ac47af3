// Package gridge provides ridge regression with cross-validated selection
// of the regularization strength, built on gonum.
//
// The solver minimizes ||y - Xw||² + λ||w||² by momentum-accelerated
// gradient descent, and the crossval package selects λ from a candidate
// list by k-fold cross-validation before refitting on the full dataset.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/gridge/crossval"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewVecDense(4, []float64{2, 4, 6, 8})
//
//	    cv := crossval.NewRidgeCV([]float64{0.1, 1, 10}, 2)
//	    if err := cv.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("lambda:", cv.BestLambda())
//	    fmt.Println("weights:", cv.Weights())
//	    fmt.Println("rmse:", cv.RMSE())
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - linear: the Ridge estimator (momentum gradient descent)
//   - crossval: KFold splitting and RidgeCV hyperparameter selection
//   - metrics: regression metrics (MSE, RMSE, MAE, R²)
//   - dataset: CSV loading into gonum matrices
//   - preprocessing: feature standardization
//   - pkg/errors, pkg/log: structured errors and logging
package gridge
