// Package polyfeat provides cache-aware degree-2 polynomial feature
// expansion for tabular data, together with the thin collaborators a
// regression workflow needs around it.
//
// The core of the library is the layout-aware expansion kernel in the
// preprocessing package: given an m x n observation matrix it produces
// an m x (n + n*(n+1)/2) feature matrix holding the original variables
// followed by every pairwise product x_i * x_j with i <= j, in a fixed
// column order. The kernel accepts row-major and column-major inputs
// and always advances its innermost loop along the layout's contiguous
// axis, which is worth one to two orders of magnitude in throughput
// over a layout-mismatched traversal.
//
// # Quick Start
//
//	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
//
//	poly := preprocessing.NewPolynomialFeatures()
//	XPoly, err := poly.FitTransform(X)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// XPoly columns: x0, x1, x0^2, x0*x1, x1^2
//
// The linear package fits ordinary least squares on the expanded
// matrix (delegating the solve to gonum), the metrics package computes
// RMSE, MAE and R², and the dataset package loads CSV tables and
// produces deterministic train/test splits. See
// examples/polynomial_regression for the full pipeline.
package polyfeat
