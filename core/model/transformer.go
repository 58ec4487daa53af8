package model

import "gonum.org/v1/gonum/mat"

// Transformer は特徴量変換器のインターフェース。
// preprocessing.PolynomialFeaturesが実装する。
type Transformer interface {
	// Fit は変換に必要なパラメータ（入力の特徴量数など）を学習する
	Fit(X mat.Matrix) error

	// Transform は学習した形状に従ってデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同じ行列に対して続けて実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
