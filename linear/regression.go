package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/polyfeat/core/model"
	"github.com/YuminosukeSato/polyfeat/core/parallel"
	"github.com/YuminosukeSato/polyfeat/metrics"
	"github.com/YuminosukeSato/polyfeat/pkg/errors"
)

// LinearRegression は最小二乗法による線形回帰モデル
// 最適化はgonumのQR分解ベースの最小二乗ソルバーに委譲する
type LinearRegression struct {
	model.BaseEstimator
	Weights   *mat.VecDense // 重み（係数）
	Intercept float64       // 切片
	NFeatures int           // 特徴量の数

	fitIntercept bool
}

var _ model.Regressor = (*LinearRegression)(nil)

// NewLinearRegression は新しい線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{fitIntercept: true}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit はモデルを訓練データで学習させる
// 最小二乗問題 min ||X*w - y||² の解をgonumのQR分解で求める
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	// 入力の検証
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}

	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}

	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.NFeatures = c

	design := X
	if lr.fitIntercept {
		// 切片項のために X に 1 の列を追加
		// X_with_intercept = [1, X]
		XWithIntercept := mat.NewDense(r, c+1, nil)

		// 並列処理の閾値（この値以下の行数では逐次処理を使用）
		const parallelThreshold = 1000

		parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				XWithIntercept.Set(i, 0, 1.0) // 切片項
				for j := 0; j < c; j++ {
					XWithIntercept.Set(i, j+1, X.At(i, j))
				}
			}
		})
		design = XWithIntercept
	}

	// 最小二乗解を求める（過剰決定系ではQR分解が使用される）
	var coef mat.Dense
	if err := coef.Solve(design, y); err != nil {
		return errors.NewModelError("LinearRegression.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	// 切片と重みを分離
	lr.Weights = mat.NewVecDense(c, nil)
	if lr.fitIntercept {
		lr.Intercept = coef.At(0, 0)
		for i := 0; i < c; i++ {
			lr.Weights.SetVec(i, coef.At(i+1, 0))
		}
	} else {
		lr.Intercept = 0
		for i := 0; i < c; i++ {
			lr.Weights.SetVec(i, coef.At(i, 0))
		}
	}

	// モデルを学習済み状態に設定
	lr.SetFitted()

	return nil
}

// Predict は入力データに対する予測を行う
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	// 予測: y = X * weights + intercept
	predictions := mat.NewDense(r, 1, nil)

	for i := 0; i < r; i++ {
		pred := lr.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}

	return predictions, nil
}

// GetWeights は学習された重み（係数）を返す
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}

	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept は学習された切片を返す
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, cy := y.Dims()
	if cy != 1 {
		return 0, errors.NewValueError("LinearRegression.Score", "y must be a column vector")
	}

	yTrueVec := mat.NewVecDense(r, nil)
	yPredVec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		yTrueVec.SetVec(i, y.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return metrics.R2Score(yTrueVec, yPredVec)
}
