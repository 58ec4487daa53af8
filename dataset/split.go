package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/polyfeat/pkg/errors"
)

// Split は訓練用と評価用に分割されたデータセット
type Split struct {
	XTrain *mat.Dense
	YTrain *mat.VecDense
	XTest  *mat.Dense
	YTest  *mat.VecDense
}

// TrainTestSplit は観測行列と目的変数ベクトルの行を訓練用と評価用の
// 互いに素な部分集合に分割する
//
// 行の並べ替えはシード付きPCG乱数によるシャッフルで行われるため、
// 同じシードに対して分割は決定的となる。
//
// パラメータ:
//   - X: 観測行列 (n_samples × n_features)
//   - y: 目的変数ベクトル (長さ n_samples)
//   - testFraction: 評価用に割り当てる行の割合 (0 < testFraction < 1)
//   - seed: シャッフルのシード
//
// 戻り値:
//   - *Split: 分割されたデータセット
//   - error: エラーが発生した場合
func TrainTestSplit(X mat.Matrix, y *mat.VecDense, testFraction float64, seed uint64) (*Split, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewInvalidShapeError("dataset.TrainTestSplit", r, c)
	}
	if y.Len() != r {
		return nil, errors.NewDimensionError("dataset.TrainTestSplit", r, y.Len(), 0)
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, errors.NewValueError("dataset.TrainTestSplit", "testFraction must be in (0, 1)")
	}

	nTest := int(float64(r) * testFraction)
	if nTest == 0 {
		nTest = 1
	}
	nTrain := r - nTest
	if nTrain == 0 {
		return nil, errors.NewValueError("dataset.TrainTestSplit", "not enough rows for a train/test split")
	}

	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(seed, seed))
	perm := rng.Perm(r)

	split := &Split{
		XTrain: mat.NewDense(nTrain, c, nil),
		YTrain: mat.NewVecDense(nTrain, nil),
		XTest:  mat.NewDense(nTest, c, nil),
		YTest:  mat.NewVecDense(nTest, nil),
	}

	for i, src := range perm {
		if i < nTrain {
			for j := 0; j < c; j++ {
				split.XTrain.Set(i, j, X.At(src, j))
			}
			split.YTrain.SetVec(i, y.AtVec(src))
		} else {
			for j := 0; j < c; j++ {
				split.XTest.Set(i-nTrain, j, X.At(src, j))
			}
			split.YTest.SetVec(i-nTrain, y.AtVec(src))
		}
	}

	return split, nil
}
