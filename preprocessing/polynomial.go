package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/polyfeat/core/model"
	"github.com/YuminosukeSato/polyfeat/pkg/errors"
)

// PolynomialFeatures はscikit-learn互換の2次多項式特徴量トランスフォーマー
// 入力の各変数に加えて、自己積を含む全ての変数ペアの積を特徴量として生成する
type PolynomialFeatures struct {
	model.BaseEstimator

	// NFeatures は入力特徴量の数
	NFeatures int

	// NOutputFeatures は出力特徴量の数 (NFeatures + NFeatures*(NFeatures+1)/2)
	NOutputFeatures int
}

var (
	_ model.Transformer     = (*PolynomialFeatures)(nil)
	_ model.ParameterGetter = (*PolynomialFeatures)(nil)
)

// NewPolynomialFeatures は新しいPolynomialFeaturesを作成する
//
// 使用例:
//
//	poly := preprocessing.NewPolynomialFeatures()
//	XPoly, err := poly.FitTransform(X)
func NewPolynomialFeatures() *PolynomialFeatures {
	return &PolynomialFeatures{}
}

// Fit は入力データから特徴量の数を記録する
//
// パラメータ:
//   - X: 訓練データ (n_samples × n_features の行列)
//
// 戻り値:
//   - error: エラーが発生した場合
func (p *PolynomialFeatures) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewInvalidShapeError("PolynomialFeatures.Fit", r, c)
	}

	p.NFeatures = c
	p.NOutputFeatures = NumPolyFeatures(c)
	p.SetFitted()
	return nil
}

// Transform は入力データを多項式特徴行列に変換する
//
// 出力の列順序は固定: 先頭 NFeatures 列が入力列のコピー、続いて
// i <= j となる全ペアの積 x_i * x_j が (i, j) の辞書順で並ぶ。
//
// パラメータ:
//   - X: 変換するデータ
//
// 戻り値:
//   - mat.Matrix: 多項式特徴行列 (n_samples × NOutputFeatures)
//   - error: エラーが発生した場合
func (p *PolynomialFeatures) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialFeatures", "Transform")
	}

	r, c := X.Dims()
	if c != p.NFeatures {
		return nil, errors.NewDimensionError("PolynomialFeatures.Transform", p.NFeatures, c, 1)
	}
	if r == 0 {
		return nil, errors.NewInvalidShapeError("PolynomialFeatures.Transform", r, c)
	}

	// *mat.Denseは行優先なので、生データに対してカーネルを直接実行できる
	src := denseRowMajorData(X)

	result := mat.NewDense(r, p.NOutputFeatures, nil)
	if err := ExpandInto(result.RawMatrix().Data, src, r, c, RowMajor); err != nil {
		return nil, err
	}

	return result, nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (p *PolynomialFeatures) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// FeatureNames は出力列の名前を列順序の不変条件に従って生成する
//
// パラメータ:
//   - names: 入力特徴量の名前。nilの場合は "x0", "x1", ... が使用される
//
// 戻り値:
//   - []string: 出力特徴量の名前（例: ["age", "sex", "age^2", "age*sex", "sex^2"]）
//   - error: エラーが発生した場合
func (p *PolynomialFeatures) FeatureNames(names []string) ([]string, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialFeatures", "FeatureNames")
	}

	if names == nil {
		names = make([]string, p.NFeatures)
		for i := range names {
			names[i] = fmt.Sprintf("x%d", i)
		}
	}
	if len(names) != p.NFeatures {
		return nil, errors.NewDimensionError("PolynomialFeatures.FeatureNames", p.NFeatures, len(names), 1)
	}

	out := make([]string, 0, p.NOutputFeatures)
	out = append(out, names...)
	for i := 0; i < p.NFeatures; i++ {
		for j := i; j < p.NFeatures; j++ {
			if i == j {
				out = append(out, fmt.Sprintf("%s^2", names[i]))
			} else {
				out = append(out, fmt.Sprintf("%s*%s", names[i], names[j]))
			}
		}
	}
	return out, nil
}

// GetParams はトランスフォーマーのパラメータを取得する
func (p *PolynomialFeatures) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"degree":           2,
		"interaction_only": false,
		"include_bias":     false,
	}
}

// String はトランスフォーマーの文字列表現を返す
func (p *PolynomialFeatures) String() string {
	if !p.IsFitted() {
		return "PolynomialFeatures(degree=2)"
	}
	return fmt.Sprintf("PolynomialFeatures(degree=2, n_features=%d, n_output_features=%d)",
		p.NFeatures, p.NOutputFeatures)
}

// denseRowMajorData はmat.Matrixから行優先の連続データを取り出す。
// 連続した*mat.Denseはゼロコピーで利用し、それ以外の実装は密行列に
// コピーした上でDataConversionWarningを発生させる。
func denseRowMajorData(X mat.Matrix) []float64 {
	if d, ok := X.(*mat.Dense); ok {
		rm := d.RawMatrix()
		if rm.Stride == rm.Cols {
			return rm.Data
		}
	}

	errors.Warn(errors.NewDataConversionWarning(
		fmt.Sprintf("%T", X), "*mat.Dense", "non-contiguous matrix input requires densification"))

	var dense mat.Dense
	dense.CloneFrom(X)
	return dense.RawMatrix().Data
}
