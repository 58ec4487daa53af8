// Package dataset は表形式データの読み込みと分割を提供します。
// 観測行列と目的変数ベクトルを生成し、下流の特徴量変換・モデル学習に渡します。
package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/polyfeat/pkg/errors"
)

// Table はヘッダー付きの表形式データセット
type Table struct {
	// X は観測行列 (n_samples × n_features)
	X *mat.Dense

	// Y は目的変数ベクトル (長さ n_samples)
	Y *mat.VecDense

	// FeatureNames は観測行列の列名（目的変数の列を除く）
	FeatureNames []string
}

// LoadCSV はヘッダー付きCSVから観測行列と目的変数ベクトルを読み込む
//
// targetで指定した列が目的変数となり、残りの列が観測行列を構成する。
// 全ての値は有限の浮動小数点数でなければならない。
//
// パラメータ:
//   - r: CSVデータを含むReader
//   - target: 目的変数の列名
//
// 戻り値:
//   - *Table: 読み込まれたデータセット
//   - error: 読み込み・検証エラー
func LoadCSV(r io.Reader, target string) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "dataset.LoadCSV: failed to read header")
	}

	targetIdx := -1
	featureNames := make([]string, 0, len(header)-1)
	for i, name := range header {
		if name == target {
			targetIdx = i
			continue
		}
		featureNames = append(featureNames, name)
	}
	if targetIdx < 0 {
		return nil, errors.NewValueError("dataset.LoadCSV", "target column '"+target+"' not found in header")
	}
	if len(featureNames) == 0 {
		return nil, errors.NewValueError("dataset.LoadCSV", "no feature columns besides the target")
	}

	var (
		features []float64
		targets  []float64
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "dataset.LoadCSV: failed to read record")
		}
		if len(record) != len(header) {
			return nil, errors.NewDimensionError("dataset.LoadCSV", len(header), len(record), 1)
		}

		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "dataset.LoadCSV: column %q is not numeric", header[i])
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.NewValueError("dataset.LoadCSV", "column '"+header[i]+"' contains a non-finite value")
			}
			if i == targetIdx {
				targets = append(targets, v)
			} else {
				features = append(features, v)
			}
		}
	}

	m := len(targets)
	n := len(featureNames)
	if m == 0 {
		return nil, errors.NewInvalidShapeError("dataset.LoadCSV", m, n)
	}

	return &Table{
		X:            mat.NewDense(m, n, features),
		Y:            mat.NewVecDense(m, targets),
		FeatureNames: featureNames,
	}, nil
}
