package preprocessing

import (
	"github.com/YuminosukeSato/polyfeat/core/parallel"
	"github.com/YuminosukeSato/polyfeat/pkg/errors"
)

// Layout は行列データのメモリレイアウトを表す
type Layout int

const (
	// RowMajor は行優先レイアウト（1行分の要素がメモリ上で連続する）
	RowMajor Layout = iota
	// ColMajor は列優先レイアウト（1列分の要素がメモリ上で連続する）
	ColMajor
)

// String はレイアウトの文字列表現を返す
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}

// 並列処理の閾値。これ以下のサイズでは逐次処理を使用する。
const (
	rowParallelThreshold  = 1000
	pairParallelThreshold = 256
)

// NumPolyFeatures は n 個の入力変数に対する2次多項式特徴量の総数を返す。
// 元の変数 n 個に、自己積を含む全ての変数ペアの積 n*(n+1)/2 個を加えた数となる。
func NumPolyFeatures(n int) int {
	return n + n*(n+1)/2
}

// Expand は m×n の観測行列から2次多項式特徴行列を新規に割り当てて生成する。
//
// 出力は m×NumPolyFeatures(n) の行列で、列の順序は固定:
// 先頭 n 列は入力列のコピー（ビット単位で同一）、続く n*(n+1)/2 列は
// i <= j となる全てのペアについて x_i * x_j を (i, j) の辞書順で並べたもの。
// この順序はレイアウトに依存せず、FeatureNamesなど他のコンポーネントが前提としてよい。
//
// 出力バッファは入力と同じレイアウトを使用する。
//
// パラメータ:
//   - x: 入力行列のデータ（layoutに従った並び、長さ >= m*n）
//   - m: 行数（サンプル数）
//   - n: 列数（変数の数）
//   - layout: xのメモリレイアウト
//
// 戻り値:
//   - []float64: 特徴行列のデータ（入力と同じレイアウト）
//   - error: 形状が不正な場合のエラー
func Expand(x []float64, m, n int, layout Layout) ([]float64, error) {
	if m < 1 || n < 1 {
		return nil, errors.NewInvalidShapeError("preprocessing.Expand", m, n)
	}
	if len(x) < m*n {
		return nil, errors.NewShortInputError("preprocessing.Expand", m, n, len(x))
	}

	dst := make([]float64, m*NumPolyFeatures(n))
	expand(dst, x, m, n, layout)
	return dst, nil
}

// ExpandInto は呼び出し側が割り当てた出力バッファに2次多項式特徴行列を書き込む。
// 列の順序と値はExpandと同一。
//
// dstの長さが m*NumPolyFeatures(n) と一致しない場合、一切書き込みを行わずに
// ShapeMismatchErrorを返す（全て書くか全く書かないかのどちらか）。
func ExpandInto(dst, x []float64, m, n int, layout Layout) error {
	if m < 1 || n < 1 {
		return errors.NewInvalidShapeError("preprocessing.ExpandInto", m, n)
	}
	if len(x) < m*n {
		return errors.NewShortInputError("preprocessing.ExpandInto", m, n, len(x))
	}
	if want := m * NumPolyFeatures(n); len(dst) != want {
		return errors.NewShapeMismatchError("preprocessing.ExpandInto", []int{want}, []int{len(dst)})
	}

	expand(dst, x, m, n, layout)
	return nil
}

// expand はレイアウトに応じた走査順でカーネルを実行する。
//
// 不変条件: 最内ループは入力・出力の両方について、レイアウトの連続軸に沿って
// メモリを前進する。走査順を誤っても結果は正しいが、キャッシュ局所性が失われ
// スループットは1〜2桁劣化する。
func expand(dst, x []float64, m, n int, layout Layout) {
	if layout == ColMajor {
		expandColMajor(dst, x, m, n)
		return
	}
	expandRowMajor(dst, x, m, n)
}

// expandRowMajor は行優先データを1行ずつ処理する。
// 各行について、入力行スライスと出力行スライスの双方を先頭から順に埋めるため、
// 読み書きともに連続アクセスとなる。
func expandRowMajor(dst, x []float64, m, n int) {
	nf := NumPolyFeatures(n)

	// 行単位の分割なので、どのように分割しても列順序の不変条件は保たれる
	parallel.ParallelizeWithThreshold(m, rowParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			row := x[i*n : (i+1)*n]
			out := dst[i*nf : (i+1)*nf]

			copy(out[:n], row)

			k := n
			for a := 0; a < n; a++ {
				va := row[a]
				for b := a; b < n; b++ {
					out[k] = va * row[b]
					k++
				}
			}
		}
	})
}

// expandColMajor は列優先データを出力列単位で処理する。
// 外側のループで変数インデックスを固定し、その列を連続スライスとして保持した上で、
// 相手列と出力列を要素ごとに先頭から走査する。
func expandColMajor(dst, x []float64, m, n int) {
	// 元の変数列は連続ブロックなのでまとめてコピーできる
	copy(dst[:m*n], x[:m*n])

	// 積列 (a, b) を辞書順に列挙する。出力位置はペアのインデックスから
	// 決まるため、並列に分割しても列順序は変わらない。
	type colPair struct{ a, b int }
	pairs := make([]colPair, 0, n*(n+1)/2)
	for a := 0; a < n; a++ {
		for b := a; b < n; b++ {
			pairs = append(pairs, colPair{a, b})
		}
	}

	parallel.ParallelizeWithThreshold(len(pairs), pairParallelThreshold, func(start, end int) {
		for k := start; k < end; k++ {
			ca := x[pairs[k].a*m : (pairs[k].a+1)*m]
			cb := x[pairs[k].b*m : (pairs[k].b+1)*m]
			out := dst[(n+k)*m : (n+k+1)*m]
			for i := range out {
				out[i] = ca[i] * cb[i]
			}
		}
	})
}
