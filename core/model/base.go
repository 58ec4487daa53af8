package model

// EstimatorState はエスティメータの学習状態を表す
type EstimatorState int

const (
	// NotFitted はエスティメータが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はエスティメータが学習済みの状態
	Fitted
)

// BaseEstimator は PolynomialFeatures や LinearRegression など、
// Fit を持つ全てのエスティメータが埋め込む基底構造体。
// TransformやPredictの前にFitが呼ばれたかどうかの追跡のみを担う。
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted はエスティメータが学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted はエスティメータを学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset はエスティメータを未学習状態に戻す。
// 同じインスタンスを別のデータで学習し直す前に呼び出す。
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
