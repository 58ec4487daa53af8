package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewInvalidShapeError(t *testing.T) {
	err := NewInvalidShapeError("preprocessing.Expand", 0, 3)

	// 基本的なエラーメッセージの確認
	want := "polyfeat: preprocessing.Expand: invalid matrix shape (0, 3): rows and columns must both be >= 1"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected stack trace to contain test file name")
	}

	// InvalidShapeError型にキャスト可能か確認
	var shapeErr *InvalidShapeError
	if !As(err, &shapeErr) {
		t.Error("Error should be castable to *InvalidShapeError")
	}
	if shapeErr.Rows != 0 || shapeErr.Cols != 3 {
		t.Errorf("InvalidShapeError = %+v, want Rows=0 Cols=3", shapeErr)
	}
}

func TestNewShortInputError(t *testing.T) {
	err := NewShortInputError("preprocessing.Expand", 2, 2, 3)

	// 基本的なエラーメッセージの確認
	want := "polyfeat: preprocessing.Expand: invalid matrix shape (2, 2): input slice has 3 elements, need 4"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// InvalidShapeError型にキャスト可能か確認（空行列と同じ型で扱える）
	var shapeErr *InvalidShapeError
	if !As(err, &shapeErr) {
		t.Error("Error should be castable to *InvalidShapeError")
	}
	if shapeErr.Rows != 2 || shapeErr.Cols != 2 {
		t.Errorf("InvalidShapeError = %+v, want Rows=2 Cols=2", shapeErr)
	}
}

func TestNewShapeMismatchError(t *testing.T) {
	err := NewShapeMismatchError("preprocessing.ExpandInto", []int{10}, []int{8})

	// 基本的なエラーメッセージの確認
	want := "polyfeat: preprocessing.ExpandInto: destination shape mismatch. Expected [10], got [8]"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// ShapeMismatchError型にキャスト可能か確認
	var mismatchErr *ShapeMismatchError
	if !As(err, &mismatchErr) {
		t.Error("Error should be castable to *ShapeMismatchError")
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Transform", 5, 3, 1)

	// 基本的なエラーメッセージの確認
	want := "polyfeat: Transform: dimension mismatch on axis 1 (features). Expected 5, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// DimensionError型にキャスト可能か確認
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("PolynomialFeatures", "Transform")

	// 基本的なエラーメッセージの確認
	want := "polyfeat: PolynomialFeatures: this model is not fitted yet. Call Fit() before using Transform()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// NotFittedError型にキャスト可能か確認
	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "Fit",
			kind:    "invalid input",
			err:     fmt.Errorf("test error"),
			wantMsg: "polyfeat: Fit: invalid input: test error",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "polyfeat: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("Fit", "empty data", ErrEmptyData)
	if !Is(err, ErrEmptyData) {
		t.Error("ModelError should unwrap to ErrEmptyData")
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewDataConversionWarning("mat.Transpose", "*mat.Dense", "non-contiguous input")
	Warn(warning)

	var conv *DataConversionWarning
	if !As(captured, &conv) {
		t.Fatalf("captured = %v, want DataConversionWarning", captured)
	}
	if conv.FromType != "mat.Transpose" {
		t.Errorf("FromType = %q, want %q", conv.FromType, "mat.Transpose")
	}
}

func TestZerologWarnFuncTakesPriority(t *testing.T) {
	var handlerCalled, zerologCalled bool
	SetWarningHandler(func(w error) { handlerCalled = true })
	SetZerologWarnFunc(func(w error) { zerologCalled = true })
	defer func() {
		SetWarningHandler(nil)
		SetZerologWarnFunc(nil)
	}()

	Warn(NewUndefinedMetricWarning("R2Score", "zero variance", 0))

	if !zerologCalled {
		t.Error("zerolog warn func should be called when set")
	}
	if handlerCalled {
		t.Error("fallback handler should not be called when zerolog func is set")
	}
}
