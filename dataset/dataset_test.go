package dataset

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/polyfeat/pkg/errors"
)

func TestLoadCSV(t *testing.T) {
	tests := []struct {
		name         string
		csv          string
		target       string
		wantRows     int
		wantFeatures []string
		wantErr      bool
	}{
		{
			name: "valid health table",
			csv: "age,bmi,bp,progression\n" +
				"59,32.1,101,151\n" +
				"48,21.6,87,75\n" +
				"72,30.5,93,141\n",
			target:       "progression",
			wantRows:     3,
			wantFeatures: []string{"age", "bmi", "bp"},
		},
		{
			name: "target in the middle",
			csv: "age,progression,bmi\n" +
				"59,151,32.1\n",
			target:       "progression",
			wantRows:     1,
			wantFeatures: []string{"age", "bmi"},
		},
		{
			name:    "missing target column",
			csv:     "age,bmi\n59,32.1\n",
			target:  "progression",
			wantErr: true,
		},
		{
			name:    "non-numeric value",
			csv:     "age,progression\nunknown,151\n",
			target:  "progression",
			wantErr: true,
		},
		{
			name:    "non-finite value",
			csv:     "age,progression\nNaN,151\n",
			target:  "progression",
			wantErr: true,
		},
		{
			name:    "no data rows",
			csv:     "age,progression\n",
			target:  "progression",
			wantErr: true,
		},
		{
			name:    "only target column",
			csv:     "progression\n151\n",
			target:  "progression",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := LoadCSV(strings.NewReader(tt.csv), tt.target)

			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadCSV() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			r, c := table.X.Dims()
			if r != tt.wantRows || c != len(tt.wantFeatures) {
				t.Fatalf("X dims = (%d, %d), want (%d, %d)", r, c, tt.wantRows, len(tt.wantFeatures))
			}
			if table.Y.Len() != tt.wantRows {
				t.Errorf("Y len = %d, want %d", table.Y.Len(), tt.wantRows)
			}
			for i, name := range tt.wantFeatures {
				if table.FeatureNames[i] != name {
					t.Errorf("FeatureNames[%d] = %q, want %q", i, table.FeatureNames[i], name)
				}
			}
		})
	}
}

func TestLoadCSVValues(t *testing.T) {
	csv := "age,progression,bmi\n" +
		"59,151,32.1\n" +
		"48,75,21.6\n"

	table, err := LoadCSV(strings.NewReader(csv), "progression")
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}

	wantX := [][]float64{{59, 32.1}, {48, 21.6}}
	wantY := []float64{151, 75}

	for i := range wantX {
		for j := range wantX[i] {
			if got := table.X.At(i, j); got != wantX[i][j] {
				t.Errorf("X(%d, %d) = %v, want %v", i, j, got, wantX[i][j])
			}
		}
		if got := table.Y.AtVec(i); got != wantY[i] {
			t.Errorf("Y(%d) = %v, want %v", i, got, wantY[i])
		}
	}
}

func TestTrainTestSplit(t *testing.T) {
	m, n := 20, 3
	X := mat.NewDense(m, n, nil)
	y := mat.NewVecDense(m, nil)
	for i := 0; i < m; i++ {
		y.SetVec(i, float64(i))
		for j := 0; j < n; j++ {
			X.Set(i, j, float64(i*n+j))
		}
	}

	split, err := TrainTestSplit(X, y, 0.25, 7)
	if err != nil {
		t.Fatalf("TrainTestSplit() error = %v", err)
	}

	trainRows, _ := split.XTrain.Dims()
	testRows, _ := split.XTest.Dims()
	if trainRows != 15 || testRows != 5 {
		t.Fatalf("split sizes = (%d, %d), want (15, 5)", trainRows, testRows)
	}

	// Each row must keep its X/y pairing, and the subsets must be disjoint.
	seen := make(map[float64]bool)
	check := func(X *mat.Dense, y *mat.VecDense) {
		rows, _ := X.Dims()
		for i := 0; i < rows; i++ {
			label := y.AtVec(i)
			if seen[label] {
				t.Fatalf("row with label %v appears twice", label)
			}
			seen[label] = true
			for j := 0; j < n; j++ {
				want := label*float64(n) + float64(j)
				if got := X.At(i, j); got != want {
					t.Errorf("row pairing broken: X = %v, want %v", got, want)
				}
			}
		}
	}
	check(split.XTrain, split.YTrain)
	check(split.XTest, split.YTest)
	if len(seen) != m {
		t.Errorf("split covers %d rows, want %d", len(seen), m)
	}
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	X := mat.NewDense(10, 1, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	y := mat.NewVecDense(10, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	a, err := TrainTestSplit(X, y, 0.3, 42)
	if err != nil {
		t.Fatalf("TrainTestSplit() error = %v", err)
	}
	b, err := TrainTestSplit(X, y, 0.3, 42)
	if err != nil {
		t.Fatalf("TrainTestSplit() error = %v", err)
	}

	if !mat.Equal(a.XTrain, b.XTrain) || !mat.Equal(a.XTest, b.XTest) {
		t.Error("same seed produced different splits")
	}
}

func TestTrainTestSplitErrors(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewVecDense(4, []float64{1, 2, 3, 4})

	t.Run("empty matrix", func(t *testing.T) {
		_, err := TrainTestSplit(&mat.Dense{}, &mat.VecDense{}, 0.5, 1)
		var shapeErr *errors.InvalidShapeError
		if !errors.As(err, &shapeErr) {
			t.Errorf("error = %v, want InvalidShapeError", err)
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := TrainTestSplit(X, mat.NewVecDense(3, []float64{1, 2, 3}), 0.5, 1)
		var dimErr *errors.DimensionError
		if !errors.As(err, &dimErr) {
			t.Errorf("error = %v, want DimensionError", err)
		}
	})

	t.Run("bad fraction", func(t *testing.T) {
		for _, f := range []float64{0, 1, -0.5, 1.5} {
			if _, err := TrainTestSplit(X, y, f, 1); err == nil {
				t.Errorf("testFraction=%v: expected error", f)
			}
		}
	})
}
