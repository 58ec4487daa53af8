// Package log defines standard attribute keys for numerical and
// machine learning operations.
//
// Using these keys consistently across the library enables structured
// log analysis and filtering (e.g. by operation or by data shape).
package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of estimator or transformer.
	// Examples: "PolynomialFeatures", "LinearRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "fit_transform", "expand"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "preprocessing", "linear", "metrics", "dataset"
	ComponentKey = "ml.component"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// LayoutKey indicates the memory layout of a matrix.
	// Values: "row-major", "col-major"
	LayoutKey = "data.layout"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
