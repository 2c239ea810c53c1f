// Package estimator defines the capability interfaces a fitted model must
// expose to the glassbox toolkit. Capabilities are declared through interface
// satisfaction and resolved once, instead of probing attributes at runtime.
package estimator

import (
	"gonum.org/v1/gonum/mat"
)

// Label is a class label. Values must be comparable; in practice they are
// ints or strings.
type Label any

// Problem tells classification and regression models apart.
type Problem string

const (
	Regression     Problem = "regression"
	Classification Problem = "classification"
)

// Predictor is the minimum capability of any supported model.
type Predictor interface {
	// Predict returns point predictions for the rows of x.
	Predict(x mat.Matrix) (mat.Matrix, error)
}

// ProbabilityPredictor is a model that can also emit per-class probability
// estimates. Its presence signals a classification model.
type ProbabilityPredictor interface {
	Predictor

	// PredictProba returns one probability column per class.
	PredictProba(x mat.Matrix) (mat.Matrix, error)
}

// ClassesProvider is a model that exposes the classes seen during fitting.
// A nil slice means the model does not know its classes; an empty non-nil
// slice is meaningful (some binary models report no class list at all).
type ClassesProvider interface {
	Classes() []Label
}

// BinaryClasses is the canonical label set substituted for binary models
// that expose probabilities but report an empty class list.
func BinaryClasses() []Label {
	return []Label{0, 1}
}
