// Package glassbox validates the inputs of a model-explanation session.
// An Explainer runs every guard in dependency order during Compile and keeps
// the derived problem type, classes and normalized predictions for the
// downstream explanation logic.
package glassbox

import (
	"log/slog"

	"github.com/glassbox-ml/glassbox/internal/check"
	"github.com/glassbox-ml/glassbox/internal/conf"
	"github.com/glassbox-ml/glassbox/internal/errors"
	"github.com/glassbox-ml/glassbox/internal/estimator"
	"github.com/glassbox-ml/glassbox/internal/logging"
	"github.com/glassbox-ml/glassbox/internal/tabular"
	"github.com/glassbox-ml/glassbox/internal/transform"
)

// CompileInput carries everything the caller supplies for one session.
type CompileInput struct {
	// X is the feature dataset the model predicts on. Required.
	X *tabular.Frame
	// Model is the fitted model handle; its capabilities are resolved
	// through the estimator interfaces. Required.
	Model any
	// Preprocessing optionally describes the transformations applied to
	// the original data.
	Preprocessing transform.Descriptor
	// YPred optionally carries user-supplied predictions, either a
	// *tabular.Frame or a *tabular.Series. Classification only.
	YPred any
	// LabelDict optionally maps class labels to display names.
	LabelDict map[estimator.Label]string
	// MaskParams optionally overrides the display filter defaults.
	MaskParams map[string]any
	// Contributions holds the per-feature attribution tables. Required.
	Contributions check.ContributionSet
}

// Explainer holds the validated inputs of an explanation session.
type Explainer struct {
	settings *conf.Settings
	logger   *slog.Logger

	problem       estimator.Problem
	classes       []estimator.Label
	x             *tabular.Frame
	ypred         *tabular.Frame
	labelDict     map[estimator.Label]string
	maskParams    map[string]any
	contributions check.ContributionSet
	compiled      bool
}

// New creates an Explainer with the given settings. A nil settings pointer
// falls back to the toolkit defaults.
func New(settings *conf.Settings) *Explainer {
	if settings == nil {
		settings = conf.DefaultSettings()
	}
	logger := logging.ForService("explainer")
	if logger == nil {
		logger = slog.Default().With("service", "explainer")
	}
	return &Explainer{
		settings: settings,
		logger:   logger,
	}
}

// Compile validates the session inputs. Every violation is fatal: the first
// failing guard aborts the compile and the explainer stays unusable.
// The guards run in dependency order, model resolution first since the label
// dictionary, ypred and contribution checks all need the problem type.
func (e *Explainer) Compile(in CompileInput) error {
	if in.X == nil {
		return errors.Newf("a feature dataset is required").
			Category(errors.CategoryGeneric).
			Component("explainer").
			Build()
	}

	if err := check.Preprocessing(in.Preprocessing); err != nil {
		return err
	}

	problem, classes, err := check.Model(in.Model)
	if err != nil {
		return err
	}

	if err := check.LabelDict(in.LabelDict, problem, classes); err != nil {
		return err
	}

	maskParams := in.MaskParams
	if maskParams == nil {
		maskParams = conf.DefaultMaskParams(e.settings)
	}
	if err := check.MaskParams(maskParams); err != nil {
		return err
	}

	ypred, err := check.YPred(problem, in.X, in.YPred)
	if err != nil {
		return err
	}

	if err := check.Contributions(problem, classes, in.Contributions); err != nil {
		return err
	}

	e.problem = problem
	e.classes = classes
	e.x = in.X
	e.ypred = ypred
	e.labelDict = in.LabelDict
	e.maskParams = maskParams
	e.contributions = in.Contributions
	e.compiled = true

	e.logger.Info("compile completed",
		"problem", problem,
		"classes", len(classes),
		"rows", in.X.NumRows(),
		"features", in.X.NumCols(),
	)
	return nil
}

// Compiled reports whether Compile has succeeded.
func (e *Explainer) Compiled() bool {
	return e.compiled
}

// Problem returns the resolved problem type.
func (e *Explainer) Problem() estimator.Problem {
	return e.problem
}

// Classes returns the resolved class list, nil for regression.
func (e *Explainer) Classes() []estimator.Label {
	return e.classes
}

// X returns the feature dataset.
func (e *Explainer) X() *tabular.Frame {
	return e.x
}

// YPred returns the normalized predictions, nil when none were supplied.
func (e *Explainer) YPred() *tabular.Frame {
	return e.ypred
}

// LabelDict returns the label display names, nil when none were supplied.
func (e *Explainer) LabelDict() map[estimator.Label]string {
	return e.labelDict
}

// MaskParams returns the effective display filter.
func (e *Explainer) MaskParams() map[string]any {
	return e.maskParams
}

// Contributions returns the validated contribution set.
func (e *Explainer) Contributions() check.ContributionSet {
	return e.contributions
}
