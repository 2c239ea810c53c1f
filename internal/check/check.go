package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/glassbox-ml/glassbox/internal/errors"
	"github.com/glassbox-ml/glassbox/internal/estimator"
	"github.com/glassbox-ml/glassbox/internal/transform"
)

// Allowed mask parameter keys.
const (
	MaskFeaturesToHide = "features_to_hide"
	MaskThreshold      = "threshold"
	MaskPositive       = "positive"
	MaskMaxContrib     = "max_contrib"
)

// AllowedMaskParams lists every key a mask-params map may contain.
func AllowedMaskParams() []string {
	return []string{MaskFeaturesToHide, MaskThreshold, MaskPositive, MaskMaxContrib}
}

// Preprocessing verifies that every step of the preprocessing descriptor is
// recognized. A nil descriptor means no preprocessing and always passes.
func Preprocessing(preprocessing transform.Descriptor) error {
	if preprocessing == nil {
		return nil
	}

	list, err := transform.ToList(preprocessing)
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryPreprocessing).
			Build()
	}

	useCT, useCE := transform.SupportedInverse(list)
	if !useCT && !useCE {
		return errors.Newf("preprocessing isn't supported: no column-transformer or category-encoder step found").
			Category(errors.CategoryPreprocessing).
			Context("steps", len(list)).
			Build()
	}
	return nil
}

// Model resolves the model's capabilities into a problem type and, for
// classification, its class list. The model must at minimum be a Predictor.
//
// A ProbabilityPredictor that reports an empty non-nil class list is taken
// to be a binary model and gets the canonical [0, 1] label set. A
// ProbabilityPredictor with no resolvable classes is rejected.
func Model(model any) (estimator.Problem, []estimator.Label, error) {
	if _, ok := model.(estimator.Predictor); !ok {
		return "", nil, errors.Newf("no predict capability in the specified model, please check the model parameter").
			Category(errors.CategoryModelCapability).
			Build()
	}

	_, hasProba := model.(estimator.ProbabilityPredictor)
	provider, hasClasses := model.(estimator.ClassesProvider)

	var classes []estimator.Label
	if hasProba || hasClasses {
		if hasClasses {
			classes = provider.Classes()
		}
		if hasProba && classes != nil && len(classes) == 0 {
			// Binary models (catboost style) expose probabilities but an
			// empty class list.
			classes = estimator.BinaryClasses()
		}
		if hasProba && classes == nil {
			return "", nil, errors.Newf("model exposes probability predictions but no classes, classification model not supported").
				Category(errors.CategoryModelClasses).
				Build()
		}
	}

	if len(classes) > 0 {
		getLogger().Debug("model resolved", "problem", estimator.Classification, "classes", len(classes))
		return estimator.Classification, classes, nil
	}
	getLogger().Debug("model resolved", "problem", estimator.Regression)
	return estimator.Regression, nil, nil
}

// LabelDict verifies that the label dictionary covers exactly the model's
// classes. It is a no-op for regression models or a nil dictionary.
func LabelDict(labelDict map[estimator.Label]string, problem estimator.Problem, classes []estimator.Label) error {
	if labelDict == nil || problem != estimator.Classification {
		return nil
	}

	keys := make([]estimator.Label, 0, len(labelDict))
	for k := range labelDict {
		keys = append(keys, k)
	}

	if !labelSetsEqual(keys, classes) {
		return errors.Newf("label_dict and model classes do not match: label_dict keys %s, model classes %s",
			formatLabels(keys), formatLabels(classes)).
			Category(errors.CategoryLabelDict).
			Context("label_dict_keys", formatLabels(keys)).
			Context("model_classes", formatLabels(classes)).
			Build()
	}
	return nil
}

// MaskParams verifies that the mask parameter map only uses allowed keys.
// A nil map means no display filter and always passes.
func MaskParams(maskParams map[string]any) error {
	var notConform []string
	for key := range maskParams {
		switch key {
		case MaskFeaturesToHide, MaskThreshold, MaskPositive, MaskMaxContrib:
		default:
			notConform = append(notConform, key)
		}
	}
	if len(notConform) > 0 {
		sort.Strings(notConform)
		return errors.Newf("mask_params must only have the following keys: %s (unexpected: %s)",
			strings.Join(AllowedMaskParams(), ", "), strings.Join(notConform, ", ")).
			Category(errors.CategoryMaskParams).
			Context("unexpected_keys", notConform).
			Build()
	}
	return nil
}

// labelSetsEqual compares two label slices as unordered sets.
func labelSetsEqual(a, b []estimator.Label) bool {
	setA := make(map[estimator.Label]struct{}, len(a))
	for _, l := range a {
		setA[l] = struct{}{}
	}
	setB := make(map[estimator.Label]struct{}, len(b))
	for _, l := range b {
		setB[l] = struct{}{}
	}
	if len(setA) != len(setB) {
		return false
	}
	for l := range setA {
		if _, ok := setB[l]; !ok {
			return false
		}
	}
	return true
}

// formatLabels renders labels in a stable order for error messages.
func formatLabels(labels []estimator.Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, fmt.Sprint(l))
	}
	sort.Strings(parts)
	return "[" + strings.Join(parts, ", ") + "]"
}
