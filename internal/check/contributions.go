package check

import (
	"github.com/glassbox-ml/glassbox/internal/errors"
	"github.com/glassbox-ml/glassbox/internal/estimator"
)

// Contribution is a per-feature attribution table. Both *mat.Dense and
// *tabular.Frame satisfy it.
type Contribution interface {
	Dims() (r, c int)
}

// ContributionSet holds the contributions supplied to the explainer: a
// single table for regression, or one table per class for classification.
// Exactly one of the two fields is expected to be set.
type ContributionSet struct {
	Single   Contribution
	PerClass []Contribution
}

// Contributions verifies that the contribution set matches the problem type
// and, for classification, the number of classes.
func Contributions(problem estimator.Problem, classes []estimator.Label, contribs ContributionSet) error {
	switch problem {
	case estimator.Regression:
		if contribs.Single == nil || contribs.PerClass != nil {
			return errors.Newf("contributions are not compatible with a regression model: a single table or matrix is required, please check model and contributions parameters").
				Category(errors.CategoryContributions).
				Build()
		}
	case estimator.Classification:
		if contribs.PerClass == nil || contribs.Single != nil {
			return errors.Newf("contributions are not compatible with a classification model: an ordered list of per-class tables is required, please check model and contributions parameters").
				Category(errors.CategoryContributions).
				Build()
		}
		if len(contribs.PerClass) != len(classes) {
			return errors.Newf("length of contributions list (%d) is not equal to the number of classes in the target (%d), please check model and contributions parameters",
				len(contribs.PerClass), len(classes)).
				Category(errors.CategoryContributions).
				Context("contributions", len(contribs.PerClass)).
				Context("classes", len(classes)).
				Build()
		}
	}
	return nil
}
