package check

import (
	"github.com/glassbox-ml/glassbox/internal/errors"
	"github.com/glassbox-ml/glassbox/internal/estimator"
	"github.com/glassbox-ml/glassbox/internal/tabular"
)

// YPred validates user-supplied prediction values against the feature frame
// and normalizes them to a single-column frame.
//
// ypred may be nil, a *tabular.Frame with one numeric column, or a numeric
// *tabular.Series. A series is coerced to a one-column frame; callers must
// use the returned frame, not the input.
func YPred(problem estimator.Problem, x *tabular.Frame, ypred any) (*tabular.Frame, error) {
	if ypred == nil {
		return nil, nil
	}

	if problem != estimator.Classification {
		return nil, errors.Newf("ypred should not be specified for %s problems", problem).
			Category(errors.CategoryYPred).
			Build()
	}

	switch v := ypred.(type) {
	case *tabular.Frame:
		if v == nil {
			return nil, nil
		}
		if !tabular.IndexEqual(v.Index(), x.Index()) {
			return nil, indexMismatchError()
		}
		if v.NumCols() > 1 {
			return nil, errors.Newf("ypred must be a one-column frame or a series, got %d columns", v.NumCols()).
				Category(errors.CategoryYPred).
				Context("columns", v.NumCols()).
				Build()
		}
		if types := v.ColumnTypes(); len(types) > 0 && !tabular.IsNumeric(types[0]) {
			return nil, elementTypeError(string(types[0]))
		}
		return v, nil

	case *tabular.Series:
		if v == nil {
			return nil, nil
		}
		if !tabular.IndexEqual(v.Index(), x.Index()) {
			return nil, indexMismatchError()
		}
		if !tabular.IsNumeric(v.Type()) {
			return nil, elementTypeError(string(v.Type()))
		}
		return v.ToFrame(), nil

	default:
		return nil, errors.Newf("ypred must be a one-column frame or a series, got %T", ypred).
			Category(errors.CategoryYPred).
			Build()
	}
}

func indexMismatchError() error {
	return errors.Newf("x and ypred should have the same index").
		Category(errors.CategoryYPred).
		Build()
}

func elementTypeError(got string) error {
	return errors.Newf("ypred must contain int or float values only, got %s", got).
		Category(errors.CategoryYPred).
		Context("element_type", got).
		Build()
}
