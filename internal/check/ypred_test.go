package check

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glassbox-ml/glassbox/internal/errors"
	"github.com/glassbox-ml/glassbox/internal/estimator"
	"github.com/glassbox-ml/glassbox/internal/tabular"
)

func featureFrame(t *testing.T, index []int) *tabular.Frame {
	t.Helper()
	df := dataframe.New(
		series.New([]float64{0.1, 0.2, 0.3}, series.Float, "f1"),
		series.New([]float64{1.0, 2.0, 3.0}, series.Float, "f2"),
	)
	f, err := tabular.NewFrame(df, index)
	require.NoError(t, err)
	return f
}

func predFrame(t *testing.T, index []int, cols ...series.Series) *tabular.Frame {
	t.Helper()
	f, err := tabular.NewFrame(dataframe.New(cols...), index)
	require.NoError(t, err)
	return f
}

func TestYPred(t *testing.T) {
	t.Parallel()

	x := featureFrame(t, []int{0, 1, 2})

	t.Run("nil ypred is a no-op", func(t *testing.T) {
		out, err := YPred(estimator.Classification, x, nil)
		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("ypred forbidden outside classification", func(t *testing.T) {
		s, err := tabular.NewSeries(series.New([]int{0, 1, 0}, series.Int, "ypred"), []int{0, 1, 2})
		require.NoError(t, err)

		_, err = YPred(estimator.Regression, x, s)
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryYPred))
		assert.Contains(t, err.Error(), "should not be specified")
	})

	t.Run("series is coerced to a one-column frame", func(t *testing.T) {
		s, err := tabular.NewSeries(series.New([]float64{0.9, 0.1, 0.4}, series.Float, "ypred"), []int{0, 1, 2})
		require.NoError(t, err)

		out, err := YPred(estimator.Classification, x, s)
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, 1, out.NumCols())
		assert.Equal(t, []int{0, 1, 2}, out.Index())
	})

	t.Run("one-column frame passes through", func(t *testing.T) {
		in := predFrame(t, []int{0, 1, 2}, series.New([]int{1, 0, 1}, series.Int, "ypred"))

		out, err := YPred(estimator.Classification, x, in)
		require.NoError(t, err)
		assert.Same(t, in, out)
	})

	t.Run("index mismatch fails", func(t *testing.T) {
		s, err := tabular.NewSeries(series.New([]int{1, 0, 1}, series.Int, "ypred"), []int{0, 1, 3})
		require.NoError(t, err)

		_, err = YPred(estimator.Classification, x, s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "same index")
	})

	t.Run("frame index mismatch fails", func(t *testing.T) {
		in := predFrame(t, []int{0, 1, 3}, series.New([]int{1, 0, 1}, series.Int, "ypred"))

		_, err := YPred(estimator.Classification, x, in)
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryYPred))
	})

	t.Run("more than one column fails", func(t *testing.T) {
		in := predFrame(t, []int{0, 1, 2},
			series.New([]int{1, 0, 1}, series.Int, "a"),
			series.New([]int{0, 1, 0}, series.Int, "b"),
		)

		_, err := YPred(estimator.Classification, x, in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "one-column")
	})

	t.Run("non-numeric series fails", func(t *testing.T) {
		s, err := tabular.NewSeries(series.New([]string{"a", "b", "c"}, series.String, "ypred"), []int{0, 1, 2})
		require.NoError(t, err)

		_, err = YPred(estimator.Classification, x, s)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "int or float")
	})

	t.Run("non-numeric frame column fails", func(t *testing.T) {
		in := predFrame(t, []int{0, 1, 2}, series.New([]bool{true, false, true}, series.Bool, "ypred"))

		_, err := YPred(estimator.Classification, x, in)
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryYPred))
	})

	t.Run("unsupported ypred type fails", func(t *testing.T) {
		_, err := YPred(estimator.Classification, x, []float64{1, 2, 3})
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryYPred))
	})
}
