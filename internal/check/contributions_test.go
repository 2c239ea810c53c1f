package check

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/glassbox-ml/glassbox/internal/errors"
	"github.com/glassbox-ml/glassbox/internal/estimator"
	"github.com/glassbox-ml/glassbox/internal/tabular"
)

func TestContributions(t *testing.T) {
	t.Parallel()

	classes := []estimator.Label{0, 1}
	contrib := mat.NewDense(3, 2, []float64{
		0.1, -0.2,
		0.3, 0.0,
		-0.1, 0.5,
	})

	t.Run("regression with a plain matrix passes", func(t *testing.T) {
		err := Contributions(estimator.Regression, nil, ContributionSet{Single: contrib})
		assert.NoError(t, err)
	})

	t.Run("regression with a frame passes", func(t *testing.T) {
		f, err := tabular.NewFrame(dataframe.New(
			series.New([]float64{0.1, 0.3}, series.Float, "f1"),
		), nil)
		require.NoError(t, err)

		assert.NoError(t, Contributions(estimator.Regression, nil, ContributionSet{Single: f}))
	})

	t.Run("regression without a single table fails", func(t *testing.T) {
		err := Contributions(estimator.Regression, nil, ContributionSet{})
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryContributions))
	})

	t.Run("regression with per-class tables fails", func(t *testing.T) {
		err := Contributions(estimator.Regression, nil, ContributionSet{PerClass: []Contribution{contrib}})
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryContributions))
	})

	t.Run("classification with matching length passes", func(t *testing.T) {
		set := ContributionSet{PerClass: []Contribution{contrib, contrib}}
		assert.NoError(t, Contributions(estimator.Classification, classes, set))
	})

	t.Run("classification with empty list fails", func(t *testing.T) {
		set := ContributionSet{PerClass: []Contribution{}}
		err := Contributions(estimator.Classification, classes, set)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "number of classes")
	})

	t.Run("classification with wrong length fails", func(t *testing.T) {
		set := ContributionSet{PerClass: []Contribution{contrib}}
		err := Contributions(estimator.Classification, classes, set)
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryContributions))
	})

	t.Run("classification without a list fails", func(t *testing.T) {
		err := Contributions(estimator.Classification, classes, ContributionSet{Single: contrib})
		require.Error(t, err)
		assert.True(t, errors.IsCategory(err, errors.CategoryContributions))
	})
}
