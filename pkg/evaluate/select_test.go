package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBestLowestRate(t *testing.T) {
	results := []VariantResult{
		{Name: "naive bayes", Rate: 0.177},
		{Name: "knn", Rate: 0.232},
		{Name: "logistic regression", Rate: 0.524},
		{Name: "svm", Rate: 0.213},
	}
	best, err := SelectBest(results)
	require.NoError(t, err)
	assert.Equal(t, "naive bayes", results[best].Name)
}

func TestSelectBestTieBreaksByPriority(t *testing.T) {
	results := []VariantResult{
		{Name: "svm", Rate: 0.2},
		{Name: "knn", Rate: 0.2},
		{Name: "logistic regression", Rate: 0.25},
	}
	best, err := SelectBest(results)
	require.NoError(t, err)
	assert.Equal(t, "knn", results[best].Name, "knn outranks svm in the declared order")
}

func TestSelectBestSingleVariant(t *testing.T) {
	best, err := SelectBest([]VariantResult{{Name: "svm", Rate: 0.9}})
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestSelectBestEmpty(t *testing.T) {
	_, err := SelectBest(nil)
	assert.Error(t, err)
}
