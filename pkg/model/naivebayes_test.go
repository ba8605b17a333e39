package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KendraBlalock/Predict-LOS/pkg/encode"
)

func binaryFeatureDataset(rows [][]int, labels []int) *encode.Dataset {
	return &encode.Dataset{
		Cols:   []string{"f"},
		Levels: [][]string{{"a", "b"}},
		Rows:   rows,
		Labels: labels,
	}
}

func TestNaiveBayesSmoothingNeverZero(t *testing.T) {
	// Two rows, one per class, binary feature: level "b" is unseen for
	// class 0 and level "a" unseen for class 1. With Laplace smoothing the
	// fitted table must hold no zero anywhere.
	train := binaryFeatureDataset([][]int{{0}, {1}}, []int{0, 1})

	nb := NewNaiveBayes(1)
	require.NoError(t, nb.Fit(train))

	table, levels := nb.ConditionalTable(0)
	require.Equal(t, []string{"a", "b"}, levels)
	for l := range table {
		for y := 0; y < 2; y++ {
			assert.Greater(t, table[l][y], 0.0, "P(level %d | class %d)", l, y)
		}
	}
	// count 1 + alpha 1 over class total 1 + alpha * 2 levels.
	assert.InDelta(t, 2.0/3.0, table[0][0], 1e-12)
	assert.InDelta(t, 1.0/3.0, table[1][0], 1e-12)
}

func TestNaiveBayesPredict(t *testing.T) {
	// Feature level tracks the class in 4 of 5 rows per class.
	train := binaryFeatureDataset(
		[][]int{{0}, {0}, {0}, {0}, {1}, {1}, {1}, {1}, {1}, {0}},
		[]int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1},
	)
	nb := NewNaiveBayes(1)
	require.NoError(t, nb.Fit(train))

	pred, err := nb.Predict(binaryFeatureDataset([][]int{{0}, {1}}, []int{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, pred)
}

func TestNaiveBayesPredictProba(t *testing.T) {
	train := binaryFeatureDataset(
		[][]int{{0}, {0}, {0}, {1}, {1}, {1}},
		[]int{0, 0, 0, 1, 1, 1},
	)
	nb := NewNaiveBayes(1)
	require.NoError(t, nb.Fit(train))

	proba, err := nb.PredictProba(binaryFeatureDataset([][]int{{0}, {1}}, []int{0, 1}))
	require.NoError(t, err)
	require.Len(t, proba, 2)
	for _, p := range proba {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
	assert.Less(t, proba[0], proba[1], "level tied to the long class must score higher")
}

func TestNaiveBayesErrors(t *testing.T) {
	nb := NewNaiveBayes(1)
	assert.Error(t, nb.Fit(binaryFeatureDataset(nil, nil)), "empty training set")

	_, err := nb.Predict(binaryFeatureDataset([][]int{{0}}, []int{0}))
	assert.Error(t, err, "predict before fit")

	assert.Error(t, NewNaiveBayes(0).Fit(binaryFeatureDataset([][]int{{0}}, []int{0})))
}

func TestNaiveBayesSingleClassTraining(t *testing.T) {
	train := binaryFeatureDataset([][]int{{0}, {0}}, []int{0, 0})
	nb := NewNaiveBayes(1)
	require.NoError(t, nb.Fit(train))

	pred, err := nb.Predict(binaryFeatureDataset([][]int{{0}, {1}}, []int{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, pred, "an absent class can never win the posterior")
}
