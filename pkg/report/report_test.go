package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KendraBlalock/Predict-LOS/pkg/claims"
	"github.com/KendraBlalock/Predict-LOS/pkg/encode"
	"github.com/KendraBlalock/Predict-LOS/pkg/evaluate"
	"github.com/KendraBlalock/Predict-LOS/pkg/model"
)

func TestSummary(t *testing.T) {
	var out bytes.Buffer
	Summary(&out, claims.Summary{
		Rows:        10,
		BySex:       map[string]int{"1": 6, "2": 4},
		ByAgeCat:    map[string]int{"1": 10},
		DistinctDRG: 4,
	})

	s := out.String()
	assert.Contains(t, s, "Claims loaded: 10")
	assert.Contains(t, s, "distinct base DRG codes: 4")
	assert.Contains(t, s, "6")
}

func TestConfusion(t *testing.T) {
	m, err := evaluate.NewConfusionMatrix([]int{0, 1, 1, 0}, []int{0, 1, 0, 0})
	require.NoError(t, err)

	var out bytes.Buffer
	Confusion(&out, "Validation: naive bayes", m)

	s := out.String()
	assert.Contains(t, s, "Validation: naive bayes")
	assert.Contains(t, s, "Misclassification rate: 0.2500")
}

func TestDroppedEmptyPrintsNothing(t *testing.T) {
	var out bytes.Buffer
	Dropped(&out, nil)
	assert.Empty(t, out.String())
}

func TestNaiveBayesDiagnostic(t *testing.T) {
	nb := model.NewNaiveBayes(1)
	require.NoError(t, nb.Fit(&encode.Dataset{
		Cols:   []string{"BENE_SEX_IDENT_CD"},
		Levels: [][]string{{"1", "2"}},
		Rows:   [][]int{{0}, {1}, {0}, {1}},
		Labels: []int{0, 0, 1, 1},
	}))

	dir := t.TempDir()
	require.NoError(t, NaiveBayesDiagnostic(nb, dir))

	_, err := os.Stat(filepath.Join(dir, "nb_bene_sex_ident_cd.png"))
	assert.NoError(t, err)
}
