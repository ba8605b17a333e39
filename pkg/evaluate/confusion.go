// Package evaluate scores predicted labels against truth and selects the
// best-performing variant.
package evaluate

import (
	"errors"
	"fmt"
)

// ConfusionMatrix is a fixed 2x2 cross-tabulation of true against predicted
// labels. Both classes are always present, even with zero predictions, so
// the rate arithmetic never operates on a degenerate matrix.
type ConfusionMatrix struct {
	// Counts[t][p] is the number of rows with true label t predicted as p.
	Counts [2][2]int
}

// NewConfusionMatrix cross-tabulates two aligned label sequences. Scoring an
// empty sequence is an explicit error, never a silent division by zero.
func NewConfusionMatrix(truth, pred []int) (*ConfusionMatrix, error) {
	if len(truth) == 0 {
		return nil, errors.New("evaluate: cannot score an empty sequence")
	}
	if len(truth) != len(pred) {
		return nil, fmt.Errorf("evaluate: %d true labels but %d predictions", len(truth), len(pred))
	}
	m := &ConfusionMatrix{}
	for i := range truth {
		t, p := truth[i], pred[i]
		if t < 0 || t > 1 || p < 0 || p > 1 {
			return nil, fmt.Errorf("evaluate: row %d: labels (%d, %d) outside the binary domain", i, t, p)
		}
		m.Counts[t][p]++
	}
	return m, nil
}

// Total returns the number of scored rows.
func (m *ConfusionMatrix) Total() int {
	return m.Counts[0][0] + m.Counts[0][1] + m.Counts[1][0] + m.Counts[1][1]
}

// MisclassificationRate returns the fraction of rows whose predicted label
// differs from the true label, in [0, 1].
func (m *ConfusionMatrix) MisclassificationRate() float64 {
	return 1 - float64(m.Counts[0][0]+m.Counts[1][1])/float64(m.Total())
}
