package evaluate

import "errors"

// VariantResult pairs a variant with its validation-partition score.
type VariantResult struct {
	Name   string
	Rate   float64
	Matrix *ConfusionMatrix
}

// Priority is the declared tie-break order for model selection.
var Priority = []string{"naive bayes", "knn", "logistic regression", "svm"}

// SelectBest returns the index of the variant with the lowest
// misclassification rate. Ties are broken by Priority; variants not named
// there rank after all that are, in input order.
func SelectBest(results []VariantResult) (int, error) {
	if len(results) == 0 {
		return 0, errors.New("evaluate: no variants to select from")
	}
	rank := func(name string) int {
		for i, p := range Priority {
			if p == name {
				return i
			}
		}
		return len(Priority)
	}
	best := 0
	for i := 1; i < len(results); i++ {
		switch {
		case results[i].Rate < results[best].Rate:
			best = i
		case results[i].Rate == results[best].Rate && rank(results[i].Name) < rank(results[best].Name):
			best = i
		}
	}
	return best, nil
}
