// Package model provides the four interchangeable stay classifiers behind a
// single fit/predict interface.
package model

import (
	"fmt"

	"github.com/KendraBlalock/Predict-LOS/pkg/encode"
)

// Classifier is the uniform interface every variant implements. A fitted
// classifier lives only for the duration of one evaluation round; nothing is
// persisted.
type Classifier interface {
	Name() string
	Fit(train *encode.Dataset) error
	Predict(data *encode.Dataset) ([]int, error)
}

// FitError marks a variant whose training data violated its precondition.
// It is fatal to that variant only; the remaining variants continue.
type FitError struct {
	Variant string
	Err     error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("model: fitting %s: %v", e.Variant, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }
