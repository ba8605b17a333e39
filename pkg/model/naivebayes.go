package model

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/KendraBlalock/Predict-LOS/pkg/encode"
)

// NaiveBayes is a categorical naive Bayes classifier with additive (Laplace)
// smoothing. It estimates one class-conditional probability table per
// predictor column and scores in log space. Smoothing guarantees that a
// (class, level) pair absent from training still receives non-zero mass.
type NaiveBayes struct {
	Alpha float64

	cols       []string
	levels     [][]string
	classTotal [2]int
	// cond[c][l][y] = P(column c takes level l | class y)
	cond [][][2]float64
}

// NewNaiveBayes returns an unfitted classifier with smoothing constant
// alpha.
func NewNaiveBayes(alpha float64) *NaiveBayes {
	return &NaiveBayes{Alpha: alpha}
}

func (nb *NaiveBayes) Name() string { return "naive bayes" }

// Fit estimates priors and smoothed conditional tables from the full
// row-weighted training table.
func (nb *NaiveBayes) Fit(train *encode.Dataset) error {
	if train.Len() == 0 {
		return errors.New("empty training set")
	}
	if nb.Alpha <= 0 {
		return errors.New("smoothing constant must be positive")
	}

	nb.cols = train.Cols
	nb.levels = train.Levels
	nb.classTotal = [2]int{}
	nb.cond = make([][][2]float64, len(train.Cols))

	counts := make([][][2]int, len(train.Cols))
	for c := range train.Cols {
		counts[c] = make([][2]int, train.LevelCount(c))
	}
	for r, row := range train.Rows {
		y := train.Labels[r]
		nb.classTotal[y]++
		for c, l := range row {
			counts[c][l][y]++
		}
	}

	for c := range counts {
		nLevels := float64(len(counts[c]))
		nb.cond[c] = make([][2]float64, len(counts[c]))
		for l := range counts[c] {
			for y := 0; y < 2; y++ {
				nb.cond[c][l][y] = (float64(counts[c][l][y]) + nb.Alpha) /
					(float64(nb.classTotal[y]) + nb.Alpha*nLevels)
			}
		}
	}
	return nil
}

// Predict labels each row by the class with the larger posterior.
func (nb *NaiveBayes) Predict(data *encode.Dataset) ([]int, error) {
	scores, err := nb.logPosteriors(data)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(scores))
	for i, s := range scores {
		if s[1] > s[0] {
			out[i] = 1
		}
	}
	return out, nil
}

// PredictProba returns the posterior probability of the long-stay class per
// row.
func (nb *NaiveBayes) PredictProba(data *encode.Dataset) ([]float64, error) {
	scores, err := nb.logPosteriors(data)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = math.Exp(s[1] - floats.LogSumExp(s[:]))
	}
	return out, nil
}

func (nb *NaiveBayes) logPosteriors(data *encode.Dataset) ([][2]float64, error) {
	if nb.cond == nil {
		return nil, errors.New("naive bayes: predict before fit")
	}
	if len(data.Cols) != len(nb.cols) {
		return nil, errors.New("naive bayes: column mismatch between fit and predict data")
	}

	n := float64(nb.classTotal[0] + nb.classTotal[1])
	var logPrior [2]float64
	for y := 0; y < 2; y++ {
		if nb.classTotal[y] == 0 {
			// Smoothed prior so a training set with a single class still
			// yields finite scores.
			logPrior[y] = math.Log(nb.Alpha / (n + 2*nb.Alpha))
			continue
		}
		logPrior[y] = math.Log(float64(nb.classTotal[y]) / n)
	}

	out := make([][2]float64, data.Len())
	for r, row := range data.Rows {
		s := logPrior
		for c, l := range row {
			for y := 0; y < 2; y++ {
				s[y] += math.Log(nb.cond[c][l][y])
			}
		}
		out[r] = s
	}
	return out, nil
}

// ConditionalTable returns the fitted P(level | class) table and level names
// for column c, for diagnostic plotting.
func (nb *NaiveBayes) ConditionalTable(c int) ([][2]float64, []string) {
	if nb.cond == nil {
		return nil, nil
	}
	return nb.cond[c], nb.levels[c]
}

// Columns returns the fitted predictor column names.
func (nb *NaiveBayes) Columns() []string { return nb.cols }
