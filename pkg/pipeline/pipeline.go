// Package pipeline wires the stages together: load, derive, partition,
// encode, fit and score each variant, select, and report. Control flow is
// strictly linear; every stage completes before the next begins.
package pipeline

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/KendraBlalock/Predict-LOS/pkg/claims"
	"github.com/KendraBlalock/Predict-LOS/pkg/encode"
	"github.com/KendraBlalock/Predict-LOS/pkg/evaluate"
	"github.com/KendraBlalock/Predict-LOS/pkg/model"
	"github.com/KendraBlalock/Predict-LOS/pkg/report"
	"github.com/KendraBlalock/Predict-LOS/pkg/split"
)

// Config carries the run-time constants of one pipeline execution.
type Config struct {
	DataPath     string
	Seed         int64
	TrainFrac    float64 // used for both the pool/test and train/validation splits
	KNNNeighbors int
	Laplace      float64
	LongStayCode int
	StrictSplit  bool
	PlotDir      string // empty disables the naive Bayes diagnostic plots
	Out          io.Writer
}

// DefaultConfig returns the canonical constants of the analysis.
func DefaultConfig(dataPath string) Config {
	return Config{
		DataPath:     dataPath,
		Seed:         1234,
		TrainFrac:    0.8,
		KNNNeighbors: 300,
		Laplace:      1,
		LongStayCode: 4,
		Out:          os.Stdout,
	}
}

// VariantOutcome is one variant's validation-partition result. Err is set
// when the variant failed to fit or predict; the other variants continue.
type VariantOutcome struct {
	Name   string
	Rate   float64
	Matrix *evaluate.ConfusionMatrix
	Err    error
}

// Result is the machine-facing record of one run, mirroring the printed
// report.
type Result struct {
	Summary    claims.Summary
	Dropped    []claims.UndefinedLabel
	Validation []VariantOutcome
	Selected   string
	TestMatrix *evaluate.ConfusionMatrix
	TestRate   float64
}

type variant struct {
	dedupe bool
	build  func(cfg Config) model.Classifier
}

// Variant order doubles as the fitting order; selection ties are broken by
// evaluate.Priority, not by this order.
var variants = []variant{
	// Naive Bayes trains on the full row-weighted table; the other three
	// train on distinct (label, features) rows. The asymmetry is
	// deliberate, and kept visible here rather than buried in the models.
	{dedupe: false, build: func(cfg Config) model.Classifier { return model.NewNaiveBayes(cfg.Laplace) }},
	{dedupe: true, build: func(cfg Config) model.Classifier { return model.NewKNN(cfg.KNNNeighbors) }},
	{dedupe: true, build: func(cfg Config) model.Classifier { return model.NewLogisticRegression() }},
	{dedupe: true, build: func(cfg Config) model.Classifier { return model.NewSVM() }},
}

// Run executes the whole pipeline once. It either completes or fails
// outright on malformed input; nothing is retried.
func Run(cfg Config) (*Result, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	tbl, err := claims.Load(cfg.DataPath)
	if err != nil {
		return nil, err
	}

	res := &Result{Summary: tbl.Summarize()}
	report.Summary(out, res.Summary)

	stayCodes := tbl.Column(claims.ColStayCode)
	labels, undefined := claims.DeriveLongStay(stayCodes, cfg.LongStayCode)
	res.Dropped = undefined
	if len(undefined) > 0 {
		log.Printf("pipeline: dropping %d row(s) with undefined length-of-stay codes", len(undefined))
		report.Dropped(out, undefined)
	}

	var kept []int
	for i, y := range labels {
		if y != claims.Undefined {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("pipeline: no rows with a defined label")
	}

	keptLabels := make([]int, len(kept))
	keptStrata := make([]string, len(kept))
	for i, r := range kept {
		keptLabels[i] = labels[r]
		keptStrata[i] = stayCodes[r]
	}

	// Both splits stratify on the stay-code column, the same field the
	// label is derived from.
	opts := split.Options{Strict: cfg.StrictSplit}
	pool, test, err := split.Stratified(keptStrata, cfg.TrainFrac, cfg.Seed, opts)
	if err != nil {
		return nil, err
	}
	poolStrata := make([]string, len(pool))
	for i, r := range pool {
		poolStrata[i] = keptStrata[r]
	}
	train, valid, err := split.Stratified(poolStrata, cfg.TrainFrac, cfg.Seed, opts)
	if err != nil {
		return nil, err
	}
	trainIdx := compose(pool, train)
	validIdx := compose(pool, valid)

	// Domains are frozen from the full kept population, so no partition can
	// present a category the encoder has not seen.
	featureVals := make([][]string, len(claims.FeatureColumns))
	for c, name := range claims.FeatureColumns {
		col := tbl.Column(name)
		featureVals[c] = make([]string, len(kept))
		for i, r := range kept {
			featureVals[c][i] = col[r]
		}
	}
	enc, err := encode.NewEncoder(claims.FeatureColumns, featureVals)
	if err != nil {
		return nil, err
	}

	trainDS, err := enc.Encode(project(featureVals, trainIdx), at(keptLabels, trainIdx))
	if err != nil {
		return nil, err
	}
	validDS, err := enc.Encode(project(featureVals, validIdx), at(keptLabels, validIdx))
	if err != nil {
		return nil, err
	}
	testDS, err := enc.Encode(project(featureVals, test), at(keptLabels, test))
	if err != nil {
		return nil, err
	}

	fitted := map[string]model.Classifier{}
	for _, v := range variants {
		clf := v.build(cfg)
		outcome := VariantOutcome{Name: clf.Name()}

		trainData := trainDS
		if v.dedupe {
			trainData = model.Dedup(trainDS)
		}
		if err := clf.Fit(trainData); err != nil {
			outcome.Err = &model.FitError{Variant: clf.Name(), Err: err}
			log.Printf("pipeline: %v", outcome.Err)
			res.Validation = append(res.Validation, outcome)
			continue
		}
		pred, err := clf.Predict(validDS)
		if err == nil {
			outcome.Matrix, err = evaluate.NewConfusionMatrix(validDS.Labels, pred)
		}
		if err != nil {
			outcome.Err = &model.FitError{Variant: clf.Name(), Err: err}
			log.Printf("pipeline: %v", outcome.Err)
			res.Validation = append(res.Validation, outcome)
			continue
		}
		outcome.Rate = outcome.Matrix.MisclassificationRate()
		fitted[clf.Name()] = clf
		res.Validation = append(res.Validation, outcome)
		report.Confusion(out, fmt.Sprintf("Validation: %s", clf.Name()), outcome.Matrix)

		if nb, ok := clf.(*model.NaiveBayes); ok && cfg.PlotDir != "" {
			if err := report.NaiveBayesDiagnostic(nb, cfg.PlotDir); err != nil {
				return nil, err
			}
		}
	}

	var candidates []evaluate.VariantResult
	for _, o := range res.Validation {
		if o.Err == nil {
			candidates = append(candidates, evaluate.VariantResult{Name: o.Name, Rate: o.Rate, Matrix: o.Matrix})
		}
	}
	best, err := evaluate.SelectBest(candidates)
	if err != nil {
		return nil, fmt.Errorf("pipeline: every variant failed: %w", err)
	}
	res.Selected = candidates[best].Name

	// The winner's already-trained model is re-scored once on the held-out
	// test partition.
	pred, err := fitted[res.Selected].Predict(testDS)
	if err != nil {
		return nil, fmt.Errorf("pipeline: scoring %s on the test partition: %w", res.Selected, err)
	}
	res.TestMatrix, err = evaluate.NewConfusionMatrix(testDS.Labels, pred)
	if err != nil {
		return nil, err
	}
	res.TestRate = res.TestMatrix.MisclassificationRate()
	report.Confusion(out, fmt.Sprintf("Test: %s (selected)", res.Selected), res.TestMatrix)

	return res, nil
}

// compose maps positions within a subset back to positions in the subset's
// parent index set.
func compose(parent, sub []int) []int {
	out := make([]int, len(sub))
	for i, r := range sub {
		out[i] = parent[r]
	}
	return out
}

func project(cols [][]string, idx []int) [][]string {
	out := make([][]string, len(cols))
	for c := range cols {
		out[c] = make([]string, len(idx))
		for i, r := range idx {
			out[c][i] = cols[c][r]
		}
	}
	return out
}

func at(vals []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, r := range idx {
		out[i] = vals[r]
	}
	return out
}
