package model

import (
	"errors"
	"fmt"

	dataframe "github.com/rocketlaunchr/dataframe-go"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"
	"github.com/sjwhitworth/golearn/linear_models"

	"github.com/KendraBlalock/Predict-LOS/pkg/encode"
)

// Class value strings used inside golearn instances.
var classNames = [2]string{"short", "long"}

// toInstances bridges an encoded dataset into golearn instances: each
// categorical level becomes one 0/1 dummy column and the label becomes the
// class attribute. Features are deliberately left unscaled.
func toInstances(ds *encode.Dataset) (base.FixedDataGrid, error) {
	if ds.Len() == 0 {
		return nil, errors.New("empty dataset")
	}
	var cols []dataframe.Series
	for c, name := range ds.Cols {
		for l, level := range ds.Levels[c] {
			s := dataframe.NewSeriesFloat64(name+"="+level, nil)
			for r := 0; r < ds.Len(); r++ {
				v := 0.0
				if ds.Rows[r][c] == l {
					v = 1.0
				}
				s.Append(v)
			}
			cols = append(cols, s)
		}
	}
	class := dataframe.NewSeriesString("long_stay", nil)
	for _, y := range ds.Labels {
		class.Append(classNames[y])
	}
	df := dataframe.NewDataFrame(append(cols, class)...)
	return base.ConvertDataFrameToInstances(df, len(cols)), nil
}

// labelsFromGrid reads predicted class values back out of a golearn result
// grid.
func labelsFromGrid(pred base.FixedDataGrid) ([]int, error) {
	_, rows := pred.Size()
	out := make([]int, rows)
	for i := 0; i < rows; i++ {
		switch v := base.GetClass(pred, i); v {
		case classNames[0]:
			out[i] = 0
		case classNames[1]:
			out[i] = 1
		default:
			return nil, fmt.Errorf("unexpected predicted class %q", v)
		}
	}
	return out, nil
}

// KNN classifies by majority vote among the K nearest training rows under
// euclidean distance over the dummy-encoded features.
type KNN struct {
	K   int
	cls *knn.KNNClassifier
}

// NewKNN returns an unfitted K-nearest-neighbours variant.
func NewKNN(k int) *KNN {
	return &KNN{K: k}
}

func (m *KNN) Name() string { return "knn" }

// Fit stores the training rows. It fails loudly when the training table has
// fewer rows than K; the neighbour count is never silently truncated.
func (m *KNN) Fit(train *encode.Dataset) error {
	if m.K < 1 {
		return fmt.Errorf("neighbour count %d must be positive", m.K)
	}
	if train.Len() < m.K {
		return fmt.Errorf("training table has %d distinct rows, fewer than k=%d", train.Len(), m.K)
	}
	inst, err := toInstances(train)
	if err != nil {
		return err
	}
	m.cls = knn.NewKnnClassifier("euclidean", "linear", m.K)
	return m.cls.Fit(inst)
}

func (m *KNN) Predict(data *encode.Dataset) ([]int, error) {
	if m.cls == nil {
		return nil, errors.New("knn: predict before fit")
	}
	inst, err := toInstances(data)
	if err != nil {
		return nil, err
	}
	pred, err := m.cls.Predict(inst)
	if err != nil {
		return nil, err
	}
	return labelsFromGrid(pred)
}

// LogisticRegression is the L2-penalised binary logit over the
// dummy-encoded predictors.
type LogisticRegression struct {
	lr *linear_models.LogisticRegression
}

// NewLogisticRegression returns an unfitted logistic regression variant.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{}
}

func (m *LogisticRegression) Name() string { return "logistic regression" }

func (m *LogisticRegression) Fit(train *encode.Dataset) error {
	inst, err := toInstances(train)
	if err != nil {
		return err
	}
	lr, err := linear_models.NewLogisticRegression("l2", 1.0, 1e-6)
	if err != nil {
		return err
	}
	if err := lr.Fit(inst); err != nil {
		return err
	}
	m.lr = lr
	return nil
}

func (m *LogisticRegression) Predict(data *encode.Dataset) ([]int, error) {
	if m.lr == nil {
		return nil, errors.New("logistic regression: predict before fit")
	}
	inst, err := toInstances(data)
	if err != nil {
		return nil, err
	}
	pred, err := m.lr.Predict(inst)
	if err != nil {
		return nil, err
	}
	return labelsFromGrid(pred)
}

// SVM is a linear-kernel support vector classifier with library-default
// margin parameters.
type SVM struct {
	svc *linear_models.LinearSVC
}

// NewSVM returns an unfitted linear SVM variant.
func NewSVM() *SVM {
	return &SVM{}
}

func (m *SVM) Name() string { return "svm" }

func (m *SVM) Fit(train *encode.Dataset) error {
	inst, err := toInstances(train)
	if err != nil {
		return err
	}
	svc, err := linear_models.NewLinearSVC("l2", "l2", true, 1.0, 1e-4)
	if err != nil {
		return err
	}
	if err := svc.Fit(inst); err != nil {
		return err
	}
	m.svc = svc
	return nil
}

func (m *SVM) Predict(data *encode.Dataset) ([]int, error) {
	if m.svc == nil {
		return nil, errors.New("svm: predict before fit")
	}
	inst, err := toInstances(data)
	if err != nil {
		return nil, err
	}
	pred, err := m.svc.Predict(inst)
	if err != nil {
		return nil, err
	}
	return labelsFromGrid(pred)
}
