package classifier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/riskwatch/internal/domain"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
)

const treeJSON = `{
  "model_type": "decision_tree",
  "feature_names": ["GPA"],
  "classes": [0, 1],
  "nodes": [
    {"feature": 0, "threshold": 1.98, "left": 1, "right": 2},
    {"leaf": true, "class": 1},
    {"leaf": true, "class": 0}
  ]
}`

const logisticYAML = `
model_type: logistic_regression
feature_names: [GPA]
classes: [0, 1]
coef: [-4.0]
intercept: 8.0
`

func writeArtifact(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DecisionTree(t *testing.T) {
	adapter, err := Load(writeArtifact(t, "model.json", treeJSON))
	require.NoError(t, err)
	assert.Equal(t, []string{"GPA"}, adapter.Features())

	labels, err := adapter.Predict(context.Background(), []float64{0.5, 1.98, 1.99, 3.7})
	require.NoError(t, err)
	assert.Equal(t, []domain.RiskLabel{domain.LabelAtRisk, domain.LabelAtRisk, domain.LabelNotAtRisk, domain.LabelNotAtRisk}, labels)
}

func TestLoad_LogisticRegressionYAML(t *testing.T) {
	adapter, err := Load(writeArtifact(t, "model.yaml", logisticYAML))
	require.NoError(t, err)

	// decision boundary at GPA 2.0
	labels, err := adapter.Predict(context.Background(), []float64{1.0, 2.0, 3.5})
	require.NoError(t, err)
	assert.Equal(t, []domain.RiskLabel{domain.LabelAtRisk, domain.LabelAtRisk, domain.LabelNotAtRisk}, labels)
}

func TestLoad_Failures(t *testing.T) {
	cases := map[string]string{
		"unknown type":  `{"model_type": "svm", "feature_names": ["GPA"]}`,
		"no features":   `{"model_type": "decision_tree", "nodes": [{"leaf": true}]}`,
		"empty tree":    `{"model_type": "decision_tree", "feature_names": ["GPA"]}`,
		"cyclic tree":   `{"model_type": "decision_tree", "feature_names": ["GPA"], "nodes": [{"feature": 0, "threshold": 1, "left": 0, "right": 0}]}`,
		"unknown leaf":  `{"model_type": "decision_tree", "feature_names": ["GPA"], "classes": [0, 1], "nodes": [{"leaf": true, "class": 5}]}`,
		"coef mismatch": `{"model_type": "logistic_regression", "feature_names": ["GPA"], "classes": [0, 1], "coef": [1, 2]}`,
		"other feature": `{"model_type": "decision_tree", "feature_names": ["Absences"], "nodes": [{"leaf": true}]}`,
		"three classes": `{"model_type": "logistic_regression", "feature_names": ["GPA"], "classes": [0, 1, 2], "coef": [1]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeArtifact(t, "model.json", body))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArtifact)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(writeArtifact(t, "model.json", "{not json"))
		require.Error(t, err)
	})
}

func TestPredict_EmptyInputSkipsModel(t *testing.T) {
	adapter := New(stubModel(func(Frame) ([]int, error) {
		t.Fatal("model should not be called")
		return nil, nil
	}))

	labels, err := adapter.Predict(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestPredict_PassesLabelsThrough(t *testing.T) {
	var seen Frame
	adapter := New(stubModel(func(f Frame) ([]int, error) {
		seen = f
		return []int{1, 0, 3}, nil
	}))

	labels, err := adapter.Predict(context.Background(), []float64{0.1, 2.2, 3.3})
	require.NoError(t, err)
	assert.Equal(t, []domain.RiskLabel{1, 0, 3}, labels)
	assert.Equal(t, Frame{"GPA": {0.1, 2.2, 3.3}}, seen)
}

func TestPredict_ModelErrors(t *testing.T) {
	adapter := New(stubModel(func(Frame) ([]int, error) {
		return nil, errors.New("boom")
	}))
	_, err := adapter.Predict(context.Background(), []float64{1})
	assert.ErrorIs(t, err, apperrors.ErrPredictionFailed)

	short := New(stubModel(func(Frame) ([]int, error) {
		return []int{1}, nil
	}))
	_, err = short.Predict(context.Background(), []float64{1, 2})
	assert.ErrorIs(t, err, apperrors.ErrPredictionFailed)

	var unloaded *Adapter
	_, err = unloaded.Predict(context.Background(), []float64{1})
	assert.ErrorIs(t, err, apperrors.ErrClassifierUnavailable)
}

func TestDecisionTree_MissingColumn(t *testing.T) {
	artifact := &Artifact{
		ModelType:    ModelTypeDecisionTree,
		FeatureNames: []string{"GPA"},
		Nodes:        []TreeNode{{Leaf: true, Class: 1}},
	}
	model, err := artifact.Build()
	require.NoError(t, err)

	_, err = model.Predict(Frame{"gpa": {1}})
	assert.ErrorIs(t, err, ErrMissingColumn)
}

type stubModel func(Frame) ([]int, error)

func (s stubModel) Predict(f Frame) ([]int, error) { return s(f) }
func (s stubModel) Features() []string             { return []string{FeatureGPA} }

func TestLoad_ShippedArtifact(t *testing.T) {
	adapter, err := Load(filepath.Join("..", "..", "..", "models", "student_risk_model.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{FeatureGPA}, adapter.Features())

	labels, err := adapter.Predict(context.Background(), []float64{0.5, 1.5, 1.985, 2.5, 4})
	require.NoError(t, err)
	assert.Equal(t, []domain.RiskLabel{domain.LabelAtRisk, domain.LabelAtRisk, domain.LabelAtRisk, domain.LabelNotAtRisk, domain.LabelNotAtRisk}, labels)
}
