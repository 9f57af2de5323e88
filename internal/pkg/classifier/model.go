package classifier

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArtifact is returned when an artifact cannot describe a usable model
	ErrInvalidArtifact = errors.New("invalid model artifact")
	// ErrMissingColumn is returned when the input frame lacks a feature the model was trained on
	ErrMissingColumn = errors.New("missing input column")
	// ErrRaggedFrame is returned when the frame's columns differ in length
	ErrRaggedFrame = errors.New("input columns differ in length")
)

// Frame is tabular model input keyed by column name
type Frame map[string][]float64

// Model is a trained classifier producing one class value per frame row
type Model interface {
	Predict(frame Frame) ([]int, error)
	Features() []string
}

// columns resolves the model's features against the frame, in feature order
func columns(frame Frame, features []string) ([][]float64, int, error) {
	cols := make([][]float64, len(features))
	rows := -1
	for i, name := range features {
		col, ok := frame[name]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		if rows >= 0 && len(col) != rows {
			return nil, 0, ErrRaggedFrame
		}
		rows = len(col)
		cols[i] = col
	}
	return cols, rows, nil
}

type decisionTree struct {
	features []string
	nodes    []TreeNode
}

func newDecisionTree(a *Artifact) (*decisionTree, error) {
	if len(a.Nodes) == 0 {
		return nil, fmt.Errorf("%w: decision tree has no nodes", ErrInvalidArtifact)
	}

	for i, n := range a.Nodes {
		if n.Leaf {
			if len(a.Classes) > 0 && !containsInt(a.Classes, n.Class) {
				return nil, fmt.Errorf("%w: node %d predicts unknown class %d", ErrInvalidArtifact, i, n.Class)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= len(a.FeatureNames) {
			return nil, fmt.Errorf("%w: node %d splits on unknown feature %d", ErrInvalidArtifact, i, n.Feature)
		}
		// children must come after their parent, which also rules out cycles
		if n.Left <= i || n.Right <= i || n.Left >= len(a.Nodes) || n.Right >= len(a.Nodes) {
			return nil, fmt.Errorf("%w: node %d has out of range children", ErrInvalidArtifact, i)
		}
	}

	return &decisionTree{features: a.FeatureNames, nodes: a.Nodes}, nil
}

func (t *decisionTree) Features() []string { return t.features }

func (t *decisionTree) Predict(frame Frame) ([]int, error) {
	cols, rows, err := columns(frame, t.features)
	if err != nil {
		return nil, err
	}

	out := make([]int, rows)
	for r := 0; r < rows; r++ {
		i := 0
		for !t.nodes[i].Leaf {
			n := t.nodes[i]
			if cols[n.Feature][r] <= n.Threshold {
				i = n.Left
			} else {
				i = n.Right
			}
		}
		out[r] = t.nodes[i].Class
	}
	return out, nil
}

type logisticRegression struct {
	features  []string
	coef      []float64
	intercept float64
	classes   []int
}

func newLogisticRegression(a *Artifact) (*logisticRegression, error) {
	if len(a.Coef) != len(a.FeatureNames) {
		return nil, fmt.Errorf("%w: %d coefficients for %d features", ErrInvalidArtifact, len(a.Coef), len(a.FeatureNames))
	}
	if len(a.Classes) != 2 {
		return nil, fmt.Errorf("%w: logistic regression needs exactly two classes", ErrInvalidArtifact)
	}

	return &logisticRegression{
		features:  a.FeatureNames,
		coef:      a.Coef,
		intercept: a.Intercept,
		classes:   a.Classes,
	}, nil
}

func (m *logisticRegression) Features() []string { return m.features }

func (m *logisticRegression) Predict(frame Frame) ([]int, error) {
	cols, rows, err := columns(frame, m.features)
	if err != nil {
		return nil, err
	}

	out := make([]int, rows)
	for r := 0; r < rows; r++ {
		z := m.intercept
		for j, c := range m.coef {
			z += c * cols[j][r]
		}
		if 1/(1+math.Exp(-z)) >= 0.5 {
			out[r] = m.classes[1]
		} else {
			out[r] = m.classes[0]
		}
	}
	return out, nil
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
