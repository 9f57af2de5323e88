package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported model types
const (
	ModelTypeDecisionTree       = "decision_tree"
	ModelTypeLogisticRegression = "logistic_regression"
)

// Artifact is the portable export of a trained model. Decision trees follow the
// usual convention: a row goes left when its feature value is <= threshold.
type Artifact struct {
	ModelType    string     `json:"model_type" yaml:"model_type"`
	FeatureNames []string   `json:"feature_names" yaml:"feature_names"`
	Classes      []int      `json:"classes" yaml:"classes"`
	Nodes        []TreeNode `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Coef         []float64  `json:"coef,omitempty" yaml:"coef,omitempty"`
	Intercept    float64    `json:"intercept,omitempty" yaml:"intercept,omitempty"`
}

// TreeNode is either a split (Feature, Threshold, Left, Right) or a leaf carrying Class
type TreeNode struct {
	Leaf      bool    `json:"leaf,omitempty" yaml:"leaf,omitempty"`
	Class     int     `json:"class,omitempty" yaml:"class,omitempty"`
	Feature   int     `json:"feature,omitempty" yaml:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty" yaml:"threshold,omitempty"`
	Left      int     `json:"left,omitempty" yaml:"left,omitempty"`
	Right     int     `json:"right,omitempty" yaml:"right,omitempty"`
}

// ReadArtifact decodes an artifact file. Files ending in .yaml or .yml are read as YAML,
// everything else as JSON.
func ReadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	artifact := &Artifact{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, artifact)
	default:
		err = json.Unmarshal(data, artifact)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse model artifact %s: %w", path, err)
	}

	return artifact, nil
}

// Build validates the artifact and returns the model it describes
func (a *Artifact) Build() (Model, error) {
	if len(a.FeatureNames) == 0 {
		return nil, fmt.Errorf("%w: no feature names", ErrInvalidArtifact)
	}

	switch a.ModelType {
	case ModelTypeDecisionTree:
		return newDecisionTree(a)
	case ModelTypeLogisticRegression:
		return newLogisticRegression(a)
	default:
		return nil, fmt.Errorf("%w: unsupported model type %q", ErrInvalidArtifact, a.ModelType)
	}
}
