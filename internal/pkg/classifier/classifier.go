// Package classifier wraps the externally trained at-risk model. The model is
// loaded once at startup and only ever sees a single "GPA" column.
package classifier

import (
	"context"
	"fmt"

	"github.com/yigit/riskwatch/internal/domain"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
)

// FeatureGPA is the only column presented to the model
const FeatureGPA = "GPA"

// Adapter turns GPA values into risk labels using a loaded model
type Adapter struct {
	model Model
}

// New wraps an already built model
func New(model Model) *Adapter {
	return &Adapter{model: model}
}

// Load reads, validates and builds the artifact at path
func Load(path string) (*Adapter, error) {
	artifact, err := ReadArtifact(path)
	if err != nil {
		return nil, err
	}

	model, err := artifact.Build()
	if err != nil {
		return nil, err
	}

	for _, f := range model.Features() {
		if f != FeatureGPA {
			return nil, fmt.Errorf("%w: model expects column %q, only %q is supplied", ErrInvalidArtifact, f, FeatureGPA)
		}
	}

	return New(model), nil
}

// Predict labels each GPA in order. Labels are passed through from the model unchanged.
func (a *Adapter) Predict(ctx context.Context, gpas []float64) ([]domain.RiskLabel, error) {
	if a == nil || a.model == nil {
		return nil, apperrors.ErrClassifierUnavailable
	}
	if len(gpas) == 0 {
		return []domain.RiskLabel{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := a.model.Predict(Frame{FeatureGPA: gpas})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPredictionFailed, err)
	}
	if len(raw) != len(gpas) {
		return nil, fmt.Errorf("%w: model returned %d labels for %d rows", apperrors.ErrPredictionFailed, len(raw), len(gpas))
	}

	labels := make([]domain.RiskLabel, len(raw))
	for i, v := range raw {
		labels[i] = domain.RiskLabel(v)
	}
	return labels, nil
}

// Features reports the columns the loaded model was trained on
func (a *Adapter) Features() []string {
	if a == nil || a.model == nil {
		return nil
	}
	return a.model.Features()
}
