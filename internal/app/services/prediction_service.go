package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/riskwatch/internal/app/models/dto"
	"github.com/yigit/riskwatch/internal/app/repositories"
	"github.com/yigit/riskwatch/internal/domain"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
)

// PredictionService produces a risk assessment for a stored student
type PredictionService interface {
	PredictStudent(ctx context.Context, id int64) (*dto.PredictionResponse, error)
}

// predictionServiceImpl implements the PredictionService interface
type predictionServiceImpl struct {
	studentRepo repositories.IStudentRepository
	classifier  RiskClassifier
	logger      zerolog.Logger
}

// NewPredictionService creates a new prediction service instance
func NewPredictionService(studentRepo repositories.IStudentRepository, classifier RiskClassifier, logger zerolog.Logger) PredictionService {
	return &predictionServiceImpl{
		studentRepo: studentRepo,
		classifier:  classifier,
		logger:      logger,
	}
}

// PredictStudent classifies the student's GPA and applies the recommendation rules
func (s *predictionServiceImpl) PredictStudent(ctx context.Context, id int64) (*dto.PredictionResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if s.classifier == nil {
		return nil, apperrors.ErrClassifierUnavailable
	}

	labels, err := s.classifier.Predict(ctx, []float64{student.GPA})
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", id).Msg("Classifier failed")
		return nil, err
	}
	if len(labels) != 1 {
		return nil, fmt.Errorf("%w: expected 1 label, got %d", apperrors.ErrPredictionFailed, len(labels))
	}

	label := labels[0]
	advice := domain.Recommend(label, student.GPA, student.Absences)

	return &dto.PredictionResponse{
		StudentID:       student.ID,
		StudentName:     student.StudentName,
		Prediction:      int(label),
		PredictionLabel: label.String(),
		Recommendation:  advice.Recommendation,
		Explanation:     advice.Explanation,
	}, nil
}
