package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/riskwatch/internal/app/models"
	"github.com/yigit/riskwatch/internal/app/models/dto"
	"github.com/yigit/riskwatch/internal/app/repositories"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
)

// InterventionService tracks remedial actions taken for students
type InterventionService interface {
	ListInterventions(ctx context.Context, studentID int64) ([]*models.Intervention, error)
	CreateIntervention(ctx context.Context, studentID int64, req *dto.CreateInterventionRequest) (int64, error)
	UpdateIntervention(ctx context.Context, id int64, req *dto.UpdateInterventionRequest) (*models.Intervention, error)
}

// interventionServiceImpl implements the InterventionService interface
type interventionServiceImpl struct {
	interventionRepo repositories.IInterventionRepository
	logger           zerolog.Logger
}

// NewInterventionService creates a new intervention service instance
func NewInterventionService(interventionRepo repositories.IInterventionRepository, logger zerolog.Logger) InterventionService {
	return &interventionServiceImpl{
		interventionRepo: interventionRepo,
		logger:           logger,
	}
}

// ListInterventions returns the student's interventions, newest first.
// An unknown student simply has none.
func (s *interventionServiceImpl) ListInterventions(ctx context.Context, studentID int64) ([]*models.Intervention, error) {
	list, err := s.interventionRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving interventions: %w", err)
	}
	return list, nil
}

// CreateIntervention logs a new Pending intervention for an existing student
func (s *interventionServiceImpl) CreateIntervention(ctx context.Context, studentID int64, req *dto.CreateInterventionRequest) (int64, error) {
	if req == nil || strings.TrimSpace(req.Recommendation) == "" {
		return 0, fmt.Errorf("%w: recommendation cannot be empty", apperrors.ErrValidationFailed)
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	created, err := s.interventionRepo.Create(ctx, &models.Intervention{
		StudentID:      studentID,
		Recommendation: req.Recommendation,
		Status:         models.DefaultInterventionStatus,
		Notes:          &notes,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, fmt.Errorf("error creating intervention: %w", err)
	}

	s.logger.Info().Int64("interventionID", created.ID).Int64("studentID", studentID).Msg("Intervention logged")
	return created.ID, nil
}

// UpdateIntervention changes status and/or notes; omitted fields keep their value
func (s *interventionServiceImpl) UpdateIntervention(ctx context.Context, id int64, req *dto.UpdateInterventionRequest) (*models.Intervention, error) {
	if req == nil {
		req = &dto.UpdateInterventionRequest{}
	}

	updated, err := s.interventionRepo.Update(ctx, id, func(i *models.Intervention) error {
		if req.Status != nil {
			i.Status = *req.Status
		}
		if req.Notes != nil {
			notes := *req.Notes
			i.Notes = &notes
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInterventionNotFound) {
			return nil, apperrors.ErrInterventionNotFound
		}
		return nil, fmt.Errorf("error updating intervention: %w", err)
	}

	return updated, nil
}
