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

// StudentService defines student record operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (int64, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// statsInvalidator drops cached aggregates after student changes
type statsInvalidator interface {
	Invalidate(ctx context.Context)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo repositories.IStudentRepository
	stats       statsInvalidator
	logger      zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository, stats statsInvalidator, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		stats:       stats,
		logger:      logger,
	}
}

func (s *studentServiceImpl) invalidate(ctx context.Context) {
	if s.stats != nil {
		s.stats.Invalidate(ctx)
	}
}

// CreateStudent stores a new student record
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (int64, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.StudentName) == "" {
		return 0, fmt.Errorf("%w: student_name cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.studentRepo.Create(ctx, req.ToModel())
	if err != nil {
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info().Int64("studentID", id).Msg("Student created")
	return id, nil
}

// ListStudents returns every student ordered by id
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent merges the allow-listed fields present in req into the stored record
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if req == nil {
		req = &dto.UpdateStudentRequest{}
	}
	if req.StudentName != nil && strings.TrimSpace(*req.StudentName) == "" {
		return nil, fmt.Errorf("%w: student_name cannot be empty", apperrors.ErrValidationFailed)
	}
	if nulled := req.NulledRequiredFields(); len(nulled) > 0 {
		return nil, fmt.Errorf("%w: %s cannot be null", apperrors.ErrValidationFailed, strings.Join(nulled, ", "))
	}

	student, err := s.studentRepo.Update(ctx, id, func(st *models.Student) error {
		req.Apply(st)
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	s.invalidate(ctx)
	return student, nil
}

// DeleteStudent removes a student and its interventions
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	s.invalidate(ctx)
	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}
