package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/riskwatch/internal/app/models"
	"github.com/yigit/riskwatch/internal/db"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
	"github.com/yigit/riskwatch/internal/pkg/dberrors"
	"github.com/yigit/riskwatch/internal/pkg/logger"
)

var interventionColumns = []string{"id", "student_id", "recommendation", "status", "notes", "created_at"}

// InterventionRepository handles intervention database operations
type InterventionRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewInterventionRepository creates a new InterventionRepository
func NewInterventionRepository(database *db.PostgresDB) *InterventionRepository {
	return &InterventionRepository{
		db: database,
		sb: statementBuilder(),
	}
}

func scanIntervention(row pgx.Row) (*models.Intervention, error) {
	i := &models.Intervention{}
	err := row.Scan(&i.ID, &i.StudentID, &i.Recommendation, &i.Status, &i.Notes, &i.CreatedAt)
	return i, err
}

// Create inserts an intervention; id and created_at are assigned by the database
func (r *InterventionRepository) Create(ctx context.Context, intervention *models.Intervention) (*models.Intervention, error) {
	status := intervention.Status
	if status == "" {
		status = models.DefaultInterventionStatus
	}

	sql, args, err := r.sb.Insert("interventions").
		Columns("student_id", "recommendation", "status", "notes").
		Values(intervention.StudentID, intervention.Recommendation, status, intervention.Notes).
		Suffix("RETURNING id, student_id, recommendation, status, notes, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create intervention query: %w", err)
	}

	created, err := scanIntervention(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", intervention.StudentID).Msg("Error executing create intervention query")
		return nil, fmt.Errorf("error creating intervention: %w", err)
	}

	return created, nil
}

// ListByStudent returns a student's interventions, newest first
func (r *InterventionRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Intervention, error) {
	sql, args, err := r.sb.Select(interventionColumns...).
		From("interventions").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list interventions query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying interventions: %w", err)
	}
	defer rows.Close()

	interventions := []*models.Intervention{}
	for rows.Next() {
		i, err := scanIntervention(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning intervention row: %w", err)
		}
		interventions = append(interventions, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating intervention rows: %w", err)
	}

	return interventions, nil
}

// Update locks the intervention, applies mutate and stores status and notes
func (r *InterventionRepository) Update(ctx context.Context, id int64, mutate InterventionMutator) (*models.Intervention, error) {
	selectSQL, selectArgs, err := r.sb.Select(interventionColumns...).
		From("interventions").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lock intervention query: %w", err)
	}

	var updated *models.Intervention
	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		intervention, err := scanIntervention(tx.QueryRow(ctx, selectSQL, selectArgs...))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrInterventionNotFound
			}
			return fmt.Errorf("error loading intervention: %w", err)
		}

		if err := mutate(intervention); err != nil {
			return err
		}

		sql, args, err := r.sb.Update("interventions").
			Set("status", intervention.Status).
			Set("notes", intervention.Notes).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update intervention query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("interventionID", id).Msg("Error executing update intervention query")
			return fmt.Errorf("error updating intervention: %w", err)
		}

		updated = intervention
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
