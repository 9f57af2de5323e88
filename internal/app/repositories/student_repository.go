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
	"github.com/yigit/riskwatch/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
		sb: statementBuilder(),
	}
}

func studentSelectColumns() []string {
	return append([]string{"id"}, models.StudentColumns...)
}

// Create inserts a student and returns the generated id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns(models.StudentColumns...).
		Values(student.ColumnValues()...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return student.ID, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentSelectColumns()...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	if err := r.db.Pool.QueryRow(ctx, sql, args...).Scan(student.ScanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// List retrieves all students ordered by id, without interventions
func (r *StudentRepository) List(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentSelectColumns()...).
		From("students").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(student.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update locks the row, applies mutate and writes every mutable column back
func (r *StudentRepository) Update(ctx context.Context, id int64, mutate StudentMutator) (*models.Student, error) {
	selectSQL, selectArgs, err := r.sb.Select(studentSelectColumns()...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lock student query: %w", err)
	}

	var updated *models.Student
	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		student := &models.Student{}
		if err := tx.QueryRow(ctx, selectSQL, selectArgs...).Scan(student.ScanTargets()...); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error loading student: %w", err)
		}

		if err := mutate(student); err != nil {
			return err
		}
		student.ID = id

		setMap := make(map[string]interface{}, len(models.StudentColumns))
		values := student.ColumnValues()
		for i, col := range models.StudentColumns {
			setMap[col] = values[i]
		}

		sql, args, err := r.sb.Update("students").
			SetMap(setMap).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update student query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			logger.Error().Err(err).Int64("studentID", id).Msg("Error executing update student query")
			return fmt.Errorf("error updating student: %w", err)
		}

		updated = student
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a student; interventions go with it via ON DELETE CASCADE
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
