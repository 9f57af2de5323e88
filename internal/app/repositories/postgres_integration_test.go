package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/riskwatch/internal/app/migrations"
	"github.com/yigit/riskwatch/internal/app/models"
	"github.com/yigit/riskwatch/internal/db"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
	"github.com/yigit/riskwatch/internal/pkg/logger"
)

// openTestDB connects to TEST_DATABASE_URL, applies migrations and
// truncates the tables. Skips when the variable is unset.
func openTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool, logger.Get()).MigrateFromDirectory(ctx, "../../../migrations"))
	_, err = pool.Exec(ctx, `TRUNCATE interventions, students, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return db.NewFromPool(pool)
}

func strPtr(s string) *string { return &s }

func TestPostgresRepositories(t *testing.T) {
	database := openTestDB(t)
	repos := NewRepositories(database)
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		_, err := repos.UserRepository.Create(ctx, &models.User{Username: "advisor", PasswordHash: "x"})
		require.NoError(t, err)

		_, err = repos.UserRepository.Create(ctx, &models.User{Username: "advisor", PasswordHash: "y"})
		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

		exists, err := repos.UserRepository.UsernameExists(ctx, "advisor")
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = repos.UserRepository.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("students and interventions", func(t *testing.T) {
		id, err := repos.StudentRepository.Create(ctx, &models.Student{
			StudentName: "Jane", Age: 17, GPA: 2.5, Absences: 3, StudyTimeWeekly: 8, Gender: strPtr("Female"),
		})
		require.NoError(t, err)

		updated, err := repos.StudentRepository.Update(ctx, id, func(s *models.Student) error {
			s.GPA = 0.8
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 0.8, updated.GPA)
		assert.Equal(t, "Female", *updated.Gender)

		in, err := repos.InterventionRepository.Create(ctx, &models.Intervention{StudentID: id, Recommendation: "call"})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultInterventionStatus, in.Status)

		_, err = repos.InterventionRepository.Update(ctx, in.ID, func(i *models.Intervention) error {
			i.Status = "Completed"
			return nil
		})
		require.NoError(t, err)

		list, err := repos.InterventionRepository.ListByStudent(ctx, id)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Completed", list[0].Status)
		assert.Nil(t, list[0].Notes)

		_, err = repos.InterventionRepository.Create(ctx, &models.Intervention{StudentID: id + 100, Recommendation: "x"})
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

		require.NoError(t, repos.StudentRepository.Delete(ctx, id))
		list, err = repos.InterventionRepository.ListByStudent(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = repos.StudentRepository.GetByID(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}
