package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/riskwatch/internal/app/models"
	"github.com/yigit/riskwatch/internal/db"
)

// IUserRepository defines user persistence used by the auth gateway
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// StudentMutator changes a loaded student before it is written back
type StudentMutator func(student *models.Student) error

// IStudentRepository defines student persistence
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	// Update loads the student, applies mutate and stores the result in one transaction
	Update(ctx context.Context, id int64, mutate StudentMutator) (*models.Student, error)
	// Delete removes the student and, through the foreign key, its interventions
	Delete(ctx context.Context, id int64) error
}

// InterventionMutator changes a loaded intervention before it is written back
type InterventionMutator func(intervention *models.Intervention) error

// IInterventionRepository defines intervention persistence
type IInterventionRepository interface {
	Create(ctx context.Context, intervention *models.Intervention) (*models.Intervention, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Intervention, error)
	Update(ctx context.Context, id int64, mutate InterventionMutator) (*models.Intervention, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         IUserRepository
	StudentRepository      IStudentRepository
	InterventionRepository IInterventionRepository
}

// NewRepositories initializes all Postgres repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(database),
		StudentRepository:      NewStudentRepository(database),
		InterventionRepository: NewInterventionRepository(database),
	}
}

// statementBuilder returns a squirrel builder using Postgres placeholders
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
