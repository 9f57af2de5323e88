// Package repotest provides in-memory repositories that mirror the
// Postgres constraints, for tests that run without a database.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/riskwatch/internal/app/models"
	"github.com/yigit/riskwatch/internal/app/repositories"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
)

// Store is shared by the memory repositories so student deletes cascade
// and intervention inserts see the student table.
type Store struct {
	mu            sync.Mutex
	users         map[int64]models.User
	students      map[int64]models.Student
	interventions map[int64]models.Intervention
	nextID        map[string]int64

	// Now stamps created_at; tests may replace it
	Now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:         make(map[int64]models.User),
		students:      make(map[int64]models.Student),
		interventions: make(map[int64]models.Intervention),
		nextID:        make(map[string]int64),
		Now:           time.Now,
	}
}

// NewRepositories returns a repository container backed by a fresh store
func NewRepositories() (*repositories.Repositories, *Store) {
	s := NewStore()
	return &repositories.Repositories{
		UserRepository:         &UserRepository{s},
		StudentRepository:      &StudentRepository{s},
		InterventionRepository: &InterventionRepository{s},
	}, s
}

func (s *Store) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// InterventionCount returns the number of stored interventions
func (s *Store) InterventionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.interventions)
}

// UserRepository is an in-memory IUserRepository
type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, user *models.User) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return 0, apperrors.ErrUsernameTaken
		}
	}
	user.ID = r.s.id("users")
	user.CreatedAt = r.s.Now()
	r.s.users[user.ID] = *user
	return user.ID, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// StudentRepository is an in-memory IStudentRepository
type StudentRepository struct{ s *Store }

func (r *StudentRepository) Create(_ context.Context, student *models.Student) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	student.ID = r.s.id("students")
	stored := *student
	stored.Interventions = nil
	r.s.students[student.ID] = stored
	return student.ID, nil
}

func (r *StudentRepository) GetByID(_ context.Context, id int64) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &st, nil
}

func (r *StudentRepository) List(_ context.Context) ([]*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*models.Student, 0, len(r.s.students))
	for _, st := range r.s.students {
		st := st
		out = append(out, &st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *StudentRepository) Update(_ context.Context, id int64, mutate repositories.StudentMutator) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if err := mutate(&st); err != nil {
		return nil, err
	}
	st.ID = id
	r.s.students[id] = st
	return &st, nil
}

func (r *StudentRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(r.s.students, id)
	for iid, in := range r.s.interventions {
		if in.StudentID == id {
			delete(r.s.interventions, iid)
		}
	}
	return nil
}

// InterventionRepository is an in-memory IInterventionRepository
type InterventionRepository struct{ s *Store }

func (r *InterventionRepository) Create(_ context.Context, intervention *models.Intervention) (*models.Intervention, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.students[intervention.StudentID]; !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	created := *intervention
	if created.Status == "" {
		created.Status = models.DefaultInterventionStatus
	}
	created.ID = r.s.id("interventions")
	created.CreatedAt = r.s.Now()
	r.s.interventions[created.ID] = created
	return &created, nil
}

func (r *InterventionRepository) ListByStudent(_ context.Context, studentID int64) ([]*models.Intervention, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []*models.Intervention{}
	for _, in := range r.s.interventions {
		if in.StudentID == studentID {
			in := in
			out = append(out, &in)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *InterventionRepository) Update(_ context.Context, id int64, mutate repositories.InterventionMutator) (*models.Intervention, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	in, ok := r.s.interventions[id]
	if !ok {
		return nil, apperrors.ErrInterventionNotFound
	}
	if err := mutate(&in); err != nil {
		return nil, err
	}
	// only status and notes are persisted
	stored := r.s.interventions[id]
	stored.Status = in.Status
	stored.Notes = in.Notes
	r.s.interventions[id] = stored
	return &stored, nil
}
