package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/riskwatch/internal/app/repositories"
	"github.com/yigit/riskwatch/internal/domain"
	"github.com/yigit/riskwatch/internal/pkg/auth"
)

// RiskClassifier labels a batch of GPA values, one label per value in order
type RiskClassifier interface {
	Predict(ctx context.Context, gpas []float64) ([]domain.RiskLabel, error)
}

// StatsCache stores computed dashboard statistics. A nil StatsCache disables caching.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	GetInt64(ctx context.Context, key string) (int64, error)
}

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	StudentService      StudentService
	PredictionService   PredictionService
	InterventionService InterventionService
	DashboardService    DashboardService
}

// Deps are the collaborators the services are built from
type Deps struct {
	Repositories *repositories.Repositories
	JWTService   *auth.JWTService
	Classifier   RiskClassifier
	StatsCache   StatsCache
	StatsTTL     time.Duration
	Logger       zerolog.Logger
}

// NewServices wires every service from deps
func NewServices(deps Deps) *Services {
	dashboard := NewDashboardService(deps.Repositories.StudentRepository, deps.Classifier, deps.StatsCache, deps.StatsTTL, deps.Logger)

	return &Services{
		AuthService:         NewAuthService(deps.Repositories.UserRepository, deps.JWTService, deps.Logger),
		StudentService:      NewStudentService(deps.Repositories.StudentRepository, dashboard, deps.Logger),
		PredictionService:   NewPredictionService(deps.Repositories.StudentRepository, deps.Classifier, deps.Logger),
		InterventionService: NewInterventionService(deps.Repositories.InterventionRepository, deps.Logger),
		DashboardService:    dashboard,
	}
}
