package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/riskwatch/internal/app/controllers"
	appMigrations "github.com/yigit/riskwatch/internal/app/migrations"
	appRepos "github.com/yigit/riskwatch/internal/app/repositories"
	appRoutes "github.com/yigit/riskwatch/internal/app/routes"
	appServices "github.com/yigit/riskwatch/internal/app/services"
	"github.com/yigit/riskwatch/internal/config"
	"github.com/yigit/riskwatch/internal/db"
	appMiddleware "github.com/yigit/riskwatch/internal/middleware"
	pkgAuth "github.com/yigit/riskwatch/internal/pkg/auth"
	"github.com/yigit/riskwatch/internal/pkg/cache"
	"github.com/yigit/riskwatch/internal/pkg/classifier"
	"github.com/yigit/riskwatch/internal/pkg/helpers"
	"github.com/yigit/riskwatch/internal/pkg/logger"
	"github.com/yigit/riskwatch/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Classifier     *classifier.Adapter
	Cache          *cache.Cache // nil when Redis is not configured
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: "riskwatch",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds the initial user.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	initial := seed.InitialUser{Username: cfg.Seed.Username, Password: cfg.Seed.Password}
	if err := seed.CreateDefaultData(ctx, appRepos.NewUserRepository(database), initial, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// LoadClassifier loads the trained model artifact. Failure is fatal for startup.
func LoadClassifier(cfg *config.Config, lgr zerolog.Logger) (*classifier.Adapter, error) {
	adapter, err := classifier.Load(cfg.Classifier.ArtifactPath)
	if err != nil {
		lgr.Error().Err(err).Str("path", cfg.Classifier.ArtifactPath).Msg("Failed to load classifier artifact")
		return nil, fmt.Errorf("failed to load classifier: %w", err)
	}

	lgr.Info().Str("path", cfg.Classifier.ArtifactPath).Strs("features", adapter.Features()).Msg("Classifier loaded")
	return adapter, nil
}

// SetupCache connects to Redis when configured. Connection failures disable
// caching instead of aborting startup.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) *cache.Cache {
	if !cfg.CacheEnabled() {
		lgr.Info().Msg("Redis not configured, dashboard cache disabled")
		return nil
	}

	cacheCfg := cache.DefaultConfig()
	cacheCfg.Addr = cfg.Redis.Addr
	cacheCfg.Password = cfg.Redis.Password
	cacheCfg.DB = cfg.Redis.DB

	c, err := cache.NewRedis(cacheCfg)
	if err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unavailable, dashboard cache disabled")
		return nil
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Dashboard cache enabled")
	return c
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, clf *classifier.Adapter, statsCache *cache.Cache, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories(database)
	return buildDependencies(cfg, repos, database, clf, statsCache, lgr)
}

func buildDependencies(cfg *config.Config, repos *appRepos.Repositories, pinger appControllers.Pinger, clf *classifier.Adapter, statsCache *cache.Cache, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Repos:      repos,
		Classifier: clf,
		Cache:      statsCache,
		Logger:     lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	svcDeps := appServices.Deps{
		Repositories: repos,
		JWTService:   deps.JWTService,
		StatsTTL:     helpers.ParseDuration(cfg.Redis.DashboardTTL, 5*time.Minute),
		Logger:       lgr,
	}
	// Typed nils must not leak into the interfaces
	if clf != nil {
		svcDeps.Classifier = clf
	}
	if statsCache != nil {
		svcDeps.StatsCache = statsCache
	}
	deps.Services = appServices.NewServices(svcDeps)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.AuthService, lgr),
		Student:      appControllers.NewStudentController(deps.Services.StudentService, lgr),
		Prediction:   appControllers.NewPredictionController(deps.Services.PredictionService, lgr),
		Intervention: appControllers.NewInterventionController(deps.Services.InterventionService, lgr),
		Dashboard:    appControllers.NewDashboardController(deps.Services.DashboardService, lgr),
		Health:       appControllers.NewHealthController(pinger),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.Server.CORSAllowedOrigins))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
