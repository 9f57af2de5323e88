package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/riskwatch/internal/app/models/dto"
	"github.com/yigit/riskwatch/internal/app/repositories"
	"github.com/yigit/riskwatch/internal/domain"
	"github.com/yigit/riskwatch/internal/pkg/apperrors"
	"github.com/yigit/riskwatch/internal/pkg/cache"
)

var (
	// DashboardStatsKey prefixes the cache keys of computed dashboard statistics
	DashboardStatsKey = cache.Key("dashboard:stats")
	// DashboardGenerationKey counts student changes. Stats are cached per generation.
	DashboardGenerationKey = cache.Key("dashboard:generation")
)

// dashboardStatsKey is the cache key for statistics computed at generation gen
func dashboardStatsKey(gen int64) string {
	return fmt.Sprintf("%s:%d", DashboardStatsKey, gen)
}

// DashboardService aggregates risk and GPA distributions over all students
type DashboardService interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	Invalidate(ctx context.Context)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	studentRepo repositories.IStudentRepository
	classifier  RiskClassifier
	cache       StatsCache
	ttl         time.Duration
	logger      zerolog.Logger
}

// NewDashboardService creates a new dashboard service. statsCache may be nil.
func NewDashboardService(studentRepo repositories.IStudentRepository, classifier RiskClassifier, statsCache StatsCache, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardServiceImpl{
		studentRepo: studentRepo,
		classifier:  classifier,
		cache:       statsCache,
		ttl:         ttl,
		logger:      logger,
	}
}

// GetStats returns cached statistics when available, otherwise computes them.
// The generation is read before the student list, so a result computed while a
// change commits lands under a key that readers no longer use.
func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	key, cacheable := s.currentKey(ctx)
	if cacheable {
		var cached dto.DashboardStatsResponse
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn().Err(err).Msg("Dashboard cache read failed")
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.SetJSON(ctx, key, stats, s.ttl); err != nil {
			s.logger.Warn().Err(err).Msg("Dashboard cache write failed")
		}
	}

	return stats, nil
}

// currentKey resolves the stats key for the current generation
func (s *dashboardServiceImpl) currentKey(ctx context.Context) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	gen, err := s.cache.GetInt64(ctx, DashboardGenerationKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard cache generation read failed")
		return "", false
	}
	return dashboardStatsKey(gen), true
}

func (s *dashboardServiceImpl) compute(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	stats := &dto.DashboardStatsResponse{}
	if len(students) == 0 {
		return stats, nil
	}

	if s.classifier == nil {
		return nil, apperrors.ErrClassifierUnavailable
	}

	gpas := make([]float64, len(students))
	for i, st := range students {
		gpas[i] = st.GPA
	}

	labels, err := s.classifier.Predict(ctx, gpas)
	if err != nil {
		s.logger.Error().Err(err).Int("students", len(students)).Msg("Classifier failed")
		return nil, err
	}

	for _, label := range labels {
		if label == domain.LabelAtRisk {
			stats.RiskDistribution.AtRisk++
		} else {
			stats.RiskDistribution.NotAtRisk++
		}
	}

	for _, gpa := range gpas {
		switch domain.BucketFor(gpa) {
		case domain.Bucket0To1:
			stats.GPADistribution.ZeroToOne++
		case domain.Bucket1To2:
			stats.GPADistribution.OneToTwo++
		case domain.Bucket2To3:
			stats.GPADistribution.TwoToThree++
		case domain.Bucket3To4:
			stats.GPADistribution.ThreeToFour++
		default:
			stats.GPADistribution.FourAndAbove++
		}
	}

	return stats, nil
}

// Invalidate moves the cache to a new generation and drops the previous entry.
// Failures are only logged.
func (s *dashboardServiceImpl) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	gen, err := s.cache.Incr(ctx, DashboardGenerationKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Dashboard cache invalidation failed")
		return
	}
	if err := s.cache.Delete(ctx, dashboardStatsKey(gen-1)); err != nil {
		s.logger.Warn().Err(err).Int64("generation", gen-1).Msg("Dashboard cache cleanup failed")
	}
}
