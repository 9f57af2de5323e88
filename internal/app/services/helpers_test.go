package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/riskwatch/internal/app/repositories"
	"github.com/yigit/riskwatch/internal/app/repositories/repotest"
	"github.com/yigit/riskwatch/internal/domain"
	"github.com/yigit/riskwatch/internal/pkg/auth"
	"github.com/yigit/riskwatch/internal/pkg/cache"
)

// thresholdClassifier labels a GPA at risk when it is below cutoff
type thresholdClassifier struct {
	cutoff float64
	calls  int
	err    error
}

func (c *thresholdClassifier) Predict(_ context.Context, gpas []float64) ([]domain.RiskLabel, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.RiskLabel, len(gpas))
	for i, g := range gpas {
		if g < c.cutoff {
			out[i] = domain.LabelAtRisk
		}
	}
	return out, nil
}

// fixedClassifier always returns the same label
type fixedClassifier struct{ label domain.RiskLabel }

func (c fixedClassifier) Predict(_ context.Context, gpas []float64) ([]domain.RiskLabel, error) {
	out := make([]domain.RiskLabel, len(gpas))
	for i := range out {
		out[i] = c.label
	}
	return out, nil
}

// memoryCache is a StatsCache backed by a map
type memoryCache struct {
	data     map[string][]byte
	counters map[string]int64
	getErr   error
	deletes  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte), counters: make(map[string]int64)}
}

func (m *memoryCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.deletes++
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	m.counters[key]++
	return m.counters[key], nil
}

func (m *memoryCache) GetInt64(_ context.Context, key string) (int64, error) {
	return m.counters[key], nil
}

// statsKey is the key the dashboard currently reads from
func (m *memoryCache) statsKey() string {
	return dashboardStatsKey(m.counters[DashboardGenerationKey])
}

func newTestJWT() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "riskwatch-test",
	})
}

func newTestServices(t *testing.T, clf RiskClassifier, statsCache StatsCache) (*Services, *repositories.Repositories, *repotest.Store) {
	t.Helper()
	repos, store := repotest.NewRepositories()
	svc := NewServices(Deps{
		Repositories: repos,
		JWTService:   newTestJWT(),
		Classifier:   clf,
		StatsCache:   statsCache,
		StatsTTL:     time.Minute,
		Logger:       zerolog.Nop(),
	})
	return svc, repos, store
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
