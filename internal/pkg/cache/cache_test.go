package cache

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "riskwatch:dashboard:stats", Key("dashboard:stats"))
}

func TestNewRedis_Unreachable(t *testing.T) {
	// grab a free port and close it so nothing is listening there
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := DefaultConfig()
	cfg.Addr = addr
	cfg.DialTimeout = 200 * time.Millisecond

	_, err = NewRedis(cfg)
	assert.ErrorIs(t, err, ErrCacheConnection)
}

func TestArgumentValidation(t *testing.T) {
	c := &Cache{client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})}
	defer c.Close()
	ctx := context.Background()

	var dest map[string]int
	assert.ErrorIs(t, c.GetJSON(ctx, "", &dest), ErrCacheKeyEmpty)
	assert.ErrorIs(t, c.SetJSON(ctx, "", 1, time.Minute), ErrCacheKeyEmpty)
	assert.ErrorIs(t, c.SetJSON(ctx, "k", 1, -time.Second), ErrCacheInvalidTTL)
	assert.ErrorIs(t, c.SetJSON(ctx, "k", make(chan int), time.Minute), ErrCacheSerialization)
	assert.NoError(t, c.Delete(ctx))

	_, err := c.Incr(ctx, "")
	assert.ErrorIs(t, err, ErrCacheKeyEmpty)
	_, err = c.GetInt64(ctx, "")
	assert.ErrorIs(t, err, ErrCacheKeyEmpty)
}
