package test

import (
	"CivicReportAPI/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowRateLimit(t *testing.T) {
	clearDatabase(context.Background())

	repo := repository.NewRateLimitRepository(redisAdapter)
	key := "ratelimit:test:fixed-window"
	limit := 3
	window := 2 * time.Second

	for i := 0; i < limit; i++ {
		allowed, _, err := repo.Allow(context.Background(), key, limit, window)
		assert.NoError(t, err)
		assert.True(t, allowed, "request %d inside the limit must pass", i+1)
	}

	allowed, ttl, err := repo.Allow(context.Background(), key, limit, window)
	assert.NoError(t, err)
	assert.False(t, allowed, "request over the limit must be denied")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, window)
}
