//go:build unit

package cache_test

import (
	"context"
	"testing"

	"venue-admin/internal/infra/cache"
	"venue-admin/tests/common/builder"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCache_WithoutRedis(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name   string
		client redis.Cmdable
	}{
		{name: "nil interface", client: nil},
		{name: "typed nil client", client: (*redis.Client)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cache.NewRateCache(tt.client, 0)

			got, err := c.Get(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)

			assert.NoError(t, c.Set(ctx, builder.DefaultRates()))
			assert.NoError(t, c.Invalidate(ctx))
		})
	}
}
