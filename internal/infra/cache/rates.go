package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const ratesKey = "venue-admin:rates"

// RateCache stores the resolved rate table in Redis. A nil client turns every
// call into a miss so the service keeps working without Redis.
type RateCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

var _ shared.RateCache = (*RateCache)(nil)

func NewRateCache(client redis.Cmdable, ttl time.Duration) *RateCache {
	return &RateCache{client: client, ttl: ttl}
}

func (c *RateCache) enabled() bool {
	if c.client == nil {
		return false
	}
	if rc, ok := c.client.(*redis.Client); ok && rc == nil {
		return false
	}
	return true
}

func (c *RateCache) Get(ctx context.Context) (*pricing.RateTable, error) {
	if !c.enabled() {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, ratesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to read cached rates")
	}

	var rates pricing.RateTable
	if err := json.Unmarshal(raw, &rates); err != nil {
		return nil, errs.Wrap(err, "failed to decode cached rates")
	}
	return &rates, nil
}

func (c *RateCache) Set(ctx context.Context, rates pricing.RateTable) error {
	if !c.enabled() {
		return nil
	}
	raw, err := json.Marshal(rates)
	if err != nil {
		return errs.Wrap(err, "failed to encode rates")
	}
	if err := c.client.Set(ctx, ratesKey, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache rates")
	}
	return nil
}

func (c *RateCache) Invalidate(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	if err := c.client.Del(ctx, ratesKey).Err(); err != nil {
		return errs.Wrap(err, "failed to drop cached rates")
	}
	return nil
}
