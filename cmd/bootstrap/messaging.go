package bootstrap

import (
	"context"

	"venue-admin/internal/infra/broker"
	"venue-admin/internal/infra/cache"
	"venue-admin/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewRedis,
		NewPublisher,
	),
)

// NewRedis returns a nil Cmdable when Redis is unreachable so the rate cache
// turns into a pass-through.
func NewRedis(lc fx.Lifecycle, cfg config.Config) redis.Cmdable {
	client := cache.NewRedisClient(cfg.Redis)
	if client == nil {
		return nil
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*broker.Publisher, error) {
	p, err := broker.NewPublisher(cfg.Broker)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}
