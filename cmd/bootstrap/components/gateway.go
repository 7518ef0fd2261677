package components

import (
	"venue-admin/internal/infra/broker"
	"venue-admin/internal/infra/cache"
	"venue-admin/internal/infra/catalogapi"
	"venue-admin/internal/pkg/config"
	"venue-admin/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// GatewayModule binds the venue API client, the rate cache and the event
// publisher to their usecase ports.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewCatalogClient,
		func(c *catalogapi.Client) shared.CatalogClient { return c },
		func(c *catalogapi.Client) shared.ReservationGateway { return c },
		NewRateCache,
		func(p *broker.Publisher) shared.EventPublisher { return p },
	),
)

func NewCatalogClient(cfg config.Config) *catalogapi.Client {
	return catalogapi.NewClient(cfg.Catalog)
}

func NewRateCache(client redis.Cmdable, cfg config.Config) shared.RateCache {
	return cache.NewRateCache(client, cfg.Redis.RateTTL)
}
