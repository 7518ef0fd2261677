package bootstrap

import (
	"log/slog"

	"venue-admin/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfig),
)

// logConfig records the pricing-relevant settings at startup. Secrets and
// DSNs stay out of the log.
func logConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"venue_timezone", cfg.Venue.TimeZone,
		"tax_rate", cfg.Venue.TaxRate.String(),
		"catalog_url", cfg.Catalog.BaseURL,
		"redis_addr", cfg.Redis.Addr,
		"broker_enabled", cfg.Broker.URL != "",
	)
}
