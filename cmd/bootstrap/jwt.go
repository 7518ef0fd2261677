package bootstrap

import (
	"venue-admin/internal/pkg/config"
	"venue-admin/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Tokens come from the identity provider; this service only verifies them,
// so no lifetime is configured.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, 0)
}
