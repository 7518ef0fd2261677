//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"venue-admin/internal/pkg/config"
	"venue-admin/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the identity provider does.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, roles ...string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, time.Hour)
	token, err := service.GenerateToken(userID, roles)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, userID, h.cfg.AdminRole)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, time.Millisecond)
	token, err := service.GenerateToken(userID, []string{h.cfg.AdminRole})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
