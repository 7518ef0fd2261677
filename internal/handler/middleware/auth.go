package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"venue-admin/internal/handler/httperr"
	"venue-admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken = errors.New("access token required")
	errNotAdmin     = errors.New("admin role required")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	adminRole      string
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserRolesKey = "user_roles"
	ctxTokenKey     = "access_token"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, adminRole string) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		adminRole:      adminRole,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, principal.UserID)
		c.Set(ctxUserRolesKey, principal.Roles)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, ok := GetUserRoles(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("roles missing from context"), "Internal server error", nil)
			return
		}

		for _, r := range roles {
			if r == m.adminRole {
				c.Next()
				return
			}
		}
		httperr.AbortWithError(c, http.StatusForbidden, errNotAdmin, "You are not an admin", nil)
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRoles(c *gin.Context) ([]string, bool) {
	v, exists := c.Get(ctxUserRolesKey)
	if !exists {
		return nil, false
	}

	roles, ok := v.([]string)
	return roles, ok
}

// GetAccessToken returns the raw bearer token, forwarded to the venue API.
func GetAccessToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxTokenKey)
	if !exists {
		return "", false
	}

	token, ok := v.(string)
	return token, ok && token != ""
}
