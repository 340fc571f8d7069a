package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/SscSPs/ark_management_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// LegacyTokenHeader is the session header sent by the existing browser client.
const LegacyTokenHeader = "x-auth-token"

// AuthMiddleware creates a Gin middleware handler that validates session tokens and stores
// the caller's principal and an enriched logger in the request context.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, ok := extractToken(c)
		if !ok {
			logger.Warn("Session token missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret, issuer)
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		principal := claims.Principal()
		enriched := logger.With(
			slog.String("user_id", principal.UserID),
			slog.String("tenant_id", principal.TenantID),
			slog.String("role", string(principal.Role)),
		)

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(WithLogger(ctx, enriched))
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			return "", false
		}
		return strings.TrimSpace(token), true
	}
	if token := strings.TrimSpace(c.GetHeader(LegacyTokenHeader)); token != "" {
		return token, true
	}
	return "", false
}

// RequireRole rejects authenticated callers whose role differs from role.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if principal.Role != role {
			GetLoggerFromCtx(c.Request.Context()).Warn("Role check failed", slog.String("required", string(role)))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}

// RequireTenant rejects callers that are not scoped to a tenant.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !principal.HasTenant() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User is not linked to a client"})
			return
		}
		c.Next()
	}
}
