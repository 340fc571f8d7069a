package middleware

import (
	"context"

	"github.com/SscSPs/ark_management_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is the type of the keys this package stores in a context.Context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	principalCtxKey = contextKey("principal")
)

// WithPrincipal returns a copy of ctx carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFromCtx returns the authenticated caller stored by AuthMiddleware.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(domain.Principal)
	return p, ok
}

// GetPrincipalFromContext retrieves the authenticated caller of a gin request.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	return PrincipalFromCtx(c.Request.Context())
}
