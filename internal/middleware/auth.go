package middleware

import (
	"errors"
	"net/http"

	"bookshop-be/internal/auth"
	"bookshop-be/internal/httpx"
	"bookshop-be/internal/logger"
	"bookshop-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into an identity on the request context.
// It never rejects: requests without a valid token continue anonymously.
func Authenticate(svc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractAccessToken(c.Request)
		if token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		claims, err := svc.Authenticate(ctx, token)
		if err != nil {
			log := logger.FromCtx(ctx).With(zap.String("layer", "middleware"), zap.Error(err))
			if isTokenError(err) {
				log.Debug("token rejected")
			} else {
				log.Error("token check failed")
			}
			c.Next()
			return
		}

		ctx = utils.SetUserContext(ctx, claims.UserID, claims.Email, claims.Roles)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func isTokenError(err error) bool {
	return errors.Is(err, auth.ErrInvalidToken) ||
		errors.Is(err, auth.ErrTokenRevoked) ||
		errors.Is(err, auth.ErrNotAuthenticated)
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIDFromContext(c.Request.Context()); !ok {
			httpx.Error(c, http.StatusUnauthorized, "unauthenticated")
			return
		}
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if !utils.HasRole(ctx, role) {
			logger.FromCtx(ctx).Warn("role check failed",
				zap.String("required", role),
				zap.String("email", utils.GetUserEmailFromContext(ctx)),
			)
			httpx.Error(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}
