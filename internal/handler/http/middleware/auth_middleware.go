package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainService "github.com/Ghorpaderamdas/Hotel/internal/domain/service"
)

const (
	authHeaderKey  = "Authorization"
	authTypeBearer = "bearer"

	ContextClaimsKey = "claims"
)

// TokenVerifier is the slice of the auth service the middleware needs.
type TokenVerifier interface {
	VerifySessionToken(tokenString string) (*domainService.Claims, error)
}

// AuthMiddleware validates the bearer session token on protected routes and
// stores the resulting claims in the gin context. All verification failures
// render the same generic 401; the precise reason goes to the log only.
func AuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authHeaderKey)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != authTypeBearer {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <token>"})
			return
		}

		claims, err := verifier.VerifySessionToken(parts[1])
		if err != nil {
			logger.Warn("session token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by AuthMiddleware, or nil.
func ClaimsFromContext(c *gin.Context) *domainService.Claims {
	value, exists := c.Get(ContextClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*domainService.Claims)
	if !ok {
		return nil
	}
	return claims
}
