package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hbagde424/ElectionAT-sub001/internal/http/response"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

// Protect requires a valid bearer token and attaches the caller's RequestData
// to the request context.
func (am *AuthMiddleware) Protect() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Abort(c, apierr.Unauthorized("Not authorized to access this route"))
			return
		}
		rd, _, err := am.authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			am.log.Debug("token rejected", "error", err)
			response.Abort(c, err)
			return
		}
		c.Request = c.Request.WithContext(ctxutil.WithRequestData(c.Request.Context(), rd))
		c.Next()
	}
}

// Authorize admits callers holding one of roles. superAdmin always passes.
// It must run after Protect.
func (am *AuthMiddleware) Authorize(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		if rd == nil {
			response.Abort(c, apierr.Unauthorized("Not authorized to access this route"))
			return
		}
		if !rd.HasRole(roles...) {
			response.Abort(c, apierr.Forbidden("User role %s is not authorized to access this route", rd.Role))
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
