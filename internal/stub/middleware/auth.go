package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rentora/backoffice/jwtutil"
	"github.com/rentora/backoffice/logger"
)

// AuthMiddleware verifies the session token and stores its claims in the
// request context
func AuthMiddleware(jwtUtil *jwtutil.JWTUtil) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromEcho(c)

			tokenString := c.Request().Header.Get("Authorization")
			if tokenString == "" {
				log.Warn("Missing authorization token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}

			// Remove "Bearer " prefix if present
			if len(tokenString) > 7 && strings.ToUpper(tokenString[0:7]) == "BEARER " {
				tokenString = tokenString[7:]
			}

			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				log.Warn("Invalid token", zap.Error(err))
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			// Store operator information in the context
			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("role_id", claims.RoleID)

			// Regular operators carry their tenant in the token; super-admins
			// scope every call with the tenant_id parameter instead
			if claims.TenantID != nil {
				c.Set("tenant_id", *claims.TenantID)
				c.Set("tenant_name", claims.TenantName)

				log = log.With(
					zap.Uint("tenant_id", *claims.TenantID),
					zap.String("tenant_name", claims.TenantName),
				)
			}

			log = log.With(
				zap.Uint("user_id", claims.UserID),
				zap.String("email", claims.Email),
			)
			c.Set("logger", log)

			return next(c)
		}
	}
}
