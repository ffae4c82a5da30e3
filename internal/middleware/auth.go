package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"tracking-service/pkg/jwtutil"
	"tracking-service/pkg/logger"
	"tracking-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware verifies the JWT token and extracts claims
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Track authentication attempts
		prometheus.AuthAttemptsCounter.Inc()

		// Extract the token from the Authorization header
		tokenString := c.Request().Header.Get("Authorization")
		if tokenString == "" {
			log.Warn("Missing authorization token")
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}

		// Remove "Bearer " prefix if present
		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:7]) == "BEARER " {
			tokenString = tokenString[7:]
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(tokenString)
		if err != nil {
			log.Warn("Invalid token", zap.Error(err))
			prometheus.AuthErrorsCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		}

		prometheus.AuthSuccessCounter.Inc()

		// Store user information in the context
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		// Update logger with user information
		log = log.With(
			zap.Uint("user_id", claims.UserID),
			zap.String("username", claims.Username),
		)
		c.Set("logger", log)

		return next(c)
	}
}

// RequireOwnData ensures the :userId route param matches the
// authenticated identity. Every tracking route sits behind this guard,
// so no handler can run against another user's data.
func RequireOwnData(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		authID, ok := c.Get("user_id").(uint)
		if !ok || authID == 0 {
			log.Warn("Missing authenticated user in context")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}

		routeID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
		if err != nil {
			log.Warn("Invalid userId route parameter", zap.String("userId", c.Param("userId")))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}

		if uint(routeID) != authID {
			log.Warn("Route user does not match token",
				zap.Uint64("route_user_id", routeID),
				zap.Uint("auth_user_id", authID))
			prometheus.TenantMismatchCounter.Inc()
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authorized for this user"})
		}

		return next(c)
	}
}
