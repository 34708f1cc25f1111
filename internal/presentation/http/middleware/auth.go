package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stationops/fuelpos-api/internal/presentation/http/dto/response"
	"github.com/stationops/fuelpos-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware for operator
// sessions
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Authorization header must be in the format 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("operator_id", claims.OperatorID)
		c.Set("operator_username", claims.Username)
		c.Next()
	}
}
