package middleware

import (
	"net/http"
	"strings"

	"github.com/roobux/backend/internal/config"
	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// MaintenanceMiddleware turns the whole API away with 503 while the
// maintenance flag is set. Admin tokens pass so operators can turn the flag
// back off; the claim is checked before the flag is read.
func MaintenanceMiddleware(cfg *config.Config, contentService service.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdminToken(c, cfg) {
			c.Next()
			return
		}

		maintenance, err := contentService.IsMaintenance()
		if err != nil {
			// Fail open: an unreadable flag must not take the site down.
			logrus.WithError(err).Error("failed to read maintenance flag")
			c.Next()
			return
		}
		if maintenance {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"maintenance": true})
			return
		}
		c.Next()
	}
}

func isAdminToken(c *gin.Context, cfg *config.Config) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || len(authHeader) > maxAuthLen {
		return false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return false
	}
	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return isAdmin
}
