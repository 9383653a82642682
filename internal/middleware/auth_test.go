package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/roobux/backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AdminAuthMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuthRejectsMissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	w := httptest.NewRecorder()
	adminRouter(cfg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsUserToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, false))
	w := httptest.NewRecorder()
	adminRouter(cfg).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	other := &config.Config{JWTSecret: "other"}
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, other, true))
	w := httptest.NewRecorder()
	adminRouter(cfg).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthAcceptsAdminToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, true))
	w := httptest.NewRecorder()
	adminRouter(cfg).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
