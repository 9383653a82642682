package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roobux/backend/internal/config"
	"github.com/roobux/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type fakeContentService struct {
	maintenance bool
}

func (f *fakeContentService) GetSiteContent() (*models.SiteContent, error)     { return nil, nil }
func (f *fakeContentService) SetSiteContent(*models.SiteContent) error         { return nil }
func (f *fakeContentService) GetThemeSettings() (*models.ThemeSettings, error) { return nil, nil }
func (f *fakeContentService) SetThemeSettings(*models.ThemeSettings) error     { return nil }
func (f *fakeContentService) GetReferralSettings() (*models.ReferralSettings, error) {
	return nil, nil
}
func (f *fakeContentService) SetReferralSettings(*models.ReferralSettings) error { return nil }
func (f *fakeContentService) IsMaintenance() (bool, error)                       { return f.maintenance, nil }
func (f *fakeContentService) SetMaintenance(on bool) error {
	f.maintenance = on
	return nil
}

func maintenanceRouter(cfg *config.Config, content *fakeContentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MaintenanceMiddleware(cfg, content))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func signToken(t *testing.T, cfg *config.Config, isAdmin bool) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  "64b0c0ffee0000000000beef",
		"is_admin": isAdmin,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestMaintenanceOff(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := maintenanceRouter(cfg, &fakeContentService{maintenance: false})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMaintenanceBlocksAnonymous(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := maintenanceRouter(cfg, &fakeContentService{maintenance: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"maintenance": true}`, w.Body.String())
}

func TestMaintenanceBlocksRegularUser(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := maintenanceRouter(cfg, &fakeContentService{maintenance: true})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, false))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMaintenanceAdmitsAdmin(t *testing.T) {
	cfg := &config.Config{JWTSecret: "secret"}
	r := maintenanceRouter(cfg, &fakeContentService{maintenance: true})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, true))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
