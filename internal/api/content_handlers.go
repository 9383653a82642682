package api

import (
	"net/http"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService service.ContentService
	audit          service.AuditService
}

func NewContentHandler(contentService service.ContentService, audit service.AuditService) *ContentHandler {
	return &ContentHandler{contentService: contentService, audit: audit}
}

// @Summary Get site copy and settings
// @Tags Content
// @Produce json
// @Success 200 {object} models.SiteContent "Site content"
// @Router /content/main [get]
func (h *ContentHandler) GetSiteContent(c *gin.Context) {
	content, err := h.contentService.GetSiteContent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}
	c.JSON(http.StatusOK, content)
}

// @Summary Get theme settings
// @Tags Content
// @Produce json
// @Success 200 {object} models.ThemeSettings "Theme"
// @Router /content/theme [get]
func (h *ContentHandler) GetTheme(c *gin.Context) {
	theme, err := h.contentService.GetThemeSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch theme"})
		return
	}
	c.JSON(http.StatusOK, theme)
}

// @Summary Site status probe
// @Description Always reachable, even during maintenance
// @Tags Content
// @Produce json
// @Success 200 {object} map[string]bool "Maintenance flag"
// @Router /status [get]
func (h *ContentHandler) GetStatus(c *gin.Context) {
	maintenance, err := h.contentService.IsMaintenance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": maintenance})
}

// @Summary Update site copy and settings (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param content body models.SiteContent true "Site content"
// @Success 200 {object} map[string]string "Content updated"
// @Router /admin/content/main [put]
func (h *ContentHandler) SetSiteContent(c *gin.Context) {
	var content models.SiteContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.contentService.SetSiteContent(&content); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content"})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "update_content", c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"status": "Content updated"})
}

// @Summary Update theme settings (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param theme body models.ThemeSettings true "Theme"
// @Success 200 {object} map[string]string "Theme updated"
// @Router /admin/content/theme [put]
func (h *ContentHandler) SetTheme(c *gin.Context) {
	var theme models.ThemeSettings
	if err := c.ShouldBindJSON(&theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.contentService.SetThemeSettings(&theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update theme"})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "update_theme", c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"status": "Theme updated"})
}

type MaintenanceRequest struct {
	Maintenance bool `json:"maintenance"`
}

// @Summary Toggle maintenance mode (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status body MaintenanceRequest true "Maintenance flag"
// @Success 200 {object} map[string]interface{} "Status updated"
// @Router /admin/status/maintenance [put]
func (h *ContentHandler) SetMaintenance(c *gin.Context) {
	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.contentService.SetMaintenance(req.Maintenance); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "set_maintenance", c.ClientIP(), map[string]interface{}{
		"maintenance": req.Maintenance,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Status updated", "maintenance": req.Maintenance})
}
