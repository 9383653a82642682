package api

import (
	"net/http"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	referralService service.ReferralService
	contentService  service.ContentService
	audit           service.AuditService
}

func NewReferralHandler(referralService service.ReferralService, contentService service.ContentService, audit service.AuditService) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
		contentService:  contentService,
		audit:           audit,
	}
}

// @Summary Get own referral summary
// @Description Returns the user's referral code, payout history, and current program settings
// @Tags Referrals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ReferralSummary "Referral summary"
// @Router /referrals [get]
func (h *ReferralHandler) GetSummary(c *gin.Context) {
	userID, _ := actor(c)
	summary, err := h.referralService.GetUserSummary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrals"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Recent referral payouts (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Referral "Newest payouts first"
// @Router /admin/referrals [get]
func (h *ReferralHandler) GetRecent(c *gin.Context) {
	referrals, err := h.referralService.GetRecentReferrals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch referrals"})
		return
	}
	c.JSON(http.StatusOK, referrals)
}

// @Summary Get referral program settings (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ReferralSettings "Settings"
// @Router /admin/referrals/settings [get]
func (h *ReferralHandler) GetSettings(c *gin.Context) {
	settings, err := h.contentService.GetReferralSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary Update referral program settings (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param settings body models.ReferralSettings true "Settings"
// @Success 200 {object} map[string]string "Settings updated"
// @Router /admin/referrals/settings [put]
func (h *ReferralHandler) SetSettings(c *gin.Context) {
	var settings models.ReferralSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if settings.ReferrerPercent < 0 || settings.NewUserBonus < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Settings cannot be negative"})
		return
	}
	if err := h.contentService.SetReferralSettings(&settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "update_referral_settings", c.ClientIP(), map[string]interface{}{
		"referrer_percent": settings.ReferrerPercent,
		"new_user_bonus":   settings.NewUserBonus,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Settings updated"})
}
