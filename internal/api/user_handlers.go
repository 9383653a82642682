package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	audit       service.AuditService
}

func NewUserHandler(userService service.UserService, audit service.AuditService) *UserHandler {
	return &UserHandler{userService: userService, audit: audit}
}

// @Summary Get the authenticated user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "User profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, _ := actor(c)
	user, err := h.userService.GetUser(userID)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary List all users (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User "Users"
// @Failure 500 {object} map[string]string "Server error"
// @Router /admin/users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

type SetBalanceRequest struct {
	Balance float64 `json:"balance" binding:"min=0"`
}

// @Summary Set a user's balance (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param balance body SetBalanceRequest true "New balance"
// @Success 200 {object} map[string]string "Balance updated"
// @Failure 400 {object} map[string]string "Invalid JSON or user ID"
// @Router /admin/users/{id}/balance [put]
func (h *UserHandler) SetBalance(c *gin.Context) {
	var req SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	id := c.Param("id")
	if err := h.userService.SetBalance(id, req.Balance); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "set_balance", c.ClientIP(), map[string]interface{}{
		"user_id": id,
		"balance": req.Balance,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Balance updated"})
}

type SetBannedRequest struct {
	Banned bool `json:"banned"`
}

// @Summary Ban or unban a user (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param banned body SetBannedRequest true "Ban flag"
// @Success 200 {object} map[string]string "User status updated"
// @Failure 400 {object} map[string]string "Invalid JSON or user ID"
// @Router /admin/users/{id}/ban [put]
func (h *UserHandler) SetBanned(c *gin.Context) {
	var req SetBannedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	id := c.Param("id")
	if err := h.userService.SetBanned(id, req.Banned); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := "unbanned"
	if req.Banned {
		status = "banned"
	}
	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "set_banned", c.ClientIP(), map[string]interface{}{
		"user_id": id,
		"banned":  req.Banned,
	})
	c.JSON(http.StatusOK, gin.H{"status": "User " + status})
}

// @Summary Delete a user record (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string "User deleted"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.userService.DeleteUser(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "delete_user", c.ClientIP(), map[string]interface{}{
		"user_id": id,
	})
	c.JSON(http.StatusOK, gin.H{"status": "User deleted"})
}

// @Summary Export users as CSV (Admin)
// @Tags Admin
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV payload"
// @Failure 500 {object} map[string]string "Server error"
// @Router /admin/users/export [get]
func (h *UserHandler) ExportUsers(c *gin.Context) {
	payload, err := h.userService.ExportUsersCSV()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export users"})
		return
	}

	filename := "users-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	c.Data(http.StatusOK, "text/csv", []byte(payload))
}

// @Summary Dashboard statistics (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats "Stats"
// @Failure 500 {object} map[string]string "Server error"
// @Router /admin/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	stats, err := h.userService.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
