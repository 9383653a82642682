package api

import (
	"net/http"
	"strconv"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	packageService service.PackageService
	audit          service.AuditService
}

func NewPackageHandler(packageService service.PackageService, audit service.AuditService) *PackageHandler {
	return &PackageHandler{packageService: packageService, audit: audit}
}

// @Summary List visible investment packages
// @Tags Packages
// @Produce json
// @Success 200 {array} models.Package "Packages sorted by minimum deposit"
// @Failure 500 {object} map[string]string "Server error"
// @Router /packages [get]
func (h *PackageHandler) GetVisiblePackages(c *gin.Context) {
	packages, err := h.packageService.GetVisiblePackages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
		return
	}
	c.JSON(http.StatusOK, packages)
}

// @Summary Project returns for an amount
// @Description Computes the daily and total return for a package at the given amount
// @Tags Packages
// @Produce json
// @Param id path string true "Package ID"
// @Param amount query number true "Deposit amount"
// @Success 200 {object} service.ROIProjection "Projection"
// @Failure 400 {object} map[string]string "Invalid amount or out of package bounds"
// @Router /packages/{id}/projection [get]
func (h *PackageHandler) Project(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	projection, err := h.packageService.Project(c.Param("id"), amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projection)
}

// @Summary List all packages incl. hidden (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Package "Packages"
// @Router /admin/packages [get]
func (h *PackageHandler) GetAllPackages(c *gin.Context) {
	packages, err := h.packageService.GetAllPackages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch packages"})
		return
	}
	c.JSON(http.StatusOK, packages)
}

// @Summary Create a package (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param package body models.Package true "Package"
// @Success 201 {object} models.Package "Created"
// @Failure 400 {object} map[string]string "Invalid package"
// @Router /admin/packages [post]
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.packageService.CreatePackage(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "create_package", c.ClientIP(), map[string]interface{}{
		"title": pkg.Title,
	})
	c.JSON(http.StatusCreated, pkg)
}

// @Summary Update a package (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param package body models.Package true "Package"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Invalid package"
// @Router /admin/packages/{id} [put]
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var pkg models.Package
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	id := c.Param("id")
	if err := h.packageService.UpdatePackage(id, &pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "update_package", c.ClientIP(), map[string]interface{}{
		"package_id": id,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Package updated"})
}

// @Summary Delete a package (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 400 {object} map[string]string "Invalid package ID"
// @Router /admin/packages/{id} [delete]
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	if err := h.packageService.DeletePackage(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "delete_package", c.ClientIP(), map[string]interface{}{
		"package_id": id,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Package deleted"})
}
