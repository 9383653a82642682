package api

import (
	"net/http"
	"strconv"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialService service.TestimonialService
	audit              service.AuditService
}

func NewTestimonialHandler(testimonialService service.TestimonialService, audit service.AuditService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService, audit: audit}
}

// @Summary List visible testimonials
// @Tags Content
// @Produce json
// @Param limit query int false "Maximum entries" default(20)
// @Success 200 {array} models.Testimonial "Testimonials"
// @Router /testimonials [get]
func (h *TestimonialHandler) GetVisible(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	testimonials, err := h.testimonialService.GetVisibleTestimonials(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// @Summary List all testimonials (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Testimonial "Testimonials"
// @Router /admin/testimonials [get]
func (h *TestimonialHandler) GetAll(c *gin.Context) {
	testimonials, err := h.testimonialService.GetAllTestimonials()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// @Summary Create a testimonial (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param testimonial body models.Testimonial true "Testimonial"
// @Success 201 {object} models.Testimonial "Created"
// @Failure 400 {object} map[string]string "Invalid testimonial"
// @Router /admin/testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.testimonialService.CreateTestimonial(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "create_testimonial", c.ClientIP(), map[string]interface{}{
		"name": testimonial.Name,
	})
	c.JSON(http.StatusCreated, testimonial)
}

// @Summary Update a testimonial (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Param testimonial body models.Testimonial true "Testimonial"
// @Success 200 {object} map[string]string "Updated"
// @Router /admin/testimonials/{id} [put]
func (h *TestimonialHandler) Update(c *gin.Context) {
	var testimonial models.Testimonial
	if err := c.ShouldBindJSON(&testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	id := c.Param("id")
	if err := h.testimonialService.UpdateTestimonial(id, &testimonial); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "update_testimonial", c.ClientIP(), map[string]interface{}{
		"testimonial_id": id,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Testimonial updated"})
}

// @Summary Delete a testimonial (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} map[string]string "Deleted"
// @Router /admin/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.testimonialService.DeleteTestimonial(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "delete_testimonial", c.ClientIP(), map[string]interface{}{
		"testimonial_id": id,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Testimonial deleted"})
}
