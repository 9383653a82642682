package api

import (
	"net/http"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
	audit          service.AuditService
}

func NewMessageHandler(messageService service.MessageService, audit service.AuditService) *MessageHandler {
	return &MessageHandler{messageService: messageService, audit: audit}
}

// @Summary Submit a contact-form message
// @Tags Content
// @Accept json
// @Produce json
// @Param message body models.ContactMessage true "Message"
// @Success 201 {object} map[string]string "Message received"
// @Failure 400 {object} map[string]string "Invalid message"
// @Router /contact [post]
func (h *MessageHandler) Submit(c *gin.Context) {
	var message models.ContactMessage
	if err := c.ShouldBindJSON(&message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.messageService.SubmitMessage(&message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "Message received"})
}

// @Summary List contact messages (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactMessage "Messages, newest first"
// @Router /admin/messages [get]
func (h *MessageHandler) GetAll(c *gin.Context) {
	messages, err := h.messageService.GetAllMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary Mark a message read (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]string "Marked read"
// @Router /admin/messages/{id}/read [put]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.messageService.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Message marked read"})
}

// @Summary Delete a message (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} map[string]string "Deleted"
// @Router /admin/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.messageService.DeleteMessage(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "delete_message", c.ClientIP(), map[string]interface{}{
		"message_id": id,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Message deleted"})
}

// @Summary Delete all read messages (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Deleted count"
// @Router /admin/messages/read [delete]
func (h *MessageHandler) DeleteRead(c *gin.Context) {
	deleted, err := h.messageService.DeleteReadMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete messages"})
		return
	}

	adminID, adminEmail := actor(c)
	h.audit.LogAction(adminID, adminEmail, "delete_read_messages", c.ClientIP(), map[string]interface{}{
		"deleted": deleted,
	})
	c.JSON(http.StatusOK, gin.H{"status": "Read messages deleted", "deleted": deleted})
}
