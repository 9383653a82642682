package api

import (
	"errors"
	"net/http"

	"github.com/roobux/backend/internal/models"
	"github.com/roobux/backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type ChatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// @Summary Get own chat history
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ChatMessage "Messages, oldest first"
// @Router /chat/messages [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID, _ := actor(c)
	messages, err := h.chatService.GetHistory(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary Send a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body ChatMessageRequest true "Message text"
// @Success 201 {object} models.ChatMessage "Sent message"
// @Failure 400 {object} map[string]string "Empty message"
// @Router /chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	userID, _ := actor(c)
	message, err := h.chatService.SendUserMessage(userID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message text is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, message)
}

// @Summary Mark own chat read
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string "Marked read"
// @Router /chat/read [put]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	userID, _ := actor(c)
	if err := h.chatService.MarkRead(userID, models.ChatSenderUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark chat read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Chat marked read"})
}

// @Summary List support chats (Admin)
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SupportChat "Chats, most recently active first"
// @Router /admin/chats [get]
func (h *ChatHandler) GetAllChats(c *gin.Context) {
	chats, err := h.chatService.GetAllChats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chats"})
		return
	}
	c.JSON(http.StatusOK, chats)
}

// @Summary Open a user's chat (Admin)
// @Description Returns the history and clears the admin-side unread flag
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Success 200 {array} models.ChatMessage "Messages, oldest first"
// @Router /admin/chats/{user_id} [get]
func (h *ChatHandler) OpenChat(c *gin.Context) {
	userID := c.Param("user_id")
	messages, err := h.chatService.GetHistory(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.chatService.MarkRead(userID, models.ChatSenderAdmin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark chat read"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

// @Summary Reply in a user's chat (Admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User ID"
// @Param message body ChatMessageRequest true "Message text"
// @Success 201 {object} models.ChatMessage "Sent message"
// @Failure 400 {object} map[string]string "Empty message"
// @Router /admin/chats/{user_id} [post]
func (h *ChatHandler) Reply(c *gin.Context) {
	var req ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	message, err := h.chatService.SendAdminReply(c.Param("user_id"), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) || errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, message)
}
