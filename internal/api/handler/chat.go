package handler

import (
	"net/http"

	"github.com/SEP491/FitBridge-Chatbot/internal/service"
	"github.com/gin-gonic/gin"
)

// ChatHandler handles the conversational endpoint.
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat processes one conversational exchange.
// Request body: service.ChatRequest (prompt required, coordinates and
// history optional). The orchestrator never fails, so everything past
// request binding answers 200.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req service.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: prompt is required",
		})
		return
	}

	resp := h.chatService.Chat(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
