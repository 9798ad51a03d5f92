package handlers

import (
	"net/http"

	"altitude/models"
	"altitude/services/agent"
	"altitude/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler bridges the chat frontend to the booking agent.
type ChatHandler struct {
	assistant agent.AssistantService
	logger    *zap.Logger
}

func NewChatHandler(assistant agent.AssistantService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{assistant: assistant, logger: logger}
}

// Chat handles POST /chat. One agent instance is constructed per call;
// the caller supplies the full conversation history every time.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid chat request", err.Error())
		return
	}

	h.logger.Debug("chat turn",
		zap.Int("message_len", len(req.Message)),
		zap.Int("history_len", len(req.ConversationHistory)))

	resp := h.assistant.Chat(c.Request.Context(), req)
	c.JSON(http.StatusOK, resp)
}
