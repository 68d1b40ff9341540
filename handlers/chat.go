package handlers

import (
	"fmt"
	"net/http"

	"yachtmatch/models"
	"yachtmatch/services/supervisor"
	"yachtmatch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the supervisor gate over HTTP.
type ChatHandler struct {
	Gate   supervisor.GateService
	Logger *zap.Logger
}

func NewChatHandler(gate supervisor.GateService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Gate: gate, Logger: logger}
}

// HandleChat runs one conversation turn for the posted user message,
// persisting state against the user's session.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reply, sess, err := h.Gate.HandleTurn(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		h.Logger.Error("chat turn failed", zap.String("userId", req.UserID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Agent processing failed", fmt.Sprintf("%v", err))
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response:  reply,
		SessionID: sess.SessionID,
		UserID:    sess.UserID,
	})
}
