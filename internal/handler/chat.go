package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumecoach-api/internal/model"
	"github.com/yourusername/resumecoach-api/internal/repository"
	"github.com/yourusername/resumecoach-api/internal/service"
)

type ChatHandler struct {
	chatRepo   *repository.ChatRepo
	contextSvc *service.ContextService
	gemini     *service.GeminiClient
}

func NewChatHandler(chatRepo *repository.ChatRepo, contextSvc *service.ContextService, gemini *service.GeminiClient) *ChatHandler {
	return &ChatHandler{chatRepo: chatRepo, contextSvc: contextSvc, gemini: gemini}
}

// Send handles POST /api/chat
// Appends the user's message to their session, generates an AI reply
// grounded in resume context when one exists, and returns the reply.
func (h *ChatHandler) Send(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required"})
		return
	}

	session, err := h.chatRepo.FindLatestByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load chat session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat session"})
		return
	}
	if session == nil {
		session, err = h.chatRepo.Create(c.Request.Context(), userID, nil, "General Assistant Chat")
		if err != nil {
			log.Error().Err(err).Msg("Failed to create chat session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chat session"})
			return
		}
	}

	messages := append(session.Messages, model.ChatTurn{
		Role:      model.RoleUser,
		Content:   req.Message,
		Timestamp: time.Now().UTC(),
	})

	// Best-effort: chat proceeds without context when the lookup finds
	// nothing or fails.
	resumeContext := h.contextSvc.GetContext(c.Request.Context(), userID)

	reply := h.gemini.GenerateReply(c.Request.Context(), messages, resumeContext)

	messages = append(messages, model.ChatTurn{
		Role:      model.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now().UTC(),
	})

	if err := h.chatRepo.SaveMessages(c.Request.Context(), session.ID, messages); err != nil {
		log.Error().Err(err).Msg("Failed to save chat messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save chat message"})
		return
	}

	log.Info().
		Str("userId", userID.String()).
		Int("historyLen", len(messages)).
		Bool("hasContext", resumeContext != "").
		Msg("Chat reply generated")

	c.JSON(http.StatusOK, gin.H{"success": true, "message": reply})
}

// History handles GET /api/chat/history
func (h *ChatHandler) History(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	session, err := h.chatRepo.FindLatestByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch chat history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history"})
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": []model.ChatTurn{}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": session.Messages})
}

// Clear handles DELETE /api/chat/history
func (h *ChatHandler) Clear(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.chatRepo.DeleteByUser(c.Request.Context(), userID); err != nil {
		log.Error().Err(err).Msg("Failed to clear chat history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear chat history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Chat history cleared"})
}
