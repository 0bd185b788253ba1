package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumecoach-api/internal/model"
	"github.com/yourusername/resumecoach-api/internal/repository"
	"github.com/yourusername/resumecoach-api/internal/service"
)

const questionsPerSession = 5

type InterviewHandler struct {
	interviewRepo *repository.InterviewRepo
	resumeRepo    *repository.ResumeRepo
	contextSvc    *service.ContextService
	gemini        *service.GeminiClient
}

func NewInterviewHandler(interviewRepo *repository.InterviewRepo, resumeRepo *repository.ResumeRepo, contextSvc *service.ContextService, gemini *service.GeminiClient) *InterviewHandler {
	return &InterviewHandler{
		interviewRepo: interviewRepo,
		resumeRepo:    resumeRepo,
		contextSvc:    contextSvc,
		gemini:        gemini,
	}
}

// Start handles POST /api/interview/start
// Generates a question set tailored to the user's resume context and
// persists a new session.
func (h *InterviewHandler) Start(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		SessionType string `json:"sessionType"`
		TargetRole  string `json:"targetRole"`
		Difficulty  string `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.SessionType == "" {
		req.SessionType = "quick-practice"
	}
	if req.Difficulty == "" {
		req.Difficulty = "mid"
	}

	resumeContext := h.contextSvc.GetContext(c.Request.Context(), userID)

	questions, err := h.gemini.GenerateInterviewQuestions(
		c.Request.Context(), resumeContext, req.SessionType, req.TargetRole, req.Difficulty, questionsPerSession,
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate interview questions")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate interview questions. Please try again."})
		return
	}

	// Link the session to the resume the questions were grounded in, if any
	var resumeID *uuid.UUID
	if resume, err := h.resumeRepo.FindLatestByUser(c.Request.Context(), userID); err == nil && resume != nil {
		resumeID = &resume.ID
	}

	session, err := h.interviewRepo.Create(c.Request.Context(), &model.InterviewSession{
		UserID:      userID,
		ResumeID:    resumeID,
		SessionType: req.SessionType,
		TargetRole:  req.TargetRole,
		Difficulty:  req.Difficulty,
		Status:      model.InterviewInProgress,
		Questions:   questions,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create interview session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start interview session"})
		return
	}

	log.Info().
		Str("userId", userID.String()).
		Str("sessionId", session.ID.String()).
		Int("questions", len(session.Questions)).
		Msg("Interview session started")

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": session})
}

// Answer handles POST /api/interview/:id/answer
// Evaluates one answer and stores the evaluation on its question.
func (h *InterviewHandler) Answer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	var req struct {
		QuestionID string `json:"questionId" binding:"required"`
		Answer     string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Answer) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "questionId and answer are required"})
		return
	}

	session, err := h.interviewRepo.FindByID(c.Request.Context(), sessionID, userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load interview session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	questionIdx := -1
	for i, q := range session.Questions {
		if q.ID.String() == req.QuestionID {
			questionIdx = i
			break
		}
	}
	if questionIdx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found in session"})
		return
	}

	resumeContext := h.contextSvc.GetContext(c.Request.Context(), userID)

	evaluation, err := h.gemini.EvaluateAnswer(
		c.Request.Context(), session.Questions[questionIdx].Question, req.Answer, resumeContext,
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to evaluate answer")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to evaluate answer. Please try again."})
		return
	}

	session.Questions[questionIdx].UserResponse = req.Answer
	session.Questions[questionIdx].Evaluation = evaluation

	if err := h.interviewRepo.SaveQuestions(c.Request.Context(), session.ID, session.Questions); err != nil {
		log.Error().Err(err).Msg("Failed to save answer evaluation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save evaluation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": evaluation})
}

// Get handles GET /api/interview/:id
func (h *InterviewHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	session, err := h.interviewRepo.FindByID(c.Request.Context(), sessionID, userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load interview session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": session})
}

// List handles GET /api/interview
func (h *InterviewHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	sessions, err := h.interviewRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list interview sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(sessions), "data": sessions})
}

// Complete handles POST /api/interview/:id/complete
func (h *InterviewHandler) Complete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session id"})
		return
	}

	session, err := h.interviewRepo.FindByID(c.Request.Context(), sessionID, userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load interview session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	if err := h.interviewRepo.Complete(c.Request.Context(), session.ID); err != nil {
		log.Error().Err(err).Msg("Failed to complete interview session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
