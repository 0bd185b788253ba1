package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumecoach-api/internal/model"
	"github.com/yourusername/resumecoach-api/internal/parser"
	"github.com/yourusername/resumecoach-api/internal/repository"
)

const maxUploadBytes = 10 * 1024 * 1024

type ResumeHandler struct {
	userRepo   *repository.UserRepo
	resumeRepo *repository.ResumeRepo
	chatRepo   *repository.ChatRepo
}

func NewResumeHandler(userRepo *repository.UserRepo, resumeRepo *repository.ResumeRepo, chatRepo *repository.ChatRepo) *ResumeHandler {
	return &ResumeHandler{userRepo: userRepo, resumeRepo: resumeRepo, chatRepo: chatRepo}
}

// uploadMimeTypes maps accepted file extensions to the canonical MIME type
// the extraction pipeline dispatches on. Browser-supplied Content-Type
// headers are unreliable, so the extension decides.
var uploadMimeTypes = map[string]string{
	".pdf":  parser.MimePDF,
	".docx": parser.MimeDocx,
	".txt":  "text/plain",
}

// Upload handles POST /api/resume/upload
// Accepts a resume via multipart form, extracts its text, derives the
// candidate profile, and stores everything as one resume record.
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	mimeType, ok := uploadMimeTypes[strings.ToLower(filepath.Ext(header.Filename))]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF, DOCX, and TXT files are supported"})
		return
	}

	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large. Maximum size is 10MB."})
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	// Extraction failures degrade to a fallback string rather than failing
	// the upload; the resulting profile is simply mostly empty.
	rawText := parser.ExtractText(fileBytes, mimeType)
	profile := parser.BuildProfile(rawText)

	// The document never supplies the display name, and the account email
	// backstops a missed extraction.
	profile.PersonalInfo.Name = user.Name
	if profile.PersonalInfo.Email == "" {
		profile.PersonalInfo.Email = user.Email
	}

	resume, err := h.resumeRepo.Create(c.Request.Context(), &model.Resume{
		UserID:       userID,
		OriginalName: header.Filename,
		MimeType:     mimeType,
		SizeBytes:    header.Size,
		RawText:      rawText,
		Parsed:       &profile,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to store resume")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store resume"})
		return
	}

	h.greetInChat(c, user, resume)

	log.Info().
		Str("userId", userID.String()).
		Str("filename", header.Filename).
		Int("textLen", len(rawText)).
		Int("skills", len(profile.Skills)).
		Msg("Resume uploaded and parsed")

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": resume})
}

// greetInChat points the user's chat session at the new resume and drops a
// greeting, creating the session if this is their first upload. Chat setup
// is best-effort; a failure here must not fail the upload.
func (h *ResumeHandler) greetInChat(c *gin.Context, user *model.User, resume *model.Resume) {
	ctx := c.Request.Context()

	session, err := h.chatRepo.FindLatestByUser(ctx, user.ID)
	if err != nil {
		log.Warn().Err(err).Msg("Chat session lookup failed after upload")
		return
	}
	if session == nil {
		session, err = h.chatRepo.Create(ctx, user.ID, &resume.ID, "Resume Review")
		if err != nil {
			log.Warn().Err(err).Msg("Chat session create failed after upload")
			return
		}
	} else if err := h.chatRepo.LinkResume(ctx, session.ID, resume.ID); err != nil {
		log.Warn().Err(err).Msg("Chat session resume link failed after upload")
		return
	}

	messages := append(session.Messages, model.ChatTurn{
		Role:      model.RoleAssistant,
		Content:   "Hello, " + user.Name + "!",
		Timestamp: time.Now().UTC(),
	})
	if err := h.chatRepo.SaveMessages(ctx, session.ID, messages); err != nil {
		log.Warn().Err(err).Msg("Chat greeting save failed after upload")
	}
}

// List handles GET /api/resume
func (h *ResumeHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	resumes, err := h.resumeRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list resumes")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list resumes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(resumes), "data": resumes})
}

// Latest handles GET /api/resume/latest
func (h *ResumeHandler) Latest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	resume, err := h.resumeRepo.FindLatestByUser(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch latest resume")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resume"})
		return
	}
	if resume == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No resume uploaded yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resume})
}

// Get handles GET /api/resume/:id
func (h *ResumeHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume id"})
		return
	}

	resume, err := h.resumeRepo.FindByID(c.Request.Context(), resumeID, userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch resume")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resume"})
		return
	}
	if resume == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": resume})
}

// Delete handles DELETE /api/resume/:id
func (h *ResumeHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resume id"})
		return
	}

	deleted, err := h.resumeRepo.Delete(c.Request.Context(), resumeID, userID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to delete resume")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resume"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
