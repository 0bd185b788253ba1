package model

import (
	"time"

	"github.com/google/uuid"
)

// ── Candidate profile section types ────────────────────

// PersonalInfo holds contact details pulled from a resume. Name is never
// extracted from the document; it defaults to the account name at upload time.
type PersonalInfo struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	Links    []string `json:"links"`
}

// SkillGroup is one labeled bucket of skills. The heuristic extractor emits
// one single-item group per detected skill under the "Detected" category; a
// real taxonomy may replace this later, so consumers must not assume grouping.
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Experience struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	School         string  `json:"school"`
	Degree         string  `json:"degree"`
	Field          string  `json:"field"`
	GraduationDate *string `json:"graduationDate"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

// CandidateProfile is the structured representation derived from resume text.
// Every list field is either empty or fully populated by its extraction rule;
// entries are never half-filled.
type CandidateProfile struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Skills       []SkillGroup `json:"skills"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Projects     []Project    `json:"projects"`
}

// ── Users ──────────────────────────────────────────────

// User represents a ResumeCoach account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	TargetRole   string    `json:"targetRole"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ── Resumes ────────────────────────────────────────────

// Resume is one uploaded document plus its extracted text and derived
// profile. RawText is written once at upload and never mutated; Parsed is
// stored as JSONB and is nil when extraction produced nothing usable.
type Resume struct {
	ID           uuid.UUID         `json:"id"`
	UserID       uuid.UUID         `json:"userId"`
	OriginalName string            `json:"originalName"`
	MimeType     string            `json:"mimeType"`
	SizeBytes    int64             `json:"sizeBytes"`
	RawText      string            `json:"rawText"`
	Parsed       *CandidateProfile `json:"parsed"`
	UploadedAt   time.Time         `json:"uploadedAt"`
}

// ── Chat ───────────────────────────────────────────────

type ChatTurn struct {
	Role      string    `json:"role"` // user, assistant, system
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is one conversation thread with the assistant
type ChatSession struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"userId"`
	ResumeID     *uuid.UUID `json:"resumeId,omitempty"`
	Title        string     `json:"title"`
	Messages     []ChatTurn `json:"messages"`
	StartedAt    time.Time  `json:"startedAt"`
	LastActivity time.Time  `json:"lastActivity"`
}

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ── Interviews ─────────────────────────────────────────

// AnswerEvaluation is the AI's structured scoring of one interview answer
type AnswerEvaluation struct {
	Score        int      `json:"score"` // 0-100
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Feedback     string   `json:"feedback"`
}

type InterviewQuestion struct {
	ID           uuid.UUID         `json:"id"`
	Question     string            `json:"question"`
	Category     string            `json:"category"`
	Hint         string            `json:"hint,omitempty"`
	UserResponse string            `json:"userResponse,omitempty"`
	Evaluation   *AnswerEvaluation `json:"aiEvaluation,omitempty"`
}

// InterviewSession is one mock-interview run
type InterviewSession struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"userId"`
	ResumeID    *uuid.UUID          `json:"resumeId,omitempty"`
	SessionType string              `json:"sessionType"` // quick-practice, behavioral, technical
	TargetRole  string              `json:"targetRole"`
	Difficulty  string              `json:"difficulty"` // junior, mid, senior
	Status      string              `json:"status"`
	Questions   []InterviewQuestion `json:"questions"`
	StartedAt   time.Time           `json:"startedAt"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
}

// Interview session statuses
const (
	InterviewInProgress = "in-progress"
	InterviewCompleted  = "completed"
)
