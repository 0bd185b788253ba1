package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumecoach-api/internal/model"
)

// Embedded raw resume text is capped to keep the assembled prompt inside the
// model's token budget. The cut is a hard character count, not word-aware.
const maxRawContextChars = 4000

// ResumeSource is the slice of the resume store the context provider needs.
type ResumeSource interface {
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*model.Resume, error)
}

// ContextService resolves a user's most recent resume into the prompt
// context string used by chat and interview flows.
type ContextService struct {
	resumes ResumeSource
}

func NewContextService(resumes ResumeSource) *ContextService {
	return &ContextService{resumes: resumes}
}

// GetContext returns the prompt context for the user's latest resume, or ""
// when no usable resume exists. Storage errors are logged and swallowed:
// chat must degrade to contextless operation, never fail because of this
// lookup.
func (s *ContextService) GetContext(ctx context.Context, userID uuid.UUID) string {
	resume, err := s.resumes.FindLatestByUser(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("userId", userID.String()).Msg("Resume context lookup failed, proceeding without context")
		return ""
	}
	if resume == nil || resume.Parsed == nil {
		return ""
	}
	return FormatContext(resume.Parsed, resume.RawText)
}

// FormatContext renders a candidate profile plus raw resume text into a
// single deterministic prompt block. Section order is fixed; a section is
// omitted only when its list is empty, and absent sub-fields fall back to
// literal placeholders.
func FormatContext(profile *model.CandidateProfile, rawText string) string {
	var b strings.Builder

	name := profile.PersonalInfo.Name
	if name == "" {
		name = "Unknown"
	}
	b.WriteString("Candidate Name: " + name + "\n")

	if len(profile.Skills) > 0 {
		var flattened []string
		for _, group := range profile.Skills {
			// Malformed groups (no items list) are skipped, never an error.
			if group.Items == nil {
				continue
			}
			flattened = append(flattened, strings.Join(group.Items, ", "))
		}
		b.WriteString("Skills: " + strings.Join(flattened, ", ") + "\n")
	}

	if len(profile.Experience) > 0 {
		b.WriteString("Experience:\n")
		for _, exp := range profile.Experience {
			role := exp.Role
			if role == "" {
				role = "Role"
			}
			company := exp.Company
			if company == "" {
				company = "Company"
			}
			end := exp.EndDate
			if end == "" {
				end = "Present"
			}
			fmt.Fprintf(&b, "- %s at %s (%s - %s)\n", role, company, exp.StartDate, end)
			if exp.Description != "" {
				// The "..." suffix is appended even when nothing was cut.
				b.WriteString("  " + head(exp.Description, 150) + "...\n")
			}
		}
	}

	if len(profile.Projects) > 0 {
		b.WriteString("Projects:\n")
		for _, proj := range profile.Projects {
			projName := proj.Name
			if projName == "" {
				projName = "Project"
			}
			fmt.Fprintf(&b, "- %s: %s\n", projName, proj.Description)
		}
	}

	if len(profile.Education) > 0 {
		b.WriteString("Education:\n")
		for _, edu := range profile.Education {
			degree := edu.Degree
			if degree == "" {
				degree = "Degree"
			}
			field := edu.Field
			if field == "" {
				field = "Field"
			}
			school := edu.School
			if school == "" {
				school = "School"
			}
			fmt.Fprintf(&b, "- %s in %s from %s\n", degree, field, school)
		}
	}

	if rawText != "" {
		b.WriteString("\n--- Full Resume Content ---\n")
		b.WriteString(head(rawText, maxRawContextChars))
		b.WriteString("\n---------------------------\n")
	}

	return b.String()
}

// head returns the first n bytes of s, a hard cut
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
