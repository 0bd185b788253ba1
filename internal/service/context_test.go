package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/resumecoach-api/internal/model"
)

func TestFormatContextEmptyProfile(t *testing.T) {
	profile := &model.CandidateProfile{
		PersonalInfo: model.PersonalInfo{Name: "Unknown"},
	}
	assert.Equal(t, "Candidate Name: Unknown\n", FormatContext(profile, ""))
}

func TestFormatContextNamePlaceholder(t *testing.T) {
	got := FormatContext(&model.CandidateProfile{}, "")
	assert.Equal(t, "Candidate Name: Unknown\n", got)
}

func TestFormatContextSkills(t *testing.T) {
	profile := &model.CandidateProfile{
		PersonalInfo: model.PersonalInfo{Name: "Jane"},
		Skills: []model.SkillGroup{
			{Category: "Detected", Items: []string{"Go"}},
			{Category: "Detected", Items: []string{"Python", "SQL"}},
		},
	}
	got := FormatContext(profile, "")
	assert.Contains(t, got, "Candidate Name: Jane\n")
	assert.Contains(t, got, "Skills: Go, Python, SQL\n")
}

func TestFormatContextSkipsMalformedSkillGroups(t *testing.T) {
	profile := &model.CandidateProfile{
		Skills: []model.SkillGroup{
			{Category: "Detected"}, // no items list
			{Category: "Detected", Items: []string{"Go"}},
		},
	}
	assert.Contains(t, FormatContext(profile, ""), "Skills: Go\n")
}

func TestFormatContextExperience(t *testing.T) {
	t.Run("placeholders and unconditional ellipsis", func(t *testing.T) {
		profile := &model.CandidateProfile{
			Experience: []model.Experience{{Description: "short description"}},
		}
		got := FormatContext(profile, "")
		assert.Contains(t, got, "Experience:\n")
		assert.Contains(t, got, "- Role at Company ( - Present)\n")
		// Ellipsis is appended even when nothing was cut.
		assert.Contains(t, got, "  short description...\n")
	})

	t.Run("description capped at 150 chars", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		profile := &model.CandidateProfile{
			Experience: []model.Experience{{Role: "Engineer", Company: "Acme", Description: long}},
		}
		got := FormatContext(profile, "")
		assert.Contains(t, got, "  "+strings.Repeat("x", 150)+"...\n")
		assert.NotContains(t, got, strings.Repeat("x", 151))
	})

	t.Run("dates rendered when present", func(t *testing.T) {
		profile := &model.CandidateProfile{
			Experience: []model.Experience{{Role: "Engineer", Company: "Acme", StartDate: "2020", EndDate: "2023"}},
		}
		assert.Contains(t, FormatContext(profile, ""), "- Engineer at Acme (2020 - 2023)\n")
	})
}

func TestFormatContextProjectsAndEducation(t *testing.T) {
	profile := &model.CandidateProfile{
		Projects:  []model.Project{{Name: "", Description: "desc"}},
		Education: []model.Education{{School: "MIT", Degree: "BS"}},
	}
	got := FormatContext(profile, "")
	assert.Contains(t, got, "Projects:\n- Project: desc\n")
	assert.Contains(t, got, "Education:\n- BS in Field from MIT\n")
}

func TestFormatContextSectionOrder(t *testing.T) {
	profile := &model.CandidateProfile{
		PersonalInfo: model.PersonalInfo{Name: "Jane"},
		Skills:       []model.SkillGroup{{Category: "Detected", Items: []string{"Go"}}},
		Experience:   []model.Experience{{Role: "Dev", Company: "Acme"}},
		Projects:     []model.Project{{Name: "Engine"}},
		Education:    []model.Education{{School: "MIT", Degree: "BS", Field: "CS"}},
	}
	got := FormatContext(profile, "resume body")

	order := []string{"Candidate Name:", "Skills:", "Experience:", "Projects:", "Education:", "--- Full Resume Content ---"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(got, marker)
		require.GreaterOrEqual(t, idx, 0, "missing %q", marker)
		assert.Greater(t, idx, last, "%q out of order", marker)
		last = idx
	}
}

func TestFormatContextRawTextTruncation(t *testing.T) {
	raw := strings.Repeat("a", 5000)
	got := FormatContext(&model.CandidateProfile{}, raw)

	start := strings.Index(got, "--- Full Resume Content ---\n")
	require.GreaterOrEqual(t, start, 0)
	body := got[start+len("--- Full Resume Content ---\n"):]
	end := strings.Index(body, "\n")
	require.GreaterOrEqual(t, end, 0)
	assert.Len(t, body[:end], 4000)

	assert.True(t, strings.HasSuffix(got, "\n---------------------------\n"))
}

func TestFormatContextOmitsRawBlockWhenEmpty(t *testing.T) {
	got := FormatContext(&model.CandidateProfile{PersonalInfo: model.PersonalInfo{Name: "Jane"}}, "")
	assert.NotContains(t, got, "Full Resume Content")
}

// ── Context provider ──────────────────────────────────

type stubResumeSource struct {
	resume *model.Resume
	err    error
}

func (s *stubResumeSource) FindLatestByUser(ctx context.Context, userID uuid.UUID) (*model.Resume, error) {
	return s.resume, s.err
}

func TestGetContext(t *testing.T) {
	userID := uuid.New()

	t.Run("no resume yields empty context", func(t *testing.T) {
		svc := NewContextService(&stubResumeSource{})
		assert.Equal(t, "", svc.GetContext(context.Background(), userID))
	})

	t.Run("resume without parsed profile yields empty context", func(t *testing.T) {
		svc := NewContextService(&stubResumeSource{resume: &model.Resume{RawText: "text"}})
		assert.Equal(t, "", svc.GetContext(context.Background(), userID))
	})

	t.Run("storage error degrades to empty context", func(t *testing.T) {
		svc := NewContextService(&stubResumeSource{err: fmt.Errorf("connection refused")})
		assert.Equal(t, "", svc.GetContext(context.Background(), userID))
	})

	t.Run("parsed resume is formatted", func(t *testing.T) {
		svc := NewContextService(&stubResumeSource{resume: &model.Resume{
			RawText: "raw body",
			Parsed: &model.CandidateProfile{
				PersonalInfo: model.PersonalInfo{Name: "Jane"},
			},
		}})
		got := svc.GetContext(context.Background(), userID)
		assert.Contains(t, got, "Candidate Name: Jane\n")
		assert.Contains(t, got, "raw body")
	})
}
