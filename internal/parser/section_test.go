package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSection(t *testing.T) {
	t.Run("captures lines up to next header", func(t *testing.T) {
		text := "Experience\nBuilt APIs\nLed a team\nShipped v2\nEducation\nBS Computer Science"
		lines := ExtractSection(text, []string{"Experience", "Work History"})
		assert.Equal(t, []string{"Built APIs", "Led a team", "Shipped v2"}, lines)
	})

	t.Run("blank lines are dropped, not terminators", func(t *testing.T) {
		text := "Summary\nFirst line\n\n   \nSecond line\nSkills\nGo"
		lines := ExtractSection(text, []string{"Summary"})
		assert.Equal(t, []string{"First line", "Second line"}, lines)
	})

	t.Run("header match is anchored at line start", func(t *testing.T) {
		text := "I have broad Experience in things\nExperience\nReal content"
		lines := ExtractSection(text, []string{"Experience"})
		assert.Equal(t, []string{"Real content"}, lines)
	})

	t.Run("indented header still opens", func(t *testing.T) {
		text := "  Education\nMIT\nBS"
		lines := ExtractSection(text, []string{"Education"})
		assert.Equal(t, []string{"MIT", "BS"}, lines)
	})

	t.Run("own keyword does not close the section", func(t *testing.T) {
		// "Summary" is in the master closing set, but it is also this
		// section's own start keyword, so it must not terminate capture.
		text := "Summary\nline one\nSummary\nline two\nExperience\nout"
		lines := ExtractSection(text, []string{"Summary", "Profile"})
		assert.Equal(t, []string{"line one", "line two"}, lines)
	})

	t.Run("only first occurrence is captured", func(t *testing.T) {
		text := "Experience\nfirst block\nEducation\nMIT\nExperience\nsecond block"
		lines := ExtractSection(text, []string{"Experience"})
		assert.Equal(t, []string{"first block"}, lines)
	})

	t.Run("no opening line", func(t *testing.T) {
		assert.Empty(t, ExtractSection("just some text\nwith no headers", []string{"Projects"}))
	})
}

func TestExtractExperience(t *testing.T) {
	t.Run("synthesizes one entry", func(t *testing.T) {
		text := "Work History\nAcme Corp\nDid backend work\nEducation\nMIT"
		entries := ExtractExperience(text)
		require.Len(t, entries, 1)
		assert.Equal(t, "Extracted from Resume", entries[0].Company)
		assert.Equal(t, "See details", entries[0].Role)
		assert.Equal(t, "Acme Corp\nDid backend work", entries[0].Description)
		assert.Empty(t, entries[0].Achievements)
	})

	t.Run("description capped at ten lines", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("Experience\n")
		for i := 0; i < 15; i++ {
			b.WriteString("line\n")
		}
		entries := ExtractExperience(b.String())
		require.Len(t, entries, 1)
		assert.Len(t, strings.Split(entries[0].Description, "\n"), 10)
	})

	t.Run("no section means no entry", func(t *testing.T) {
		assert.Empty(t, ExtractExperience("nothing relevant"))
	})
}

func TestExtractEducation(t *testing.T) {
	t.Run("first two lines become school and degree", func(t *testing.T) {
		text := "Education\nMIT\nBS Computer Science\nExperience\nout"
		entries := ExtractEducation(text)
		require.Len(t, entries, 1)
		assert.Equal(t, "MIT", entries[0].School)
		assert.Equal(t, "BS Computer Science", entries[0].Degree)
		assert.Equal(t, "", entries[0].Field)
		assert.Nil(t, entries[0].GraduationDate)
	})

	t.Run("degree placeholder when only one line", func(t *testing.T) {
		entries := ExtractEducation("Academic Background\nMIT")
		require.Len(t, entries, 1)
		assert.Equal(t, "MIT", entries[0].School)
		assert.Equal(t, "Degree N/A", entries[0].Degree)
	})

	t.Run("no section", func(t *testing.T) {
		assert.Empty(t, ExtractEducation("no education listed"))
	})
}

func TestExtractSummary(t *testing.T) {
	assert.Equal(t, "Seasoned engineer. Ten years of Go.",
		ExtractSummary("Professional Summary\nSeasoned engineer.\nTen years of Go.\nSkills\nGo"))
	assert.Equal(t, "", ExtractSummary("no summary here"))
}

func TestExtractProjects(t *testing.T) {
	t.Run("first line is the name, next five the description", func(t *testing.T) {
		text := "Projects\nChess Engine\nWrote a UCI engine\nRated 2400 on lichess\nEducation\nout"
		entries := ExtractProjects(text)
		require.Len(t, entries, 1)
		assert.Equal(t, "Chess Engine", entries[0].Name)
		assert.Equal(t, "Wrote a UCI engine Rated 2400 on lichess", entries[0].Description)
		assert.Empty(t, entries[0].Technologies)
		assert.Equal(t, "", entries[0].Link)
	})

	t.Run("single line yields empty description", func(t *testing.T) {
		entries := ExtractProjects("Personal Projects\nChess Engine")
		require.Len(t, entries, 1)
		assert.Equal(t, "Chess Engine", entries[0].Name)
		assert.Equal(t, "", entries[0].Description)
	})

	t.Run("no section", func(t *testing.T) {
		assert.Empty(t, ExtractProjects("no projects"))
	})
}
