package parser

import (
	"regexp"
	"strings"

	"github.com/yourusername/resumecoach-api/internal/model"
)

// sectionHeaderRe is the master set of section headers. Any line matching it
// (anchored at line start) terminates the section currently being captured,
// unless the line is one of that section's own start keywords.
var sectionHeaderRe = regexp.MustCompile(`(?i)^\s*(Experience|Education|Skills|Projects|Summary|Certifications|Interests|References)`)

// Start-keyword tables for the derived section extractors. Rule additions
// are mechanical: add a keyword here, matching stays declarative.
var (
	experienceKeywords = []string{"Experience", "Work History", "Employment"}
	educationKeywords  = []string{"Education", "Academic Background"}
	summaryKeywords    = []string{"Summary", "Profile", "Professional Summary", "About Me"}
	projectKeywords    = []string{"Projects", "Personal Projects", "Technical Projects", "Key Projects"}
)

// ExtractSection returns the trimmed, non-blank lines under the first
// occurrence of any start keyword, up to the next recognized section header.
// A later reoccurrence of the section is never reopened.
func ExtractSection(text string, startKeywords []string) []string {
	quoted := make([]string, len(startKeywords))
	for i, kw := range startKeywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	startRe := regexp.MustCompile(`(?i)^\s*(` + strings.Join(quoted, "|") + `)`)

	var content []string
	capturing := false
	for _, line := range strings.Split(text, "\n") {
		if startRe.MatchString(line) {
			// Opens the section; a repeated start keyword mid-capture is
			// skipped as a header, not captured as content.
			capturing = true
			continue
		}
		if capturing && sectionHeaderRe.MatchString(line) {
			break
		}
		if capturing {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				content = append(content, trimmed)
			}
		}
	}
	return content
}

// ExtractExperience synthesizes at most one experience entry from the lines
// captured under an experience-style header. The heuristic does not try to
// split companies or dates; it keeps the first 10 lines as the description.
func ExtractExperience(text string) []model.Experience {
	lines := ExtractSection(text, experienceKeywords)
	if len(lines) == 0 {
		return nil
	}
	return []model.Experience{{
		Company:      "Extracted from Resume",
		Role:         "See details",
		Description:  strings.Join(firstN(lines, 10), "\n"),
		Achievements: []string{},
	}}
}

// ExtractEducation synthesizes at most one education entry: first captured
// line as the school, second as the degree.
func ExtractEducation(text string) []model.Education {
	lines := ExtractSection(text, educationKeywords)
	if len(lines) == 0 {
		return nil
	}
	return []model.Education{{
		School: lineAt(lines, 0, "Unknown School"),
		Degree: lineAt(lines, 1, "Degree N/A"),
		Field:  "",
	}}
}

// ExtractSummary joins all captured summary lines with a single space.
func ExtractSummary(text string) string {
	return strings.Join(ExtractSection(text, summaryKeywords), " ")
}

// ExtractProjects synthesizes at most one project entry: first captured line
// as the name, lines 2-6 as the description.
func ExtractProjects(text string) []model.Project {
	lines := ExtractSection(text, projectKeywords)
	if len(lines) == 0 {
		return nil
	}
	return []model.Project{{
		Name:         lineAt(lines, 0, "Project"),
		Description:  strings.Join(slice(lines, 1, 6), " "),
		Technologies: []string{},
		Link:         "",
	}}
}

func firstN(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

func lineAt(lines []string, i int, fallback string) string {
	if i < len(lines) && lines[i] != "" {
		return lines[i]
	}
	return fallback
}

func slice(lines []string, from, to int) []string {
	if from > len(lines) {
		from = len(lines)
	}
	if to > len(lines) {
		to = len(lines)
	}
	return lines[from:to]
}
