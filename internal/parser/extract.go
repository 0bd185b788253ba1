// Package parser derives a structured candidate profile from raw resume
// text using pattern matching and keyword-anchored section segmentation.
// Every function here is pure and total: a failed match is an empty value,
// never an error.
package parser

import (
	"regexp"

	"github.com/yourusername/resumecoach-api/internal/model"
)

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9._-]+`)
	// Loose phone shape: optional country code, then 3-3-4 digit groups with
	// optional space/hyphen/dot separators and optional parens on area code.
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkRe  = regexp.MustCompile(`https?://\S+`)
)

// skillVocabulary is the fixed set of technology names the extractor looks
// for. Matching preserves this enumeration order, not appearance order in
// the document.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP",
	"React", "Angular", "Vue", "Next.js", "Node.js", "Express", "Django", "Flask", "Spring",
	"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "AWS", "Azure", "GCP", "Docker", "Kubernetes",
	"Git", "CI/CD", "Agile", "Scrum", "HTML", "CSS", "Tailwind", "SASS", "GraphQL", "REST API",
	"Machine Learning", "AI", "Data Analysis", "Project Management",
}

// skillPatterns holds one compiled whole-word pattern per vocabulary entry,
// in vocabulary order.
var skillPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(skillVocabulary))
	for i, skill := range skillVocabulary {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}()

// ExtractEmail returns the first email-shaped substring, or "" if none.
func ExtractEmail(text string) string {
	return emailRe.FindString(text)
}

// ExtractPhone returns the first phone-shaped substring, or "" if none.
func ExtractPhone(text string) string {
	return phoneRe.FindString(text)
}

// ExtractLinks returns up to the first 3 http(s) URLs in appearance order.
func ExtractLinks(text string) []string {
	return linkRe.FindAllString(text, 3)
}

// ExtractSkills scans the text for every vocabulary entry and wraps each hit
// in its own single-item "Detected" group. Matching is case-insensitive and
// whole-word; results are deduplicated and follow vocabulary order.
func ExtractSkills(text string) []model.SkillGroup {
	var groups []model.SkillGroup
	seen := make(map[string]bool, len(skillVocabulary))
	for i, skill := range skillVocabulary {
		if seen[skill] || !skillPatterns[i].MatchString(text) {
			continue
		}
		seen[skill] = true
		groups = append(groups, model.SkillGroup{
			Category: "Detected",
			Items:    []string{skill},
		})
	}
	return groups
}
