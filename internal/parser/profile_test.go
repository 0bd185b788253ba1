package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = "John Doe\n" +
	"john@example.com\n" +
	"555-123-4567\n" +
	"Skills\n" +
	"Python, React\n" +
	"Experience\n" +
	"Built a web app at Acme\n" +
	"Education\n" +
	"BS Computer Science, MIT"

func TestBuildProfile(t *testing.T) {
	profile := BuildProfile(sampleResume)

	assert.Equal(t, "john@example.com", profile.PersonalInfo.Email)
	assert.Equal(t, "555-123-4567", profile.PersonalInfo.Phone)
	assert.Empty(t, profile.PersonalInfo.Links)
	assert.Empty(t, profile.PersonalInfo.Name, "name is not extracted from the document")

	var skills []string
	for _, g := range profile.Skills {
		require.Equal(t, "Detected", g.Category)
		require.Len(t, g.Items, 1)
		skills = append(skills, g.Items[0])
	}
	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "React")

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Extracted from Resume", profile.Experience[0].Company)
	assert.Equal(t, "Built a web app at Acme", profile.Experience[0].Description)

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "BS Computer Science, MIT", profile.Education[0].School)
	assert.Equal(t, "Degree N/A", profile.Education[0].Degree)

	assert.Empty(t, profile.Projects)
	assert.Equal(t, "", profile.Summary)
}

func TestBuildProfileEmptyInput(t *testing.T) {
	profile := BuildProfile("")

	assert.Equal(t, "", profile.PersonalInfo.Email)
	assert.Equal(t, "", profile.PersonalInfo.Phone)
	assert.Empty(t, profile.PersonalInfo.Links)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Experience)
	assert.Empty(t, profile.Education)
	assert.Empty(t, profile.Projects)
}

func TestBuildProfileFallbackText(t *testing.T) {
	// A document that failed text extraction still produces a profile,
	// just a mostly empty one.
	profile := BuildProfile(FallbackText)

	assert.Equal(t, "", profile.PersonalInfo.Email)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.Experience)
}

func TestBuildProfileIdempotent(t *testing.T) {
	first := BuildProfile(sampleResume)
	second := BuildProfile(sampleResume)
	assert.Equal(t, first, second)
}
