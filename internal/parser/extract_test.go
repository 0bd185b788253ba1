package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain address", "Contact me at jane.doe@example.com for details", "jane.doe@example.com"},
		{"first of several", "a@b.co then c@d.io", "a@b.co"},
		{"hyphen and underscore", "reach_me-now@my-domain.example.org", "reach_me-now@my-domain.example.org"},
		{"no address", "no contact information here", ""},
		{"missing domain dot", "user@localhost", ""},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmail(tt.text))
		})
	}
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dashed", "call 555-123-4567 anytime", "555-123-4567"},
		{"dotted", "call 555.123.4567", "555.123.4567"},
		{"parenthesized area code", "(555) 123-4567", "(555) 123-4567"},
		{"international prefix", "+1 555 123 4567", "+1 555 123 4567"},
		{"bare digits", "5551234567", "5551234567"},
		{"too short", "call 123-4567", ""},
		{"none", "no numbers here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhone(tt.text))
		})
	}
}

func TestExtractLinks(t *testing.T) {
	t.Run("caps at three in appearance order", func(t *testing.T) {
		text := "see https://a.example https://b.example http://c.example and https://d.example"
		assert.Equal(t,
			[]string{"https://a.example", "https://b.example", "http://c.example"},
			ExtractLinks(text))
	})

	t.Run("fewer than three", func(t *testing.T) {
		assert.Equal(t, []string{"https://github.com/jdoe"}, ExtractLinks("profile: https://github.com/jdoe"))
	})

	t.Run("none", func(t *testing.T) {
		assert.Empty(t, ExtractLinks("plain text, no urls"))
	})
}

func TestExtractSkills(t *testing.T) {
	t.Run("case-insensitive dedup", func(t *testing.T) {
		// Known simplification: each match becomes its own single-item
		// "Detected" group rather than a taxonomy bucket.
		groups := ExtractSkills("I used React and react and REACT")
		require.Len(t, groups, 1)
		assert.Equal(t, "Detected", groups[0].Category)
		assert.Equal(t, []string{"React"}, groups[0].Items)
	})

	t.Run("vocabulary order, not appearance order", func(t *testing.T) {
		groups := ExtractSkills("Redis before Python in this sentence")
		require.Len(t, groups, 2)
		assert.Equal(t, []string{"Python"}, groups[0].Items)
		assert.Equal(t, []string{"Redis"}, groups[1].Items)
	})

	t.Run("whole word only", func(t *testing.T) {
		// "Gossip" must not match "Go"; "Going" must not either.
		assert.Empty(t, ExtractSkills("Gossip about Going places"))
	})

	t.Run("metacharacters escaped", func(t *testing.T) {
		// The dot in "Next.js" must be literal, not match any character.
		groups := ExtractSkills("migrated the frontend to Nextajs tooling")
		assert.Empty(t, groups)

		groups = ExtractSkills("migrated the frontend to Next.js tooling")
		require.Len(t, groups, 1)
		assert.Equal(t, []string{"Next.js"}, groups[0].Items)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, ExtractSkills("gardening and carpentry"))
	})
}
