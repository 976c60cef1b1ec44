package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "simple title",
			title:    "Hello World",
			expected: "hello-world",
		},
		{
			name:     "punctuation removed",
			title:    "What's New in Go 1.24?",
			expected: "whats-new-in-go-124",
		},
		{
			name:     "whitespace runs collapse",
			title:    "Too   many    spaces",
			expected: "too-many-spaces",
		},
		{
			name:     "existing hyphens collapse",
			title:    "pre--hyphenated -- title",
			expected: "pre-hyphenated-title",
		},
		{
			name:     "unicode stripped",
			title:    "Café culture — a review ☕",
			expected: "caf-culture-a-review",
		},
		{
			name:     "empty input",
			title:    "",
			expected: "",
		},
		{
			name:     "only invalid characters",
			title:    "!!! ???",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	titles := []string{
		"Hello World",
		"What's New in Go 1.24?",
		"The Quick Brown Fox Jumps Over The Extremely Lazy Dog Of Doom Again",
		"already-a-slug",
	}

	for _, title := range titles {
		once := GenerateSlug(title)
		twice := GenerateSlug(once)
		assert.Equal(t, once, twice, "slug should be stable for %q", title)
	}
}

func TestGenerateSlugLength(t *testing.T) {
	long := strings.Repeat("lengthy title segment ", 10)

	slug := GenerateSlug(long)

	assert.LessOrEqual(t, len(slug), 60)
	assert.False(t, strings.HasSuffix(slug, "-"), "slug must not end with a hyphen")
}

func TestCalculateReadTime(t *testing.T) {
	assert.Equal(t, 1, CalculateReadTime(""), "empty content still reads as one minute")
	assert.Equal(t, 1, CalculateReadTime("short body"))
	assert.Equal(t, 2, CalculateReadTime(strings.Repeat("word ", 400)))
}
