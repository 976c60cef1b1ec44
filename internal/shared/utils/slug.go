package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespaceRuns = regexp.MustCompile(`\s+`)
	slugHyphenRuns     = regexp.MustCompile(`-+`)
)

// maxSlugLength keeps generated slugs short enough for clean URLs
const maxSlugLength = 60

// GenerateSlug derives a URL-safe slug from a post title. Idempotent:
// feeding a slug back in returns it unchanged. After the invalid-char
// pass only ASCII remains, so byte-indexed truncation is safe.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugWhitespaceRuns.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")

	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}

	// Truncation can leave a dangling hyphen
	return strings.TrimSuffix(slug, "-")
}
