package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAdPlaceholderShortContentUnchanged(t *testing.T) {
	// A single paragraph splits into two parts, which is below the
	// insertion threshold.
	html := `<p class="content-p">only one</p>`

	assert.Equal(t, html, InsertAdPlaceholder(html))
	assert.Equal(t, "", InsertAdPlaceholder(""))
}

func TestInsertAdPlaceholderAtMidpoint(t *testing.T) {
	html := `<p>A</p><p>B</p><p>C</p><p>D</p>`

	got := InsertAdPlaceholder(html)

	assert.Equal(t, 1, strings.Count(got, AdPlaceholder))

	// The placeholder lands at the middle paragraph boundary
	before, after, found := strings.Cut(got, AdPlaceholder)
	assert.True(t, found)
	assert.Contains(t, before, "<p>B")
	assert.Contains(t, after, "<p>C")
}

func TestInsertAdPlaceholderPreservesParagraphs(t *testing.T) {
	html := `<p>A</p><p>B</p><p>C</p>`

	got := InsertAdPlaceholder(html)

	for _, body := range []string{"<p>A", "<p>B", "<p>C"} {
		assert.Contains(t, got, body)
	}
}
