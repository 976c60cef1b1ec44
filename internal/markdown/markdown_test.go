package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "h1",
			input:    "# Title",
			expected: `<h1 class="content-h1">Title</h1>`,
		},
		{
			name:     "h2",
			input:    "## Section",
			expected: `<h2 class="content-h2">Section</h2>`,
		},
		{
			name:     "h3",
			input:    "### Subsection",
			expected: `<h3 class="content-h3">Subsection</h3>`,
		},
		{
			name:     "h4",
			input:    "#### Detail",
			expected: `<h4 class="content-h4">Detail</h4>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.input))
		})
	}
}

func TestRenderParagraphs(t *testing.T) {
	got := Render("# Title\n\nSome text.")

	assert.Equal(t,
		"<h1 class=\"content-h1\">Title</h1>\n\n<p class=\"content-p\">Some text.</p>",
		got)
}

func TestRenderLineBreaksInsideParagraph(t *testing.T) {
	got := Render("line one\nline two")

	assert.Equal(t, `<p class="content-p">line one<br />line two</p>`, got)
}

func TestRenderEscapesHTML(t *testing.T) {
	got := Render("a < b & c")

	assert.Equal(t, `<p class="content-p">a &lt; b &amp; c</p>`, got)
}

func TestRenderBlockquoteMergesAdjacentLines(t *testing.T) {
	got := Render("> first\n> second")

	assert.Equal(t, "<blockquote>first\nsecond</blockquote>", got)
}

func TestRenderCodeBlock(t *testing.T) {
	got := Render("```go\nfmt.Println(\"hi\")\n```")

	assert.Equal(t,
		`<pre class="code-block" data-lang="go"><code>fmt.Println("hi")</code></pre>`,
		got)
}

func TestRenderCodeBlockWithoutLanguage(t *testing.T) {
	got := Render("```\nplain text\n```")

	assert.Equal(t,
		`<pre class="code-block" data-lang=""><code>plain text</code></pre>`,
		got)
}

func TestRenderCodeBlockEscapesContents(t *testing.T) {
	got := Render("```html\n<div>\n```")

	assert.Contains(t, got, "<code>&lt;div&gt;</code>")
}

func TestRenderInlineCode(t *testing.T) {
	got := Render("run `go vet` first")

	assert.Equal(t,
		`<p class="content-p">run <code class="inline-code">go vet</code> first</p>`,
		got)
}

func TestRenderImageBeforeLink(t *testing.T) {
	// The image rule must consume the ![..](..) form before the link
	// rule sees the bracket pair.
	got := Render("![logo](https://cdn.example.com/logo.png)")

	assert.Equal(t,
		`<img src="https://cdn.example.com/logo.png" alt="logo" class="content-image" loading="lazy" />`,
		got)
}

func TestRenderLink(t *testing.T) {
	got := Render("see [the docs](https://example.com)")

	assert.Equal(t,
		`<p class="content-p">see <a href="https://example.com" target="_blank" rel="noopener noreferrer" class="content-link">the docs</a></p>`,
		got)
}

func TestRenderHorizontalRule(t *testing.T) {
	assert.Equal(t, `<hr class="content-hr" />`, Render("---"))
	assert.Equal(t, `<hr class="content-hr" />`, Render("***"))
}

func TestRenderEmphasisPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold italic stars",
			input:    "***both***",
			expected: `<p class="content-p"><strong><em>both</em></strong></p>`,
		},
		{
			name:     "bold italic underscores",
			input:    "___both___",
			expected: `<p class="content-p"><strong><em>both</em></strong></p>`,
		},
		{
			name:     "bold",
			input:    "**bold**",
			expected: `<p class="content-p"><strong class="content-bold">bold</strong></p>`,
		},
		{
			name:     "italic",
			input:    "*italic*",
			expected: `<p class="content-p"><em class="content-italic">italic</em></p>`,
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~",
			expected: `<p class="content-p"><del class="content-strikethrough">gone</del></p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Render(tt.input))
		})
	}
}

func TestRenderUnorderedList(t *testing.T) {
	got := Render("- one\n- two")

	assert.Equal(t,
		"<ul class=\"content-ul\"><li class=\"content-li\">one</li>\n<li class=\"content-li\">two</li></ul>",
		got)
}

func TestRenderOrderedList(t *testing.T) {
	got := Render("1. first\n2. second")

	assert.Equal(t,
		"<ol class=\"content-ol\"><li class=\"content-li-ordered\">first</li>\n<li class=\"content-li-ordered\">second</li></ol>",
		got)
}

func TestRenderSeparateListsStaySeparate(t *testing.T) {
	got := Render("- a\n\ntext between\n\n- b")

	assert.Equal(t, 2, strings.Count(got, `<ul class="content-ul">`))
}

func TestRenderTable(t *testing.T) {
	got := Render("| A | B |\n| --- | --- |\n| 1 | 2 |")

	assert.Equal(t,
		`<table class="content-table"><thead><tr><th>A</th><th>B</th></tr></thead><tbody><tr><td>1</td><td>2</td></tr></tbody></table>`,
		got)
}

func TestRenderTableMultipleRows(t *testing.T) {
	got := Render("| Name | Score |\n|---|---|\n| alpha | 10 |\n| beta | 20 |")

	assert.Contains(t, got, "<td>alpha</td><td>10</td>")
	assert.Contains(t, got, "<td>beta</td><td>20</td>")
	assert.Equal(t, 2, strings.Count(got, "<tr>")-1, "one header row plus two body rows")
}

func TestRenderEmptyInput(t *testing.T) {
	assert.Equal(t, "", Render(""))
}

func TestRenderMixedDocument(t *testing.T) {
	input := "# Post\n\nIntro paragraph.\n\n- point one\n- point two\n\n> a quote\n\nClosing."

	got := Render(input)

	assert.Contains(t, got, `<h1 class="content-h1">Post</h1>`)
	assert.Contains(t, got, `<p class="content-p">Intro paragraph.</p>`)
	assert.Contains(t, got, `<ul class="content-ul">`)
	assert.Contains(t, got, "<blockquote>a quote</blockquote>")
	assert.Contains(t, got, `<p class="content-p">Closing.</p>`)
}
