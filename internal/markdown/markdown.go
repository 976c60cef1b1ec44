// Package markdown converts the constrained markdown dialect used by
// article bodies into HTML fragments. It is a regex chain, not a real
// parser: each rule runs once, in a fixed order, over the whole
// document, and rule order is the only thing resolving precedence
// between overlapping syntaxes.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var (
	reBlockquote = regexp.MustCompile(`(?m)^&gt;\s?(.*)$`)
	reCodeBlock  = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reImage      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	// Heading rules run from h4 down to h1 so the longer marker is
	// consumed before a shorter pattern can claim it.
	reH4 = regexp.MustCompile(`(?m)^#### (.+)$`)
	reH3 = regexp.MustCompile(`(?m)^### (.+)$`)
	reH2 = regexp.MustCompile(`(?m)^## (.+)$`)
	reH1 = regexp.MustCompile(`(?m)^# (.+)$`)

	reHRDash = regexp.MustCompile(`(?m)^---$`)
	reHRStar = regexp.MustCompile(`(?m)^\*\*\*$`)

	// Emphasis rules are ordered triple -> double -> single so a
	// ***span*** is not partially eaten by the bold-only rule.
	reBoldItalicStar = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	reBoldItalicUnd  = regexp.MustCompile(`___([^_]+)___`)
	reBoldStar       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	reBoldUnd        = regexp.MustCompile(`__([^_]+)__`)
	reItalicStar     = regexp.MustCompile(`\*([^*]+)\*`)
	reItalicUnd      = regexp.MustCompile(`_([^_]+)_`)

	reStrike = regexp.MustCompile(`~~([^~]+)~~`)

	reListItem     = regexp.MustCompile(`(?m)^[\-\*]\s+(.+)$`)
	reListRun      = regexp.MustCompile(`(?:<li class="content-li">.*</li>\n?)+`)
	reOrderedItem  = regexp.MustCompile(`(?m)^\d+\.\s+(.+)$`)
	reOrderedRun   = regexp.MustCompile(`(?:<li class="content-li-ordered">.*</li>\n?)+`)
	reTable        = regexp.MustCompile(`\|(.+)\|\n\|[-:\s|]+\|\n((?:\|.+\|\n?)+)`)
	reBlankLines   = regexp.MustCompile(`\n\n+`)
	reLineBreaks   = strings.NewReplacer("\n", "<br />")
	blockPrefixes  = []string{"<h1", "<h2", "<h3", "<h4", "<ul", "<ol", "<blockquote", "<pre", "<table", "<hr", "<img"}
)

// Render converts raw markdown to an HTML fragment. Pure and total:
// any input produces some HTML, malformed syntax degrades to plain
// paragraphs. The input must be raw markdown - re-rendering already
// rendered HTML is undefined.
func Render(content string) string {
	html := content

	// Escape HTML entities first
	html = htmlEscaper.Replace(html)

	// Restore blockquote markers that the escape pass just consumed
	html = reBlockquote.ReplaceAllString(html, "<blockquote>$1</blockquote>")

	// Fenced code blocks (```lang ... ```)
	html = reCodeBlock.ReplaceAllStringFunc(html, func(match string) string {
		sub := reCodeBlock.FindStringSubmatch(match)
		return fmt.Sprintf(`<pre class="code-block" data-lang="%s"><code>%s</code></pre>`,
			sub[1], strings.TrimSpace(sub[2]))
	})

	// Inline code
	html = reInlineCode.ReplaceAllString(html, `<code class="inline-code">$1</code>`)

	// Images ![alt](url)
	html = reImage.ReplaceAllString(html, `<img src="$2" alt="$1" class="content-image" loading="lazy" />`)

	// Links [text](url)
	html = reLink.ReplaceAllString(html, `<a href="$2" target="_blank" rel="noopener noreferrer" class="content-link">$1</a>`)

	// Headings, longest marker first
	html = reH4.ReplaceAllString(html, `<h4 class="content-h4">$1</h4>`)
	html = reH3.ReplaceAllString(html, `<h3 class="content-h3">$1</h3>`)
	html = reH2.ReplaceAllString(html, `<h2 class="content-h2">$1</h2>`)
	html = reH1.ReplaceAllString(html, `<h1 class="content-h1">$1</h1>`)

	// Horizontal rules
	html = reHRDash.ReplaceAllString(html, `<hr class="content-hr" />`)
	html = reHRStar.ReplaceAllString(html, `<hr class="content-hr" />`)

	// Bold + italic, then bold, then italic
	html = reBoldItalicStar.ReplaceAllString(html, `<strong><em>$1</em></strong>`)
	html = reBoldItalicUnd.ReplaceAllString(html, `<strong><em>$1</em></strong>`)
	html = reBoldStar.ReplaceAllString(html, `<strong class="content-bold">$1</strong>`)
	html = reBoldUnd.ReplaceAllString(html, `<strong class="content-bold">$1</strong>`)
	html = reItalicStar.ReplaceAllString(html, `<em class="content-italic">$1</em>`)
	html = reItalicUnd.ReplaceAllString(html, `<em class="content-italic">$1</em>`)

	// Strikethrough
	html = reStrike.ReplaceAllString(html, `<del class="content-strikethrough">$1</del>`)

	// Unordered lists: wrap items, then merge contiguous runs into one <ul>
	html = reListItem.ReplaceAllString(html, `<li class="content-li">$1</li>`)
	html = reListRun.ReplaceAllStringFunc(html, func(match string) string {
		return `<ul class="content-ul">` + match + `</ul>`
	})

	// Ordered lists
	html = reOrderedItem.ReplaceAllString(html, `<li class="content-li-ordered">$1</li>`)
	html = reOrderedRun.ReplaceAllStringFunc(html, func(match string) string {
		return `<ol class="content-ol">` + match + `</ol>`
	})

	// Merge consecutive blockquote lines into one logical quote
	html = strings.ReplaceAll(html, "</blockquote>\n<blockquote>", "\n")

	// Pipe tables: header row, separator row, body rows
	html = reTable.ReplaceAllStringFunc(html, renderTable)

	// Wrap remaining loose text in paragraphs
	return wrapParagraphs(html)
}

func renderTable(match string) string {
	sub := reTable.FindStringSubmatch(match)
	headerRow, bodyRows := sub[1], sub[2]

	var b strings.Builder
	b.WriteString(`<table class="content-table"><thead><tr>`)
	for _, h := range splitCells(headerRow) {
		b.WriteString("<th>")
		b.WriteString(h)
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")

	for _, row := range strings.Split(strings.TrimSpace(bodyRows), "\n") {
		b.WriteString("<tr>")
		for _, cell := range splitCells(row) {
			b.WriteString("<td>")
			b.WriteString(cell)
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</tbody></table>")
	return b.String()
}

// splitCells splits a pipe row and drops empty cells, which also
// discards the empty edges produced by leading/trailing pipes.
func splitCells(row string) []string {
	var cells []string
	for _, c := range strings.Split(row, "|") {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func wrapParagraphs(html string) string {
	blocks := reBlankLines.Split(html, -1)

	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" || startsWithBlockTag(trimmed) {
			out = append(out, trimmed)
			continue
		}
		// Single newlines inside a paragraph become line breaks
		withBreaks := reLineBreaks.Replace(trimmed)
		out = append(out, `<p class="content-p">`+withBreaks+`</p>`)
	}

	return strings.Join(out, "\n\n")
}

func startsWithBlockTag(s string) bool {
	for _, prefix := range blockPrefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
