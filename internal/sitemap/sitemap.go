// Package sitemap renders the SEO sitemap for the whole site: fixed
// pages, category pages, and every published article from both the
// bundled and database-backed post sets.
package sitemap

import (
	"fmt"
	"strings"
	"time"

	"trendwatch-backend/internal/domains/category"
	"trendwatch-backend/internal/domains/post/model"
)

type staticPage struct {
	Path       string
	Priority   string
	ChangeFreq string
}

var staticPages = []staticPage{
	{Path: "/", Priority: "1.0", ChangeFreq: "daily"},
	{Path: "/about", Priority: "0.8", ChangeFreq: "monthly"},
	{Path: "/contact", Priority: "0.8", ChangeFreq: "monthly"},
	{Path: "/privacy-policy", Priority: "0.5", ChangeFreq: "yearly"},
	{Path: "/terms-of-service", Priority: "0.5", ChangeFreq: "yearly"},
	{Path: "/disclaimer", Priority: "0.5", ChangeFreq: "yearly"},
}

// Generator renders sitemap XML rooted at a site base URL
type Generator struct {
	baseURL string
}

func NewGenerator(baseURL string) *Generator {
	return &Generator{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// Generate builds the sitemap document. Posts are deduplicated by
// slug; bundled posts are inserted first and win ties against
// database posts with the same derived slug, even when the database
// copy is newer, because the bundled copy is the canonical one.
func (g *Generator) Generate(staticPosts, remotePosts []model.Post) string {
	today := time.Now().Format("2006-01-02")

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	fmt.Fprintf(&b, "  <!-- Generated automatically on %s -->\n", today)

	b.WriteString("\n  <!-- Static Pages -->\n")
	for _, page := range staticPages {
		g.writeEntry(&b, page.Path, today, page.ChangeFreq, page.Priority)
	}

	b.WriteString("\n  <!-- Category Pages -->\n")
	for _, id := range category.IDs() {
		g.writeEntry(&b, "/category/"+id, today, "daily", "0.7")
	}

	b.WriteString("\n  <!-- Articles -->\n")
	for _, entry := range dedupePosts(staticPosts, remotePosts) {
		g.writeEntry(&b, "/article/"+entry.slug, lastMod(entry.post), "weekly", "0.9")
	}

	b.WriteString("</urlset>\n")
	return b.String()
}

func (g *Generator) writeEntry(b *strings.Builder, path, lastmod, changefreq, priority string) {
	b.WriteString("  <url>\n")
	fmt.Fprintf(b, "    <loc>%s%s</loc>\n", g.baseURL, path)
	fmt.Fprintf(b, "    <lastmod>%s</lastmod>\n", lastmod)
	fmt.Fprintf(b, "    <changefreq>%s</changefreq>\n", changefreq)
	fmt.Fprintf(b, "    <priority>%s</priority>\n", priority)
	b.WriteString("  </url>\n")
}

type postEntry struct {
	slug string
	post model.Post
}

// dedupePosts merges the two post sets keyed by effective slug,
// keeping insertion order: all static posts first, then database
// posts that are published (or carry no status) and do not collide.
func dedupePosts(staticPosts, remotePosts []model.Post) []postEntry {
	seen := make(map[string]bool, len(staticPosts)+len(remotePosts))
	var entries []postEntry

	add := func(p model.Post) {
		slug := p.EffectiveSlug()
		if slug == "" || seen[slug] {
			return
		}
		seen[slug] = true
		entries = append(entries, postEntry{slug: slug, post: p})
	}

	for _, p := range staticPosts {
		add(p)
	}
	for _, p := range remotePosts {
		if p.IsPublished() {
			add(p)
		}
	}
	return entries
}

// lastMod picks the freshest known date for a post, preferring the
// update timestamp, then creation, then the display date
func lastMod(p model.Post) string {
	if !p.UpdatedAt.IsZero() {
		return NormalizeDate(p.UpdatedAt)
	}
	if !p.CreatedAt.IsZero() {
		return NormalizeDate(p.CreatedAt)
	}
	if p.Date != "" {
		return NormalizeDate(p.Date)
	}
	return time.Now().Format("2006-01-02")
}
