package sitemap

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendwatch-backend/internal/domains/post/model"
)

const testBaseURL = "https://trendwatch-now.web.app"

func TestGenerateSinglePost(t *testing.T) {
	g := NewGenerator(testBaseURL)
	static := []model.Post{
		{ID: "p1", Title: "Hello World", Date: "2024-01-01"},
	}

	xml := g.Generate(static, nil)

	assert.Contains(t, xml, "<loc>"+testBaseURL+"/article/hello-world</loc>")
	assert.Equal(t, 1, strings.Count(xml, "/article/"), "exactly one article entry")

	entry := articleEntry(t, xml, "hello-world")
	assert.Contains(t, entry, "<lastmod>2024-01-01</lastmod>")
	assert.Contains(t, entry, "<changefreq>weekly</changefreq>")
	assert.Contains(t, entry, "<priority>0.9</priority>")
}

func TestGenerateStaticPostWinsSlugCollision(t *testing.T) {
	g := NewGenerator(testBaseURL)
	static := []model.Post{
		{ID: "p1", Title: "Hello World", Date: "2024-01-01"},
	}
	remote := []model.Post{
		{
			ID:        "abc123",
			Title:     "Hello World",
			Status:    model.StatusPublished,
			UpdatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	xml := g.Generate(static, remote)

	assert.Equal(t, 1, strings.Count(xml, "/article/hello-world</loc>"))

	// The bundled copy's date wins even though the database copy is newer
	entry := articleEntry(t, xml, "hello-world")
	assert.Contains(t, entry, "<lastmod>2024-01-01</lastmod>")
	assert.NotContains(t, xml, "2025-06-01")
}

func TestGenerateSkipsDrafts(t *testing.T) {
	g := NewGenerator(testBaseURL)
	remote := []model.Post{
		{ID: "a", Title: "Draft Piece", Status: model.StatusDraft, Date: "2024-02-02"},
		{ID: "b", Title: "No Status Post", Date: "2024-02-03"},
		{ID: "c", Title: "Published Post", Status: model.StatusPublished, Date: "2024-02-04"},
	}

	xml := g.Generate(nil, remote)

	assert.NotContains(t, xml, "draft-piece")
	// Absent status means the row predates the column and was live
	assert.Contains(t, xml, "/article/no-status-post")
	assert.Contains(t, xml, "/article/published-post")
}

func TestGenerateExplicitSlugPreferred(t *testing.T) {
	g := NewGenerator(testBaseURL)
	static := []model.Post{
		{ID: "p1", Title: "A Very Long Editorial Title", Slug: "short-slug", Date: "2024-01-01"},
	}

	xml := g.Generate(static, nil)

	assert.Contains(t, xml, "/article/short-slug</loc>")
	assert.NotContains(t, xml, "a-very-long-editorial-title")
}

func TestGenerateFixedPages(t *testing.T) {
	g := NewGenerator(testBaseURL)

	xml := g.Generate(nil, nil)

	for _, path := range []string{"/", "/about", "/contact", "/privacy-policy", "/terms-of-service", "/disclaimer"} {
		assert.Contains(t, xml, "<loc>"+testBaseURL+path+"</loc>")
	}
	assert.Equal(t, 12, strings.Count(xml, "/category/"))
	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, xml, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(xml), "</urlset>"))
}

// articleEntry extracts the <url> block for one article slug
func articleEntry(t *testing.T, xml, slug string) string {
	t.Helper()
	idx := strings.Index(xml, "/article/"+slug)
	if idx < 0 {
		t.Fatalf("no entry for slug %q", slug)
	}
	start := strings.LastIndex(xml[:idx], "<url>")
	end := idx + strings.Index(xml[idx:], "</url>")
	return xml[start:end]
}

func TestNormalizeDateTotal(t *testing.T) {
	datePattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"date string", "2024-01-15"},
		{"iso string", "2024-01-15T10:00:00Z"},
		{"garbage string", "not a date"},
		{"native time", time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)},
		{"zero time", time.Time{}},
		{"seconds map", map[string]any{"seconds": float64(1700000000)}},
		{"epoch millis", int64(1700000000000)},
		{"timestamp provider", Timestamp{Seconds: 1700000000}},
		{"unhandled type", struct{ X int }{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.input)
			assert.Regexp(t, datePattern, got)
		})
	}
}

func TestNormalizeDateValues(t *testing.T) {
	assert.Equal(t, "2024-01-15", NormalizeDate("2024-01-15"))
	assert.Equal(t, "2024-01-15", NormalizeDate("2024-01-15T10:00:00Z"))
	assert.Equal(t, "2024-03-05", NormalizeDate(time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-11-14", NormalizeDate(map[string]any{"seconds": float64(1700000000)}))
	assert.Equal(t, "2023-11-14", NormalizeDate(int64(1700000000000)))
	assert.Equal(t, "2023-11-14", NormalizeDate(Timestamp{Seconds: 1700000000}))
}
