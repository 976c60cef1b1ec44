package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendwatch-backend/internal/domains/post/model"
)

func TestMatchPostStoredSlug(t *testing.T) {
	posts := []model.Post{
		{ID: "1", Title: "Some Title", Slug: "custom-slug"},
	}

	got := matchPost(posts, "custom-slug")

	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)
}

func TestMatchPostGeneratedSlug(t *testing.T) {
	posts := []model.Post{
		{ID: "1", Title: "Hello World"},
	}

	got := matchPost(posts, "hello-world")

	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)
}

func TestMatchPostByID(t *testing.T) {
	posts := []model.Post{
		{ID: "GTA6-Trailer-Record", Title: "Completely Different Title"},
	}

	// IDs compare case-insensitively
	got := matchPost(posts, "gta6-trailer-record")

	require.NotNil(t, got)
}

func TestMatchPostExactBeatsFuzzy(t *testing.T) {
	posts := []model.Post{
		{ID: "1", Title: "Breaking News Update Extended Coverage"}, // fuzzy candidate
		{ID: "2", Slug: "breaking-news-update", Title: "Other"},    // exact stored slug
	}

	got := matchPost(posts, "breaking-news-update")

	require.NotNil(t, got)
	assert.Equal(t, "2", got.ID, "an exact match anywhere wins over an earlier fuzzy one")
}

func TestMatchPostFuzzyPrefix(t *testing.T) {
	posts := []model.Post{
		{ID: "1", Title: "Bitcoin Halving Twenty Twenty Four Explained"},
	}

	// URL slug truncated mid-title still resolves
	got := matchPost(posts, "bitcoin-halving-twenty")

	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)
}

func TestMatchPostFuzzyNeedsLongSlug(t *testing.T) {
	posts := []model.Post{
		{ID: "1", Slug: "technology-trends", Title: "Technology Trends"},
	}

	// 9 characters: under the fuzzy threshold, no prefix matching
	assert.Nil(t, matchPost(posts, "technolog"))

	// 10 characters: threshold reached
	assert.NotNil(t, matchPost(posts, "technology"))
}

func TestMatchPostNoMatch(t *testing.T) {
	posts := []model.Post{
		{ID: "1", Title: "Hello World", Slug: "hello-world"},
	}

	assert.Nil(t, matchPost(posts, "completely-unrelated-slug"))
	assert.Nil(t, matchPost(nil, "anything"))
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "hello-world", normalizeSlug("  Hello-World  "))
	assert.Equal(t, "", normalizeSlug("   "))
}
