package service

import (
	"strings"

	"trendwatch-backend/internal/domains/post/model"
	"trendwatch-backend/internal/shared/utils"
)

// fuzzyMinLength guards prefix matching: short URL slugs would match
// far too many posts
const fuzzyMinLength = 10

// normalizeSlug canonicalizes the slug taken from the URL path
func normalizeSlug(urlSlug string) string {
	return strings.ToLower(strings.TrimSpace(urlSlug))
}

// matchPost finds the post a URL slug refers to, trying strategies in
// strict priority order over the whole collection before weakening
// the match:
//
//  1. exact match on the stored slug
//  2. exact match on the slug generated from the title
//  3. exact match on the post ID
//  4. prefix match, only for slugs long enough to be unambiguous
//
// Each strategy scans all posts before the next one runs, so an exact
// match elsewhere in the collection always beats an earlier fuzzy one.
func matchPost(posts []model.Post, urlSlug string) *model.Post {
	// Priority 1: stored slug
	for i := range posts {
		if posts[i].Slug != "" && strings.ToLower(posts[i].Slug) == urlSlug {
			return &posts[i]
		}
	}

	// Priority 2: slug generated from the title
	for i := range posts {
		if utils.GenerateSlug(posts[i].Title) == urlSlug {
			return &posts[i]
		}
	}

	// Priority 3: post ID (bundled posts use slug-like IDs, and old
	// shared links sometimes carried raw IDs)
	for i := range posts {
		if strings.ToLower(posts[i].ID) == urlSlug {
			return &posts[i]
		}
	}

	// Priority 4: prefix matching for truncated or over-long links
	if len(urlSlug) < fuzzyMinLength {
		return nil
	}
	for i := range posts {
		stored := strings.ToLower(posts[i].Slug)
		if stored != "" {
			if strings.HasPrefix(urlSlug, stored) {
				return &posts[i]
			}
			if len(stored) > fuzzyMinLength && strings.HasPrefix(stored, urlSlug) {
				return &posts[i]
			}
		}

		generated := utils.GenerateSlug(posts[i].Title)
		if strings.HasPrefix(urlSlug, generated) && generated != "" {
			return &posts[i]
		}
		if len(generated) > fuzzyMinLength && strings.HasPrefix(generated, urlSlug) {
			return &posts[i]
		}
	}

	return nil
}
