package model

import (
	"time"

	"trendwatch-backend/internal/shared/utils"
)

// Status represents the publication state of a post
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPublished, StatusDraft:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// OrDefault maps the zero value to published. Rows written before the
// status column existed have no status, and those posts were always
// live.
func (s Status) OrDefault() Status {
	if s == "" {
		return StatusPublished
	}
	return s
}

// Author is the byline embedded in each post
type Author struct {
	Name   string `json:"name" db:"author_name"`
	Avatar string `json:"avatar" db:"author_avatar"`
}

// Post represents a single article. IDs are strings, not UUIDs: posts
// bundled with the app use slug-like IDs, imported legacy posts keep
// whatever ID the old system assigned, and only posts created through
// the admin console get a fresh UUID.
type Post struct {
	ID       string `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Slug     string `json:"slug,omitempty" db:"slug"`
	Excerpt  string `json:"excerpt" db:"excerpt"`
	Content  string `json:"content" db:"content"`
	Category string `json:"category" db:"category"`
	Image    string `json:"image" db:"image"`
	Author   Author `json:"author"`

	// Date is the display date in YYYY-MM-DD form
	Date      string `json:"date" db:"date"`
	ReadTime  int    `json:"readTime" db:"read_time"`
	Trending  bool   `json:"trending" db:"trending"`
	Views     int    `json:"views" db:"views"`
	Reactions int    `json:"reactions" db:"reactions"`
	Status    Status `json:"status,omitempty" db:"status"`

	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// EffectiveSlug returns the explicit slug when one is set, otherwise
// the slug derived from the title. Every URL-facing lookup goes
// through this.
func (p *Post) EffectiveSlug() string {
	if p.Slug != "" {
		return p.Slug
	}
	return utils.GenerateSlug(p.Title)
}

// IsPublished treats a missing status as published
func (p *Post) IsPublished() bool {
	return p.Status.OrDefault() == StatusPublished
}
