package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"trendwatch-backend/internal/domains/category"
)

// ========================================
// QUERY DTOs
// ========================================

// ListPostsQuery - filters for the public and admin post listings
type ListPostsQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=20"`
	Category string `form:"category"`
	Search   string `form:"search"`
	Status   string `form:"status"`
}

func (q ListPostsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Page, validation.Min(1)),
		validation.Field(&q.Limit, validation.Min(1), validation.Max(100)),
		validation.Field(&q.Category,
			validation.When(q.Category != "", validation.By(validCategory)),
		),
		validation.Field(&q.Status,
			validation.In("", string(StatusPublished), string(StatusDraft)),
		),
	)
}

// ========================================
// WRITE DTOs
// ========================================

// PostRequest - payload for creating or replacing a post through the
// admin console
type PostRequest struct {
	Title        string `json:"title" binding:"required"`
	Slug         string `json:"slug"`
	Excerpt      string `json:"excerpt" binding:"required"`
	Content      string `json:"content" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Image        string `json:"image"`
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`
	Date         string `json:"date"`
	Trending     bool   `json:"trending"`
	Status       string `json:"status"`
}

func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 300),
		),
		validation.Field(&r.Excerpt,
			validation.Required.Error("excerpt is required"),
			validation.Length(1, 1000),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.By(validCategory),
		),
		validation.Field(&r.Image,
			validation.When(r.Image != "", is.URL.Error("image must be a valid URL")),
		),
		validation.Field(&r.Date,
			validation.When(r.Date != "", validation.Date("2006-01-02").Error("date must be YYYY-MM-DD")),
		),
		validation.Field(&r.Status,
			validation.In("", string(StatusPublished), string(StatusDraft)).Error("status must be published or draft"),
		),
	)
}

// UpdateStatusRequest - PATCH payload toggling publication state
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required,
			validation.In(string(StatusPublished), string(StatusDraft)).Error("status must be published or draft"),
		),
	)
}

// UpdateTrendingRequest - PATCH payload toggling the trending flag
type UpdateTrendingRequest struct {
	Trending *bool `json:"trending" binding:"required"`
}

func (r UpdateTrendingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Trending, validation.NotNil.Error("trending is required")),
	)
}

// ========================================
// IMPORT DTOs
// ========================================

// LegacyPost is one post as exported from the previous hosting
// platform. Timestamps arrive in several shapes (ISO strings,
// {seconds, nanoseconds} objects, epoch millis), so they stay untyped
// here and are normalized during import.
type LegacyPost struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	Excerpt      string `json:"excerpt"`
	Content      string `json:"content"`
	Category     string `json:"category"`
	Image        string `json:"image"`
	Author       Author `json:"author"`
	Date         string `json:"date"`
	ReadTime     int    `json:"readTime"`
	Trending     bool   `json:"trending"`
	Views        int    `json:"views"`
	Reactions    int    `json:"reactions"`
	Status       string `json:"status"`
	CreatedAtRaw any    `json:"createdAt"`
	UpdatedAtRaw any    `json:"updatedAt"`
}

// ImportPostsRequest - bulk import of legacy posts
type ImportPostsRequest struct {
	Posts []LegacyPost `json:"posts" binding:"required"`
}

func (r ImportPostsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Posts, validation.Required.Error("posts must not be empty")),
	)
}

// ImportResult summarizes one bulk import run
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ========================================
// RESPONSE DTOs
// ========================================

// ArticleResponse is the reader-facing shape: the post plus its
// rendered HTML with the ad placeholder already inserted
type ArticleResponse struct {
	Post        *Post  `json:"post"`
	ContentHTML string `json:"content_html"`
}

// PostStats - admin dashboard counters
type PostStats struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	Drafts     int `json:"drafts"`
	Trending   int `json:"trending"`
	TotalViews int `json:"total_views"`
}

func validCategory(value interface{}) error {
	id, _ := value.(string)
	if !category.IsValid(id) {
		return ErrInvalidCategory
	}
	return nil
}
