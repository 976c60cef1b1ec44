package service

import (
	"context"

	"trendwatch-backend/internal/domains/post/model"
)

// PostService is the application-facing API over posts, covering both
// the public reader endpoints and the admin console
type PostService interface {
	// Public surface
	ListPublic(ctx context.Context, q model.ListPostsQuery) ([]model.Post, int, error)
	ListTrending(ctx context.Context, limit int) ([]model.Post, error)
	GetArticle(ctx context.Context, urlSlug string) (*model.ArticleResponse, error)
	React(ctx context.Context, urlSlug string) (int, error)

	// RemotePublished returns database-backed published posts only,
	// without the bundled static posts. The sitemap needs the two
	// sets separately.
	RemotePublished(ctx context.Context) ([]model.Post, error)

	// Admin surface
	ListAdmin(ctx context.Context, q model.ListPostsQuery) ([]model.Post, int, error)
	Get(ctx context.Context, id string) (*model.Post, error)
	Create(ctx context.Context, req *model.PostRequest) (*model.Post, error)
	Update(ctx context.Context, id string, req *model.PostRequest) (*model.Post, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status model.Status) error
	SetTrending(ctx context.Context, id string, trending bool) error
	Import(ctx context.Context, req *model.ImportPostsRequest) (*model.ImportResult, error)
	Stats(ctx context.Context) (*model.PostStats, error)
}
