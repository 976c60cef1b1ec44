package repository

import (
	"context"

	"trendwatch-backend/internal/domains/post/model"
)

// PostRepository abstracts post persistence. The bundled static posts
// never pass through here; implementations only see database-backed
// posts.
type PostRepository interface {
	List(ctx context.Context, q model.ListPostsQuery) ([]model.Post, int, error)
	ListPublished(ctx context.Context) ([]model.Post, error)
	ListTrending(ctx context.Context, limit int) ([]model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)
	Create(ctx context.Context, p *model.Post) error
	Update(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status model.Status) error
	SetTrending(ctx context.Context, id string, trending bool) error
	IncrementViews(ctx context.Context, id string) (int, error)
	IncrementReactions(ctx context.Context, id string) (int, error)
	Stats(ctx context.Context) (*model.PostStats, error)
}
