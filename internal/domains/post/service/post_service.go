package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"trendwatch-backend/internal/domains/category"
	"trendwatch-backend/internal/domains/post/model"
	"trendwatch-backend/internal/domains/post/repository"
	"trendwatch-backend/internal/markdown"
	"trendwatch-backend/internal/sitemap"
	"trendwatch-backend/internal/shared/utils"
	"trendwatch-backend/pkg/cache"
	"trendwatch-backend/pkg/logger"
)

const (
	cacheKeyPublished = "posts:published"
	cacheKeyTrending  = "posts:trending"
	cacheTTL          = 5 * time.Minute
)

type postService struct {
	repo  repository.PostRepository
	cache cache.Cache
}

func NewPostService(repo repository.PostRepository, cache cache.Cache) PostService {
	return &postService{
		repo:  repo,
		cache: cache,
	}
}

// ========================================
// PUBLIC SURFACE
// ========================================

func (s *postService) ListPublic(ctx context.Context, q model.ListPostsQuery) ([]model.Post, int, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}

	all, err := s.allPublished(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]model.Post, 0, len(all))
	search := strings.ToLower(q.Search)
	for _, p := range all {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Excerpt), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)

	// Paginate in memory; the merged static+database set is small
	start := (q.Page - 1) * q.Limit
	if start >= total {
		return []model.Post{}, total, nil
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return filtered[start:end], total, nil
}

func (s *postService) ListTrending(ctx context.Context, limit int) ([]model.Post, error) {
	if limit <= 0 {
		limit = 5
	}

	var cached []model.Post
	key := fmt.Sprintf("%s:%d", cacheKeyTrending, limit)
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	remote, err := s.repo.ListTrending(ctx, limit)
	if err != nil {
		return nil, err
	}

	trending := remote
	for _, p := range model.StaticPosts() {
		if p.Trending {
			trending = append(trending, p)
		}
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Views > trending[j].Views
	})
	if len(trending) > limit {
		trending = trending[:limit]
	}

	if err := s.cache.Set(ctx, key, trending, cacheTTL); err != nil {
		logger.Warn("trending cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return trending, nil
}

// GetArticle resolves a URL slug to a post and returns it with
// rendered HTML. Bundled posts are checked exhaustively before the
// database is touched, so the common static articles never cost a
// query.
func (s *postService) GetArticle(ctx context.Context, urlSlug string) (*model.ArticleResponse, error) {
	slug := normalizeSlug(urlSlug)

	if p := matchPost(model.StaticPosts(), slug); p != nil {
		return s.renderArticle(p), nil
	}

	remote, err := s.RemotePublished(ctx)
	if err != nil {
		// A reader asking for an article cannot do anything with a
		// backend failure; log it and present the page as missing.
		logger.Error("fetch posts for slug resolution", err)
		return nil, model.ErrPostNotFound
	}

	p := matchPost(remote, slug)
	if p == nil {
		return nil, model.ErrPostNotFound
	}

	if views, err := s.repo.IncrementViews(ctx, p.ID); err == nil {
		p.Views = views
	} else {
		logger.Warn("view counter update failed", map[string]interface{}{
			"post_id": p.ID,
			"error":   err.Error(),
		})
	}

	return s.renderArticle(p), nil
}

func (s *postService) renderArticle(p *model.Post) *model.ArticleResponse {
	html := markdown.Render(p.Content)
	return &model.ArticleResponse{
		Post:        p,
		ContentHTML: markdown.InsertAdPlaceholder(html),
	}
}

func (s *postService) React(ctx context.Context, urlSlug string) (int, error) {
	slug := normalizeSlug(urlSlug)

	// Reactions on bundled posts are not persisted anywhere; report
	// the shipped count unchanged.
	if p := matchPost(model.StaticPosts(), slug); p != nil {
		return p.Reactions, nil
	}

	remote, err := s.RemotePublished(ctx)
	if err != nil {
		logger.Error("fetch posts for reaction", err)
		return 0, model.ErrPostNotFound
	}

	p := matchPost(remote, slug)
	if p == nil {
		return 0, model.ErrPostNotFound
	}

	return s.repo.IncrementReactions(ctx, p.ID)
}

// RemotePublished returns published database posts, served from cache
// when fresh
func (s *postService) RemotePublished(ctx context.Context) ([]model.Post, error) {
	var cached []model.Post
	if hit, err := s.cache.Get(ctx, cacheKeyPublished, &cached); err == nil && hit {
		return cached, nil
	}

	posts, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKeyPublished, posts, cacheTTL); err != nil {
		logger.Warn("published cache write failed", map[string]interface{}{"error": err.Error()})
	}
	return posts, nil
}

// allPublished merges bundled and database posts, newest first
func (s *postService) allPublished(ctx context.Context) ([]model.Post, error) {
	remote, err := s.RemotePublished(ctx)
	if err != nil {
		return nil, err
	}

	// Remote posts win over a bundled post with the same id, so an
	// imported or edited copy replaces its static original.
	seen := make(map[string]bool, len(remote))
	all := make([]model.Post, 0, len(remote)+4)
	for _, p := range remote {
		seen[p.ID] = true
		all = append(all, p)
	}
	for _, p := range model.StaticPosts() {
		if !seen[p.ID] {
			all = append(all, p)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date > all[j].Date
	})
	return all, nil
}

// ========================================
// ADMIN SURFACE
// ========================================

func (s *postService) ListAdmin(ctx context.Context, q model.ListPostsQuery) ([]model.Post, int, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, q)
}

func (s *postService) Get(ctx context.Context, id string) (*model.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, req *model.PostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := s.fromRequest(req)
	p.ID = uuid.NewString()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	logger.Info("post created", map[string]interface{}{
		"post_id": p.ID,
		"slug":    p.EffectiveSlug(),
	})
	return p, nil
}

func (s *postService) Update(ctx context.Context, id string, req *model.PostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p := s.fromRequest(req)
	p.ID = existing.ID
	p.Views = existing.Views
	p.Reactions = existing.Reactions
	p.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return p, nil
}

// fromRequest maps a write DTO onto a post, filling derived fields
func (s *postService) fromRequest(req *model.PostRequest) *model.Post {
	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	return &model.Post{
		Title:    req.Title,
		Slug:     req.Slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
		Author: model.Author{
			Name:   req.AuthorName,
			Avatar: req.AuthorAvatar,
		},
		Date:     date,
		ReadTime: utils.CalculateReadTime(req.Content),
		Trending: req.Trending,
		Status:   model.Status(req.Status).OrDefault(),
	}
}

func (s *postService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *postService) SetStatus(ctx context.Context, id string, status model.Status) error {
	if !status.IsValid() {
		return model.ErrInvalidStatus
	}
	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *postService) SetTrending(ctx context.Context, id string, trending bool) error {
	if err := s.repo.SetTrending(ctx, id, trending); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Import loads posts exported from the previous hosting platform.
// Rows that collide with existing IDs or slugs are skipped, not
// overwritten, so re-running an import is safe.
func (s *postService) Import(ctx context.Context, req *model.ImportPostsRequest) (*model.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &model.ImportResult{}
	for _, legacy := range req.Posts {
		p, err := s.fromLegacy(legacy)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", legacy.ID, err))
			continue
		}

		if err := s.repo.Create(ctx, p); err != nil {
			if errors.Is(err, model.ErrSlugAlreadyExists) {
				result.Skipped++
				continue
			}
			return nil, err
		}
		result.Imported++
	}

	s.invalidate(ctx)
	logger.Info("legacy import finished", map[string]interface{}{
		"imported": result.Imported,
		"skipped":  result.Skipped,
	})
	return result, nil
}

func (s *postService) fromLegacy(legacy model.LegacyPost) (*model.Post, error) {
	if legacy.Title == "" {
		return nil, fmt.Errorf("missing title")
	}
	if !category.IsValid(legacy.Category) {
		return nil, model.ErrInvalidCategory
	}
	if !model.Status(legacy.Status).OrDefault().IsValid() {
		return nil, model.ErrInvalidStatus
	}

	id := legacy.ID
	if id == "" {
		id = uuid.NewString()
	}

	// Legacy exports carry timestamps in assorted shapes; normalize
	// everything down to a calendar date.
	date := legacy.Date
	if date == "" {
		date = sitemap.NormalizeDate(legacy.CreatedAtRaw)
	}

	readTime := legacy.ReadTime
	if readTime <= 0 {
		readTime = utils.CalculateReadTime(legacy.Content)
	}

	return &model.Post{
		ID:        id,
		Title:     legacy.Title,
		Slug:      legacy.Slug,
		Excerpt:   legacy.Excerpt,
		Content:   legacy.Content,
		Category:  legacy.Category,
		Image:     legacy.Image,
		Author:    legacy.Author,
		Date:      date,
		ReadTime:  readTime,
		Trending:  legacy.Trending,
		Views:     legacy.Views,
		Reactions: legacy.Reactions,
		Status:    model.Status(legacy.Status).OrDefault(),
	}, nil
}

func (s *postService) Stats(ctx context.Context) (*model.PostStats, error) {
	return s.repo.Stats(ctx)
}

// invalidate drops every post-related cache entry after a write
func (s *postService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, "posts:*"); err != nil {
		logger.Warn("post cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}
