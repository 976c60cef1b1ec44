package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendwatch-backend/internal/domains/post/model"
	"trendwatch-backend/internal/domains/post/repository"
)

// ========================================
// FAKES
// ========================================

// fakeRepo is an in-memory PostRepository
type fakeRepo struct {
	posts   map[string]*model.Post
	listErr error
}

var _ repository.PostRepository = (*fakeRepo)(nil)

func newFakeRepo(posts ...model.Post) *fakeRepo {
	r := &fakeRepo{posts: make(map[string]*model.Post)}
	for i := range posts {
		p := posts[i]
		r.posts[p.ID] = &p
	}
	return r
}

func (r *fakeRepo) List(ctx context.Context, q model.ListPostsQuery) ([]model.Post, int, error) {
	all, err := r.ListPublished(ctx)
	return all, len(all), err
}

func (r *fakeRepo) ListPublished(ctx context.Context) ([]model.Post, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []model.Post
	for _, p := range r.posts {
		if p.IsPublished() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListTrending(ctx context.Context, limit int) ([]model.Post, error) {
	var out []model.Post
	for _, p := range r.posts {
		if p.Trending && p.IsPublished() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, model.ErrPostNotFound
}

func (r *fakeRepo) Create(ctx context.Context, p *model.Post) error {
	if _, exists := r.posts[p.ID]; exists {
		return model.ErrSlugAlreadyExists
	}
	for _, existing := range r.posts {
		if p.Slug != "" && existing.Slug == p.Slug {
			return model.ErrSlugAlreadyExists
		}
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, p *model.Post) error {
	if _, ok := r.posts[p.ID]; !ok {
		return model.ErrPostNotFound
	}
	cp := *p
	r.posts[p.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return model.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *fakeRepo) SetStatus(ctx context.Context, id string, status model.Status) error {
	p, ok := r.posts[id]
	if !ok {
		return model.ErrPostNotFound
	}
	p.Status = status
	return nil
}

func (r *fakeRepo) SetTrending(ctx context.Context, id string, trending bool) error {
	p, ok := r.posts[id]
	if !ok {
		return model.ErrPostNotFound
	}
	p.Trending = trending
	return nil
}

func (r *fakeRepo) IncrementViews(ctx context.Context, id string) (int, error) {
	p, ok := r.posts[id]
	if !ok {
		return 0, model.ErrPostNotFound
	}
	p.Views++
	return p.Views, nil
}

func (r *fakeRepo) IncrementReactions(ctx context.Context, id string) (int, error) {
	p, ok := r.posts[id]
	if !ok {
		return 0, model.ErrPostNotFound
	}
	p.Reactions++
	return p.Reactions, nil
}

func (r *fakeRepo) Stats(ctx context.Context) (*model.PostStats, error) {
	s := &model.PostStats{Total: len(r.posts)}
	for _, p := range r.posts {
		if p.IsPublished() {
			s.Published++
		} else {
			s.Drafts++
		}
		if p.Trending {
			s.Trending++
		}
		s.TotalViews += p.Views
	}
	return s, nil
}

// noopCache misses on every read and swallows writes
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}
func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, keys ...string) error        { return nil }
func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (noopCache) Ping(ctx context.Context) error                          { return nil }

func newTestService(repo *fakeRepo) PostService {
	return NewPostService(repo, noopCache{})
}

// ========================================
// TESTS
// ========================================

func TestGetArticleResolvesBundledPost(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("database down")
	svc := newTestService(repo)

	// Bundled posts resolve even when the database is unreachable
	article, err := svc.GetArticle(context.Background(), "gta6-trailer-record")

	require.NoError(t, err)
	assert.Equal(t, "gta6-trailer-record", article.Post.ID)
	assert.Contains(t, article.ContentHTML, "<h1 class=\"content-h1\">")
}

func TestGetArticleRendersWithAdPlaceholder(t *testing.T) {
	repo := newFakeRepo(model.Post{
		ID:      "db-1",
		Title:   "Database Article With Paragraphs",
		Content: "First paragraph.\n\nSecond paragraph.\n\nThird paragraph.\n\nFourth paragraph.",
		Status:  model.StatusPublished,
	})
	svc := newTestService(repo)

	article, err := svc.GetArticle(context.Background(), "database-article-with-paragraphs")

	require.NoError(t, err)
	assert.Contains(t, article.ContentHTML, `<div class="ad-placeholder"></div>`)
}

func TestGetArticleIncrementsViews(t *testing.T) {
	repo := newFakeRepo(model.Post{
		ID:      "db-1",
		Title:   "Database Article",
		Content: "Body.",
		Status:  model.StatusPublished,
		Views:   10,
	})
	svc := newTestService(repo)

	article, err := svc.GetArticle(context.Background(), "database-article")

	require.NoError(t, err)
	assert.Equal(t, 11, article.Post.Views)
}

func TestGetArticleBackendFailureReadsAsNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.GetArticle(context.Background(), "not-a-bundled-slug-at-all")

	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestGetArticleSkipsDrafts(t *testing.T) {
	repo := newFakeRepo(model.Post{
		ID:     "db-1",
		Title:  "Secret Draft Article",
		Status: model.StatusDraft,
	})
	svc := newTestService(repo)

	_, err := svc.GetArticle(context.Background(), "secret-draft-article")

	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestReactOnBundledPostReturnsShippedCount(t *testing.T) {
	svc := newTestService(newFakeRepo())

	count, err := svc.React(context.Background(), "gta6-trailer-record")

	require.NoError(t, err)
	assert.Equal(t, 7234, count)
}

func TestReactIncrementsDatabasePost(t *testing.T) {
	repo := newFakeRepo(model.Post{
		ID:        "db-1",
		Title:     "Database Article",
		Status:    model.StatusPublished,
		Reactions: 5,
	})
	svc := newTestService(repo)

	count, err := svc.React(context.Background(), "database-article")

	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestCreateDerivesFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	p, err := svc.Create(context.Background(), &model.PostRequest{
		Title:    "A Fresh Take",
		Excerpt:  "Short summary",
		Content:  "Some body text here.",
		Category: "tech",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 1, p.ReadTime)
	assert.Equal(t, model.StatusPublished, p.Status, "status defaults to published")
	assert.Equal(t, time.Now().Format("2006-01-02"), p.Date)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(context.Background(), &model.PostRequest{
		Title:    "Bad Category",
		Excerpt:  "x",
		Content:  "y",
		Category: "astrology",
	})

	assert.Error(t, err)
}

func TestUpdatePreservesCounters(t *testing.T) {
	repo := newFakeRepo(model.Post{
		ID:        "db-1",
		Title:     "Original",
		Status:    model.StatusPublished,
		Views:     42,
		Reactions: 7,
	})
	svc := newTestService(repo)

	p, err := svc.Update(context.Background(), "db-1", &model.PostRequest{
		Title:    "Edited Title",
		Excerpt:  "New excerpt",
		Content:  "New body",
		Category: "news",
	})

	require.NoError(t, err)
	assert.Equal(t, 42, p.Views)
	assert.Equal(t, 7, p.Reactions)
}

func TestImportSkipsBadRowsAndDuplicates(t *testing.T) {
	repo := newFakeRepo(model.Post{ID: "existing", Title: "Existing", Status: model.StatusPublished})
	svc := newTestService(repo)

	result, err := svc.Import(context.Background(), &model.ImportPostsRequest{
		Posts: []model.LegacyPost{
			{ID: "good", Title: "Good Post", Category: "tech", Content: "body", Date: "2023-05-01"},
			{ID: "existing", Title: "Duplicate", Category: "tech", Content: "body"},
			{ID: "bad", Title: "Bad Category", Category: "nonsense", Content: "body"},
			{ID: "untitled", Category: "tech", Content: "body"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, result.Errors, 2, "bad category and missing title are reported")
}

func TestImportNormalizesLegacyTimestamps(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Import(context.Background(), &model.ImportPostsRequest{
		Posts: []model.LegacyPost{
			{
				ID:           "legacy-1",
				Title:        "Legacy Post",
				Category:     "tech",
				Content:      "body",
				CreatedAtRaw: map[string]any{"seconds": float64(1700000000)},
			},
		},
	})
	require.NoError(t, err)

	p, err := repo.GetByID(context.Background(), "legacy-1")
	require.NoError(t, err)
	assert.Equal(t, "2023-11-14", p.Date)
}

func TestListPublicMergesAndFilters(t *testing.T) {
	repo := newFakeRepo(model.Post{
		ID:       "db-1",
		Title:    "Database Tech Story",
		Category: "tech",
		Status:   model.StatusPublished,
		Date:     "2025-02-01",
	})
	svc := newTestService(repo)

	posts, total, err := svc.ListPublic(context.Background(), model.ListPostsQuery{
		Page: 1, Limit: 50, Category: "tech",
	})

	require.NoError(t, err)
	assert.Equal(t, len(posts), total)
	var ids []string
	for _, p := range posts {
		assert.Equal(t, "tech", p.Category)
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "db-1")
	assert.Contains(t, ids, "ai-wars-2025-openai-google-anthropic")
}
