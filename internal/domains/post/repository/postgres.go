package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"trendwatch-backend/internal/domains/post/model"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresRepository{pool: pool}
}

// postColumns is the canonical column order every scanPost call relies on
const postColumns = `
	id, title, slug, excerpt, content, category, image,
	author_name, author_avatar, date, read_time, trending,
	views, reactions, status, created_at, updated_at`

// scanPost reads one row in postColumns order. slug and status are
// nullable: legacy rows predate both columns.
func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	var slug, status *string

	err := row.Scan(
		&p.ID, &p.Title, &slug, &p.Excerpt, &p.Content, &p.Category, &p.Image,
		&p.Author.Name, &p.Author.Avatar, &p.Date, &p.ReadTime, &p.Trending,
		&p.Views, &p.Reactions, &status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if slug != nil {
		p.Slug = *slug
	}
	if status != nil {
		p.Status = model.Status(*status)
	}
	return &p, nil
}

// nullable maps "" to NULL so legacy-compatible columns stay NULL
// instead of holding empty strings
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ========================================
// READS
// ========================================

func (r *postgresRepository) List(ctx context.Context, q model.ListPostsQuery) ([]model.Post, int, error) {
	where := "TRUE"
	args := []interface{}{}
	argIndex := 1

	if q.Category != "" {
		where += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, q.Category)
		argIndex++
	}

	switch q.Status {
	case string(model.StatusPublished):
		// Rows without a status are live posts from before the column existed
		where += " AND (status IS NULL OR status = 'published')"
	case string(model.StatusDraft):
		where += " AND status = 'draft'"
	}

	if q.Search != "" {
		where += fmt.Sprintf(" AND (title ILIKE $%d OR excerpt ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+q.Search+"%")
		argIndex++
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM posts WHERE " + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts
		WHERE %s
		ORDER BY date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, postColumns, where, argIndex, argIndex+1)
	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	posts, err := r.queryPosts(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts
		WHERE status IS NULL OR status = 'published'
		ORDER BY date DESC, created_at DESC
	`, postColumns)

	return r.queryPosts(ctx, query)
}

func (r *postgresRepository) ListTrending(ctx context.Context, limit int) ([]model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts
		WHERE trending = TRUE AND (status IS NULL OR status = 'published')
		ORDER BY views DESC
		LIMIT $1
	`, postColumns)

	return r.queryPosts(ctx, query, limit)
}

func (r *postgresRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]model.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Printf("[Repository] Post query error: %v", err)
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE id = $1", postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	query := fmt.Sprintf("SELECT %s FROM posts WHERE slug = $1", postColumns)

	p, err := scanPost(r.pool.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post by slug: %w", err)
	}
	return p, nil
}

// ========================================
// WRITES
// ========================================

func (r *postgresRepository) Create(ctx context.Context, p *model.Post) error {
	query := `
		INSERT INTO posts (
			id, title, slug, excerpt, content, category, image,
			author_name, author_avatar, date, read_time, trending,
			views, reactions, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, nullable(p.Slug), p.Excerpt, p.Content, p.Category, p.Image,
		p.Author.Name, p.Author.Avatar, p.Date, p.ReadTime, p.Trending,
		p.Views, p.Reactions, nullable(string(p.Status)), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrSlugAlreadyExists
		}
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post) error {
	query := `
		UPDATE posts SET
			title = $2, slug = $3, excerpt = $4, content = $5, category = $6,
			image = $7, author_name = $8, author_avatar = $9, date = $10,
			read_time = $11, trending = $12, status = $13, updated_at = $14
		WHERE id = $1
	`

	p.UpdatedAt = time.Now()

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.Title, nullable(p.Slug), p.Excerpt, p.Content, p.Category,
		p.Image, p.Author.Name, p.Author.Avatar, p.Date,
		p.ReadTime, p.Trending, nullable(string(p.Status)), p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrSlugAlreadyExists
		}
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) SetStatus(ctx context.Context, id string, status model.Status) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE posts SET status = $2, updated_at = NOW() WHERE id = $1",
		id, string(status))
	if err != nil {
		return fmt.Errorf("set post status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *postgresRepository) SetTrending(ctx context.Context, id string, trending bool) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE posts SET trending = $2, updated_at = NOW() WHERE id = $1",
		id, trending)
	if err != nil {
		return fmt.Errorf("set post trending: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// ========================================
// COUNTERS
// ========================================

// Counters are bumped atomically in SQL so concurrent readers never
// lose increments to a read-modify-write race.

func (r *postgresRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx,
		"UPDATE posts SET views = views + 1 WHERE id = $1 RETURNING views",
		id).Scan(&views)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, model.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return views, nil
}

func (r *postgresRepository) IncrementReactions(ctx context.Context, id string) (int, error) {
	var reactions int
	err := r.pool.QueryRow(ctx,
		"UPDATE posts SET reactions = reactions + 1 WHERE id = $1 RETURNING reactions",
		id).Scan(&reactions)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, model.ErrPostNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment reactions: %w", err)
	}
	return reactions, nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*model.PostStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status IS NULL OR status = 'published'),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE trending = TRUE),
			COALESCE(SUM(views), 0)
		FROM posts
	`

	var s model.PostStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.Total, &s.Published, &s.Drafts, &s.Trending, &s.TotalViews)
	if err != nil {
		return nil, fmt.Errorf("post stats: %w", err)
	}
	return &s, nil
}
