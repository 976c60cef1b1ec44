package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"trendwatch-backend/internal/domains/subscriber/model"
)

// postgresRepository - raw SQL with pgxpool. The subscribers table
// carries a partial unique index on email WHERE status = 'active',
// which enforces the one-active-record-per-email invariant even when
// two signups race past the application-level check.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) SubscriberRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context, q model.ListSubscribersQuery) ([]model.Subscriber, error) {
	where := "TRUE"
	args := []interface{}{}
	argIndex := 1

	if q.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, q.Status)
		argIndex++
	}
	if q.Search != "" {
		where += fmt.Sprintf(" AND email ILIKE $%d", argIndex)
		args = append(args, "%"+q.Search+"%")
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT id, email, subscribed_at, status, source
		FROM subscribers
		WHERE %s
		ORDER BY subscribed_at DESC
	`, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var subs []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.Status, &s.Source); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, subscribed_at, status, source
		FROM subscribers
		WHERE email = $1
		ORDER BY subscribed_at DESC
		LIMIT 1
	`, email).Scan(&s.ID, &s.Email, &s.SubscribedAt, &s.Status, &s.Source)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrSubscriberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get subscriber by email: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) Create(ctx context.Context, s *model.Subscriber) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO subscribers (id, email, subscribed_at, status, source)
		VALUES ($1, $2, $3, $4, $5)
	`, s.ID, s.Email, s.SubscribedAt, string(s.Status), s.Source)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return model.ErrAlreadySubscribed
		}
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

func (r *postgresRepository) Reactivate(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE subscribers
		SET status = 'active', subscribed_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("reactivate subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSubscriberNotFound
	}
	return nil
}

func (r *postgresRepository) SetStatus(ctx context.Context, id string, status model.SubscriberStatus) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE subscribers SET status = $2 WHERE id = $1",
		id, string(status))
	if err != nil {
		return fmt.Errorf("set subscriber status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSubscriberNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM subscribers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSubscriberNotFound
	}
	return nil
}

func (r *postgresRepository) Stats(ctx context.Context) (*model.SubscriberStats, error) {
	var s model.SubscriberStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
		FROM subscribers
	`).Scan(&s.Total, &s.Active)
	if err != nil {
		return nil, fmt.Errorf("subscriber stats: %w", err)
	}
	return &s, nil
}

func (r *postgresRepository) ListActiveEmails(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT email FROM subscribers WHERE status = 'active' ORDER BY subscribed_at")
	if err != nil {
		return nil, fmt.Errorf("list active emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
