package repository

import (
	"context"

	"trendwatch-backend/internal/domains/subscriber/model"
)

type SubscriberRepository interface {
	List(ctx context.Context, q model.ListSubscribersQuery) ([]model.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	Create(ctx context.Context, s *model.Subscriber) error
	// Reactivate flips an unsubscribed record back to active and
	// refreshes its subscription timestamp
	Reactivate(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status model.SubscriberStatus) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.SubscriberStats, error)
	ListActiveEmails(ctx context.Context) ([]string, error)
}
