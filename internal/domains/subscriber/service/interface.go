package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"trendwatch-backend/internal/domains/subscriber/model"
)

// SubscriberService manages the newsletter audience
type SubscriberService interface {
	Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResult, error)
	Unsubscribe(ctx context.Context, email string) error

	List(ctx context.Context, q model.ListSubscribersQuery) ([]model.Subscriber, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*model.SubscriberStats, error)
	ActiveEmails(ctx context.Context) ([]string, error)

	ExportCSV(ctx context.Context, q model.ListSubscribersQuery) ([]byte, error)
	ExportExcel(ctx context.Context, q model.ListSubscribersQuery) (*excelize.File, error)
}

// TaskEnqueuer schedules background email delivery so signups never
// wait on SMTP
type TaskEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, email string) error
}
