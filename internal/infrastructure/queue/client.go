package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"trendwatch-backend/pkg/logger"
)

// Client enqueues background tasks. It satisfies the subscriber
// service's TaskEnqueuer so signups hand email delivery off to the
// worker instead of blocking on SMTP.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddress, redisPassword string, redisDB int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddress,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (c *Client) EnqueueWelcomeEmail(ctx context.Context, email string) error {
	payload, err := json.Marshal(WelcomeEmailPayload{Email: email})
	if err != nil {
		return fmt.Errorf("marshal welcome payload: %w", err)
	}

	task := asynq.NewTask(TypeEmailWelcome, payload)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueHigh),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue welcome email: %w", err)
	}

	logger.Info("Enqueued welcome email", map[string]interface{}{
		"task_id": info.ID,
		"queue":   info.Queue,
	})
	return nil
}

// EnqueueDigest triggers an immediate digest run, used by the admin
// console; the scheduler fires the same task weekly.
func (c *Client) EnqueueDigest(ctx context.Context) error {
	payload, err := json.Marshal(DigestPayload{})
	if err != nil {
		return fmt.Errorf("marshal digest payload: %w", err)
	}

	task := asynq.NewTask(TypeEmailDigest, payload)
	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue digest: %w", err)
	}

	logger.Info("Enqueued newsletter digest", map[string]interface{}{
		"task_id": info.ID,
		"queue":   info.Queue,
	})
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
