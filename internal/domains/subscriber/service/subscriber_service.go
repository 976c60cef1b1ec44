package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"trendwatch-backend/internal/domains/subscriber/model"
	"trendwatch-backend/internal/domains/subscriber/repository"
	"trendwatch-backend/pkg/logger"
)

const defaultSource = "website"

type subscriberService struct {
	repo     repository.SubscriberRepository
	enqueuer TaskEnqueuer
}

// NewSubscriberService wires the service; enqueuer may be nil when no
// worker is deployed, in which case welcome emails are skipped.
func NewSubscriberService(repo repository.SubscriberRepository, enqueuer TaskEnqueuer) SubscriberService {
	return &subscriberService{
		repo:     repo,
		enqueuer: enqueuer,
	}
}

func (s *subscriberService) Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResult, error) {
	// ========== STEP 1: Validate and normalize ==========
	if err := req.Validate(); err != nil {
		return nil, model.ErrInvalidEmail
	}

	email := model.NormalizeEmail(req.Email)
	source := req.Source
	if source == "" {
		source = defaultSource
	}

	// ========== STEP 2: Duplicate check ==========
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrSubscriberNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.Status == model.StatusUnsubscribed {
			// ========== STEP 3a: Reactivate a returning reader ==========
			if err := s.repo.Reactivate(ctx, existing.ID); err != nil {
				return nil, err
			}
			return &model.SubscribeResult{
				Reactivated: true,
				Message:     "Welcome back! Your subscription has been reactivated.",
			}, nil
		}
		return nil, model.ErrAlreadySubscribed
	}

	// ========== STEP 3b: New signup ==========
	sub := &model.Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		SubscribedAt: time.Now(),
		Status:       model.StatusActive,
		Source:       source,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	// ========== STEP 4: Welcome email, best effort ==========
	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueWelcomeEmail(ctx, email); err != nil {
			logger.Warn("welcome email enqueue failed", map[string]interface{}{
				"email": email,
				"error": err.Error(),
			})
		}
	}

	logger.Info("new subscriber", map[string]interface{}{"source": source})
	return &model.SubscribeResult{
		Message: "Successfully subscribed! 🎉",
	}, nil
}

func (s *subscriberService) Unsubscribe(ctx context.Context, email string) error {
	existing, err := s.repo.GetByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		return err
	}
	return s.repo.SetStatus(ctx, existing.ID, model.StatusUnsubscribed)
}

func (s *subscriberService) List(ctx context.Context, q model.ListSubscribersQuery) ([]model.Subscriber, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}

func (s *subscriberService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *subscriberService) Stats(ctx context.Context) (*model.SubscriberStats, error) {
	return s.repo.Stats(ctx)
}

func (s *subscriberService) ActiveEmails(ctx context.Context) ([]string, error) {
	return s.repo.ListActiveEmails(ctx)
}
