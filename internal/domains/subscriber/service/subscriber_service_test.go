package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendwatch-backend/internal/domains/subscriber/model"
	"trendwatch-backend/internal/domains/subscriber/repository"
)

type fakeSubscriberRepo struct {
	subs map[string]*model.Subscriber // keyed by id
}

var _ repository.SubscriberRepository = (*fakeSubscriberRepo)(nil)

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{subs: make(map[string]*model.Subscriber)}
}

func (r *fakeSubscriberRepo) List(ctx context.Context, q model.ListSubscribersQuery) ([]model.Subscriber, error) {
	var out []model.Subscriber
	for _, s := range r.subs {
		if q.Status != "" && string(s.Status) != q.Status {
			continue
		}
		if q.Search != "" && !strings.Contains(s.Email, q.Search) {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSubscriberRepo) GetByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	for _, s := range r.subs {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, model.ErrSubscriberNotFound
}

func (r *fakeSubscriberRepo) Create(ctx context.Context, s *model.Subscriber) error {
	cp := *s
	r.subs[s.ID] = &cp
	return nil
}

func (r *fakeSubscriberRepo) Reactivate(ctx context.Context, id string) error {
	s, ok := r.subs[id]
	if !ok {
		return model.ErrSubscriberNotFound
	}
	s.Status = model.StatusActive
	s.SubscribedAt = time.Now()
	return nil
}

func (r *fakeSubscriberRepo) SetStatus(ctx context.Context, id string, status model.SubscriberStatus) error {
	s, ok := r.subs[id]
	if !ok {
		return model.ErrSubscriberNotFound
	}
	s.Status = status
	return nil
}

func (r *fakeSubscriberRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.subs[id]; !ok {
		return model.ErrSubscriberNotFound
	}
	delete(r.subs, id)
	return nil
}

func (r *fakeSubscriberRepo) Stats(ctx context.Context) (*model.SubscriberStats, error) {
	stats := &model.SubscriberStats{Total: len(r.subs)}
	for _, s := range r.subs {
		if s.Status == model.StatusActive {
			stats.Active++
		}
	}
	return stats, nil
}

func (r *fakeSubscriberRepo) ListActiveEmails(ctx context.Context) ([]string, error) {
	var emails []string
	for _, s := range r.subs {
		if s.Status == model.StatusActive {
			emails = append(emails, s.Email)
		}
	}
	return emails, nil
}

type fakeEnqueuer struct {
	welcomed []string
}

func (f *fakeEnqueuer) EnqueueWelcomeEmail(ctx context.Context, email string) error {
	f.welcomed = append(f.welcomed, email)
	return nil
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	repo := newFakeSubscriberRepo()
	enq := &fakeEnqueuer{}
	svc := NewSubscriberService(repo, enq)

	result, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{
		Email: "  Reader@Example.COM  ",
	})

	require.NoError(t, err)
	assert.False(t, result.Reactivated)

	stored, err := repo.GetByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, stored.Status)
	assert.Equal(t, "website", stored.Source, "source defaults to website")
	assert.Equal(t, []string{"reader@example.com"}, enq.welcomed)
}

func TestSubscribeRejectsDuplicateActive(t *testing.T) {
	repo := newFakeSubscriberRepo()
	svc := NewSubscriberService(repo, nil)

	_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "a@b.com"})
	require.NoError(t, err)

	_, err = svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "A@B.com"})
	assert.ErrorIs(t, err, model.ErrAlreadySubscribed)
}

func TestSubscribeReactivatesUnsubscribed(t *testing.T) {
	repo := newFakeSubscriberRepo()
	enq := &fakeEnqueuer{}
	svc := NewSubscriberService(repo, enq)

	_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "a@b.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Unsubscribe(context.Background(), "a@b.com"))

	result, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "a@b.com"})

	require.NoError(t, err)
	assert.True(t, result.Reactivated)

	stored, err := repo.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, stored.Status)

	// Reactivation is not a new signup; only the original send
	assert.Len(t, enq.welcomed, 1)
}

func TestSubscribeRejectsMalformedEmail(t *testing.T) {
	svc := NewSubscriberService(newFakeSubscriberRepo(), nil)

	_, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "not-an-email"})

	assert.ErrorIs(t, err, model.ErrInvalidEmail)
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	svc := NewSubscriberService(newFakeSubscriberRepo(), nil)

	err := svc.Unsubscribe(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, model.ErrSubscriberNotFound)
}

func TestExportCSV(t *testing.T) {
	repo := newFakeSubscriberRepo()
	repo.subs["1"] = &model.Subscriber{
		ID:           "1",
		Email:        "a@b.com",
		SubscribedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Status:       model.StatusActive,
		Source:       "website",
	}
	svc := NewSubscriberService(repo, nil)

	data, err := svc.ExportCSV(context.Background(), model.ListSubscribersQuery{})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Email,Subscribed Date,Status,Source", lines[0])
	assert.Equal(t, "a@b.com,2024-05-01,active,website", lines[1])
}

func TestExportExcel(t *testing.T) {
	repo := newFakeSubscriberRepo()
	repo.subs["1"] = &model.Subscriber{
		ID:           "1",
		Email:        "a@b.com",
		SubscribedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Status:       model.StatusActive,
		Source:       "footer",
	}
	svc := NewSubscriberService(repo, nil)

	f, err := svc.ExportExcel(context.Background(), model.ListSubscribersQuery{})
	require.NoError(t, err)

	email, err := f.GetCellValue("Subscribers", "A2")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", email)

	source, err := f.GetCellValue("Subscribers", "D2")
	require.NoError(t, err)
	assert.Equal(t, "footer", source)
}
