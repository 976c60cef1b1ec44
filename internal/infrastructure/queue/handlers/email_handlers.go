package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	postservice "trendwatch-backend/internal/domains/post/service"
	subscriberservice "trendwatch-backend/internal/domains/subscriber/service"
	"trendwatch-backend/internal/infrastructure/email"
	"trendwatch-backend/internal/infrastructure/queue"
	"trendwatch-backend/pkg/logger"
)

const digestArticleCount = 5

// WelcomeEmailHandler delivers the signup confirmation email.
func WelcomeEmailHandler(emailSvc email.EmailService, siteName, siteURL string) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p queue.WelcomeEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return asynq.SkipRetry // malformed payload, retrying cannot help
		}

		data := email.WelcomeEmailData{
			Email:    p.Email,
			SiteName: siteName,
			SiteURL:  siteURL,
		}
		if err := emailSvc.SendWelcomeEmail(ctx, data); err != nil {
			return err // SMTP or network error, let asynq retry
		}
		return nil
	}
}

// DigestEmailHandler sends the weekly trending digest to every active
// subscriber. Audience and articles are resolved at run time.
func DigestEmailHandler(
	emailSvc email.EmailService,
	subscribers subscriberservice.SubscriberService,
	posts postservice.PostService,
	siteName, siteURL string,
) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		emails, err := subscribers.ActiveEmails(ctx)
		if err != nil {
			return fmt.Errorf("load digest audience: %w", err)
		}
		if len(emails) == 0 {
			logger.Info("Digest skipped, no active subscribers", map[string]interface{}{})
			return nil
		}

		trending, err := posts.ListTrending(ctx, digestArticleCount)
		if err != nil {
			return fmt.Errorf("load digest articles: %w", err)
		}
		if len(trending) == 0 {
			logger.Info("Digest skipped, nothing trending", map[string]interface{}{})
			return nil
		}

		articles := make([]email.DigestArticle, 0, len(trending))
		for _, p := range trending {
			articles = append(articles, email.DigestArticle{
				Title: p.Title,
				URL:   fmt.Sprintf("%s/article/%s", siteURL, p.EffectiveSlug()),
			})
		}

		sent, failed := 0, 0
		for _, addr := range emails {
			data := email.DigestEmailData{
				Email:    addr,
				SiteName: siteName,
				SiteURL:  siteURL,
				Articles: articles,
			}
			if err := emailSvc.SendDigestEmail(ctx, data); err != nil {
				// One bad mailbox must not fail the whole batch
				failed++
				continue
			}
			sent++
		}

		logger.Info("Digest run finished", map[string]interface{}{
			"sent":   sent,
			"failed": failed,
		})
		return nil
	}
}
