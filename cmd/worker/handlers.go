package main

import (
	"context"

	"github.com/hibiken/asynq"

	"trendwatch-backend/internal/infrastructure/email"
	"trendwatch-backend/internal/infrastructure/queue"
	"trendwatch-backend/internal/infrastructure/queue/handlers"
	"trendwatch-backend/pkg/container"
)

type taskHandler func(ctx context.Context, t *asynq.Task) error

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	welcomeEmail taskHandler
	digestEmail  taskHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	emailSvc := email.NewSMTPEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)

	return &HandlerRegistry{
		welcomeEmail: handlers.WelcomeEmailHandler(emailSvc, cfg.SiteName, cfg.SiteURL),
		digestEmail: handlers.DigestEmailHandler(
			emailSvc,
			c.SubscriberService,
			c.PostService,
			cfg.SiteName,
			cfg.SiteURL,
		),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeEmailWelcome, h.welcomeEmail)
	mux.HandleFunc(queue.TypeEmailDigest, h.digestEmail)
}
