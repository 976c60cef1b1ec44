package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"trendwatch-backend/internal/shared/response"
	"trendwatch-backend/pkg/logger"
)

// DigestEnqueuer hands the digest run off to the background worker
type DigestEnqueuer interface {
	EnqueueDigest(ctx context.Context) error
}

type NewsletterHandler struct {
	enqueuer DigestEnqueuer
}

func NewNewsletterHandler(enqueuer DigestEnqueuer) *NewsletterHandler {
	return &NewsletterHandler{enqueuer: enqueuer}
}

// TriggerDigest queues an immediate digest send outside the weekly
// schedule
// POST /api/v1/admin/newsletter/digest
func (h *NewsletterHandler) TriggerDigest(c *gin.Context) {
	if err := h.enqueuer.EnqueueDigest(c.Request.Context()); err != nil {
		logger.Error("digest enqueue failed", err)
		response.InternalServerError(c, "could not queue digest")
		return
	}

	response.Success(c, http.StatusAccepted, gin.H{
		"queued": true,
	})
}
