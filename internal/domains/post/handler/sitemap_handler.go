package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trendwatch-backend/internal/domains/post/model"
	"trendwatch-backend/internal/domains/post/service"
	"trendwatch-backend/internal/shared/response"
	"trendwatch-backend/internal/sitemap"
	"trendwatch-backend/pkg/logger"
)

type SitemapHandler struct {
	generator *sitemap.Generator
	posts     service.PostService
}

func NewSitemapHandler(generator *sitemap.Generator, posts service.PostService) *SitemapHandler {
	return &SitemapHandler{
		generator: generator,
		posts:     posts,
	}
}

// GetSitemap regenerates the sitemap from current content and serves
// it inline, or as a file download with ?download=1. The admin console
// uses inline mode for its copy-to-clipboard button.
// GET /api/v1/admin/sitemap
func (h *SitemapHandler) GetSitemap(c *gin.Context) {
	remote, err := h.posts.RemotePublished(c.Request.Context())
	if err != nil {
		// Unlike the reader-facing slug lookup, the admin needs to
		// know generation failed rather than get a partial sitemap.
		logger.Error("sitemap generation failed", err)
		response.InternalServerError(c, "could not load posts for sitemap")
		return
	}

	xml := h.generator.Generate(model.StaticPosts(), remote)

	if c.Query("download") == "1" {
		c.Header("Content-Disposition", `attachment; filename="sitemap.xml"`)
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}
