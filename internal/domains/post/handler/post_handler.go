package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"trendwatch-backend/internal/domains/post/model"
	"trendwatch-backend/internal/domains/post/service"
	"trendwatch-backend/internal/shared/response"
	"trendwatch-backend/pkg/logger"
)

type PostHandler struct {
	service service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ========================================
// PUBLIC ENDPOINTS
// ========================================

// ListPosts returns published posts, bundled and database-backed merged
// GET /api/v1/posts?page=&limit=&category=&search=
func (h *PostHandler) ListPosts(c *gin.Context) {
	var q model.ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	posts, total, err := h.service.ListPublic(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
	})
}

// ListTrending returns the current trending posts
// GET /api/v1/posts/trending?limit=
func (h *PostHandler) ListTrending(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	posts, err := h.service.ListTrending(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, posts)
}

// GetArticle resolves a URL slug and returns the post with rendered HTML
// GET /api/v1/articles/:slug
func (h *PostHandler) GetArticle(c *gin.Context) {
	article, err := h.service.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, article)
}

// React records one reaction on an article
// POST /api/v1/articles/:slug/reactions
func (h *PostHandler) React(c *gin.Context) {
	count, err := h.service.React(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reactions": count})
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListAdminPosts returns database posts including drafts
// GET /api/v1/admin/posts?page=&limit=&category=&search=&status=
func (h *PostHandler) ListAdminPosts(c *gin.Context) {
	var q model.ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	posts, total, err := h.service.ListAdmin(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, &response.Meta{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
	})
}

// GetAdminPost returns one post regardless of status
// GET /api/v1/admin/posts/:id
func (h *PostHandler) GetAdminPost(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// CreatePost creates a post
// POST /api/v1/admin/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, p)
}

// UpdatePost replaces a post
// PUT /api/v1/admin/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p)
}

// DeletePost removes a post
// DELETE /api/v1/admin/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// UpdateStatus toggles publication state
// PATCH /api/v1/admin/posts/:id/status
func (h *PostHandler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetStatus(c.Request.Context(), c.Param("id"), model.Status(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": req.Status})
}

// UpdateTrending toggles the trending flag
// PATCH /api/v1/admin/posts/:id/trending
func (h *PostHandler) UpdateTrending(c *gin.Context) {
	var req model.UpdateTrendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.SetTrending(c.Request.Context(), c.Param("id"), *req.Trending); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"trending": *req.Trending})
}

// ImportPosts bulk-imports posts exported from the previous platform
// POST /api/v1/admin/posts/import
func (h *PostHandler) ImportPosts(c *gin.Context) {
	var req model.ImportPostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Import(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetStats returns dashboard counters
// GET /api/v1/admin/posts/stats
func (h *PostHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// handleError maps domain errors onto HTTP responses
func (h *PostHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, model.ErrSlugAlreadyExists):
		response.Conflict(c, "a post with this slug already exists")
	case errors.Is(err, model.ErrInvalidCategory),
		errors.Is(err, model.ErrInvalidStatus),
		errors.Is(err, model.ErrInvalidPageLimit):
		response.BadRequest(c, err.Error())
	default:
		// Validation errors from the ozzo rules read fine as-is
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			response.BadRequest(c, verrs.Error())
			return
		}
		logger.Error("post handler internal error", err)
		response.InternalServerError(c, "internal server error")
	}
}
