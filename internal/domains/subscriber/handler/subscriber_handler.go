package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trendwatch-backend/internal/domains/subscriber/model"
	"trendwatch-backend/internal/domains/subscriber/service"
	"trendwatch-backend/internal/shared/response"
	"trendwatch-backend/pkg/logger"
)

type SubscriberHandler struct {
	service service.SubscriberService
}

func NewSubscriberHandler(service service.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{service: service}
}

// ========================================
// PUBLIC ENDPOINTS
// ========================================

// Subscribe signs an email up for the newsletter
// POST /api/v1/subscribers
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	result, err := h.service.Subscribe(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Unsubscribe soft-deletes a subscription
// POST /api/v1/subscribers/unsubscribe
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	var req model.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unsubscribed": true})
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListSubscribers returns subscribers with optional filters
// GET /api/v1/admin/subscribers?search=&status=
func (h *SubscriberHandler) ListSubscribers(c *gin.Context) {
	var q model.ListSubscribersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	subs, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, subs)
}

// DeleteSubscriber removes a subscriber permanently
// DELETE /api/v1/admin/subscribers/:id
func (h *SubscriberHandler) DeleteSubscriber(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// GetStats returns audience counters for the dashboard
// GET /api/v1/admin/subscribers/stats
func (h *SubscriberHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ExportSubscribers streams the audience as a CSV or Excel download
// so it can be imported into any mailing tool.
// GET /api/v1/admin/subscribers/export?format=csv|xlsx
func (h *SubscriberHandler) ExportSubscribers(c *gin.Context) {
	var q model.ListSubscribersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	datestamp := time.Now().Format("2006-01-02")

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, err := h.service.ExportCSV(c.Request.Context(), q)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.Header("Content-Disposition",
			fmt.Sprintf(`attachment; filename="subscribers_%s.csv"`, datestamp))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)

	case "xlsx":
		f, err := h.service.ExportExcel(c.Request.Context(), q)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.Header("Content-Disposition",
			fmt.Sprintf(`attachment; filename="subscribers_%s.xlsx"`, datestamp))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			logger.Error("excel export write failed", err)
		}

	default:
		response.BadRequest(c, "format must be csv or xlsx")
	}
}

func (h *SubscriberHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAlreadySubscribed):
		response.Conflict(c, "This email is already subscribed!")
	case errors.Is(err, model.ErrInvalidEmail):
		response.BadRequest(c, "Please enter a valid email address.")
	case errors.Is(err, model.ErrSubscriberNotFound):
		response.NotFound(c, "subscriber not found")
	default:
		logger.Error("subscriber handler internal error", err)
		response.InternalServerError(c, "internal server error")
	}
}
