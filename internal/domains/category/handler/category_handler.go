package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trendwatch-backend/internal/domains/category"
	"trendwatch-backend/internal/shared/response"
)

type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// GetCategories returns the full category taxonomy
// GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, category.List())
}

// GetCategory returns a single category
// GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	cat, ok := category.ByID(c.Param("id"))
	if !ok {
		response.NotFound(c, "category not found")
		return
	}

	response.Success(c, http.StatusOK, cat)
}
