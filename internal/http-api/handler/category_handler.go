package handler

import (
	"net/http"

	"journalhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/categories", h.List)
}

// List returns the static category list
// GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.categoryService.GetAll())
}
