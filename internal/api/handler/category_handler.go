package handler

import (
	"Craftstone/internal/pkg/response"
	"Craftstone/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories 分类配置列表
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetCategory 单个分类配置
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.categoryService.GetCategory(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
