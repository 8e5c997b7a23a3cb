package handler

import (
	"Craftstone/internal/pkg/response"
	"Craftstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	resourceService service.ResourceService
}

func NewResourceHandler(resourceService service.ResourceService) *ResourceHandler {
	return &ResourceHandler{resourceService: resourceService}
}

// GetResource 资源详情，登录态可选，非公开资源只有本人可见
func (h *ResourceHandler) GetResource(c *gin.Context) {
	id := c.Param("id")
	viewerID := c.GetString("user_id")

	result, err := h.resourceService.GetResourceDetail(c.Request.Context(), id, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListCreatorResources 创作者主页的公开作品
func (h *ResourceHandler) ListCreatorResources(c *gin.Context) {
	creatorID := c.Param("creator_id")
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.resourceService.ListCreatorResources(c.Request.Context(), creatorID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
