package handler

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/pkg/response"
	"Craftstone/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed 个性化内容流，需要登录
func (h *FeedHandler) GetFeed(c *gin.Context) {
	var req dto.FeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	result, err := h.feedService.GetFeed(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
