package handler

import (
	"Craftstone/internal/pkg/response"
	"Craftstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow 关注目标，需要登录
func (h *FollowHandler) Follow(c *gin.Context) {
	targetType := c.Param("target_type")
	targetID := c.Param("target_id")

	userID := c.GetString("user_id")
	if err := h.followService.Follow(c.Request.Context(), userID, targetType, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow 取消关注
func (h *FollowHandler) Unfollow(c *gin.Context) {
	targetType := c.Param("target_type")
	targetID := c.Param("target_id")

	userID := c.GetString("user_id")
	if err := h.followService.Unfollow(c.Request.Context(), userID, targetType, targetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListFollows 我的关注列表
func (h *FollowHandler) ListFollows(c *gin.Context) {
	targetType := c.Query("type")
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	userID := c.GetString("user_id")
	result, err := h.followService.ListFollows(c.Request.Context(), userID, targetType, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
