package handler

import (
	"Craftstone/internal/api/dto"
	"Craftstone/internal/pkg/response"
	"Craftstone/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// TrackActivity 行为上报，需要登录
func (h *ActivityHandler) TrackActivity(c *gin.Context) {
	var req dto.TrackActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	result, err := h.activityService.TrackActivity(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
