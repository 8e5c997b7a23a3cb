package dto

// TrackActivityRequest 行为上报入参
type TrackActivityRequest struct {
	ResourceID string  `json:"resource_id" binding:"required"`
	ActionType string  `json:"action_type" binding:"required"`
	Weight     float64 `json:"weight" binding:"omitempty,gt=0"`
}

type TrackActivityResponse struct {
	Success       bool    `json:"success"`
	TrendingScore float64 `json:"trendingScore"`
}
