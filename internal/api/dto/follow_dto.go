package dto

import "time"

type FollowListItem struct {
	TargetID   string    `json:"target_id"`
	TargetType string    `json:"target_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type FollowListResponse struct {
	Items   []*FollowListItem `json:"items"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	HasMore bool              `json:"hasMore"`
}
