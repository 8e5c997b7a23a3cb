package model

import "time"

// 行为类型
const (
	ActionView     = "view"
	ActionDownload = "download"
	ActionLike     = "like"
	ActionRate     = "rate"
	ActionComment  = "comment"
	ActionDismiss  = "dismiss"
)

// ActivityEvent 用户行为事实，只插入不修改
type ActivityEvent struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"type:char(36);not null;index:idx_user_id" json:"user_id"`
	ResourceID string    `gorm:"type:char(36);not null;index:idx_resource_id" json:"resource_id"`
	ActionType string    `gorm:"type:varchar(16);not null" json:"action_type"`
	Weight     float64   `gorm:"not null;default:1" json:"weight"`
	CreatedAt  time.Time `json:"created_at"`
}

func (ActivityEvent) TableName() string {
	return "user_activity"
}
