package model

import "time"

// Recommendation 上游离线生成的个性化推荐，本服务只读
type Recommendation struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"type:char(36);not null;index:idx_user_score" json:"user_id"`
	ResourceID string    `gorm:"type:char(36);not null" json:"resource_id"`
	Score      float64   `gorm:"not null;default:0;index:idx_user_score" json:"score"`
	Reason     string    `gorm:"type:varchar(255)" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`

	Resource Resource `gorm:"foreignKey:ResourceID;references:ID"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// DismissedResource 用户明确不感兴趣的资源，for-you 排除集
type DismissedResource struct {
	UserID     string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	ResourceID string    `gorm:"type:char(36);primaryKey" json:"resource_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (DismissedResource) TableName() string {
	return "dismissed_resources"
}
