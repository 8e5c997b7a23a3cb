package model

import "time"

// 关注目标类型
const (
	FollowTargetCreator  = "creator"
	FollowTargetResource = "resource"
	FollowTargetTag      = "tag"
)

type Follow struct {
	UserID     string    `gorm:"type:char(36);primaryKey" json:"user_id"`
	TargetID   string    `gorm:"type:char(36);primaryKey;index:idx_target_id" json:"target_id"`
	TargetType string    `gorm:"type:varchar(16);primaryKey" json:"target_type"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
