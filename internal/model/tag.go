package model

import "time"

type Tag struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_tag_name" json:"name"`
	Slug       string    `gorm:"type:varchar(50);not null" json:"slug"`
	UsageCount int       `gorm:"not null;default:0" json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// ResourceTag 资源与标签的关联
type ResourceTag struct {
	ResourceID string `gorm:"type:char(36);primaryKey" json:"resource_id"`
	TagID      uint64 `gorm:"primaryKey;index:idx_tag_id" json:"tag_id"`
}

func (ResourceTag) TableName() string {
	return "resource_tags"
}
