package model

import "time"

// Category 资源分类配置，动态下发，新增分类不需要重新部署
type Category struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_category_slug" json:"slug"`
	Name        string    `gorm:"type:varchar(64);not null" json:"name"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Fields      string    `gorm:"type:json" json:"fields"` // 上传向导的字段定义
	SortOrder   int       `gorm:"not null;default:0" json:"sort_order"`
	Enabled     bool      `gorm:"type:tinyint(1);not null;default:1" json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
