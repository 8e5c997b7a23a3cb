package model

import (
	"time"
)

// 资源可见性
const (
	VisibilityDraft   = "draft"
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
	VisibilityPremium = "premium"
)

// 排序方式
const (
	SortTrending        = "trending"
	SortMostDownloaded  = "most_downloaded"
	SortHighestRated    = "highest_rated"
	SortNewest          = "newest"
	SortRecentlyUpdated = "recently_updated"
)

type Resource struct {
	ID               string     `gorm:"type:char(36);primaryKey" json:"id"`
	Title            string     `gorm:"type:varchar(255);not null" json:"title"`
	Slug             string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_creator_slug" json:"slug"`
	Description      string     `gorm:"type:text" json:"description"`
	Type             string     `gorm:"type:varchar(32);not null;index:idx_type" json:"type"`
	CreatorID        string     `gorm:"type:char(36);not null;uniqueIndex:idx_creator_slug;index:idx_creator" json:"creator_id"`
	MinecraftVersion string     `gorm:"type:varchar(16)" json:"minecraft_version"`
	License          string     `gorm:"type:varchar(32)" json:"license"`
	Visibility       string     `gorm:"type:varchar(16);not null;default:'draft';index:idx_visibility" json:"visibility"`
	AverageRating    float64    `gorm:"not null;default:0" json:"average_rating"`
	RatingCount      int        `gorm:"not null;default:0" json:"rating_count"`
	TotalDownloads   int64      `gorm:"not null;default:0" json:"total_downloads"`
	TotalViews       int64      `gorm:"not null;default:0" json:"total_views"`
	TrendingScore    float64    `gorm:"not null;default:0;index:idx_trending_score" json:"trending_score"`
	Featured         bool       `gorm:"type:tinyint(1);not null;default:0" json:"featured"`
	CreatedAt        time.Time  `json:"created_at"`
	PublishedAt      *time.Time `json:"published_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// 关联关系
	Creator Profile `gorm:"foreignKey:CreatorID;references:ID"`
	Tags    []Tag   `gorm:"many2many:resource_tags;joinForeignKey:ResourceID;joinReferences:TagID"`
}

func (Resource) TableName() string {
	return "resources"
}
